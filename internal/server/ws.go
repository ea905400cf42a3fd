package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yourusername/odds-radar/internal/broadcast"
	"github.com/yourusername/odds-radar/internal/metrics"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
	wsMaxMessage = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsEnvelope is the frame shape written to WebSocket clients.
type wsEnvelope struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// handleWebSocket upgrades the connection and streams the requested topics.
// Without a topics parameter the client gets both feeds.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	topics := parseTopics(r.URL.Query().Get("topics"))
	if len(topics) == 0 {
		respondValidation(w, "no valid topics requested")
		return
	}

	// Subscribe before the handshake response, so messages published the
	// moment the client connects are already queued.
	sub := s.bus.Subscribe(topics...)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		sub.Close()
		s.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	done := make(chan struct{})
	pongs := make(chan struct{}, 1)
	metrics.StreamSubscribers.Inc()
	defer metrics.StreamSubscribers.Dec()

	go s.wsReadPump(conn, sub, done, pongs)
	s.wsWritePump(conn, sub, done, pongs)
}

// wsClientMessage is the shape of inbound frames. Clients send
// {"type":"ping"} and expect a pong envelope back.
type wsClientMessage struct {
	Type string `json:"type"`
}

// wsReadPump parses client frames and enforces the pong deadline. Closing
// done stops the writer when the peer goes away.
func (s *Server) wsReadPump(conn *websocket.Conn, sub *broadcast.Subscription, done chan struct{}, pongs chan<- struct{}) {
	defer func() {
		sub.Close()
		close(done)
		conn.Close()
	}()

	conn.SetReadLimit(wsMaxMessage)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.WithError(err).Debug("websocket closed unexpectedly")
			}
			return
		}
		var msg wsClientMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "ping" {
			continue
		}
		select {
		case pongs <- struct{}{}:
		default:
		}
	}
}

// wsWritePump forwards subscription messages, answers client pings and
// keeps the connection alive with protocol pings.
func (s *Server) wsWritePump(conn *websocket.Conn, sub *broadcast.Subscription, done chan struct{}, pongs <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case <-done:
			return

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-pongs:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(wsEnvelope{Type: "pong", Timestamp: time.Now().UTC()}); err != nil {
				return
			}

		case msg, open := <-sub.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !open {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			envelope := wsEnvelope{Type: msg.Topic, Timestamp: time.Now().UTC(), Data: msg.Payload}
			if err := conn.WriteJSON(envelope); err != nil {
				return
			}
		}
	}
}

func parseTopics(raw string) []string {
	if raw == "" {
		return []string{broadcast.TopicScrapeProgress, broadcast.TopicOddsUpdates}
	}
	var topics []string
	for _, t := range strings.Split(raw, ",") {
		switch strings.TrimSpace(t) {
		case broadcast.TopicScrapeProgress:
			topics = append(topics, broadcast.TopicScrapeProgress)
		case broadcast.TopicOddsUpdates:
			topics = append(topics, broadcast.TopicOddsUpdates)
		}
	}
	return topics
}
