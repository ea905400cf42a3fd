package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/yourusername/odds-radar/internal/broadcast"
	"github.com/yourusername/odds-radar/internal/metrics"
)

// sseKeepAlive is the comment-frame interval that keeps proxies from
// closing an idle stream.
const sseKeepAlive = 15 * time.Second

// handleRunProgress streams a run's progress events as server-sent events.
// A terminated run answers 410 so clients stop reconnecting; the replay
// cache delivers the last known state of an in-flight run before live
// events.
func (s *Server) handleRunProgress(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseRunID(w, r)
	if !ok {
		return
	}

	run, err := s.runs.Get(r.Context(), runID)
	if err != nil {
		respondError(w, err)
		return
	}
	if run.Status.IsTerminal() {
		respondJSON(w, http.StatusGone, Problem{
			ErrorType: "gone",
			Message:   fmt.Sprintf("run %s already finished with status %s", runID, run.Status),
		})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, fmt.Errorf("streaming unsupported by connection"))
		return
	}

	// Subscribe before the headers go out, so anything published after the
	// client sees the response is already queued.
	sub := s.bus.Subscribe(broadcast.TopicScrapeProgress)
	defer sub.Close()
	metrics.StreamSubscribers.Inc()
	defer metrics.StreamSubscribers.Dec()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(sseKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()

		case msg, open := <-sub.C:
			if !open {
				return
			}
			ev, ok := msg.Payload.(*broadcast.ProgressEvent)
			if !ok || ev.RunID != runID {
				continue
			}
			if err := writeSSE(w, "progress", ev); err != nil {
				return
			}
			flusher.Flush()

			// Terminal run-level event: close the stream after delivering it.
			if ev.Platform == nil && ev.Phase.IsTerminal() {
				return
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
