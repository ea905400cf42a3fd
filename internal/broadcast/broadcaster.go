package broadcast

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
)

// subscriberBuffer bounds each subscriber's queue. A subscriber that cannot
// drain loses the newest messages rather than stalling publishers.
const subscriberBuffer = 64

// replayKey identifies the last-value cache slot for a published message.
type replayKey struct {
	topic    string
	runID    uuid.UUID
	platform string
}

// Subscription is one subscriber's handle. Receive from C; Close
// unregisters and closes C.
type Subscription struct {
	C      <-chan Message
	ch     chan Message
	topics map[string]bool
	b      *Broadcaster
	once   sync.Once
}

// Close unregisters the subscription.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.b.unsubscribe(s)
	})
}

// Broadcaster fans published messages out to per-topic subscribers and
// retains the last message per (topic, run, platform) for replay to late
// joiners.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	replay map[replayKey]Message
	logger *logrus.Entry
}

// New creates an empty broadcaster.
func New(logger *logrus.Logger) *Broadcaster {
	return &Broadcaster{
		subs:   make(map[*Subscription]struct{}),
		replay: make(map[replayKey]Message),
		logger: logger.WithField("component", "broadcast"),
	}
}

// Subscribe registers for the given topics and immediately queues the replay
// cache for them, so a late joiner sees the last known state of every
// in-flight run before live messages.
func (b *Broadcaster) Subscribe(topics ...string) *Subscription {
	sub := &Subscription{
		ch:     make(chan Message, subscriberBuffer),
		topics: make(map[string]bool, len(topics)),
	}
	sub.C = sub.ch
	sub.b = b
	for _, t := range topics {
		sub.topics[t] = true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for key, msg := range b.replay {
		if sub.topics[key.topic] {
			sub.trySend(msg, b.logger)
		}
	}
	b.subs[sub] = struct{}{}
	return sub
}

func (b *Broadcaster) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.ch)
	}
}

// PublishProgress broadcasts a progress event on the scrape_progress topic.
func (b *Broadcaster) PublishProgress(ev *ProgressEvent) {
	key := replayKey{topic: TopicScrapeProgress, runID: ev.RunID, platform: platformKey(ev.Platform)}
	b.publish(key, Message{Topic: TopicScrapeProgress, Payload: ev})
}

// PublishOddsUpdate broadcasts a snapshot hint on the odds_updates topic.
func (b *Broadcaster) PublishOddsUpdate(upd *OddsUpdate) {
	key := replayKey{topic: TopicOddsUpdates, runID: upd.RunID, platform: string(upd.Platform)}
	b.publish(key, Message{Topic: TopicOddsUpdates, Payload: upd})
}

// DropRun evicts a finished run's entries from the replay cache.
func (b *Broadcaster) DropRun(runID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for key := range b.replay {
		if key.runID == runID {
			delete(b.replay, key)
		}
	}
}

func (b *Broadcaster) publish(key replayKey, msg Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.replay[key] = msg
	for sub := range b.subs {
		if sub.topics[msg.Topic] {
			sub.trySend(msg, b.logger)
		}
	}
}

// trySend enqueues without blocking; a full queue drops the message.
func (s *Subscription) trySend(msg Message, logger *logrus.Entry) {
	select {
	case s.ch <- msg:
	default:
		logger.WithField("topic", msg.Topic).Warn("dropping message for slow subscriber")
	}
}

func platformKey(p *models.Platform) string {
	if p == nil {
		return ""
	}
	return string(*p)
}
