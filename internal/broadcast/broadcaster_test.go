package broadcast

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/models"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func progressEvent(runID uuid.UUID, platform models.Platform, phase models.Phase) *ProgressEvent {
	return &ProgressEvent{
		RunID:     runID,
		Platform:  &platform,
		Phase:     phase,
		Timestamp: time.Now().UTC(),
	}
}

func drain(t *testing.T, sub *Subscription, n int) []Message {
	t.Helper()
	msgs := make([]Message, 0, n)
	for i := 0; i < n; i++ {
		select {
		case msg := <-sub.C:
			msgs = append(msgs, msg)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for message %d of %d", i+1, n)
		}
	}
	return msgs
}

func TestSubscriberReceivesPublishedEvents(t *testing.T) {
	b := New(quietLogger())
	sub := b.Subscribe(TopicScrapeProgress)
	defer sub.Close()

	runID := uuid.New()
	b.PublishProgress(progressEvent(runID, models.PlatformSportyBet, models.PhaseScraping))

	msgs := drain(t, sub, 1)
	ev := msgs[0].Payload.(*ProgressEvent)
	require.Equal(t, runID, ev.RunID)
	require.Equal(t, models.PhaseScraping, ev.Phase)
}

func TestSubscriberOnlySeesItsTopics(t *testing.T) {
	b := New(quietLogger())
	sub := b.Subscribe(TopicOddsUpdates)
	defer sub.Close()

	b.PublishProgress(progressEvent(uuid.New(), models.PlatformBet9ja, models.PhaseMapping))
	b.PublishOddsUpdate(&OddsUpdate{RunID: uuid.New(), Platform: models.PlatformBet9ja})

	msgs := drain(t, sub, 1)
	require.Equal(t, TopicOddsUpdates, msgs[0].Topic)
	select {
	case msg := <-sub.C:
		t.Fatalf("unexpected extra message on topic %s", msg.Topic)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestLateSubscriberGetsReplay(t *testing.T) {
	b := New(quietLogger())
	runID := uuid.New()

	// Progress happens before anyone subscribes.
	b.PublishProgress(progressEvent(runID, models.PlatformSportyBet, models.PhaseDiscovering))
	b.PublishProgress(progressEvent(runID, models.PlatformSportyBet, models.PhaseScraping))
	b.PublishProgress(progressEvent(runID, models.PlatformBet9ja, models.PhaseDiscovering))

	sub := b.Subscribe(TopicScrapeProgress)
	defer sub.Close()

	// One replay slot per (run, platform): the latest phase survives.
	msgs := drain(t, sub, 2)
	phases := map[models.Platform]models.Phase{}
	for _, msg := range msgs {
		ev := msg.Payload.(*ProgressEvent)
		phases[*ev.Platform] = ev.Phase
	}
	require.Equal(t, models.PhaseScraping, phases[models.PlatformSportyBet])
	require.Equal(t, models.PhaseDiscovering, phases[models.PlatformBet9ja])
}

func TestCausalOrderPerPlatform(t *testing.T) {
	b := New(quietLogger())
	sub := b.Subscribe(TopicScrapeProgress)
	defer sub.Close()

	runID := uuid.New()
	sequence := []models.Phase{
		models.PhaseDiscovering, models.PhaseScraping,
		models.PhaseMapping, models.PhaseStoring, models.PhaseCompleted,
	}
	for _, phase := range sequence {
		b.PublishProgress(progressEvent(runID, models.PlatformSportyBet, phase))
	}

	msgs := drain(t, sub, len(sequence))
	for i, msg := range msgs {
		require.Equal(t, sequence[i], msg.Payload.(*ProgressEvent).Phase)
	}
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	b := New(quietLogger())
	sub := b.Subscribe(TopicScrapeProgress)
	defer sub.Close()

	runID := uuid.New()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*3; i++ {
			b.PublishProgress(progressEvent(runID, models.PlatformSportyBet, models.PhaseScraping))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher stalled on a slow subscriber")
	}
}

func TestDropRunEvictsReplay(t *testing.T) {
	b := New(quietLogger())
	runID := uuid.New()
	b.PublishProgress(progressEvent(runID, models.PlatformSportyBet, models.PhaseCompleted))
	b.DropRun(runID)

	sub := b.Subscribe(TopicScrapeProgress)
	defer sub.Close()

	select {
	case msg := <-sub.C:
		t.Fatalf("expected empty replay, got message on %s", msg.Topic)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New(quietLogger())
	sub := b.Subscribe(TopicScrapeProgress)
	sub.Close()
	sub.Close()

	// Publishing after close must not panic or deliver.
	b.PublishProgress(progressEvent(uuid.New(), models.PlatformBet9ja, models.PhaseFailed))
	_, open := <-sub.C
	require.False(t, open)
}
