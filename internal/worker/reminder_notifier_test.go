package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sanosuguru/go-calendar-manager/internal/domain/event"
)

// fakeLister はUpcomingListerのテスト用実装
type fakeLister struct {
	mu     sync.Mutex
	calls  int
	events []*event.Event
}

func (f *fakeLister) ListUpcomingEvents(ctx context.Context) ([]*event.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.events, nil
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestReminderNotifier_StartAndStop(t *testing.T) {
	lister := &fakeLister{
		events: []*event.Event{
			{ID: 1, Title: "直近のイベント", StartTime: time.Now().Add(5 * time.Minute).Format(event.TimeLayout)},
		},
	}

	notifier := NewReminderNotifier(lister, 10*time.Millisecond, 15*time.Minute)

	go notifier.Start(context.Background())

	// 数回tickするまで待つ
	time.Sleep(50 * time.Millisecond)
	notifier.Stop()

	assert.GreaterOrEqual(t, lister.callCount(), 1)
}

func TestReminderNotifier_ContextCancel(t *testing.T) {
	lister := &fakeLister{}
	notifier := NewReminderNotifier(lister, 10*time.Millisecond, 15*time.Minute)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		notifier.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// 正常に停止した
	case <-time.After(time.Second):
		t.Fatal("コンテキストキャンセルでワーカーが停止しない")
	}
}
