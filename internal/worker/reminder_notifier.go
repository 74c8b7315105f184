package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-calendar-manager/internal/domain/event"
	"github.com/sanosuguru/go-calendar-manager/internal/pkg/logger"
)

// UpcomingLister は今後のイベントを列挙するインターフェース
type UpcomingLister interface {
	ListUpcomingEvents(ctx context.Context) ([]*event.Event, error)
}

// ReminderNotifier は開始が近いイベントを定期的にログへ通知するワーカー
type ReminderNotifier struct {
	calendar UpcomingLister
	interval time.Duration
	window   time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewReminderNotifier は新しいリマインダーワーカーを作成する
// window は「あとどれだけで開始するイベントを通知するか」の幅
func NewReminderNotifier(calendar UpcomingLister, interval, window time.Duration) *ReminderNotifier {
	return &ReminderNotifier{
		calendar: calendar,
		interval: interval,
		window:   window,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start はワーカーを開始する
func (n *ReminderNotifier) Start(ctx context.Context) {
	logger.Info("リマインダーワーカー開始",
		zap.Duration("interval", n.interval),
		zap.Duration("window", n.window),
	)

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()
	defer close(n.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("リマインダーワーカー停止（コンテキストキャンセル）")
			return
		case <-n.stopCh:
			logger.Info("リマインダーワーカー停止（シグナル受信）")
			return
		case <-ticker.C:
			n.notify(ctx)
		}
	}
}

// Stop はワーカーを停止して終了を待つ
func (n *ReminderNotifier) Stop() {
	close(n.stopCh)
	<-n.doneCh
}

// notify は開始が近いイベントをログに出力する
func (n *ReminderNotifier) notify(ctx context.Context) {
	events, err := n.calendar.ListUpcomingEvents(ctx)
	if err != nil {
		logger.Error("今後のイベント取得に失敗しました", zap.Error(err))
		return
	}

	now := time.Now()
	deadline := now.Add(n.window)

	for _, e := range events {
		start, err := time.ParseInLocation(event.TimeLayout, e.StartTime, time.Local)
		if err != nil {
			continue
		}
		if start.Before(now) || start.After(deadline) {
			continue
		}
		logger.Info("まもなく開始するイベントがあります",
			zap.Int("id", e.ID),
			zap.String("title", e.Title),
			zap.String("start_time", e.StartTime),
			zap.Duration("starts_in", start.Sub(now).Round(time.Minute)),
		)
	}
}
