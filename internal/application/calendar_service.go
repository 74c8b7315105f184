package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sanosuguru/go-calendar-manager/internal/domain/event"
	"github.com/sanosuguru/go-calendar-manager/internal/pkg/metrics"
)

// CalendarService はカレンダー操作のアプリケーションサービス
type CalendarService struct {
	store event.Store
}

func NewCalendarService(store event.Store) *CalendarService {
	return &CalendarService{store: store}
}

type CreateEventInput struct {
	Title       string
	StartTime   string
	EndTime     string
	Location    string
	Description string
	Keywords    []string
}

func (s *CalendarService) CreateEvent(ctx context.Context, input CreateEventInput) (*event.Event, error) {
	e, err := event.NewEvent(
		input.Title,
		input.StartTime,
		input.EndTime,
		input.Location,
		input.Description,
		normalizeKeywords(input.Keywords),
	)
	if err != nil {
		metrics.ObserveEventOperation("add", false)
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}

	added, err := s.store.AddEvent(ctx, e)
	if err != nil {
		metrics.ObserveEventOperation("add", false)
		return nil, fmt.Errorf("イベント追加に失敗しました: %w", err)
	}

	metrics.ObserveEventOperation("add", true)
	return added, nil
}

type UpdateEventInput struct {
	ID          int
	Title       string
	StartTime   string
	EndTime     string
	Location    string
	Description string
	Keywords    []string
}

func (s *CalendarService) UpdateEvent(ctx context.Context, input UpdateEventInput) (*event.Event, error) {
	e := &event.Event{
		Title:       input.Title,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		Description: input.Description,
		Keywords:    normalizeKeywords(input.Keywords),
	}
	if err := e.Validate(); err != nil {
		metrics.ObserveEventOperation("edit", false)
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}

	updated, err := s.store.EditEvent(ctx, input.ID, e)
	if err != nil {
		metrics.ObserveEventOperation("edit", false)
		return nil, err
	}

	metrics.ObserveEventOperation("edit", true)
	return updated, nil
}

// DeleteEvent は指定IDのイベントを削除する
// 削除した場合は true、存在しなかった場合は false を返す
func (s *CalendarService) DeleteEvent(ctx context.Context, id int) (bool, error) {
	deleted, err := s.store.DeleteEvent(ctx, id)
	if err != nil {
		metrics.ObserveEventOperation("delete", false)
		return false, err
	}
	metrics.ObserveEventOperation("delete", deleted)
	return deleted, nil
}

func (s *CalendarService) GetEvent(ctx context.Context, id int) (*event.Event, error) {
	return s.store.GetEvent(ctx, id)
}

func (s *CalendarService) ListEvents(ctx context.Context) ([]*event.Event, error) {
	return s.store.ListEvents(ctx)
}

func (s *CalendarService) ListUpcomingEvents(ctx context.Context) ([]*event.Event, error) {
	return s.store.UpcomingEvents(ctx)
}

// SearchEventsByKeyword はキーワードで部分一致検索する
// 前後の空白を除いたうえで検索し、空のキーワードには空の結果を返す
func (s *CalendarService) SearchEventsByKeyword(ctx context.Context, keyword string) ([]*event.Event, error) {
	return s.store.EventsByKeyword(ctx, strings.TrimSpace(keyword))
}

// normalizeKeywords は各キーワードの前後空白を除き、空のトークンを捨てる
func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
