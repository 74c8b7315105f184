package handler

import (
	"context"

	"github.com/sanosuguru/go-calendar-manager/internal/application"
	"github.com/sanosuguru/go-calendar-manager/internal/domain/event"
)

// CalendarServiceInterface はカレンダーサービスのインターフェース
type CalendarServiceInterface interface {
	CreateEvent(ctx context.Context, input application.CreateEventInput) (*event.Event, error)
	UpdateEvent(ctx context.Context, input application.UpdateEventInput) (*event.Event, error)
	DeleteEvent(ctx context.Context, id int) (bool, error)
	GetEvent(ctx context.Context, id int) (*event.Event, error)
	ListEvents(ctx context.Context) ([]*event.Event, error)
	ListUpcomingEvents(ctx context.Context) ([]*event.Event, error)
	SearchEventsByKeyword(ctx context.Context, keyword string) ([]*event.Event, error)
}
