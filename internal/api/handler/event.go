package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-calendar-manager/internal/application"
	"github.com/sanosuguru/go-calendar-manager/internal/domain/event"
)

type EventHandler struct {
	service CalendarServiceInterface
}

func NewEventHandler(service CalendarServiceInterface) *EventHandler {
	return &EventHandler{service: service}
}

type CreateEventRequest struct {
	Title       string   `json:"title" validate:"required" example:"チーム定例"`
	StartTime   string   `json:"start_time" validate:"required" example:"2024-03-01 10:00"`
	EndTime     string   `json:"end_time" example:"2024-03-01 11:00"`
	Location    string   `json:"location" example:"会議室A"`
	Description string   `json:"description" example:"週次の進捗確認"`
	Keywords    []string `json:"keywords" example:"work,meeting"`
}

type EventResponse struct {
	ID          int      `json:"id" example:"1"`
	Title       string   `json:"title" example:"チーム定例"`
	StartTime   string   `json:"start_time" example:"2024-03-01 10:00"`
	EndTime     string   `json:"end_time,omitempty" example:"2024-03-01 11:00"`
	Location    string   `json:"location" example:"会議室A"`
	Description string   `json:"description" example:"週次の進捗確認"`
	Keywords    []string `json:"keywords" example:"work,meeting"`
	AllDay      bool     `json:"all_day" example:"false"`
	MultiDay    bool     `json:"multi_day" example:"false"`
}

func toEventResponse(e *event.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		Description: e.Description,
		Keywords:    e.Keywords,
		AllDay:      e.IsAllDay(),
		MultiDay:    e.IsMultiDay(),
	}
}

func toEventResponses(events []*event.Event) []*EventResponse {
	responses := make([]*EventResponse, len(events))
	for i, e := range events {
		responses[i] = toEventResponse(e)
	}
	return responses
}

// eventID はパスパラメータからイベントIDを取り出す
func eventID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "イベントIDは整数で指定してください")
	}
	return id, nil
}

// Create godoc
// @Summary イベントを作成
// @Description 新しいイベントをカレンダーに追加します
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "イベント情報"
// @Success 201 {object} EventResponse
// @Failure 400 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	e, err := h.service.CreateEvent(c.Request().Context(), application.CreateEventInput{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Description: req.Description,
		Keywords:    req.Keywords,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, toEventResponse(e))
}

// GetByID godoc
// @Summary イベントを取得
// @Description 指定IDのイベントを取得します
// @Tags events
// @Produce json
// @Param id path int true "イベントID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	e, err := h.service.GetEvent(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toEventResponse(e))
}

// List godoc
// @Summary イベント一覧を取得
// @Description イベント一覧を開始時刻順で取得します。デフォルトは今後のイベントのみ
// @Tags events
// @Produce json
// @Param view query string false "upcoming（デフォルト）または all" Enums(upcoming, all)
// @Success 200 {array} EventResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	var (
		events []*event.Event
		err    error
	)
	if c.QueryParam("view") == "all" {
		events, err = h.service.ListEvents(c.Request().Context())
	} else {
		events, err = h.service.ListUpcomingEvents(c.Request().Context())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}

// Search godoc
// @Summary イベントをキーワード検索
// @Description キーワードに部分一致（大文字小文字無視）するイベントを取得します
// @Tags events
// @Produce json
// @Param keyword query string true "検索キーワード"
// @Success 200 {array} EventResponse
// @Failure 400 {object} map[string]string
// @Router /events/search [get]
func (h *EventHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "検索キーワードを指定してください")
	}

	events, err := h.service.SearchEventsByKeyword(c.Request().Context(), keyword)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}

// Update godoc
// @Summary イベントを更新
// @Description 指定IDのイベントを更新します
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "イベントID"
// @Param request body CreateEventRequest true "イベント情報"
// @Success 200 {object} EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	e, err := h.service.UpdateEvent(c.Request().Context(), application.UpdateEventInput{
		ID:          id,
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Description: req.Description,
		Keywords:    req.Keywords,
	})
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, toEventResponse(e))
}

// Delete godoc
// @Summary イベントを削除
// @Description 指定IDのイベントを削除します
// @Tags events
// @Param id path int true "イベントID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteEvent(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, event.ErrEventNotFound.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
