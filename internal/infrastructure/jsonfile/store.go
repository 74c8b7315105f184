package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-calendar-manager/internal/domain/event"
	"github.com/sanosuguru/go-calendar-manager/internal/pkg/logger"
	"github.com/sanosuguru/go-calendar-manager/internal/pkg/metrics"
)

// storeFile はバッキングファイル全体のJSONスキーマ
type storeFile struct {
	Events []event.Record `json:"events"`
	NextID int            `json:"next_id"`
}

// Store はカレンダーストアのJSONファイル実装
// イベント一覧は常に開始時刻の昇順に保たれ、変更系操作のたびに全件を書き戻す
// IDは単調増加で採番され、削除後も再利用されない
type Store struct {
	path   string
	mu     sync.Mutex
	events []*event.Event
	nextID int
}

// New は指定パスのバッキングファイルからストアを構築する
// ファイルが存在しない・空・壊れている場合は空のストアとして開始する
func New(path string) *Store {
	s := &Store{path: path, nextID: 1}
	s.load()
	return s
}

// load はバッキングファイルからイベントを読み込む
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("イベントファイルが存在しないため新規に開始します", zap.String("path", s.path))
		} else {
			logger.Error("イベントファイルの読み込みに失敗しました", zap.String("path", s.path), zap.Error(err))
		}
		return
	}
	if len(data) == 0 {
		logger.Warn("イベントファイルが空です", zap.String("path", s.path))
		return
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Error("イベントファイルのJSON解析に失敗しました", zap.String("path", s.path), zap.Error(err))
		return
	}

	maxID := 0
	for _, r := range file.Events {
		e, err := event.FromRecord(r)
		if err != nil {
			// 壊れたレコードだけを読み飛ばし、残りは保持する
			logger.Warn("不正なイベントレコードを読み飛ばします", zap.Error(err))
			continue
		}
		s.events = append(s.events, e)
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	// 保存されたカウンタが古い・欠落している場合でもID不変条件を保証する
	s.nextID = file.NextID
	if s.nextID < maxID+1 {
		s.nextID = maxID + 1
	}
	if s.nextID < 1 {
		s.nextID = 1
	}

	metrics.SetCalendarEvents(len(s.events))
	logger.Info("イベントを読み込みました",
		zap.String("path", s.path),
		zap.Int("count", len(s.events)),
		zap.Int("next_id", s.nextID),
	)
}

// save は全イベントとIDカウンタをバッキングファイルへ書き戻す
// 書き込み失敗はログに残すだけで、メモリ上の状態はロールバックしない
// 呼び出し側でロックを保持していること
func (s *Store) save() {
	metrics.SetCalendarEvents(len(s.events))

	records := make([]event.Record, 0, len(s.events))
	for _, e := range s.events {
		if e.ID == 0 {
			logger.Warn("ID未割り当てのイベントに保存時採番します",
				zap.String("title", e.Title), zap.Int("id", s.nextID))
			e.ID = s.nextID
			s.nextID++
		}
		records = append(records, e.ToRecord())
	}

	data, err := json.MarshalIndent(storeFile{Events: records, NextID: s.nextID}, "", "  ")
	if err != nil {
		logger.Error("イベントデータのシリアライズに失敗しました", zap.Error(err))
		metrics.ObserveStoreSave(false)
		return
	}

	// 一時ファイル経由のリネームで書き込み途中のファイルが残らないようにする
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logger.Error("イベントファイルの書き込みに失敗しました", zap.String("path", s.path), zap.Error(err))
		metrics.ObserveStoreSave(false)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		logger.Error("イベントファイルの置き換えに失敗しました", zap.String("path", s.path), zap.Error(err))
		metrics.ObserveStoreSave(false)
		return
	}
	metrics.ObserveStoreSave(true)
}

// sortEvents はイベント一覧を開始時刻の昇順に並べ替える
// フォーマットが固定長ゼロ埋めのため文字列比較で時系列順になる
// 呼び出し側でロックを保持していること
func (s *Store) sortEvents() {
	sort.SliceStable(s.events, func(i, j int) bool {
		return s.events[i].StartTime < s.events[j].StartTime
	})
}

// findByID は指定IDのイベントを返す。呼び出し側でロックを保持していること
func (s *Store) findByID(id int) *event.Event {
	for _, e := range s.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// AddEvent は検証のうえイベントにIDを採番して追加する
func (s *Store) AddEvent(ctx context.Context, e *event.Event) (*event.Event, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.Keywords == nil {
		e.Keywords = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	s.events = append(s.events, e)
	s.sortEvents()
	s.save()

	logger.Info("イベントを追加しました", zap.Int("id", e.ID), zap.String("title", e.Title))
	return e, nil
}

// EditEvent は指定IDのイベントの可変フィールドを上書きする
// IDは変更しない。存在しない場合は永続化せずに ErrEventNotFound を返す
func (s *Store) EditEvent(ctx context.Context, id int, e *event.Event) (*event.Event, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.findByID(id)
	if existing == nil {
		logger.Warn("編集対象のイベントが見つかりません", zap.Int("id", id))
		return nil, event.ErrEventNotFound
	}

	existing.Title = e.Title
	existing.StartTime = e.StartTime
	existing.EndTime = e.EndTime
	existing.Location = e.Location
	existing.Description = e.Description
	if e.Keywords != nil {
		existing.Keywords = e.Keywords
	} else {
		existing.Keywords = []string{}
	}

	s.sortEvents()
	s.save()

	logger.Info("イベントを更新しました", zap.Int("id", id))
	return existing, nil
}

// DeleteEvent は指定IDのイベントを削除する
// 削除した場合は true、存在しなかった場合は永続化せずに false を返す
func (s *Store) DeleteEvent(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			s.save()
			logger.Info("イベントを削除しました", zap.Int("id", id))
			return true, nil
		}
	}

	logger.Warn("削除対象のイベントが見つかりません", zap.Int("id", id))
	return false, nil
}

// GetEvent はIDからイベントを取得する
func (s *Store) GetEvent(ctx context.Context, id int) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.findByID(id)
	if e == nil {
		return nil, event.ErrEventNotFound
	}
	return e, nil
}

// ListEvents は全イベントを開始時刻順で取得する
func (s *Store) ListEvents(ctx context.Context) ([]*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*event.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

// UpcomingEvents はまだ終了していないイベントを開始時刻順で取得する
// 開始時刻が現在以降、または終了時刻があり現在以降（開催中）のイベントが対象
// 現在時刻は呼び出しごとに1回だけ分精度でサンプリングする
func (s *Store) UpcomingEvents(ctx context.Context) ([]*event.Event, error) {
	now := time.Now().Format(event.TimeLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	upcoming := make([]*event.Event, 0)
	for _, e := range s.events {
		if e.StartTime >= now || (e.EndTime != "" && e.EndTime >= now) {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, nil
}

// EventsByKeyword はキーワードに部分一致（大文字小文字無視）するイベントを取得する
// 空のキーワードには空の結果を返す
func (s *Store) EventsByKeyword(ctx context.Context, keyword string) ([]*event.Event, error) {
	matched := make([]*event.Event, 0)
	if keyword == "" {
		return matched, nil
	}
	needle := strings.ToLower(keyword)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		for _, kw := range e.Keywords {
			if strings.Contains(strings.ToLower(kw), needle) {
				matched = append(matched, e)
				break
			}
		}
	}
	return matched, nil
}

// インターフェースを満たしているか確認
var _ event.Store = (*Store)(nil)
