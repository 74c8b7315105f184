package event

import "context"

// Store はカレンダーストアのインターフェース
// 変更系操作は成功時に全件をバッキングストアへ永続化する
type Store interface {
	// AddEvent は検証のうえイベントにIDを採番して追加する
	AddEvent(ctx context.Context, e *Event) (*Event, error)

	// EditEvent は指定IDのイベントの可変フィールドを上書きする
	// 存在しない場合は ErrEventNotFound を返し、永続化は行わない
	EditEvent(ctx context.Context, id int, e *Event) (*Event, error)

	// DeleteEvent は指定IDのイベントを削除する
	// 削除した場合は true、存在しなかった場合は false を返す
	DeleteEvent(ctx context.Context, id int) (bool, error)

	// GetEvent はIDからイベントを取得する
	GetEvent(ctx context.Context, id int) (*Event, error)

	// ListEvents は全イベントを開始時刻順で取得する
	ListEvents(ctx context.Context) ([]*Event, error)

	// UpcomingEvents はまだ終了していないイベントを開始時刻順で取得する
	UpcomingEvents(ctx context.Context) ([]*Event, error)

	// EventsByKeyword はキーワードに部分一致（大文字小文字無視）するイベントを取得する
	EventsByKeyword(ctx context.Context, keyword string) ([]*Event, error)
}
