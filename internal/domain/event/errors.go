package event

import "errors"

// Event ドメインのエラー定義
var (
	ErrEventNotFound     = errors.New("イベントが見つかりません")
	ErrTitleRequired     = errors.New("イベントタイトルは必須です")
	ErrStartTimeRequired = errors.New("開始時刻は必須です")
	ErrInvalidDateFormat = errors.New("日時の形式が不正です。YYYY-MM-DD HH:MM 形式で指定してください")
	ErrEndBeforeStart    = errors.New("終了時刻は開始時刻より前にできません")
)
