package event

import "time"

// TimeLayout はイベント日時の正規フォーマット（分精度、24時間表記）
// ゼロ埋め固定長のため、文字列の辞書順比較が時系列順と一致する
const TimeLayout = "2006-01-02 15:04"

// Event はカレンダーイベントエンティティを表す
type Event struct {
	ID          int // 0 = 未割り当て（ストア追加時に採番される）
	Title       string
	StartTime   string // TimeLayout 形式
	EndTime     string // TimeLayout 形式、空文字 = 終了時刻なし
	Location    string
	Description string
	Keywords    []string
}

// NewEvent は新しいイベントを作成して検証する
// IDは未割り当てのまま返す
func NewEvent(title, startTime, endTime, location, description string, keywords []string) (*Event, error) {
	e := &Event{
		Title:       title,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    location,
		Description: description,
		Keywords:    keywords,
	}
	if e.Keywords == nil {
		e.Keywords = []string{}
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate はイベントの検証を行う
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrTitleRequired
	}
	if e.StartTime == "" {
		return ErrStartTimeRequired
	}
	start, err := time.Parse(TimeLayout, e.StartTime)
	if err != nil {
		return ErrInvalidDateFormat
	}
	if e.EndTime != "" {
		end, err := time.Parse(TimeLayout, e.EndTime)
		if err != nil {
			return ErrInvalidDateFormat
		}
		if end.Before(start) {
			return ErrEndBeforeStart
		}
	}
	return nil
}

// IsAllDay は終日イベントかどうかを判定する
// 開始が 00:00 かつ終了が同一日の 23:59 の場合のみ true
// 開始 00:00 で終了時刻なしのイベントは終日扱いしない（GUIのトグル動作と揃えるため）
// 日時が解析できない場合は false を返す
func (e *Event) IsAllDay() bool {
	start, err := time.Parse(TimeLayout, e.StartTime)
	if err != nil {
		return false
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		return false
	}
	if e.EndTime == "" {
		return false
	}
	end, err := time.Parse(TimeLayout, e.EndTime)
	if err != nil {
		return false
	}
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	return sy == ey && sm == em && sd == ed && end.Hour() == 23 && end.Minute() == 59
}

// IsMultiDay は複数日にまたがるイベントかどうかを判定する
// 日時が解析できない場合は false を返す
func (e *Event) IsMultiDay() bool {
	if e.EndTime == "" {
		return false
	}
	start, err := time.Parse(TimeLayout, e.StartTime)
	if err != nil {
		return false
	}
	end, err := time.Parse(TimeLayout, e.EndTime)
	if err != nil {
		return false
	}
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	return sy != ey || sm != em || sd != ed
}
