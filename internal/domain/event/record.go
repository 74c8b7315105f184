package event

// Record はイベントの永続化表現
// バッキングファイルのJSONスキーマと1対1で対応する
type Record struct {
	ID          *int     `json:"id"`
	Title       string   `json:"title"`
	StartTime   string   `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// ToRecord はイベントを永続化表現に変換する
func (e *Event) ToRecord() Record {
	r := Record{
		Title:       e.Title,
		StartTime:   e.StartTime,
		Location:    e.Location,
		Description: e.Description,
		Keywords:    e.Keywords,
	}
	if r.Keywords == nil {
		r.Keywords = []string{}
	}
	if e.ID != 0 {
		id := e.ID
		r.ID = &id
	}
	if e.EndTime != "" {
		end := e.EndTime
		r.EndTime = &end
	}
	return r
}

// FromRecord は永続化表現からイベントを復元する
// タイトルまたは開始時刻が欠けている場合はエラーを返す
// IDは保存されていれば引き継ぎ、なければ未割り当てのままにする
// 日時フォーマットの厳密な検証は行わない（編集時に検証される）
func FromRecord(r Record) (*Event, error) {
	if r.Title == "" {
		return nil, ErrTitleRequired
	}
	if r.StartTime == "" {
		return nil, ErrStartTimeRequired
	}

	e := &Event{
		Title:       r.Title,
		StartTime:   r.StartTime,
		Location:    r.Location,
		Description: r.Description,
		Keywords:    r.Keywords,
	}
	if e.Keywords == nil {
		e.Keywords = []string{}
	}
	if r.ID != nil {
		e.ID = *r.ID
	}
	if r.EndTime != nil {
		e.EndTime = *r.EndTime
	}
	return e, nil
}
