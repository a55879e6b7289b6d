package dto

// LessonCreateRequest carries a new candidate lesson. Everything is optional;
// the service fills defaults for Status, Who and the identifier.
type LessonCreateRequest struct {
	Name    string `json:"name"`
	School  string `json:"school"`
	Address string `json:"address"`
	Who     string `json:"who"`
	Day     string `json:"day" validate:"omitempty,weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Fee     string `json:"fee"`
	Status  string `json:"status" validate:"omitempty,lessonstatus"`
	URL     string `json:"url"`
	Memo    string `json:"memo"`
}

// Editable lesson field names accepted by the single-field update endpoint.
const (
	LessonFieldID      = "id"
	LessonFieldName    = "name"
	LessonFieldSchool  = "school"
	LessonFieldAddress = "address"
	LessonFieldWho     = "who"
	LessonFieldDay     = "day"
	LessonFieldStart   = "start"
	LessonFieldEnd     = "end"
	LessonFieldFee     = "fee"
	LessonFieldStatus  = "status"
	LessonFieldURL     = "url"
	LessonFieldMemo    = "memo"
)

// LessonFieldUpdateRequest updates a single field of one lesson.
type LessonFieldUpdateRequest struct {
	Field string `json:"field" validate:"required,oneof=id name school address who day start end fee status url memo"`
	Value string `json:"value"`
}

// LessonUpdateResponse reports the lesson after a field edit, flagging a
// regenerated identifier so the client can refresh pattern views.
type LessonUpdateResponse struct {
	Index       int         `json:"index"`
	Lesson      interface{} `json:"lesson"`
	IDRewritten bool        `json:"id_rewritten"`
}

// RenumberResponse maps each identifier that changed to its replacement.
type RenumberResponse struct {
	Changed map[string]string `json:"changed"`
}
