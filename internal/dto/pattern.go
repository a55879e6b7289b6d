package dto

// PatternUpdateRequest edits a pattern's label fields. Nil means unchanged.
type PatternUpdateRequest struct {
	Name *string `json:"name"`
	Memo *string `json:"memo"`
}

// PatternToggleRequest adds or removes one lesson from a pattern selection.
type PatternToggleRequest struct {
	LessonID string `json:"lesson_id" validate:"required"`
}

// PatternToggleResponse reports the selection after the toggle.
type PatternToggleResponse struct {
	Key      string   `json:"key"`
	Selected bool     `json:"selected"`
	IDs      []string `json:"ids"`
}
