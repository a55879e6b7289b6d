package models

// Document is the single shared planning document. The JSON shape matches the
// legacy Flask app's schedule_data.json byte for byte so both implementations
// can serve the same file during the migration.
type Document struct {
	Family     map[string]*FamilyMember `json:"family"`
	Conditions Conditions               `json:"conditions"`
	Lessons    []*Lesson                `json:"lessons"`
	Patterns   map[string]*Pattern      `json:"patterns"`
}

// FamilyMember describes one of the four fixed household members.
type FamilyMember struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday,omitempty"`
	Info     string `json:"info"`
}

// Family member keys. The two children are the only assignable lesson targets.
const (
	MemberPapa    = "papa"
	MemberMama    = "mama"
	MemberSister  = "sister"
	MemberBrother = "brother"
)

// Conditions holds the household's free-text planning constraints. Nothing
// else consumes these; they exist for the humans comparing patterns.
type Conditions struct {
	Budget           string `json:"budget"`
	TravelLimit      string `json:"travel_limit"`
	PickupTime       string `json:"pickup_time"`
	WeekdayAvailable string `json:"weekday_available"`
	WeekendAvailable string `json:"weekend_available"`
	PapaDays         string `json:"papa_days"`
}

// Lesson is a candidate scheduled activity for one or both children. All
// fields are stored as raw strings; Fee is coerced to an integer only when
// aggregating.
type Lesson struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	School  string `json:"school"`
	Address string `json:"address"`
	Who     string `json:"who"`
	Day     string `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Fee     string `json:"fee"`
	Status  string `json:"status"`
	URL     string `json:"url,omitempty"`
	Memo    string `json:"memo"`
}

// Lesson status values.
const (
	StatusContinuing   = "継続確定"
	StatusNewConfirmed = "新規確定"
	StatusFirstChoice  = "第1候補"
	StatusSecondChoice = "第2候補"
	StatusUnderReview  = "検討中"
)

// Statuses lists the valid lesson statuses in display order.
var Statuses = []string{
	StatusContinuing,
	StatusNewConfirmed,
	StatusFirstChoice,
	StatusSecondChoice,
	StatusUnderReview,
}

// Weekdays in display order, Monday first.
var Weekdays = []string{"月", "火", "水", "木", "金", "土", "日"}

// IsWeekday reports whether d is one of the seven weekday labels.
func IsWeekday(d string) bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Pattern is one of three named selections of lessons, referenced by lesson
// identifier only.
type Pattern struct {
	Name string   `json:"name"`
	IDs  []string `json:"ids"`
	Memo string   `json:"memo"`
}

// PatternKeys lists the three fixed pattern slots.
var PatternKeys = []string{"A", "B", "C"}

// LessonByID returns the first lesson carrying the identifier, or nil.
// Identifiers are unique except transiently during manual edits, so first
// match is sufficient.
func (d *Document) LessonByID(id string) *Lesson {
	if id == "" {
		return nil
	}
	for _, l := range d.Lessons {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// Seed returns the default document used when no persisted document exists.
func Seed() *Document {
	return &Document{
		Family: map[string]*FamilyMember{
			MemberPapa:    {Name: "パパ", Info: "会社員"},
			MemberMama:    {Name: "ママ", Info: "平日勤務"},
			MemberSister:  {Name: "第一子", Birthday: "2023-04-10", Info: "保育園"},
			MemberBrother: {Name: "第二子", Birthday: "2025-06-15", Info: ""},
		},
		Conditions: Conditions{},
		Lessons: []*Lesson{
			{ID: "A1", Name: "幼児教室", Who: "お姉ちゃん", Status: StatusContinuing},
			{ID: "A2", Name: "幼児教室", Who: "弟くん", Status: StatusContinuing},
			{ID: "B1", Name: "スイミング", Who: "お姉ちゃん", Status: StatusContinuing},
			{ID: "B2", Name: "スイミング（ベビー）", Who: "弟くん", Status: StatusUnderReview, Memo: "1歳〜が多い"},
			{ID: "C1", Name: "ピアノ", Who: "お姉ちゃん", Status: StatusUnderReview, Memo: "3歳〜が目安"},
		},
		Patterns: map[string]*Pattern{
			"A": {Name: "パターンA", IDs: []string{}},
			"B": {Name: "パターンB", IDs: []string{}},
			"C": {Name: "パターンC", IDs: []string{}},
		},
	}
}
