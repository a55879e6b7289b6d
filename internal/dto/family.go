package dto

// FamilyMemberUpdateRequest edits one field of a family member. Renaming a
// child rewrites every lesson assignment carrying the old name.
type FamilyMemberUpdateRequest struct {
	Field string `json:"field" validate:"required,oneof=name birthday info"`
	Value string `json:"value"`
}

// ConditionsUpdateRequest replaces the household planning constraints.
type ConditionsUpdateRequest struct {
	Budget           string `json:"budget"`
	TravelLimit      string `json:"travel_limit"`
	PickupTime       string `json:"pickup_time"`
	WeekdayAvailable string `json:"weekday_available"`
	WeekendAvailable string `json:"weekend_available"`
	PapaDays         string `json:"papa_days"`
}
