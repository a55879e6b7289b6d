package planner

import (
	"strings"

	"github.com/knaito/naraigoto-api/internal/models"
)

// WhoKind is the resolved assignee of a lesson. The raw Who field is free
// text carrying a child's current display name or the compound both-children
// label; resolution happens once at the boundary instead of scattering
// substring checks through consumers.
type WhoKind int

const (
	WhoUnknown WhoKind = iota
	WhoSister
	WhoBrother
	WhoBoth
)

// bothSeparator joins the two children's names in the compound label.
const bothSeparator = "＋"

// Display-name fallbacks for a document missing family records.
const (
	defaultSisterName  = "お姉ちゃん"
	defaultBrotherName = "弟くん"
)

// SisterName returns the first child's current display name.
func SisterName(family map[string]*models.FamilyMember) string {
	if m := family[models.MemberSister]; m != nil && m.Name != "" {
		return m.Name
	}
	return defaultSisterName
}

// BrotherName returns the second child's current display name.
func BrotherName(family map[string]*models.FamilyMember) string {
	if m := family[models.MemberBrother]; m != nil && m.Name != "" {
		return m.Name
	}
	return defaultBrotherName
}

// BothLabel derives the compound assignee label from the current family
// names. It is never stored separately; a rename regenerates it.
func BothLabel(family map[string]*models.FamilyMember) string {
	return SisterName(family) + bothSeparator + BrotherName(family)
}

// ResolveWho classifies the raw assignee string against the current family
// names, falling back to substring heuristics for stale legacy values.
func ResolveWho(family map[string]*models.FamilyMember, who string) WhoKind {
	if who == "" {
		return WhoUnknown
	}
	switch who {
	case BothLabel(family):
		return WhoBoth
	case SisterName(family):
		return WhoSister
	case BrotherName(family):
		return WhoBrother
	}
	if strings.Contains(who, bothSeparator) {
		return WhoBoth
	}
	if strings.Contains(who, "姉") && !strings.Contains(who, "弟") {
		return WhoSister
	}
	if strings.Contains(who, "弟") && !strings.Contains(who, "姉") {
		return WhoBrother
	}
	return WhoSister
}
