package planner

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/knaito/naraigoto-api/internal/models"
)

var (
	autoIDPattern   = regexp.MustCompile(`^.+-[A-Z]\d+$`)
	idPartsPattern  = regexp.MustCompile(`^(.+)-([A-Z])(\d+)$`)
	legacyIDPattern = regexp.MustCompile(`^[A-Z]\d+$`)
)

// unassignedPrefix stands in for a blank assignee during bulk renumbering.
const unassignedPrefix = "_"

// IsAutoGenerated reports whether the identifier follows the generated
// <assignee>-<letter><digits> shape. Manually overridden identifiers that
// happen to match are treated as auto-generated, which mirrors the legacy
// behavior.
func IsAutoGenerated(id string) bool {
	return autoIDPattern.MatchString(id)
}

// GenerateID produces the next identifier for the (assignee, category) pair:
// one past the highest sequence currently in use. excludeIndex names the
// lesson being regenerated in place; pass a negative index when generating
// for a new lesson.
func GenerateID(doc *models.Document, who, name string, excludeIndex int) string {
	person := who
	if person == "" {
		person = unassignedPrefix
	}
	letter := NewClassifier(doc.Lessons).Letter(name)

	maxSeq := 0
	for i, l := range doc.Lessons {
		if i == excludeIndex || l.ID == "" {
			continue
		}
		m := idPartsPattern.FindStringSubmatch(l.ID)
		if m == nil || m[1] != person || m[2] != letter {
			continue
		}
		if seq, err := strconv.Atoi(m[3]); err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s-%s%02d", person, letter, maxSeq+1)
}

// RewriteReference replaces oldID with newID in every pattern's selection,
// preserving the relative order of entries. An empty newID removes the
// reference instead.
func RewriteReference(doc *models.Document, oldID, newID string) {
	if oldID == "" || oldID == newID {
		return
	}
	for _, key := range models.PatternKeys {
		pat := doc.Patterns[key]
		if pat == nil {
			continue
		}
		for i, id := range pat.IDs {
			if id != oldID {
				continue
			}
			if newID != "" {
				pat.IDs[i] = newID
			} else {
				pat.IDs = append(pat.IDs[:i], pat.IDs[i+1:]...)
			}
			break
		}
	}
}

// RemoveReference drops the identifier from every pattern's selection.
func RemoveReference(doc *models.Document, id string) {
	RewriteReference(doc, id, "")
}
