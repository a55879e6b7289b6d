package planner

import (
	"fmt"

	"github.com/knaito/naraigoto-api/internal/models"
)

// RenumberAll reassigns every lesson identifier from scratch in document
// order using per-(assignee, category) counters, then applies the old→new
// map to every pattern selection. Identifiers absent from the map pass
// through unchanged; stale manual entries are expected and harmless. The
// returned map holds only identifiers that actually changed.
//
// Running it twice yields the same identifiers: canonical IDs renumber to
// themselves.
func RenumberAll(doc *models.Document) map[string]string {
	classifier := NewClassifier(doc.Lessons)
	counters := map[string]int{}
	idMap := map[string]string{}

	for _, l := range doc.Lessons {
		oldID := l.ID
		person := l.Who
		if person == "" {
			person = unassignedPrefix
		}
		letter := classifier.Letter(l.Name)
		key := person + "-" + letter
		counters[key]++
		newID := fmt.Sprintf("%s-%s%02d", person, letter, counters[key])
		if oldID != "" && oldID != newID {
			idMap[oldID] = newID
		}
		l.ID = newID
	}

	applyIDMap(doc, idMap)
	return idMap
}

// MigrateLegacyIDs upgrades documents carrying the original single-letter
// identifier format (B1, C2, ...) to the assignee-prefixed scheme. It
// reports whether anything changed; a second run is a no-op because no
// remaining identifier matches the legacy shape. Lessons without an
// identifier are left alone and do not consume a sequence number.
func MigrateLegacyIDs(doc *models.Document) bool {
	legacy := false
	for _, l := range doc.Lessons {
		if legacyIDPattern.MatchString(l.ID) {
			legacy = true
			break
		}
	}
	if !legacy {
		return false
	}

	classifier := NewClassifier(doc.Lessons)
	counters := map[string]int{}
	idMap := map[string]string{}

	for _, l := range doc.Lessons {
		if l.ID == "" {
			continue
		}
		person := l.Who
		if person == "" {
			person = unassignedPrefix
		}
		letter := classifier.Letter(l.Name)
		key := person + "-" + letter
		counters[key]++
		newID := fmt.Sprintf("%s-%s%02d", person, letter, counters[key])
		idMap[l.ID] = newID
		l.ID = newID
	}

	applyIDMap(doc, idMap)
	return true
}

func applyIDMap(doc *models.Document, idMap map[string]string) {
	if len(idMap) == 0 {
		return
	}
	for _, key := range models.PatternKeys {
		pat := doc.Patterns[key]
		if pat == nil {
			continue
		}
		for i, id := range pat.IDs {
			if mapped, ok := idMap[id]; ok {
				pat.IDs[i] = mapped
			}
		}
	}
}
