package planner

import (
	"strings"

	"github.com/knaito/naraigoto-api/internal/models"
)

// categoryRule maps a name substring to a fixed category letter. Rules are
// checked in order; the first match wins.
type categoryRule struct {
	substr string
	letter string
}

var categoryTable = []categoryRule{
	{"幼児教室", "A"},
	{"スイミング", "B"},
	{"水泳", "B"},
	{"ピアノ", "C"},
}

const fallbackLetter = "Z"

// Classifier derives a lesson's category letter from its name. Names that
// match no fixed rule receive dynamically assigned letters starting at D,
// one per distinct base name, in the order the base names appear in the
// document. The registry is built once per classifier so the mapping does
// not depend on call order.
type Classifier struct {
	unknownBases []string
}

// NewClassifier scans the lessons in document order and registers every
// unknown base name.
func NewClassifier(lessons []*models.Lesson) *Classifier {
	c := &Classifier{}
	for _, l := range lessons {
		if l.Name == "" || matchesTable(l.Name) {
			continue
		}
		c.register(baseName(l.Name))
	}
	return c
}

// Letter returns the category letter for the lesson name. An empty name maps
// to the reserved fallback letter.
func (c *Classifier) Letter(name string) string {
	if name == "" {
		return fallbackLetter
	}
	for _, rule := range categoryTable {
		if strings.Contains(name, rule.substr) {
			return rule.letter
		}
	}

	idx := c.register(baseName(name))

	used := make(map[string]bool, len(categoryTable))
	for _, rule := range categoryTable {
		used[rule.letter] = true
	}

	assigned := 0
	for letter := byte('D'); letter <= 'Z'; letter++ {
		l := string(letter)
		if used[l] {
			continue
		}
		if assigned == idx {
			return l
		}
		assigned++
	}
	return fallbackLetter
}

// register appends the base name if unseen and returns its registry index.
func (c *Classifier) register(base string) int {
	for i, b := range c.unknownBases {
		if b == base {
			return i
		}
	}
	c.unknownBases = append(c.unknownBases, base)
	return len(c.unknownBases) - 1
}

func matchesTable(name string) bool {
	for _, rule := range categoryTable {
		if strings.Contains(name, rule.substr) {
			return true
		}
	}
	return false
}

// baseName strips the parenthetical qualifier: スイミング（ベビー） and
// スイミング share one dynamic letter.
func baseName(name string) string {
	if i := strings.IndexAny(name, "（("); i >= 0 {
		return name[:i]
	}
	return name
}
