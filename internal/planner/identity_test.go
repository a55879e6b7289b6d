package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knaito/naraigoto-api/internal/models"
)

func docWithLessons(lessons ...*models.Lesson) *models.Document {
	return &models.Document{
		Family: map[string]*models.FamilyMember{
			models.MemberSister:  {Name: "お姉ちゃん"},
			models.MemberBrother: {Name: "弟くん"},
		},
		Lessons: lessons,
		Patterns: map[string]*models.Pattern{
			"A": {Name: "パターンA", IDs: []string{}},
			"B": {Name: "パターンB", IDs: []string{}},
			"C": {Name: "パターンC", IDs: []string{}},
		},
	}
}

func TestIsAutoGenerated(t *testing.T) {
	assert.True(t, IsAutoGenerated("お姉ちゃん-B01"))
	assert.True(t, IsAutoGenerated("弟くん-Z12"))
	assert.False(t, IsAutoGenerated("B1"), "legacy shape is not the generated shape")
	assert.False(t, IsAutoGenerated("my-custom-id"))
	assert.False(t, IsAutoGenerated(""))
}

func TestGenerateIDSequences(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "お姉ちゃん-B01", Name: "スイミング", Who: "お姉ちゃん"},
	)

	id := GenerateID(doc, "お姉ちゃん", "スイミング", -1)
	assert.Equal(t, "お姉ちゃん-B02", id)

	id = GenerateID(doc, "弟くん", "スイミング（ベビー）", -1)
	assert.Equal(t, "弟くん-B01", id, "sequences are per assignee")
}

func TestGenerateIDSkipsExcludedIndex(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "お姉ちゃん-B01", Name: "スイミング", Who: "お姉ちゃん"},
		&models.Lesson{ID: "お姉ちゃん-B02", Name: "スイミング", Who: "お姉ちゃん"},
	)

	// Regenerating lesson 1 in place must not count its own identifier.
	id := GenerateID(doc, "お姉ちゃん", "スイミング", 1)
	assert.Equal(t, "お姉ちゃん-B02", id)
}

func TestGenerateIDGapsDoNotReuse(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "お姉ちゃん-C05", Name: "ピアノ", Who: "お姉ちゃん"},
	)

	assert.Equal(t, "お姉ちゃん-C06", GenerateID(doc, "お姉ちゃん", "ピアノ", -1))
}

func TestGenerateIDBlankAssignee(t *testing.T) {
	doc := docWithLessons()
	assert.Equal(t, "_-A01", GenerateID(doc, "", "幼児教室", -1))
}

func TestRewriteReference(t *testing.T) {
	doc := docWithLessons()
	doc.Patterns["A"].IDs = []string{"x", "old", "y"}
	doc.Patterns["B"].IDs = []string{"old"}

	RewriteReference(doc, "old", "new")

	assert.Equal(t, []string{"x", "new", "y"}, doc.Patterns["A"].IDs)
	assert.Equal(t, []string{"new"}, doc.Patterns["B"].IDs)
}

func TestRemoveReferencePreservesOrder(t *testing.T) {
	doc := docWithLessons()
	doc.Patterns["C"].IDs = []string{"a", "gone", "b"}

	RemoveReference(doc, "gone")

	assert.Equal(t, []string{"a", "b"}, doc.Patterns["C"].IDs)
}
