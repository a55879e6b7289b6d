package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knaito/naraigoto-api/internal/models"
)

func TestRenumberAllAssignsDocumentOrder(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "whatever", Name: "スイミング", Who: "お姉ちゃん"},
		&models.Lesson{ID: "B9", Name: "スイミング", Who: "お姉ちゃん"},
		&models.Lesson{ID: "C3", Name: "ピアノ", Who: "弟くん"},
	)
	doc.Patterns["A"].IDs = []string{"B9", "C3"}

	idMap := RenumberAll(doc)

	assert.Equal(t, "お姉ちゃん-B01", doc.Lessons[0].ID)
	assert.Equal(t, "お姉ちゃん-B02", doc.Lessons[1].ID)
	assert.Equal(t, "弟くん-C01", doc.Lessons[2].ID)
	assert.Equal(t, []string{"お姉ちゃん-B02", "弟くん-C01"}, doc.Patterns["A"].IDs)
	assert.Len(t, idMap, 3)
}

func TestRenumberAllIdempotent(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "x", Name: "幼児教室", Who: "お姉ちゃん"},
		&models.Lesson{ID: "y", Name: "幼児教室", Who: "弟くん"},
	)

	RenumberAll(doc)
	first := []string{doc.Lessons[0].ID, doc.Lessons[1].ID}

	idMap := RenumberAll(doc)

	assert.Empty(t, idMap, "second run changes nothing")
	assert.Equal(t, first, []string{doc.Lessons[0].ID, doc.Lessons[1].ID})
}

func TestRenumberAllBlankAssignee(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "old", Name: "ピアノ", Who: ""},
	)

	RenumberAll(doc)
	assert.Equal(t, "_-C01", doc.Lessons[0].ID)
}

func TestMigrateLegacyIDs(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "A1", Name: "幼児教室", Who: "お姉ちゃん"},
		&models.Lesson{ID: "B1", Name: "スイミング", Who: "お姉ちゃん"},
		&models.Lesson{ID: "B2", Name: "スイミング（ベビー）", Who: "弟くん"},
	)
	doc.Patterns["B"].IDs = []string{"B1", "B2"}

	changed := MigrateLegacyIDs(doc)

	assert.True(t, changed)
	assert.Equal(t, "お姉ちゃん-A01", doc.Lessons[0].ID)
	assert.Equal(t, "お姉ちゃん-B01", doc.Lessons[1].ID)
	assert.Equal(t, "弟くん-B01", doc.Lessons[2].ID)
	assert.Equal(t, []string{"お姉ちゃん-B01", "弟くん-B01"}, doc.Patterns["B"].IDs)
}

func TestMigrateLegacyIDsNoOpWhenCanonical(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "お姉ちゃん-A01", Name: "幼児教室", Who: "お姉ちゃん"},
	)

	assert.False(t, MigrateLegacyIDs(doc))
	assert.Equal(t, "お姉ちゃん-A01", doc.Lessons[0].ID)
}

func TestMigrateLegacyIDsSecondRunNoOp(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "C1", Name: "ピアノ", Who: "お姉ちゃん"},
	)

	assert.True(t, MigrateLegacyIDs(doc))
	assert.False(t, MigrateLegacyIDs(doc))
}

func TestMigrateLegacyIDsSkipsBlankIDs(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "", Name: "体操", Who: "お姉ちゃん"},
		&models.Lesson{ID: "D1", Name: "体操", Who: "お姉ちゃん"},
	)

	assert.True(t, MigrateLegacyIDs(doc))
	assert.Equal(t, "", doc.Lessons[0].ID, "blank identifiers survive migration")
	assert.Equal(t, "お姉ちゃん-D01", doc.Lessons[1].ID)
}
