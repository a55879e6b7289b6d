package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/knaito/naraigoto-api/internal/dto"
	"github.com/knaito/naraigoto-api/internal/models"
)

func migratedDoc() *models.Document {
	return &models.Document{
		Family: map[string]*models.FamilyMember{
			models.MemberSister:  {Name: "お姉ちゃん"},
			models.MemberBrother: {Name: "弟くん"},
		},
		Lessons: []*models.Lesson{
			{ID: "お姉ちゃん-B01", Name: "スイミング", Who: "お姉ちゃん", Status: models.StatusContinuing},
			{ID: "お姉ちゃん-C01", Name: "ピアノ", Who: "お姉ちゃん", Status: models.StatusUnderReview},
		},
		Patterns: map[string]*models.Pattern{
			"A": {Name: "パターンA", IDs: []string{"お姉ちゃん-B01", "お姉ちゃん-C01"}},
			"B": {Name: "パターンB", IDs: []string{}},
			"C": {Name: "パターンC", IDs: []string{}},
		},
	}
}

func newLessonService(repo *stubDocumentRepo) *LessonService {
	docs := newDocumentService(repo, nil, nil)
	return NewLessonService(docs, dto.NewValidator(), zap.NewNop())
}

func TestLessonServiceCreateDefaults(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	svc := newLessonService(repo)

	lesson, err := svc.Create(context.Background(), dto.LessonCreateRequest{Name: "体操"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, lesson.Status)
	assert.Equal(t, "お姉ちゃん", lesson.Who)
	assert.Equal(t, "お姉ちゃん-D01", lesson.ID)
	assert.Len(t, repo.doc.Lessons, 3)
}

func TestLessonServiceCreateBlankNameGetsNoID(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	svc := newLessonService(repo)

	lesson, err := svc.Create(context.Background(), dto.LessonCreateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "お姉ちゃん", lesson.Who, "assignee still defaults to the first child")
	assert.Equal(t, "", lesson.ID, "no identifier until the name is filled in")
}

func TestLessonServiceCreateRejectsBadDay(t *testing.T) {
	svc := newLessonService(&stubDocumentRepo{doc: migratedDoc()})

	_, err := svc.Create(context.Background(), dto.LessonCreateRequest{Name: "体操", Day: "Monday"})
	assert.Error(t, err)
}

func TestLessonServiceUpdateWhoRegeneratesID(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	svc := newLessonService(repo)

	lesson, rewritten, err := svc.UpdateField(context.Background(), 0, dto.LessonFieldUpdateRequest{Field: "who", Value: "弟くん"})
	require.NoError(t, err)
	assert.True(t, rewritten)
	assert.Equal(t, "弟くん-B01", lesson.ID)
	assert.Equal(t, []string{"弟くん-B01", "お姉ちゃん-C01"}, repo.doc.Patterns["A"].IDs)
}

func TestLessonServiceUpdatePreservesManualID(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	repo.doc.Lessons[0].ID = "my-favorite"
	repo.doc.Patterns["A"].IDs[0] = "my-favorite"
	svc := newLessonService(repo)

	lesson, rewritten, err := svc.UpdateField(context.Background(), 0, dto.LessonFieldUpdateRequest{Field: "who", Value: "弟くん"})
	require.NoError(t, err)
	assert.False(t, rewritten)
	assert.Equal(t, "my-favorite", lesson.ID)
}

func TestLessonServiceUpdateIDVerbatim(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	svc := newLessonService(repo)

	lesson, rewritten, err := svc.UpdateField(context.Background(), 0, dto.LessonFieldUpdateRequest{Field: "id", Value: "custom"})
	require.NoError(t, err)
	assert.True(t, rewritten)
	assert.Equal(t, "custom", lesson.ID)
	assert.Equal(t, []string{"custom", "お姉ちゃん-C01"}, repo.doc.Patterns["A"].IDs)
}

func TestLessonServiceUpdateBlankNameNoRegeneration(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	svc := newLessonService(repo)

	lesson, rewritten, err := svc.UpdateField(context.Background(), 0, dto.LessonFieldUpdateRequest{Field: "name", Value: ""})
	require.NoError(t, err)
	assert.False(t, rewritten)
	assert.Equal(t, "お姉ちゃん-B01", lesson.ID)
	assert.Equal(t, "", lesson.Name)
}

func TestLessonServiceUpdateNameBlankWhoNoRegeneration(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	repo.doc.Lessons = append(repo.doc.Lessons, &models.Lesson{})
	svc := newLessonService(repo)

	lesson, rewritten, err := svc.UpdateField(context.Background(), 2, dto.LessonFieldUpdateRequest{Field: "name", Value: "テニス"})
	require.NoError(t, err)
	assert.False(t, rewritten)
	assert.Equal(t, "テニス", lesson.Name)
	assert.Equal(t, "", lesson.ID, "no identifier while the assignee is blank")
}

func TestLessonServiceUpdateOutOfRange(t *testing.T) {
	svc := newLessonService(&stubDocumentRepo{doc: migratedDoc()})

	_, _, err := svc.UpdateField(context.Background(), 9, dto.LessonFieldUpdateRequest{Field: "memo", Value: "x"})
	assert.Error(t, err)
}

func TestLessonServiceDeleteCleansPatterns(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	svc := newLessonService(repo)

	require.NoError(t, svc.Delete(context.Background(), 0))
	assert.Len(t, repo.doc.Lessons, 1)
	assert.Equal(t, []string{"お姉ちゃん-C01"}, repo.doc.Patterns["A"].IDs)
}

func TestLessonServiceDuplicate(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	svc := newLessonService(repo)

	clone, err := svc.Duplicate(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "お姉ちゃん-B02", clone.ID)
	require.Len(t, repo.doc.Lessons, 3)
	assert.Same(t, clone, repo.doc.Lessons[1], "copy sits right after the original")
	assert.Empty(t, repo.doc.Patterns["B"].IDs, "patterns never pick up the copy")
}

func TestLessonServiceDuplicateBlankNameGetsNoID(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	repo.doc.Lessons = append(repo.doc.Lessons, &models.Lesson{Who: "弟くん"})
	svc := newLessonService(repo)

	clone, err := svc.Duplicate(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "", clone.ID)
}

func TestLessonServiceRenumber(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	repo.doc.Lessons[0].ID = "stale"
	repo.doc.Patterns["A"].IDs[0] = "stale"
	svc := newLessonService(repo)

	idMap, err := svc.Renumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "お姉ちゃん-B01", idMap["stale"])
	assert.Equal(t, []string{"お姉ちゃん-B01", "お姉ちゃん-C01"}, repo.doc.Patterns["A"].IDs)
}
