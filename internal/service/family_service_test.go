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

func newFamilyService(repo *stubDocumentRepo) *FamilyService {
	docs := newDocumentService(repo, nil, nil)
	return NewFamilyService(docs, dto.NewValidator(), zap.NewNop())
}

func TestFamilyServiceRenamePropagates(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	repo.doc.Lessons = append(repo.doc.Lessons,
		&models.Lesson{ID: "x1", Name: "リトミック", Who: "お姉ちゃん＋弟くん"},
		&models.Lesson{ID: "x2", Name: "体操", Who: "弟くん＋お姉ちゃん"},
	)
	svc := newFamilyService(repo)

	m, err := svc.UpdateMember(context.Background(), models.MemberSister, dto.FamilyMemberUpdateRequest{Field: "name", Value: "はな"})
	require.NoError(t, err)
	assert.Equal(t, "はな", m.Name)

	assert.Equal(t, "はな", repo.doc.Lessons[0].Who)
	assert.Equal(t, "はな＋弟くん", repo.doc.Lessons[2].Who)
	assert.Equal(t, "弟くん＋はな", repo.doc.Lessons[3].Who, "reversed compound order also follows the rename")
}

func TestFamilyServiceRenameSparesSubstringMatches(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	repo.doc.Family[models.MemberSister].Name = "ゆ"
	repo.doc.Lessons = append(repo.doc.Lessons,
		&models.Lesson{ID: "x1", Name: "リトミック", Who: "ゆ＋弟くん"},
		&models.Lesson{ID: "x2", Name: "体操", Who: "まゆ＋弟くん"},
	)
	svc := newFamilyService(repo)

	_, err := svc.UpdateMember(context.Background(), models.MemberSister, dto.FamilyMemberUpdateRequest{Field: "name", Value: "ゆい"})
	require.NoError(t, err)

	assert.Equal(t, "ゆい＋弟くん", repo.doc.Lessons[2].Who)
	assert.Equal(t, "まゆ＋弟くん", repo.doc.Lessons[3].Who, "a different assignee ending in the old name stays untouched")
}

func TestFamilyServiceRenameSameNameNoOp(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	svc := newFamilyService(repo)

	_, err := svc.UpdateMember(context.Background(), models.MemberSister, dto.FamilyMemberUpdateRequest{Field: "name", Value: "お姉ちゃん"})
	require.NoError(t, err)
	assert.Equal(t, "お姉ちゃん", repo.doc.Lessons[0].Who)
}

func TestFamilyServiceUpdateBirthday(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	svc := newFamilyService(repo)

	m, err := svc.UpdateMember(context.Background(), models.MemberBrother, dto.FamilyMemberUpdateRequest{Field: "birthday", Value: "2025-06-15"})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", m.Birthday)
}

func TestFamilyServiceUnknownMember(t *testing.T) {
	svc := newFamilyService(&stubDocumentRepo{doc: migratedDoc()})

	_, err := svc.UpdateMember(context.Background(), "grandma", dto.FamilyMemberUpdateRequest{Field: "name", Value: "x"})
	assert.Error(t, err)
}

func TestFamilyServiceRejectsUnknownField(t *testing.T) {
	svc := newFamilyService(&stubDocumentRepo{doc: migratedDoc()})

	_, err := svc.UpdateMember(context.Background(), models.MemberPapa, dto.FamilyMemberUpdateRequest{Field: "salary", Value: "x"})
	assert.Error(t, err)
}
