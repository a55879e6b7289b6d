package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/knaito/naraigoto-api/pkg/jobs"
)

type stubMirror struct {
	rows [][]string
	err  error
}

func (s *stubMirror) ReplaceRows(_ context.Context, rows [][]string) error {
	if s.err != nil {
		return s.err
	}
	s.rows = rows
	return nil
}

func TestSyncServicePushesRows(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	docs := newDocumentService(repo, nil, nil)
	mirror := &stubMirror{}
	svc := NewSyncService(docs, mirror, nil, zap.NewNop())

	svc.Sync(context.Background())

	require.Len(t, mirror.rows, 3, "header plus two lessons")
	assert.Equal(t, "ID", mirror.rows[0][0])
	assert.Equal(t, "お姉ちゃん-B01", mirror.rows[1][0])
	assert.Len(t, mirror.rows[1], 11)
}

func TestSyncServiceKeepsDocumentOrder(t *testing.T) {
	repo := &stubDocumentRepo{doc: migratedDoc()}
	repo.doc.Lessons[0], repo.doc.Lessons[1] = repo.doc.Lessons[1], repo.doc.Lessons[0]
	docs := newDocumentService(repo, nil, nil)
	mirror := &stubMirror{}
	svc := NewSyncService(docs, mirror, nil, zap.NewNop())

	svc.Sync(context.Background())

	require.Len(t, mirror.rows, 3)
	assert.Equal(t, "お姉ちゃん-C01", mirror.rows[1][0], "worksheet mirrors the catalog row for row, not sorted")
	assert.Equal(t, "お姉ちゃん-B01", mirror.rows[2][0])
}

func TestSyncServiceNilMirrorIsNoOp(t *testing.T) {
	docs := newDocumentService(&stubDocumentRepo{doc: migratedDoc()}, nil, nil)
	svc := NewSyncService(docs, nil, nil, zap.NewNop())

	svc.Sync(context.Background())
}

func TestSyncServiceSwallowsMirrorErrors(t *testing.T) {
	docs := newDocumentService(&stubDocumentRepo{doc: migratedDoc()}, nil, nil)
	mirror := &stubMirror{err: assert.AnError}
	svc := NewSyncService(docs, mirror, nil, zap.NewNop())

	assert.NoError(t, svc.HandleJob(context.Background(), jobs.Job{Type: SyncJobType}))
}
