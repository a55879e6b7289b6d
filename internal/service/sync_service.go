package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/knaito/naraigoto-api/internal/models"
	"github.com/knaito/naraigoto-api/pkg/jobs"
)

// SheetsMirror is the spreadsheet side of the one-way lesson mirror.
type SheetsMirror interface {
	ReplaceRows(ctx context.Context, rows [][]string) error
}

// SyncService mirrors the lesson catalog to a Google Sheets worksheet. The
// mirror is one-way and best-effort: a nil client means mirroring is not
// configured, and failures are logged but never surfaced to the caller that
// triggered the save.
type SyncService struct {
	docs    *DocumentService
	mirror  SheetsMirror
	metrics *MetricsService
	logger  *zap.Logger
}

// NewSyncService constructs the service. mirror may be nil.
func NewSyncService(docs *DocumentService, mirror SheetsMirror, metrics *MetricsService, logger *zap.Logger) *SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncService{docs: docs, mirror: mirror, metrics: metrics, logger: logger}
}

// HandleJob is the queue handler for spreadsheet mirror jobs. It always
// returns nil so the queue never retries; the next save queues a fresh
// mirror anyway.
func (s *SyncService) HandleJob(ctx context.Context, _ jobs.Job) error {
	s.Sync(ctx)
	return nil
}

// Sync pushes the current catalog to the worksheet.
func (s *SyncService) Sync(ctx context.Context) {
	if s.mirror == nil {
		s.metrics.RecordSheetsSync("skipped")
		return
	}

	doc, err := s.docs.Load(ctx)
	if err != nil {
		s.metrics.RecordSheetsSync("error")
		s.logger.Warn("spreadsheet sync: load failed", zap.Error(err))
		return
	}

	if err := s.mirror.ReplaceRows(ctx, mirrorRows(doc)); err != nil {
		s.metrics.RecordSheetsSync("error")
		s.logger.Warn("spreadsheet sync failed", zap.Error(err))
		return
	}
	s.metrics.RecordSheetsSync("ok")
	s.logger.Info("spreadsheet sync complete", zap.Int("lessons", len(doc.Lessons)))
}

// mirrorRows projects the catalog onto the shared eleven columns, header row
// first. The worksheet keeps document order so it stays row-for-row
// comparable with the in-app lesson table.
func mirrorRows(doc *models.Document) [][]string {
	rows := make([][]string, 0, len(doc.Lessons)+1)
	rows = append(rows, exportHeaders)
	for _, l := range doc.Lessons {
		row := lessonRow(l)
		record := make([]string, len(exportHeaders))
		for i, h := range exportHeaders {
			record[i] = row[h]
		}
		rows = append(rows, record)
	}
	return rows
}
