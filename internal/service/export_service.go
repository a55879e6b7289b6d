package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/knaito/naraigoto-api/internal/models"
	"github.com/knaito/naraigoto-api/internal/planner"
	"github.com/knaito/naraigoto-api/pkg/export"
)

// exportHeaders are the eleven columns shared by the CSV, PDF and spreadsheet
// projections, in display order.
var exportHeaders = []string{"ID", "習い事", "教室", "対象", "曜日", "開始", "終了", "月謝", "状態", "URL", "備考"}

// ExportService renders the lesson catalog for download.
type ExportService struct {
	docs   *DocumentService
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(docs *DocumentService, csv *export.CSVExporter, pdf *export.PDFExporter, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{docs: docs, csv: csv, pdf: pdf, logger: logger}
}

// LessonsCSV renders the catalog as UTF-8 CSV with a byte-order marker so
// spreadsheet tools detect the encoding.
func (s *ExportService) LessonsCSV(ctx context.Context) ([]byte, error) {
	doc, err := s.docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.csv.Render(lessonDataset(doc))
}

// LessonsPDF renders the catalog as a landscape tabular PDF.
func (s *ExportService) LessonsPDF(ctx context.Context) ([]byte, error) {
	doc, err := s.docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.pdf.Render(lessonDataset(doc), "Lesson Catalog")
}

// lessonDataset projects lessons onto the eleven export columns, ordered by
// identifier so B2 comes before B10.
func lessonDataset(doc *models.Document) export.Dataset {
	lessons := make([]*models.Lesson, len(doc.Lessons))
	copy(lessons, doc.Lessons)
	sort.SliceStable(lessons, func(i, j int) bool {
		return planner.NaturalLess(lessons[i].ID, lessons[j].ID)
	})

	rows := make([]map[string]string, 0, len(lessons))
	for _, l := range lessons {
		rows = append(rows, lessonRow(l))
	}
	return export.Dataset{Headers: exportHeaders, Rows: rows}
}

func lessonRow(l *models.Lesson) map[string]string {
	return map[string]string{
		"ID":  l.ID,
		"習い事": l.Name,
		"教室":  l.School,
		"対象":  l.Who,
		"曜日":  l.Day,
		"開始":  l.Start,
		"終了":  l.End,
		"月謝":  l.Fee,
		"状態":  l.Status,
		"URL": l.URL,
		"備考":  l.Memo,
	}
}
