package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/knaito/naraigoto-api/internal/dto"
	"github.com/knaito/naraigoto-api/internal/models"
	"github.com/knaito/naraigoto-api/internal/planner"
	appErrors "github.com/knaito/naraigoto-api/pkg/errors"
)

// LessonService manages the lesson catalog. Lessons are addressed by their
// position in the document, matching the row-index model of the frontend.
type LessonService struct {
	docs      *DocumentService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLessonService constructs the service.
func NewLessonService(docs *DocumentService, v *validator.Validate, logger *zap.Logger) *LessonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LessonService{docs: docs, validator: v, logger: logger}
}

// Create appends a new lesson. Status defaults to 検討中, the assignee to the
// first child's name, and the identifier is generated from the pair. A lesson
// missing either the assignee or the name gets no identifier until both are
// filled in.
func (s *LessonService) Create(ctx context.Context, req dto.LessonCreateRequest) (*models.Lesson, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson")
	}

	var created *models.Lesson
	_, err := s.docs.Mutate(ctx, func(doc *models.Document) error {
		lesson := &models.Lesson{
			Name:    req.Name,
			School:  req.School,
			Address: req.Address,
			Who:     req.Who,
			Day:     req.Day,
			Start:   req.Start,
			End:     req.End,
			Fee:     req.Fee,
			Status:  req.Status,
			URL:     req.URL,
			Memo:    req.Memo,
		}
		if lesson.Status == "" {
			lesson.Status = models.StatusUnderReview
		}
		if lesson.Who == "" {
			lesson.Who = planner.SisterName(doc.Family)
		}
		if lesson.Who != "" && lesson.Name != "" {
			lesson.ID = planner.GenerateID(doc, lesson.Who, lesson.Name, -1)
		}
		doc.Lessons = append(doc.Lessons, lesson)
		created = lesson
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("lesson created", zap.String("id", created.ID))
	return created, nil
}

// UpdateField edits one field of the lesson at index. Changing the assignee
// or the name regenerates the identifier when the current one is blank or
// auto-generated; a manually written identifier is left alone, and no
// identifier is generated while either the assignee or the name is still
// blank. A direct identifier edit is honored verbatim. Every identifier
// change rewrites the pattern selections in the same mutation.
func (s *LessonService) UpdateField(ctx context.Context, index int, req dto.LessonFieldUpdateRequest) (*models.Lesson, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid field update")
	}

	var updated *models.Lesson
	rewritten := false
	_, err := s.docs.Mutate(ctx, func(doc *models.Document) error {
		lesson, err := lessonAt(doc, index)
		if err != nil {
			return err
		}

		switch req.Field {
		case dto.LessonFieldID:
			oldID := lesson.ID
			lesson.ID = req.Value
			if oldID != req.Value {
				planner.RewriteReference(doc, oldID, req.Value)
				rewritten = true
			}
		case dto.LessonFieldWho, dto.LessonFieldName:
			if req.Field == dto.LessonFieldWho {
				lesson.Who = req.Value
			} else {
				lesson.Name = req.Value
			}
			if lesson.Who != "" && lesson.Name != "" && (lesson.ID == "" || planner.IsAutoGenerated(lesson.ID)) {
				oldID := lesson.ID
				lesson.ID = planner.GenerateID(doc, lesson.Who, lesson.Name, index)
				if oldID != lesson.ID {
					planner.RewriteReference(doc, oldID, lesson.ID)
					rewritten = true
				}
			}
		case dto.LessonFieldSchool:
			lesson.School = req.Value
		case dto.LessonFieldAddress:
			lesson.Address = req.Value
		case dto.LessonFieldDay:
			if req.Value != "" && !models.IsWeekday(req.Value) {
				return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown weekday %q", req.Value))
			}
			lesson.Day = req.Value
		case dto.LessonFieldStart:
			lesson.Start = req.Value
		case dto.LessonFieldEnd:
			lesson.End = req.Value
		case dto.LessonFieldFee:
			lesson.Fee = req.Value
		case dto.LessonFieldStatus:
			lesson.Status = req.Value
		case dto.LessonFieldURL:
			lesson.URL = req.Value
		case dto.LessonFieldMemo:
			lesson.Memo = req.Value
		default:
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown field %q", req.Field))
		}
		updated = lesson
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return updated, rewritten, nil
}

// Delete removes the lesson at index and drops its identifier from every
// pattern selection.
func (s *LessonService) Delete(ctx context.Context, index int) error {
	_, err := s.docs.Mutate(ctx, func(doc *models.Document) error {
		lesson, err := lessonAt(doc, index)
		if err != nil {
			return err
		}
		planner.RemoveReference(doc, lesson.ID)
		doc.Lessons = append(doc.Lessons[:index], doc.Lessons[index+1:]...)
		return nil
	})
	return err
}

// Duplicate inserts a copy of the lesson at index directly after it. The copy
// gets a freshly generated identifier, or none while the assignee or name is
// blank; patterns never reference it automatically.
func (s *LessonService) Duplicate(ctx context.Context, index int) (*models.Lesson, error) {
	var copied *models.Lesson
	_, err := s.docs.Mutate(ctx, func(doc *models.Document) error {
		lesson, err := lessonAt(doc, index)
		if err != nil {
			return err
		}
		clone := *lesson
		clone.ID = ""
		if clone.Who != "" && clone.Name != "" {
			clone.ID = planner.GenerateID(doc, clone.Who, clone.Name, -1)
		}
		doc.Lessons = append(doc.Lessons, nil)
		copy(doc.Lessons[index+2:], doc.Lessons[index+1:])
		doc.Lessons[index+1] = &clone
		copied = &clone
		return nil
	})
	if err != nil {
		return nil, err
	}
	return copied, nil
}

// Renumber reassigns every identifier in document order and returns the
// old-to-new map of changed identifiers.
func (s *LessonService) Renumber(ctx context.Context) (map[string]string, error) {
	var idMap map[string]string
	_, err := s.docs.Mutate(ctx, func(doc *models.Document) error {
		idMap = planner.RenumberAll(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("lessons renumbered", zap.Int("changed", len(idMap)))
	return idMap, nil
}

func lessonAt(doc *models.Document, index int) (*models.Lesson, error) {
	if index < 0 || index >= len(doc.Lessons) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no lesson at index %d", index))
	}
	return doc.Lessons[index], nil
}
