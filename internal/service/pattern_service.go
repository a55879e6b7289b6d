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

// PatternService manages the three lesson selections and their derived views.
type PatternService struct {
	docs      *DocumentService
	validator *validator.Validate
	layout    planner.LayoutConfig
	logger    *zap.Logger
}

// NewPatternService constructs the service.
func NewPatternService(docs *DocumentService, v *validator.Validate, layout planner.LayoutConfig, logger *zap.Logger) *PatternService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if layout.PixelsPerHour <= 0 {
		layout = planner.DefaultLayoutConfig()
	}
	return &PatternService{docs: docs, validator: v, layout: layout, logger: logger}
}

// Toggle adds the lesson to the pattern selection, or removes it when already
// present. The lesson must exist; stale identifiers cannot be toggled in.
func (s *PatternService) Toggle(ctx context.Context, key string, req dto.PatternToggleRequest) (*dto.PatternToggleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid toggle")
	}

	var resp *dto.PatternToggleResponse
	_, err := s.docs.Mutate(ctx, func(doc *models.Document) error {
		pat, err := patternAt(doc, key)
		if err != nil {
			return err
		}
		for i, id := range pat.IDs {
			if id == req.LessonID {
				pat.IDs = append(pat.IDs[:i], pat.IDs[i+1:]...)
				resp = &dto.PatternToggleResponse{Key: key, Selected: false, IDs: pat.IDs}
				return nil
			}
		}
		if doc.LessonByID(req.LessonID) == nil {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no lesson with id %q", req.LessonID))
		}
		pat.IDs = append(pat.IDs, req.LessonID)
		resp = &dto.PatternToggleResponse{Key: key, Selected: true, IDs: pat.IDs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Update edits the pattern's name and memo. Nil fields are left unchanged.
func (s *PatternService) Update(ctx context.Context, key string, req dto.PatternUpdateRequest) (*models.Pattern, error) {
	var updated *models.Pattern
	_, err := s.docs.Mutate(ctx, func(doc *models.Document) error {
		pat, err := patternAt(doc, key)
		if err != nil {
			return err
		}
		if req.Name != nil {
			pat.Name = *req.Name
		}
		if req.Memo != nil {
			pat.Memo = *req.Memo
		}
		updated = pat
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Stats computes the aggregate comparison view of a pattern.
func (s *PatternService) Stats(ctx context.Context, key string) (*planner.PatternStats, error) {
	doc, err := s.docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	pat, err := patternAt(doc, key)
	if err != nil {
		return nil, err
	}
	stats := planner.BuildStats(doc, pat.IDs)
	return &stats, nil
}

// Schedule lays out the pattern's lessons over the given visible weekdays. An
// empty days filter shows the whole week.
func (s *PatternService) Schedule(ctx context.Context, key string, days []string) ([]planner.DayColumn, error) {
	doc, err := s.docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	pat, err := patternAt(doc, key)
	if err != nil {
		return nil, err
	}

	if len(days) == 0 {
		days = models.Weekdays
	}
	for _, d := range days {
		if !models.IsWeekday(d) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown weekday %q", d))
		}
	}
	return planner.BuildSchedule(doc, pat.IDs, days, s.layout), nil
}

func patternAt(doc *models.Document, key string) (*models.Pattern, error) {
	pat := doc.Patterns[key]
	if pat == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no pattern %q", key))
	}
	return pat, nil
}
