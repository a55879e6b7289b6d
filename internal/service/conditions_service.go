package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/knaito/naraigoto-api/internal/dto"
	"github.com/knaito/naraigoto-api/internal/models"
)

// ConditionsService manages the household's free-text planning constraints.
type ConditionsService struct {
	docs   *DocumentService
	logger *zap.Logger
}

// NewConditionsService constructs the service.
func NewConditionsService(docs *DocumentService, logger *zap.Logger) *ConditionsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConditionsService{docs: docs, logger: logger}
}

// Update replaces the conditions block wholesale.
func (s *ConditionsService) Update(ctx context.Context, req dto.ConditionsUpdateRequest) (*models.Conditions, error) {
	var updated *models.Conditions
	_, err := s.docs.Mutate(ctx, func(doc *models.Document) error {
		doc.Conditions = models.Conditions{
			Budget:           req.Budget,
			TravelLimit:      req.TravelLimit,
			PickupTime:       req.PickupTime,
			WeekdayAvailable: req.WeekdayAvailable,
			WeekendAvailable: req.WeekendAvailable,
			PapaDays:         req.PapaDays,
		}
		updated = &doc.Conditions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
