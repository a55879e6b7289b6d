package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/knaito/naraigoto-api/internal/dto"
	"github.com/knaito/naraigoto-api/internal/models"
	appErrors "github.com/knaito/naraigoto-api/pkg/errors"
)

// FamilyService manages the four fixed household members.
type FamilyService struct {
	docs      *DocumentService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFamilyService constructs the service.
func NewFamilyService(docs *DocumentService, v *validator.Validate, logger *zap.Logger) *FamilyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FamilyService{docs: docs, validator: v, logger: logger}
}

var familyMemberKeys = map[string]bool{
	models.MemberPapa:    true,
	models.MemberMama:    true,
	models.MemberSister:  true,
	models.MemberBrother: true,
}

// UpdateMember edits one field of a family member. Renaming a child rewrites
// every lesson assignment carrying the old name, including both orderings of
// the compound both-children label, so the free-text Who column never goes
// stale.
func (s *FamilyService) UpdateMember(ctx context.Context, member string, req dto.FamilyMemberUpdateRequest) (*models.FamilyMember, error) {
	if !familyMemberKeys[member] {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no family member %q", member))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid member update")
	}

	var updated *models.FamilyMember
	_, err := s.docs.Mutate(ctx, func(doc *models.Document) error {
		m := doc.Family[member]
		if m == nil {
			m = &models.FamilyMember{}
			doc.Family[member] = m
		}
		switch req.Field {
		case "name":
			oldName := m.Name
			m.Name = req.Value
			if oldName != "" && oldName != req.Value {
				propagateRename(doc, oldName, req.Value)
			}
		case "birthday":
			m.Birthday = req.Value
		case "info":
			m.Info = req.Value
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("family member updated", zap.String("member", member), zap.String("field", req.Field))
	return updated, nil
}

// propagateRename rewrites lesson assignees after a rename. Compound labels
// only follow the rename when one side of the ＋ equals the old name exactly,
// so renaming "ゆ" leaves "まゆ＋弟くん" alone.
func propagateRename(doc *models.Document, oldName, newName string) {
	for _, l := range doc.Lessons {
		if l.Who == oldName {
			l.Who = newName
			continue
		}
		parts := strings.SplitN(l.Who, "＋", 2)
		if len(parts) != 2 {
			continue
		}
		switch oldName {
		case parts[0]:
			l.Who = newName + "＋" + parts[1]
		case parts[1]:
			l.Who = parts[0] + "＋" + newName
		}
	}
}
