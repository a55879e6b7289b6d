package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knaito/naraigoto-api/internal/dto"
	"github.com/knaito/naraigoto-api/internal/models"
	appErrors "github.com/knaito/naraigoto-api/pkg/errors"
	"github.com/knaito/naraigoto-api/pkg/response"
)

type familyService interface {
	UpdateMember(ctx context.Context, member string, req dto.FamilyMemberUpdateRequest) (*models.FamilyMember, error)
}

type conditionsService interface {
	Update(ctx context.Context, req dto.ConditionsUpdateRequest) (*models.Conditions, error)
}

// FamilyHandler exposes family member and planning condition endpoints.
type FamilyHandler struct {
	family     familyService
	conditions conditionsService
}

// NewFamilyHandler builds a new handler.
func NewFamilyHandler(family familyService, conditions conditionsService) *FamilyHandler {
	return &FamilyHandler{family: family, conditions: conditions}
}

// UpdateMember godoc
// @Summary Update one family member field
// @Tags Family
// @Accept json
// @Produce json
// @Param member path string true "Member key (papa, mama, sister, brother)"
// @Param payload body dto.FamilyMemberUpdateRequest true "Field update"
// @Success 200 {object} response.Envelope
// @Router /family/{member} [put]
func (h *FamilyHandler) UpdateMember(c *gin.Context) {
	var req dto.FamilyMemberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid member payload"))
		return
	}
	member, err := h.family.UpdateMember(c.Request.Context(), c.Param("member"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, member, nil)
}

// UpdateConditions godoc
// @Summary Replace planning conditions
// @Tags Family
// @Accept json
// @Produce json
// @Param payload body dto.ConditionsUpdateRequest true "Conditions"
// @Success 200 {object} response.Envelope
// @Router /conditions [put]
func (h *FamilyHandler) UpdateConditions(c *gin.Context) {
	var req dto.ConditionsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid conditions payload"))
		return
	}
	conditions, err := h.conditions.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, conditions, nil)
}
