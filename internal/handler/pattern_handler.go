package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/knaito/naraigoto-api/internal/dto"
	"github.com/knaito/naraigoto-api/internal/models"
	"github.com/knaito/naraigoto-api/internal/planner"
	appErrors "github.com/knaito/naraigoto-api/pkg/errors"
	"github.com/knaito/naraigoto-api/pkg/response"
)

type patternService interface {
	Toggle(ctx context.Context, key string, req dto.PatternToggleRequest) (*dto.PatternToggleResponse, error)
	Update(ctx context.Context, key string, req dto.PatternUpdateRequest) (*models.Pattern, error)
	Stats(ctx context.Context, key string) (*planner.PatternStats, error)
	Schedule(ctx context.Context, key string, days []string) ([]planner.DayColumn, error)
}

// PatternHandler exposes the three selection patterns and their derived views.
type PatternHandler struct {
	service patternService
}

// NewPatternHandler builds a new handler.
func NewPatternHandler(service patternService) *PatternHandler {
	return &PatternHandler{service: service}
}

// Toggle godoc
// @Summary Toggle a lesson in a pattern
// @Tags Patterns
// @Accept json
// @Produce json
// @Param key path string true "Pattern key (A, B or C)"
// @Param payload body dto.PatternToggleRequest true "Lesson reference"
// @Success 200 {object} response.Envelope
// @Router /patterns/{key}/toggle [post]
func (h *PatternHandler) Toggle(c *gin.Context) {
	var req dto.PatternToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid toggle payload"))
		return
	}
	resp, err := h.service.Toggle(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Update godoc
// @Summary Update pattern name or memo
// @Tags Patterns
// @Accept json
// @Produce json
// @Param key path string true "Pattern key (A, B or C)"
// @Param payload body dto.PatternUpdateRequest true "Pattern fields"
// @Success 200 {object} response.Envelope
// @Router /patterns/{key} [put]
func (h *PatternHandler) Update(c *gin.Context) {
	var req dto.PatternUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid pattern payload"))
		return
	}
	pat, err := h.service.Update(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pat, nil)
}

// Stats godoc
// @Summary Pattern statistics
// @Tags Patterns
// @Produce json
// @Param key path string true "Pattern key (A, B or C)"
// @Success 200 {object} response.Envelope
// @Router /patterns/{key}/stats [get]
func (h *PatternHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Schedule godoc
// @Summary Pattern weekly schedule layout
// @Tags Patterns
// @Produce json
// @Param key path string true "Pattern key (A, B or C)"
// @Param days query string false "Comma-separated weekday filter, e.g. 月,水,土"
// @Success 200 {object} response.Envelope
// @Router /patterns/{key}/schedule [get]
func (h *PatternHandler) Schedule(c *gin.Context) {
	var days []string
	if raw := c.Query("days"); raw != "" {
		for _, d := range strings.Split(raw, ",") {
			if d = strings.TrimSpace(d); d != "" {
				days = append(days, d)
			}
		}
	}
	cols, err := h.service.Schedule(c.Request.Context(), c.Param("key"), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cols, nil)
}
