package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/knaito/naraigoto-api/internal/dto"
	"github.com/knaito/naraigoto-api/internal/models"
	appErrors "github.com/knaito/naraigoto-api/pkg/errors"
	"github.com/knaito/naraigoto-api/pkg/response"
)

type lessonService interface {
	Create(ctx context.Context, req dto.LessonCreateRequest) (*models.Lesson, error)
	UpdateField(ctx context.Context, index int, req dto.LessonFieldUpdateRequest) (*models.Lesson, bool, error)
	Delete(ctx context.Context, index int) error
	Duplicate(ctx context.Context, index int) (*models.Lesson, error)
	Renumber(ctx context.Context) (map[string]string, error)
}

// LessonHandler exposes lesson catalog endpoints.
type LessonHandler struct {
	service lessonService
}

// NewLessonHandler builds a new handler.
func NewLessonHandler(service lessonService) *LessonHandler {
	return &LessonHandler{service: service}
}

// Create godoc
// @Summary Add a lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Param payload body dto.LessonCreateRequest true "Lesson payload"
// @Success 201 {object} response.Envelope
// @Router /lessons [post]
func (h *LessonHandler) Create(c *gin.Context) {
	var req dto.LessonCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid lesson payload"))
		return
	}
	lesson, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lesson)
}

// Update godoc
// @Summary Update one lesson field
// @Tags Lessons
// @Accept json
// @Produce json
// @Param index path int true "Lesson index"
// @Param payload body dto.LessonFieldUpdateRequest true "Field update"
// @Success 200 {object} response.Envelope
// @Router /lessons/{index} [patch]
func (h *LessonHandler) Update(c *gin.Context) {
	index, ok := lessonIndex(c)
	if !ok {
		return
	}
	var req dto.LessonFieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid field update payload"))
		return
	}
	lesson, rewritten, err := h.service.UpdateField(c.Request.Context(), index, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.LessonUpdateResponse{Index: index, Lesson: lesson, IDRewritten: rewritten}, nil)
}

// Delete godoc
// @Summary Delete a lesson
// @Tags Lessons
// @Param index path int true "Lesson index"
// @Success 204
// @Router /lessons/{index} [delete]
func (h *LessonHandler) Delete(c *gin.Context) {
	index, ok := lessonIndex(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), index); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Duplicate godoc
// @Summary Duplicate a lesson
// @Tags Lessons
// @Produce json
// @Param index path int true "Lesson index"
// @Success 201 {object} response.Envelope
// @Router /lessons/{index}/duplicate [post]
func (h *LessonHandler) Duplicate(c *gin.Context) {
	index, ok := lessonIndex(c)
	if !ok {
		return
	}
	lesson, err := h.service.Duplicate(c.Request.Context(), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lesson)
}

// Renumber godoc
// @Summary Renumber all lesson identifiers
// @Tags Lessons
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /lessons/renumber [post]
func (h *LessonHandler) Renumber(c *gin.Context) {
	changed, err := h.service.Renumber(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.RenumberResponse{Changed: changed}, nil)
}

func lessonIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "lesson index must be an integer"))
		return 0, false
	}
	return index, true
}
