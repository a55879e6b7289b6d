package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knaito/naraigoto-api/internal/models"
	appErrors "github.com/knaito/naraigoto-api/pkg/errors"
	"github.com/knaito/naraigoto-api/pkg/response"
)

type documentService interface {
	Load(ctx context.Context) (*models.Document, error)
	Replace(ctx context.Context, doc *models.Document) error
}

// DocumentHandler exposes the full-document endpoints, including the two
// routes the legacy frontend calls.
type DocumentHandler struct {
	service documentService
}

// NewDocumentHandler builds a new handler.
func NewDocumentHandler(service documentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Get godoc
// @Summary Get the planning document
// @Tags Document
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /document [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.service.Load(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// Replace godoc
// @Summary Replace the planning document
// @Tags Document
// @Accept json
// @Produce json
// @Param payload body models.Document true "Full document"
// @Success 200 {object} response.Envelope
// @Router /document [put]
func (h *DocumentHandler) Replace(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid document payload"))
		return
	}
	if err := h.service.Replace(c.Request.Context(), &doc); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, &doc, nil)
}

// LegacyData serves the document unwrapped, matching the old /api/data shape.
func (h *DocumentHandler) LegacyData(c *gin.Context) {
	doc, err := h.service.Load(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// LegacySave accepts the old /api/save full-document POST and answers with
// the legacy status payload.
func (h *DocumentHandler) LegacySave(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid document payload"))
		return
	}
	if err := h.service.Replace(c.Request.Context(), &doc); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
