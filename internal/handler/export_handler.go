package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/knaito/naraigoto-api/pkg/response"
)

type exportService interface {
	LessonsCSV(ctx context.Context) ([]byte, error)
	LessonsPDF(ctx context.Context) ([]byte, error)
}

// ExportHandler serves lesson catalog downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// CSV godoc
// @Summary Download the lesson catalog as CSV
// @Tags Export
// @Produce text/csv
// @Success 200 {file} file
// @Router /export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	raw, err := h.service.LessonsCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	writeDownload(c, raw, "text/csv; charset=utf-8", "csv")
}

// PDF godoc
// @Summary Download the lesson catalog as PDF
// @Tags Export
// @Produce application/pdf
// @Success 200 {file} file
// @Router /export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	raw, err := h.service.LessonsPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	writeDownload(c, raw, "application/pdf", "pdf")
}

func writeDownload(c *gin.Context, raw []byte, mimeType, ext string) {
	filename := fmt.Sprintf("lessons_%s.%s", time.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, mimeType, raw)
}
