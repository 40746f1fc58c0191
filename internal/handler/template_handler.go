package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nuamx/internal/xlsxtpl"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TemplateHandler serves the bulk-upload workbook template.
type TemplateHandler struct{}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// Download handles GET /api/v1/ratings/template
func (h *TemplateHandler) Download(c *gin.Context) {
	body, err := xlsxtpl.Build()
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", xlsxtpl.FileName))
	c.Data(http.StatusOK, xlsxContentType, body)
}
