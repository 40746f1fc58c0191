package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nuamx/internal/domain"
	"nuamx/internal/service"
)

// ResolveHandler handles the display-name resolution endpoint.
type ResolveHandler struct {
	resolveService service.ResolveService
}

// NewResolveHandler creates a new ResolveHandler.
func NewResolveHandler(resolveService service.ResolveService) *ResolveHandler {
	return &ResolveHandler{resolveService: resolveService}
}

// resolveRequest is the resolution request body. DryRun defaults to true
// when omitted.
type resolveRequest struct {
	DryRun       *bool  `json:"dry_run"`
	Overwrite    bool   `json:"overwrite"`
	Limit        int    `json:"limit"`
	RUT          string `json:"rut"`
	Period       string `json:"period"`
	DocumentType string `json:"document_type"`
	Status       string `json:"status"`
}

// Resolve handles POST /api/v1/ratings/resolve
func (h *ResolveHandler) Resolve(c *gin.Context) {
	req := resolveRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
			return
		}
	}

	dryRun := true
	if req.DryRun != nil {
		dryRun = *req.DryRun
	}

	result, err := h.resolveService.Resolve(c.Request.Context(), &service.ResolveInput{
		DryRun:    dryRun,
		Overwrite: req.Overwrite,
		Limit:     req.Limit,
		Filters: domain.RatingFilters{
			RUT:          req.RUT,
			Period:       req.Period,
			DocumentType: req.DocumentType,
			Status:       req.Status,
		},
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
