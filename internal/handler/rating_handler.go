package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nuamx/internal/domain"
	"nuamx/internal/service"
)

// RatingHandler handles rating listing and detail endpoints.
type RatingHandler struct {
	ratingService service.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// filtersFromQuery extracts the shared listing filters from query params.
func filtersFromQuery(c *gin.Context) domain.RatingFilters {
	return domain.RatingFilters{
		RUT:          c.Query("rut"),
		Period:       c.Query("period"),
		DocumentType: c.Query("document_type"),
		Status:       c.Query("status"),
	}
}

// List handles GET /api/v1/ratings
func (h *RatingHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	ratings, total, err := h.ratingService.List(c.Request.Context(), filtersFromQuery(c), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	if ratings == nil {
		ratings = []domain.Rating{}
	}
	RespondPaginated(c, ratings, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/ratings/:id
func (h *RatingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "rating id must be a valid UUID")
		return
	}
	rating, err := h.ratingService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rating)
}
