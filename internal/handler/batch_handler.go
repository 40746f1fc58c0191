package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nuamx/internal/domain"
	"nuamx/internal/service"
)

// maxWorkbookBytes caps uploaded workbook size (10 MiB).
const maxWorkbookBytes = 10 << 20

// BatchHandler handles batch preview and commit endpoints.
type BatchHandler struct {
	batchService service.BatchService
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(batchService service.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// batchJSONRequest is the structured-records request body.
type batchJSONRequest struct {
	Records         []map[string]string `json:"records"`
	DefaultCurrency string              `json:"default_currency"`
}

// Preview handles POST /api/v1/ratings/batch/preview
func (h *BatchHandler) Preview(c *gin.Context) {
	input, ok := h.readBatchInput(c)
	if !ok {
		return
	}
	preview, err := h.batchService.Preview(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, preview)
}

// Commit handles POST /api/v1/ratings/batch/commit
func (h *BatchHandler) Commit(c *gin.Context) {
	input, ok := h.readBatchInput(c)
	if !ok {
		return
	}
	result, err := h.batchService.Commit(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrNoCommittableRows) && result != nil {
			// The caller still gets the row-by-row breakdown.
			c.JSON(http.StatusUnprocessableEntity, APIResponse{
				Success: false,
				Data:    result,
				Error:   &APIError{Code: "NO_COMMITTABLE_ROWS", Message: "every row in the batch failed validation"},
			})
			return
		}
		HandleError(c, err)
		return
	}
	RespondCreated(c, result)
}

// readBatchInput accepts either a multipart upload with a "file" workbook
// or a JSON body of records. On failure the error response is already
// written and ok is false.
func (h *BatchHandler) readBatchInput(c *gin.Context) (*service.BatchInput, bool) {
	contentType := c.GetHeader("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart uploads require a 'file' field")
			return nil, false
		}
		if fileHeader.Size > maxWorkbookBytes {
			RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "workbook exceeds maximum allowed size")
			return nil, false
		}
		f, err := fileHeader.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
			return nil, false
		}
		defer func() { _ = f.Close() }()

		body, err := io.ReadAll(io.LimitReader(f, maxWorkbookBytes))
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
			return nil, false
		}
		return &service.BatchInput{
			Workbook:        body,
			Filename:        fileHeader.Filename,
			DefaultCurrency: c.PostForm("default_currency"),
		}, true
	}

	var req batchJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON with a 'records' array")
		return nil, false
	}
	return &service.BatchInput{
		Records:         req.Records,
		DefaultCurrency: req.DefaultCurrency,
	}, true
}
