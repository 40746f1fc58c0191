package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nuamx/internal/domain"
	"nuamx/internal/handler"
	"nuamx/internal/ingest"
	"nuamx/internal/service"
	"nuamx/mocks"
)

func newBatchHandler() (*handler.BatchHandler, *mocks.MockBatchService) {
	mockSvc := new(mocks.MockBatchService)
	h := handler.NewBatchHandler(mockSvc)
	return h, mockSvc
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBatchHandler_Preview_Success(t *testing.T) {
	h, mockSvc := newBatchHandler()

	mockSvc.On("Preview", mock.Anything, mock.AnythingOfType("*service.BatchInput")).Return(&service.BatchPreview{
		Total:       1,
		Committable: 1,
		Currency:    "CLP",
		Rows:        []domain.ParsedRow{{RUT: "1-9", Errors: []string{}}},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/ratings/batch/preview", gin.H{
		"records": []map[string]string{{"RUT": "1-9"}},
	})

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestBatchHandler_Preview_MissingHeaders(t *testing.T) {
	h, mockSvc := newBatchHandler()

	mockSvc.On("Preview", mock.Anything, mock.Anything).
		Return(nil, &ingest.MissingHeadersError{Missing: []string{"rut", "status"}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/ratings/batch/preview", gin.H{
		"records": []map[string]string{{"RUT": "1-9"}},
	})

	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "MISSING_HEADERS", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "missing headers:")
}

func TestBatchHandler_Preview_InvalidBody(t *testing.T) {
	h, _ := newBatchHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ratings/batch/preview", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchHandler_Commit_Success(t *testing.T) {
	h, mockSvc := newBatchHandler()

	mockSvc.On("Commit", mock.Anything, mock.Anything).Return(&service.CommitResult{Created: 2}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/ratings/batch/commit", gin.H{
		"records": []map[string]string{{"RUT": "1-9"}},
	})

	h.Commit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBatchHandler_Commit_NoCommittableRowsStillReturnsBreakdown(t *testing.T) {
	h, mockSvc := newBatchHandler()

	mockSvc.On("Commit", mock.Anything, mock.Anything).Return(&service.CommitResult{
		Failures: []service.RowFailure{{Line: 1, Errors: []string{"rut is required"}}},
	}, domain.ErrNoCommittableRows)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/ratings/batch/commit", gin.H{
		"records": []map[string]string{{"RUT": ""}},
	})

	h.Commit(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Equal(t, "NO_COMMITTABLE_ROWS", resp.Error.Code)
}
