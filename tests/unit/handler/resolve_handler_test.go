package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nuamx/internal/handler"
	"nuamx/internal/service"
	"nuamx/mocks"
)

func newResolveHandler() (*handler.ResolveHandler, *mocks.MockResolveService) {
	mockSvc := new(mocks.MockResolveService)
	h := handler.NewResolveHandler(mockSvc)
	return h, mockSvc
}

func TestResolveHandler_DefaultsToDryRun(t *testing.T) {
	h, mockSvc := newResolveHandler()

	var captured *service.ResolveInput
	mockSvc.On("Resolve", mock.Anything, mock.AnythingOfType("*service.ResolveInput")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*service.ResolveInput)
		}).
		Return(&service.ResolveResult{DryRun: true}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/ratings/resolve", gin.H{})

	h.Resolve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.True(t, captured.DryRun)
	assert.False(t, captured.Overwrite)
}

func TestResolveHandler_ExplicitApply(t *testing.T) {
	h, mockSvc := newResolveHandler()

	var captured *service.ResolveInput
	mockSvc.On("Resolve", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*service.ResolveInput)
		}).
		Return(&service.ResolveResult{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/ratings/resolve", gin.H{
		"dry_run":   false,
		"overwrite": true,
		"limit":     100,
		"period":    "2024-03",
	})

	h.Resolve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.False(t, captured.DryRun)
	assert.True(t, captured.Overwrite)
	assert.Equal(t, 100, captured.Limit)
	assert.Equal(t, "2024-03", captured.Filters.Period)
}

func TestResolveHandler_InvalidBody(t *testing.T) {
	h, _ := newResolveHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/ratings/resolve", "not an object")

	h.Resolve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
