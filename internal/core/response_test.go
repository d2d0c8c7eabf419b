package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaketime/woodsmoke/internal/types"
)

func TestJSONWritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/parks", nil)

	JSON(w, r, http.StatusOK, APIResponse{Data: map[string]string{"hello": "world"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"hello": "world"}, body["data"])
}

func TestJSONMarshalFailureFallsBack(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Channels cannot be marshalled.
	JSON(w, r, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body APIErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(types.ErrCodeInternalUnexpected), body.Error.Code)
}

func TestErrorWithAppError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(types.WithRequestID(r.Context(), "req-123"))

	appErr := types.NewAppError(types.ErrCodeNotFoundPark, "park \"narnia\" not found", nil).
		WithDetails(map[string]any{"id": "narnia"})
	Error(w, r, appErr)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body APIErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found_park", body.Error.Code)
	assert.Equal(t, "park \"narnia\" not found", body.Error.Message)
	assert.Equal(t, "req-123", body.Error.RequestID)
	assert.Equal(t, "narnia", body.Error.Details["id"])
}

func TestErrorWithWrappedAppError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	inner := types.NewAppError(types.ErrCodeUpstreamForecast, "weather API error: 503", nil)
	Error(w, r, fmt.Errorf("fetching forecast: %w", inner))

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body APIErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "upstream_forecast_unavailable", body.Error.Code)
}

func TestErrorWithGenericError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	Error(w, r, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body APIErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(types.ErrCodeInternalUnexpected), body.Error.Code)
	// Internal details never leak to clients.
	assert.Equal(t, "an unexpected error occurred", body.Error.Message)
}
