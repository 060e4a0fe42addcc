package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite-backend/internal/apperr"
)

func TestRespondErrorMapsKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validationf("bad input"), http.StatusBadRequest},
		{"unauthorized", apperr.Unauthorizedf("no token"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbiddenf("not yours"), http.StatusForbidden},
		{"not found", apperr.NotFoundf("missing"), http.StatusNotFound},
		{"conflict", apperr.Conflictf("taken"), http.StatusConflict},
		{"insufficient stock", apperr.InsufficientStock(1, 2, 3), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/orders/1", nil)
			RespondError(rec, req, tt.err)

			assert.Equal(t, tt.want, rec.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Status)
			assert.Equal(t, http.StatusText(tt.want), body.Error)
			assert.Equal(t, "/orders/1", body.Path)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/orders/1", nil)
	RespondError(rec, req, errors.New("pq: connection refused"))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body.Message, "connection refused")
}

func TestInsufficientStockMessage(t *testing.T) {
	err := apperr.InsufficientStock(7, 2, 5)
	assert.Equal(t, "not enough stock for product 7: available 2, requested 5", err.Error())
}
