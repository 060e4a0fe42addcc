package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite-backend/internal/modules/auth"
)

// newTestRouter mounts the order routes behind a stub that injects the
// given principal, standing in for the real authenticator.
func newTestRouter(svc Service, principal *auth.Principal) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	NewHandler(svc, auth.NewMiddleware(nil, nil)).RegisterRoutes(router)
	return router
}

func TestPlaceOrderEndpoint(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(NewService(repo), userPrincipal(1))

	body := `{"items":[{"productId":10,"quantity":3}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var o Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.Equal(t, StatusProcessing, o.Status)
	assert.Equal(t, 2, repo.stock(10))
}

func TestPlaceOrderEndpointInsufficientStock(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(NewService(repo), userPrincipal(1))

	body := `{"items":[{"productId":10,"quantity":9}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 5, repo.stock(10))
}

func TestCancelEndpoint(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	router := newTestRouter(svc, userPrincipal(1))

	o, err := svc.Place(context.Background(), 1, PlaceOrderRequest{Items: []CartItem{{ProductID: 10, Quantity: 3}}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PATCH", "/orders/1/cancel", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var detail Detail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, StatusCanceled, detail.Status)
	assert.Equal(t, o.ID, detail.ID)
	assert.Equal(t, 5, repo.stock(10))
}

func TestGetOrderEndpointForbiddenForStranger(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	_, err := svc.Place(context.Background(), 1, PlaceOrderRequest{Items: []CartItem{{ProductID: 10, Quantity: 1}}})
	require.NoError(t, err)

	router := newTestRouter(svc, userPrincipal(2))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/orders/1", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	router = newTestRouter(svc, adminPrincipal())
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/orders/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCompleteEndpointRequiresAdmin(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	_, err := svc.Place(context.Background(), 1, PlaceOrderRequest{Items: []CartItem{{ProductID: 10, Quantity: 1}}})
	require.NoError(t, err)

	router := newTestRouter(svc, userPrincipal(1))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PATCH", "/orders/1/complete", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	router = newTestRouter(svc, adminPrincipal())
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PATCH", "/orders/1/complete", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderEndpointsRejectBadID(t *testing.T) {
	router := newTestRouter(NewService(seededRepo()), userPrincipal(1))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/orders/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
