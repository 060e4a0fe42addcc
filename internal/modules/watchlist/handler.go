package watchlist

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shoplite/shoplite-backend/internal/apperr"
	"github.com/shoplite/shoplite-backend/internal/httpx"
	"github.com/shoplite/shoplite-backend/internal/modules/auth"
	"github.com/shoplite/shoplite-backend/internal/modules/catalog"
)

// Handler exposes watchlist HTTP endpoints.
type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	user := h.mw.RequireRole(auth.RoleUser)
	router.With(user).Get("/watchlist", h.list)
	router.With(user).Post("/watchlist/{productId}", h.add)
	router.With(user).Delete("/watchlist/{productId}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFromContext(r.Context())
	products, err := h.service.List(r.Context(), p.UserID)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, catalog.PublicViews(products))
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	p, _ := auth.PrincipalFromContext(r.Context())
	if err := h.service.Add(r.Context(), p.UserID, productID); err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, nil)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	p, _ := auth.PrincipalFromContext(r.Context())
	if err := h.service.Remove(r.Context(), p.UserID, productID); err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func productIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.Validationf("invalid product id")
	}
	return id, nil
}
