package report

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shoplite/shoplite-backend/internal/apperr"
	"github.com/shoplite/shoplite-backend/internal/httpx"
	"github.com/shoplite/shoplite-backend/internal/modules/auth"
)

// Handler exposes the reporting endpoints under the products path. The
// per-user reports serialize the public product view; the admin reports
// return full products.
type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.With(h.mw.RequireRole(auth.RoleUser)).Get("/products/frequent/{n}", h.frequent)
	router.With(h.mw.RequireRole(auth.RoleUser)).Get("/products/recent/{n}", h.recent)
	router.With(h.mw.RequireRole(auth.RoleAdmin)).Get("/products/popular/{n}", h.popular)
	router.With(h.mw.RequireRole(auth.RoleAdmin)).Get("/products/profit/{n}", h.profitable)
	router.With(h.mw.RequireRole(auth.RoleAdmin)).Get("/products/sold/total", h.totalSold)
}

func (h *Handler) frequent(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	p, _ := auth.PrincipalFromContext(r.Context())
	rowsFull, err := h.service.TopFrequent(r.Context(), p.UserID, limit)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	rows := make([]publicProductCount, 0, len(rowsFull))
	for _, row := range rowsFull {
		rows = append(rows, publicProductCount{
			Product:       row.Product.PublicView(),
			TotalQuantity: row.TotalQuantity,
		})
	}
	httpx.Respond(w, http.StatusOK, rows)
}

func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	p, _ := auth.PrincipalFromContext(r.Context())
	rowsFull, err := h.service.TopRecent(r.Context(), p.UserID, limit)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	rows := make([]publicProductRecency, 0, len(rowsFull))
	for _, row := range rowsFull {
		rows = append(rows, publicProductRecency{
			Product:       row.Product.PublicView(),
			LastOrderedAt: row.LastOrderedAt,
		})
	}
	httpx.Respond(w, http.StatusOK, rows)
}

func (h *Handler) popular(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	rows, err := h.service.TopPopular(r.Context(), limit)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, rows)
}

func (h *Handler) profitable(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	rows, err := h.service.TopProfitable(r.Context(), limit)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, rows)
}

func (h *Handler) totalSold(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalSold(r.Context())
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]int64{"totalSold": total})
}

func limitParam(r *http.Request) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n < 1 {
		return 0, apperr.Validationf("limit must be a positive integer")
	}
	return n, nil
}
