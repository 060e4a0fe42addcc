package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shoplite/shoplite-backend/internal/apperr"
	"github.com/shoplite/shoplite-backend/internal/httpx"
	"github.com/shoplite/shoplite-backend/internal/modules/auth"
)

// Handler exposes catalog HTTP endpoints. Admins get the full product
// shape; everyone else gets the public view.
type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/products/all", h.listProducts)
	router.Get("/products/{id}", h.getProduct)
	router.With(h.mw.RequireRole(auth.RoleAdmin)).Post("/products", h.addProduct)
	router.With(h.mw.RequireRole(auth.RoleAdmin)).Patch("/products/{id}", h.patchProduct)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFromContext(r.Context())
	products, err := h.service.List(r.Context(), p.IsAdmin())
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	if p.IsAdmin() {
		httpx.Respond(w, http.StatusOK, products)
		return
	}
	httpx.Respond(w, http.StatusOK, PublicViews(products))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	p, _ := auth.PrincipalFromContext(r.Context())
	product, err := h.service.Get(r.Context(), id, p.IsAdmin())
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	if p.IsAdmin() {
		httpx.Respond(w, http.StatusOK, product)
		return
	}
	httpx.Respond(w, http.StatusOK, product.PublicView())
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	product, err := h.service.Add(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, product)
}

func (h *Handler) patchProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	var req UpdateProductRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	product, err := h.service.Patch(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, product)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.Validationf("invalid product id")
	}
	return id, nil
}
