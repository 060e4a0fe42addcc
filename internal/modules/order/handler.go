package order

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shoplite/shoplite-backend/internal/apperr"
	"github.com/shoplite/shoplite-backend/internal/httpx"
	"github.com/shoplite/shoplite-backend/internal/modules/auth"
)

// Handler exposes order HTTP endpoints.
type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/orders", h.placeOrder)
	router.Get("/orders/all", h.listOrders)
	router.Get("/orders/{id}", h.getOrder)
	router.Patch("/orders/{id}/cancel", h.cancelOrder)
	router.With(h.mw.RequireRole(auth.RoleAdmin)).Patch("/orders/{id}/complete", h.completeOrder)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFromContext(r.Context())

	var req PlaceOrderRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	o, err := h.service.Place(r.Context(), p.UserID, req)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFromContext(r.Context())
	orders, err := h.service.ListForRequester(r.Context(), p)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	p, _ := auth.PrincipalFromContext(r.Context())
	detail, err := h.service.GetDetail(r.Context(), id, p)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, detail)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	p, _ := auth.PrincipalFromContext(r.Context())
	detail, err := h.service.Cancel(r.Context(), id, p)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, detail)
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	o, err := h.service.Complete(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, o)
}

func orderID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.Validationf("invalid order id")
	}
	return id, nil
}
