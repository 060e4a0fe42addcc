package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shoplite/shoplite-backend/internal/httpx"
)

// Handler exposes the public signup endpoint.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/signup", h.signup)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	u, err := h.service.Register(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, u)
}
