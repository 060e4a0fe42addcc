package auth

import (
	"net/http"
	"strings"

	"github.com/shoplite/shoplite-backend/internal/apperr"
	"github.com/shoplite/shoplite-backend/internal/httpx"
	"github.com/shoplite/shoplite-backend/internal/modules/user"
)

// Middleware resolves bearer tokens into principals and gates routes by
// role. Ownership checks live inside the engines, after the record loads.
type Middleware struct {
	userRepo user.Repository
	tokens   *TokenManager
}

func NewMiddleware(userRepo user.Repository, tokens *TokenManager) *Middleware {
	return &Middleware{userRepo: userRepo, tokens: tokens}
}

// Authenticator verifies the Authorization header, loads the user named by
// the token subject, and stores the principal in the request context.
func (m *Middleware) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			httpx.RespondError(w, r, apperr.Unauthorizedf("missing bearer token"))
			return
		}

		subject, err := m.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			httpx.RespondError(w, r, err)
			return
		}

		u, err := m.userRepo.GetByUsername(r.Context(), subject)
		if err != nil {
			httpx.RespondError(w, r, err)
			return
		}
		if u == nil {
			httpx.RespondError(w, r, apperr.Unauthorizedf("unknown token subject"))
			return
		}

		principal := &Principal{
			UserID:      u.ID,
			Username:    u.Username,
			Authorities: AuthoritiesFor(u),
		}
		next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(r.Context(), principal)))
	})
}

// RequireRole rejects requests whose principal lacks the role.
func (m *Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				httpx.RespondError(w, r, apperr.Unauthorizedf("authentication required"))
				return
			}
			if !p.HasRole(role) {
				httpx.RespondError(w, r, apperr.Forbiddenf("requires %s", role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
