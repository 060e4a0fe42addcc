package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite-backend/internal/modules/user"
)

type fakeUserRepo struct {
	byUsername map[string]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return f.byUsername[username], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func testMiddleware() (*Middleware, *TokenManager) {
	repo := &fakeUserRepo{byUsername: map[string]*user.User{
		"alice": {ID: 1, Username: "alice", Email: "a@x", IsAdmin: false},
		"root":  {ID: 2, Username: "root", Email: "r@x", IsAdmin: true},
	}}
	tokens := NewTokenManager(testSecret, time.Hour)
	return NewMiddleware(repo, tokens), tokens
}

func principalEcho(t *testing.T, captured **Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		require.True(t, ok)
		*captured = p
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorMissingToken(t *testing.T) {
	mw, _ := testMiddleware()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/orders/all", nil)

	mw.Authenticator(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorBadToken(t *testing.T) {
	mw, _ := testMiddleware()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/orders/all", nil)
	req.Header.Set("Authorization", "Bearer bogus")

	mw.Authenticator(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorUnknownSubject(t *testing.T) {
	mw, tokens := testMiddleware()
	token, err := tokens.Issue("ghost")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/orders/all", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	mw.Authenticator(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorResolvesRoles(t *testing.T) {
	mw, tokens := testMiddleware()

	tests := []struct {
		username string
		admin    bool
	}{
		{"alice", false},
		{"root", true},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			token, err := tokens.Issue(tt.username)
			require.NoError(t, err)

			var captured *Principal
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/orders/all", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			mw.Authenticator(principalEcho(t, &captured)).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.username, captured.Username)
			assert.True(t, captured.HasRole(RoleUser))
			assert.Equal(t, tt.admin, captured.IsAdmin())
		})
	}
}

func TestRequireRole(t *testing.T) {
	mw, _ := testMiddleware()
	gate := mw.RequireRole(RoleAdmin)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// User principal lacks the admin role.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products/popular/3", nil)
	ctx := ContextWithPrincipal(req.Context(), &Principal{
		UserID: 1, Username: "alice", Authorities: []string{RoleUser},
	})
	gate(next).ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin principal passes.
	rec = httptest.NewRecorder()
	ctx = ContextWithPrincipal(req.Context(), &Principal{
		UserID: 2, Username: "root", Authorities: []string{RoleUser, RoleAdmin},
	})
	gate(next).ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	// No principal at all.
	rec = httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
