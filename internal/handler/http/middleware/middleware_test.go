package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const middlewareTestSecret = "test-secret-key-for-jwt"

func newProtectedRouter(jwtSvc jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtSvc.JWTAuth()))
		r.Use(AuthRequired(jwtSvc.JWTAuth()))

		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminOnly)
			r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r
}

func doRequest(t *testing.T, router *chi.Mux, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_MissingToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService(middlewareTestSecret, "1h")
	router := newProtectedRouter(jwtSvc)

	rec := doRequest(t, router, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService(middlewareTestSecret, "1h")
	router := newProtectedRouter(jwtSvc)

	token, _, err := jwtSvc.GenerateAccessToken("user-1", "user@example.com", "company-1", jwt.RoleEmployee)
	require.NoError(t, err)

	rec := doRequest(t, router, "/protected", token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	jwtSvc := jwt.NewJWTService(middlewareTestSecret, "1h")
	otherSvc := jwt.NewJWTService("a-different-secret", "1h")
	router := newProtectedRouter(jwtSvc)

	token, _, err := otherSvc.GenerateAccessToken("user-1", "user@example.com", "company-1", jwt.RoleEmployee)
	require.NoError(t, err)

	rec := doRequest(t, router, "/protected", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_EmployeeForbidden(t *testing.T) {
	jwtSvc := jwt.NewJWTService(middlewareTestSecret, "1h")
	router := newProtectedRouter(jwtSvc)

	token, _, err := jwtSvc.GenerateAccessToken("user-1", "user@example.com", "company-1", jwt.RoleEmployee)
	require.NoError(t, err)

	rec := doRequest(t, router, "/admin", token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	jwtSvc := jwt.NewJWTService(middlewareTestSecret, "1h")
	router := newProtectedRouter(jwtSvc)

	token, _, err := jwtSvc.GenerateAccessToken("user-1", "admin@example.com", "company-1", jwt.RoleAdmin)
	require.NoError(t, err)

	rec := doRequest(t, router, "/admin", token)

	assert.Equal(t, http.StatusOK, rec.Code)
}
