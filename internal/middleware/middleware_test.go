package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekaya/folio-gateway/internal/pkg/apperrors"
	"github.com/emrekaya/folio-gateway/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signedToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	claims := &auth.Claims{
		UserID: "u1",
		Email:  "u1@example.edu",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-key"))
	require.NoError(t, err)
	return token
}

func protectedRouter(roles ...string) *gin.Engine {
	router := gin.New()
	group := router.Group("/", AuthRequired())
	if len(roles) > 0 {
		group.Use(RoleRequired(roles...))
	}
	group.GET("/resource", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(CtxRole), "token": Token(c)})
	})
	return router
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	router := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "student", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"student"`)
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	router := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	router := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "student", time.Now().Add(-time.Hour)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestRoleRequired(t *testing.T) {
	router := protectedRouter("admin", "superadmin")

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "admin", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "student", time.Now().Add(time.Hour)))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleAPIErrorUpstreamPassthrough(t *testing.T) {
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		HandleAPIError(c, apperrors.NewUpstreamError(http.StatusConflict, "College already exists"), "Error creating college")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "College already exists")
}

func TestHandleAPIErrorUpstreamFallbackMessage(t *testing.T) {
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		HandleAPIError(c, apperrors.NewUpstreamError(http.StatusBadRequest, ""), "Error deleting user")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error deleting user")
}

func TestHandleAPIErrorClampsBogusUpstreamStatus(t *testing.T) {
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		HandleAPIError(c, apperrors.NewUpstreamError(http.StatusSeeOther, "odd"), "fallback")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandleAPIErrorMapsDomainErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"feedback required", apperrors.ErrFeedbackRequired, http.StatusBadRequest},
		{"unknown section", apperrors.ErrUnknownSection, http.StatusNotFound},
		{"not a faculty", apperrors.ErrNotAFaculty, http.StatusConflict},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"validation", apperrors.NewValidationError("missing required fields: title"), http.StatusBadRequest},
		{"unknown", assertionError{}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/x", func(c *gin.Context) {
				HandleAPIError(c, tc.err, "fallback")
			})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

type assertionError struct{}

func (assertionError) Error() string { return "boom" }
