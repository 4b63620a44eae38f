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
)

func newTestRouter(t *testing.T, a *Authenticator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", a.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func TestNewAuthenticator_RequiresSecret(t *testing.T) {
	_, err := NewAuthenticator("  ")
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestRequireAuth(t *testing.T) {
	a, err := NewAuthenticator("s3cret")
	require.NoError(t, err)
	r := newTestRouter(t, a)

	valid, err := a.IssueToken("user-1", time.Hour)
	require.NoError(t, err)
	expired, err := a.IssueToken("user-1", -time.Minute)
	require.NoError(t, err)
	other, err := NewAuthenticator("other")
	require.NoError(t, err)
	foreign, err := other.IssueToken("user-1", time.Hour)
	require.NoError(t, err)
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "user-1"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"valid", "Bearer " + valid, http.StatusOK, "user-1"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, ""},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, ""},
		{"no expiry", "Bearer " + noExp, http.StatusUnauthorized, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				assert.Equal(t, tc.body, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
			}
		})
	}
}

func TestParseToken_FallsBackToSubject(t *testing.T) {
	a, err := NewAuthenticator("s3cret")
	require.NoError(t, err)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-9",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	id, err := a.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-9", id)
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	a, err := NewAuthenticator("s3cret")
	require.NoError(t, err)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{UserID: "user-1", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = a.ParseToken(tok)
	assert.Error(t, err)
}
