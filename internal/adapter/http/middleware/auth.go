package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"ikhaya/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "auth.user_id"

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Claims identifies the caller. UserID wins over the registered subject when both are set.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) subject() string {
	if v := strings.TrimSpace(c.UserID); v != "" {
		return v
	}
	return strings.TrimSpace(c.Subject)
}

// Authenticator validates HS256 bearer tokens signed with a shared secret.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(secret string) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingJWTSecret
	}
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}, nil
}

// IssueToken signs a token for userID. Used by tests and local tooling.
func (a *Authenticator) IssueToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// ParseToken validates tokenStr and returns the caller id.
func (a *Authenticator) ParseToken(tokenStr string) (string, error) {
	tok, err := a.parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return "", errors.New("invalid token claims")
	}
	id := claims.subject()
	if id == "" {
		return "", errors.New("token has no subject")
	}
	return id, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the caller id on the context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthenticated(c, "missing bearer token")
			return
		}
		userID, err := a.ParseToken(strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
		if err != nil {
			log.Printf("[auth][middleware] rejected path=%s err=%v", c.FullPath(), err)
			abortUnauthenticated(c, "invalid token")
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated caller, empty when RequireAuth did not run.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// SetUserID is what RequireAuth does after a successful check. Handler tests use it directly.
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

func abortUnauthenticated(c *gin.Context, reason string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required: "+reason, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
