package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lyftlogg/coach-backend/internal/http/response"
	pkgerrors "github.com/lyftlogg/coach-backend/internal/pkg/errors"
	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
)

// SharedSecretHeader carries the shared-secret token variant of auth.
const SharedSecretHeader = "X-Relay-Token"

// AuthMiddleware verifies callers in one of three modes: JWT bearer
// signature check when a signing secret is configured, shared-secret header
// compare when only a token is configured, and open mode when neither is.
type AuthMiddleware struct {
	log          *logger.Logger
	jwtSecret    string
	sharedSecret string
}

func NewAuthMiddleware(log *logger.Logger, jwtSecret, sharedSecret string) *AuthMiddleware {
	mwLog := log.With("middleware", "auth")
	if jwtSecret == "" && sharedSecret == "" {
		mwLog.Warn("No auth secret configured, relay runs in open mode")
	}
	return &AuthMiddleware{log: mwLog, jwtSecret: jwtSecret, sharedSecret: sharedSecret}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch {
		case am.jwtSecret != "":
			if err := am.verifyBearer(c); err != nil {
				response.AbortError(c, http.StatusUnauthorized, "unauthorized", err)
				return
			}
		case am.sharedSecret != "":
			given := c.GetHeader(SharedSecretHeader)
			if subtle.ConstantTimeCompare([]byte(given), []byte(am.sharedSecret)) != 1 {
				response.AbortError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("%w: invalid relay token", pkgerrors.ErrUnauthorized))
				return
			}
		}
		c.Next()
	}
}

func (am *AuthMiddleware) verifyBearer(c *gin.Context) error {
	tokenString := extractBearer(c)
	if tokenString == "" {
		return fmt.Errorf("%w: missing bearer token", pkgerrors.ErrUnauthorized)
	}
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(am.jwtSecret), nil
	})
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return fmt.Errorf("invalid or expired token")
	}
	return nil
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
