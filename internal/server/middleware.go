package server

import (
	"net/http"
	"strings"
	"time"

	"autobid-server/internal/aucterrors"
	"autobid-server/internal/auth"
	"autobid-server/services/auction/handler"
	"autobid-server/services/auction/helpers"
	"autobid-server/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and a
// generated request id
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := utils.GenerateID()
	c.Header("X-Request-Id", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// CORSMiddleware reflects allowed origins with credentials enabled so the
// browser client on another origin can send the session cookie
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequireSession resolves the principal from the session cookie (or a
// bearer header) and aborts with 401 otherwise. A missing credential and an
// invalid one answer identically.
func RequireSession(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(handler.SessionCookieName)
		if err != nil || token == "" {
			token = bearerToken(c)
		}

		principal, err := sessions.Verify(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, aucterrors.ErrUnauthenticated, "unauthorized access")
			c.Abort()
			return
		}

		c.Set(helpers.PrincipalContextKey, principal)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
