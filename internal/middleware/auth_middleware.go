package middleware

import (
	"strings"

	"go-payroll/internal/identity"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// bearerToken accepts any casing of the "Bearer" scheme.
func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware resolves the bearer credential and stores the caller in both
// the gin context and the request context.
func AuthMiddleware(resolver identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				token = cookie
			}
		}

		if token == "" {
			e := apperror.ErrMissingCredential
			response.AbortError(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}

		id, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			if httpErr.Status >= 500 {
				contextutil.GetLogger(c.Request.Context(), zap.L()).Error("resolve credential failed", zap.Error(err))
			}
			response.AbortError(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			return
		}
		if id == nil || id.UserID == "" {
			e := apperror.ErrUnauthorized
			response.AbortError(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}

		c.Set(ContextUserID, id.UserID)
		c.Set(ContextRole, id.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), id.UserID)
		ctx = contextutil.WithRole(ctx, id.Role)
		logger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", id.UserID))
		ctx = contextutil.WithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
