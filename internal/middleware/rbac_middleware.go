package middleware

import (
	"go-payroll/internal/domain"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by anything that can enforce a domain.EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize must run after AuthMiddleware.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok {
			e := apperror.ErrUnauthorized
			response.AbortError(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}

		roleStr, _ := role.(string)
		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     roleStr,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed", zap.Error(err))
			e := apperror.ErrInternal
			response.AbortError(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}

		if !allowed {
			e := apperror.ErrForbidden
			response.AbortError(c, e.HTTPStatus, e.Code, e.Message, map[string]string{
				"required": resource + ":" + action,
			})
			return
		}
		c.Next()
	}
}
