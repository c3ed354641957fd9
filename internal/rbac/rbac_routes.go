package rbac

import (
	"go-payroll/internal/identity"
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver identity.Resolver) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(resolver))
	{
		group.GET("/me", handler.Me)
	}
}
