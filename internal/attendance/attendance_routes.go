package attendance

import (
	"go-payroll/internal/identity"
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver identity.Resolver, rbacService middleware.RBACService) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware(resolver))
	{
		attendances.GET("/pending", middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionReadPending), h.GetPending)
	}
}
