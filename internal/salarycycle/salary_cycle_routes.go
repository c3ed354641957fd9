package salarycycle

import (
	"go-payroll/internal/identity"
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Lock is expensive; one call per user every ten seconds with a small burst.
var lockRateLimit = rate.Limit(0.1)

const lockBurst = 3

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	resolver identity.Resolver,
	rbacService middleware.RBACService,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	cycles := r.Group("/salary-cycles")
	cycles.Use(middleware.AuthMiddleware(resolver))
	{
		lock := []gin.HandlerFunc{
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryCycle, rbac.ActionLock),
			middleware.RateLimitByUser(lockRateLimit, lockBurst),
		}
		if redisClient != nil {
			lock = append(lock, middleware.Idempotency(redisClient))
		}
		cycles.POST("/lock", append(lock, handler.Lock)...)

		cycles.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryCycle, rbac.ActionRead), handler.GetCycleView)
		cycles.GET("/me", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryCycle, rbac.ActionReadOwn), handler.GetMySalary)
		cycles.POST("/payments", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryPayment, rbac.ActionCreate), handler.AddPayment)
	}
}
