package app

import (
	"go-payroll/internal/attendance"
	"go-payroll/internal/identity"
	"go-payroll/internal/profile"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/salarycycle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	res *resources,
	jwtSecret string,
) error {
	// --- Repositories ---
	profileRepo := profile.NewRepository(res.gormDB)
	attendanceRepo := attendance.NewRepository(res.gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicies(), rbac.DefaultInheritance())
	if err != nil {
		return err
	}

	resolver := identity.NewJWTResolver(jwtSecret, profileRepo)

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo)
	salaryCycleService := newSalaryCycleService(res, zap.L())

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	rbacHandler := rbac.NewHandler(rbacService)
	salaryCycleHandler := salarycycle.NewHandlerWithRedis(salaryCycleService, res.rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, resolver, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, resolver)
		salarycycle.RegisterRoutes(api, salaryCycleHandler, resolver, rbacService, res.rdb)
	}

	return nil
}
