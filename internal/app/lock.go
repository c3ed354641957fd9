package app

import (
	"context"

	"go-payroll/internal/config"
	"go-payroll/internal/salarycycle"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LockCycle runs the lock outside HTTP. The caller is trusted to be an admin.
func LockCycle(ctx context.Context, cfg config.Config, adminID string, year, month int) (salarycycle.LockResponse, error) {
	logger := zap.L().Named("app.lockcycle")

	res, err := connect(cfg, true)
	if err != nil {
		return salarycycle.LockResponse{}, err
	}
	defer res.Close()

	ctx = contextutil.WithRequestID(ctx, "cli-"+uuid.NewString())
	ctx = contextutil.WithUserID(ctx, adminID)

	return newSalaryCycleService(res, logger).Lock(ctx, adminID, salarycycle.LockRequest{
		Year:  year,
		Month: month,
	})
}
