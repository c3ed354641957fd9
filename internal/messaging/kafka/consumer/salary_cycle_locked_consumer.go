package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/events"
	"go-payroll/internal/salarycycle"
	"go-payroll/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// CycleViewRefresher reloads the cached projection of a locked cycle.
type CycleViewRefresher interface {
	RefreshCycleView(ctx context.Context, year, month int) (salarycycle.CycleViewResponse, error)
}

// SalaryCycleLockedHandler warms the cycle view cache and records an audit
// entry for every locked cycle.
func SalaryCycleLockedHandler(
	refresher CycleViewRefresher,
	audit bootstrap.AuditLogger,
	log *zap.Logger,
) HandlerFunc {
	return func(ctx context.Context, msg kafkago.Message) Outcome {
		var event events.SalaryCycleLockedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary cycle locked event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			return Commit
		}

		ctx = contextutil.WithRequestID(ctx, event.RequestID)
		ctx = contextutil.WithUserID(ctx, event.LockedBy)

		view, err := refresher.RefreshCycleView(ctx, event.Year, event.Month)
		if err != nil {
			log.Error("warm cycle view failed",
				zap.String("cycle_id", event.CycleID),
				zap.Error(err),
			)
			return Retry
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "SALARY_CYCLE_LOCKED",
			Message: fmt.Sprintf("Salary cycle %d-%02d locked", event.Year, event.Month),
			Meta: map[string]any{
				"cycle_id": event.CycleID,
				"inserted": event.Inserted,
				"earnings": len(view.Earnings),
			},
		})

		log.Info("salary cycle locked event handled",
			zap.String("cycle_id", event.CycleID),
			zap.String("request_id", event.RequestID),
		)
		return Commit
	}
}

// ConsumeSalaryCycleLocked runs SalaryCycleLockedHandler over reader.
func ConsumeSalaryCycleLocked(
	ctx context.Context,
	reader MessageReader,
	refresher CycleViewRefresher,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_cycle_locked")
	Run(ctx, reader, SalaryCycleLockedHandler(refresher, audit, log), log)
}
