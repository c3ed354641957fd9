package salarycycle

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/events"
	"go-payroll/internal/holiday"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/profile"
	salarycycleerrors "go-payroll/internal/salarycycle/errors"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/period"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	myEarningsLimit = 12
	myPaymentsLimit = 50
)

//go:generate mockgen -source=salary_cycle_service.go -destination=mock/salary_cycle_service_mock.go -package=mock
type Service interface {
	// Lock closes (year, month) and writes one earnings row per eligible
	// employee. The cycle, its earnings and the locked event commit together.
	Lock(ctx context.Context, adminID string, req LockRequest) (LockResponse, error)
	GetCycleView(ctx context.Context, q CycleQuery) (CycleViewResponse, error)
	// RefreshCycleView drops the cached view and loads it again.
	RefreshCycleView(ctx context.Context, year, month int) (CycleViewResponse, error)
	AddPayment(ctx context.Context, actorID string, req CreatePaymentRequest) (PaymentResponse, error)
	GetMySalary(ctx context.Context, employeeID string) (MySalaryResponse, error)
}

// Sources are the read-only stores the lock computes from.
type Sources struct {
	Profiles   profile.Repository
	Holidays   holiday.Repository
	Attendance attendance.Repository
}

type service struct {
	db      *sql.DB
	repo    Repository
	sources Sources
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	sources Sources,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salarycycle.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarycycle.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		sources: sources,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func validatePeriod(year, month int) error {
	if year == 0 || month == 0 {
		return salarycycleerrors.ErrMissingParameters
	}
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return salarycycleerrors.ErrInvalidPeriod
	}
	return nil
}

func (s *service) Lock(ctx context.Context, adminID string, req LockRequest) (LockResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := s.logger.With(
		zap.String("request_id", rid),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
	)
	log.Debug("lock salary cycle requested", zap.String("admin_id", adminID))

	if err := validatePeriod(req.Year, req.Month); err != nil {
		return LockResponse{}, err
	}
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return LockResponse{}, salarycycleerrors.ErrInvalidAdmin
	}

	p := period.Month(req.Year, time.Month(req.Month))

	pending, err := s.sources.Attendance.CountPendingInPeriod(ctx, p)
	if err != nil {
		log.Error("count pending attendance failed", zap.Error(err))
		return LockResponse{}, err
	}
	if pending > 0 {
		log.Warn("lock rejected, attendance pending approval", zap.Int64("count", pending))
		return LockResponse{}, salarycycleerrors.PendingApprovals(pending)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("lock begin tx failed", zap.Error(err))
		return LockResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cycle := &SalaryCycle{
		ID:       uuid.New(),
		Year:     req.Year,
		Month:    req.Month,
		LockedBy: adminUUID,
		LockedAt: time.Now().UTC(),
	}
	if err := qtx.CreateCycle(ctx, cycle); err != nil {
		log.Error("create salary cycle failed", zap.Error(err))
		return LockResponse{}, mapRepositoryError(err)
	}

	earnings, err := s.computeEarnings(ctx, cycle, p)
	if err != nil {
		log.Warn("compute earnings aborted", zap.String("cycle_id", cycle.ID.String()), zap.Error(err))
		return LockResponse{}, err
	}

	if len(earnings) > 0 {
		if err := qtx.CreateEarnings(ctx, earnings); err != nil {
			log.Error("persist earnings failed", zap.Int("rows", len(earnings)), zap.Error(err))
			return LockResponse{}, mapRepositoryError(err)
		}
	}

	if s.outbox != nil {
		if err := s.enqueueLocked(ctx, tx, cycle, len(earnings)); err != nil {
			log.Error("lock outbox persist failed", zap.Error(err))
			return LockResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("lock commit failed", zap.Error(err))
		return LockResponse{}, err
	}

	s.invalidateView(ctx, req.Year, req.Month)

	log.Info("salary cycle locked",
		zap.String("cycle_id", cycle.ID.String()),
		zap.Int("inserted", len(earnings)),
	)

	return LockResponse{CycleID: cycle.ID.String(), Inserted: len(earnings)}, nil
}

// computeEarnings runs one employee at a time. Employees with no eligible day
// are skipped.
func (s *service) computeEarnings(ctx context.Context, cycle *SalaryCycle, p period.Period) ([]SalaryEarning, error) {
	holidayRows, err := s.sources.Holidays.FindInPeriod(ctx, p)
	if err != nil {
		return nil, err
	}
	holidays := holiday.NewSet(holidayRows)

	employees, err := s.sources.Profiles.FindSalariedEmployees(ctx)
	if err != nil {
		return nil, err
	}

	earnings := make([]SalaryEarning, 0, len(employees))
	for _, emp := range employees {
		if emp.MonthlySalary == nil {
			continue
		}

		cal := BuildCalendar(p, emp.JoinDate, holidays)
		days := cal.TotalEligibleWorkingDays()
		if days == 0 {
			s.logger.Debug("employee has no eligible days",
				zap.String("employee_id", emp.ID.String()),
				zap.Time("join_date", emp.JoinDate),
			)
			continue
		}

		rate := PerDayRate(*emp.MonthlySalary, days)

		rows, err := s.sources.Attendance.FindByEmployeeInPeriod(ctx, emp.ID.String(), p)
		if err != nil {
			return nil, err
		}

		gross, err := ComputeGross(cal, rate, attendance.NewIndex(rows), emp.ID.String())
		if err != nil {
			return nil, err
		}

		earnings = append(earnings, SalaryEarning{
			ID:                       uuid.New(),
			CycleID:                  cycle.ID,
			EmployeeID:               emp.ID,
			MonthlySalary:            *emp.MonthlySalary,
			TotalEligibleWorkingDays: days,
			PerDaySalary:             rate,
			GrossEarned:              gross,
		})
	}
	return earnings, nil
}

func (s *service) enqueueLocked(ctx context.Context, tx *sql.Tx, cycle *SalaryCycle, inserted int) error {
	rid := contextutil.GetRequestID(ctx)
	event := events.SalaryCycleLockedEvent{
		EventType:  events.SalaryCycleLockedEventType,
		RequestID:  rid,
		CycleID:    cycle.ID.String(),
		Year:       cycle.Year,
		Month:      cycle.Month,
		LockedBy:   cycle.LockedBy.String(),
		Inserted:   inserted,
		OccurredAt: cycle.LockedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "salary_cycle",
		AggregateID:   cycle.ID.String(),
		EventType:     event.EventType,
		Topic:         events.SalaryCycleLockedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetCycleView(ctx context.Context, q CycleQuery) (CycleViewResponse, error) {
	if err := validatePeriod(q.Year, q.Month); err != nil {
		return CycleViewResponse{}, err
	}

	cacheKey := GetCycleViewKey(q.Year, q.Month)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp CycleViewResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.loadCycleView(ctx, q.Year, q.Month)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, cycleViewTTL).Err(); err != nil {
					s.logger.Warn("cache cycle view failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get cycle view failed",
			zap.Int("year", q.Year),
			zap.Int("month", q.Month),
			zap.Error(err),
		)
		return CycleViewResponse{}, err
	}

	return v.(CycleViewResponse), nil
}

func (s *service) RefreshCycleView(ctx context.Context, year, month int) (CycleViewResponse, error) {
	s.invalidateView(ctx, year, month)
	return s.GetCycleView(ctx, CycleQuery{Year: year, Month: month})
}

func (s *service) loadCycleView(ctx context.Context, year, month int) (CycleViewResponse, error) {
	resp := CycleViewResponse{
		Earnings: []EarningResponse{},
		Payments: []PaymentResponse{},
	}

	cycle, err := s.repo.FindCycleByPeriod(ctx, year, month)
	if err != nil {
		if errors.Is(mapRepositoryError(err), salarycycleerrors.ErrCycleNotFound) {
			return resp, nil
		}
		return CycleViewResponse{}, err
	}

	earnings, err := s.repo.FindEarningsByCycle(ctx, cycle.ID.String())
	if err != nil {
		return CycleViewResponse{}, err
	}
	payments, err := s.repo.FindPaymentsByCycle(ctx, cycle.ID.String())
	if err != nil {
		return CycleViewResponse{}, err
	}

	c := mapCycleToResponse(*cycle)
	resp.Cycle = &c
	resp.Earnings = mapEarningsToResponse(earnings)
	resp.Payments = mapPaymentsToResponse(payments)
	return resp, nil
}

func (s *service) invalidateView(ctx context.Context, year, month int) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetCycleViewKey(year, month)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate cycle view cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func (s *service) AddPayment(ctx context.Context, actorID string, req CreatePaymentRequest) (PaymentResponse, error) {
	s.logger.Debug("add salary payment requested",
		zap.String("cycle_id", req.CycleID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("amount", req.Amount.String()),
	)

	if !req.Amount.IsPositive() {
		return PaymentResponse{}, salarycycleerrors.ErrInvalidAmount
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PaymentResponse{}, salarycycleerrors.ErrInvalidEmployee
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PaymentResponse{}, salarycycleerrors.ErrInvalidAdmin
	}
	if _, err := uuid.Parse(req.CycleID); err != nil {
		return PaymentResponse{}, salarycycleerrors.ErrCycleNotFound
	}

	cycle, err := s.repo.FindCycleByID(ctx, req.CycleID)
	if err != nil {
		s.logger.Warn("add payment cycle lookup failed", zap.String("cycle_id", req.CycleID), zap.Error(err))
		return PaymentResponse{}, mapRepositoryError(err)
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != nil && !req.PaidAt.IsZero() {
		paidAt = req.PaidAt.UTC()
	}

	payment := &SalaryPayment{
		ID:         uuid.New(),
		CycleID:    cycle.ID,
		EmployeeID: employeeUUID,
		Amount:     req.Amount.Round(grossScale),
		Note:       req.Note,
		PaidAt:     paidAt,
		CreatedBy:  actorUUID,
	}
	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		s.logger.Error("add payment persist failed", zap.Error(err))
		return PaymentResponse{}, mapRepositoryError(err)
	}

	s.invalidateView(ctx, cycle.Year, cycle.Month)

	s.logger.Info("salary payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("cycle_id", cycle.ID.String()),
	)
	return mapPaymentToResponse(*payment), nil
}

func (s *service) GetMySalary(ctx context.Context, employeeID string) (MySalaryResponse, error) {
	earnings, err := s.repo.FindEarningsByEmployee(ctx, employeeID, myEarningsLimit)
	if err != nil {
		s.logger.Error("get own earnings failed", zap.String("employee_id", employeeID), zap.Error(err))
		return MySalaryResponse{}, err
	}
	payments, err := s.repo.FindPaymentsByEmployee(ctx, employeeID, myPaymentsLimit)
	if err != nil {
		s.logger.Error("get own payments failed", zap.String("employee_id", employeeID), zap.Error(err))
		return MySalaryResponse{}, err
	}

	return MySalaryResponse{
		Earnings: mapEarningsToResponse(earnings),
		Payments: mapPaymentsToResponse(payments),
	}, nil
}

func mapCycleToResponse(c SalaryCycle) CycleResponse {
	return CycleResponse{
		ID:       c.ID.String(),
		Year:     c.Year,
		Month:    c.Month,
		LockedBy: c.LockedBy.String(),
		LockedAt: c.LockedAt,
	}
}

func mapEarningsToResponse(rows []SalaryEarning) []EarningResponse {
	out := make([]EarningResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, EarningResponse{
			ID:                       e.ID.String(),
			CycleID:                  e.CycleID.String(),
			EmployeeID:               e.EmployeeID.String(),
			MonthlySalary:            e.MonthlySalary,
			TotalEligibleWorkingDays: e.TotalEligibleWorkingDays,
			PerDaySalary:             e.PerDaySalary,
			GrossEarned:              e.GrossEarned,
			CreatedAt:                e.CreatedAt,
		})
	}
	return out
}

func mapPaymentToResponse(p SalaryPayment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID.String(),
		CycleID:    p.CycleID.String(),
		EmployeeID: p.EmployeeID.String(),
		Amount:     p.Amount,
		Note:       p.Note,
		PaidAt:     p.PaidAt,
		CreatedBy:  p.CreatedBy.String(),
	}
}

func mapPaymentsToResponse(rows []SalaryPayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, mapPaymentToResponse(p))
	}
	return out
}
