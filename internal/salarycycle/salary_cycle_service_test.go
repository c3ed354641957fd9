package salarycycle_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/events"
	"go-payroll/internal/holiday"
	"go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	"go-payroll/internal/profile"
	"go-payroll/internal/salarycycle"
	salarycycleerrors "go-payroll/internal/salarycycle/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/period"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeCycleRepo records writes so tests can assert what a lock produced.
type fakeCycleRepo struct {
	createCycleErr    error
	createEarningsErr error

	cycles       []salarycycle.SalaryCycle
	earningsSets [][]salarycycle.SalaryEarning
	payments     []salarycycle.SalaryPayment
	txCalls      int

	findCycleByPeriodFn      func(ctx context.Context, year, month int) (*salarycycle.SalaryCycle, error)
	findCycleByIDFn          func(ctx context.Context, id string) (*salarycycle.SalaryCycle, error)
	findEarningsByCycleFn    func(ctx context.Context, cycleID string) ([]salarycycle.SalaryEarning, error)
	findPaymentsByCycleFn    func(ctx context.Context, cycleID string) ([]salarycycle.SalaryPayment, error)
	findEarningsByEmployeeFn func(ctx context.Context, employeeID string, limit int) ([]salarycycle.SalaryEarning, error)
	findPaymentsByEmployeeFn func(ctx context.Context, employeeID string, limit int) ([]salarycycle.SalaryPayment, error)
}

func (f *fakeCycleRepo) WithTx(tx *sql.Tx) salarycycle.Repository {
	f.txCalls++
	return f
}

func (f *fakeCycleRepo) CreateCycle(ctx context.Context, cycle *salarycycle.SalaryCycle) error {
	if f.createCycleErr != nil {
		return f.createCycleErr
	}
	f.cycles = append(f.cycles, *cycle)
	return nil
}

func (f *fakeCycleRepo) CreateEarnings(ctx context.Context, earnings []salarycycle.SalaryEarning) error {
	if f.createEarningsErr != nil {
		return f.createEarningsErr
	}
	f.earningsSets = append(f.earningsSets, earnings)
	return nil
}

func (f *fakeCycleRepo) FindCycleByPeriod(ctx context.Context, year, month int) (*salarycycle.SalaryCycle, error) {
	return f.findCycleByPeriodFn(ctx, year, month)
}

func (f *fakeCycleRepo) FindCycleByID(ctx context.Context, id string) (*salarycycle.SalaryCycle, error) {
	return f.findCycleByIDFn(ctx, id)
}

func (f *fakeCycleRepo) FindEarningsByCycle(ctx context.Context, cycleID string) ([]salarycycle.SalaryEarning, error) {
	return f.findEarningsByCycleFn(ctx, cycleID)
}

func (f *fakeCycleRepo) FindPaymentsByCycle(ctx context.Context, cycleID string) ([]salarycycle.SalaryPayment, error) {
	return f.findPaymentsByCycleFn(ctx, cycleID)
}

func (f *fakeCycleRepo) CreatePayment(ctx context.Context, payment *salarycycle.SalaryPayment) error {
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakeCycleRepo) FindEarningsByEmployee(ctx context.Context, employeeID string, limit int) ([]salarycycle.SalaryEarning, error) {
	return f.findEarningsByEmployeeFn(ctx, employeeID, limit)
}

func (f *fakeCycleRepo) FindPaymentsByEmployee(ctx context.Context, employeeID string, limit int) ([]salarycycle.SalaryPayment, error) {
	return f.findPaymentsByEmployeeFn(ctx, employeeID, limit)
}

type fakeProfiles struct {
	employees []profile.Profile
}

func (f *fakeProfiles) FindByID(ctx context.Context, id string) (*profile.Profile, error) {
	for _, p := range f.employees {
		if p.ID.String() == id {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfiles) FindSalariedEmployees(ctx context.Context) ([]profile.Profile, error) {
	return f.employees, nil
}

type fakeHolidays struct {
	rows []holiday.Holiday
}

func (f *fakeHolidays) FindInPeriod(ctx context.Context, p period.Period) ([]holiday.Holiday, error) {
	return f.rows, nil
}

type fakeAttendance struct {
	pending    int64
	byEmployee map[string][]attendance.Attendance
	fetches    []string
}

func (f *fakeAttendance) CountPendingInPeriod(ctx context.Context, p period.Period) (int64, error) {
	return f.pending, nil
}

func (f *fakeAttendance) FindPendingInPeriod(ctx context.Context, p period.Period) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendance) FindByEmployeeInPeriod(ctx context.Context, employeeID string, p period.Period) ([]attendance.Attendance, error) {
	f.fetches = append(f.fetches, employeeID)
	return f.byEmployee[employeeID], nil
}

type serviceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	repo       *fakeCycleRepo
	profiles   *fakeProfiles
	holidays   *fakeHolidays
	attendance *fakeAttendance
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &serviceDeps{
		db:         db,
		sqlMock:    sqlMock,
		repo:       &fakeCycleRepo{},
		profiles:   &fakeProfiles{},
		holidays:   &fakeHolidays{},
		attendance: &fakeAttendance{byEmployee: map[string][]attendance.Attendance{}},
	}
}

func (d *serviceDeps) service(outbox kafka.OutboxRepository, rdb *redis.Client) salarycycle.Service {
	return salarycycle.NewService(d.db, d.repo, salarycycle.Sources{
		Profiles:   d.profiles,
		Holidays:   d.holidays,
		Attendance: d.attendance,
	}, outbox, rdb)
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func employee(joined time.Time, monthly int64) profile.Profile {
	salary := decimal.NewFromInt(monthly)
	return profile.Profile{
		ID:            uuid.New(),
		Role:          profile.RoleEmployee,
		IsActive:      true,
		JoinDate:      joined,
		MonthlySalary: &salary,
	}
}

func presentAllMonth(p period.Period, from time.Time) []attendance.Attendance {
	var rows []attendance.Attendance
	for d := range p.From(from).Days() {
		if d.Weekday() == time.Sunday {
			continue
		}
		rows = append(rows, row(d, attendance.StatusPresent, approved(true)))
	}
	return rows
}

var feb2025 = salarycycle.LockRequest{Year: 2025, Month: 2}

func TestSalaryCycleService_Lock(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.NewString()
	feb := period.Month(2025, time.February)

	t.Run("success - february scenarios", func(t *testing.T) {
		deps := setupServiceTest(t)
		early := employee(date(2024, time.March, 1), 28000)
		late := employee(date(2025, time.February, 15), 28000)
		afterPeriod := employee(date(2025, time.March, 3), 28000)
		deps.profiles.employees = []profile.Profile{early, late, afterPeriod}
		deps.holidays.rows = []holiday.Holiday{{Date: date(2025, time.February, 14), IsHoliday: true}}
		deps.attendance.byEmployee[early.ID.String()] = presentAllMonth(feb, feb.Start)
		deps.attendance.byEmployee[late.ID.String()] = presentAllMonth(feb, late.JoinDate)

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service(nil, nil).Lock(ctx, adminID, feb2025)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Inserted)
		require.Len(t, deps.repo.cycles, 1)
		cycle := deps.repo.cycles[0]
		assert.Equal(t, resp.CycleID, cycle.ID.String())
		assert.Equal(t, 2025, cycle.Year)
		assert.Equal(t, 2, cycle.Month)
		assert.Equal(t, adminID, cycle.LockedBy.String())
		assert.False(t, cycle.LockedAt.IsZero())

		require.Len(t, deps.repo.earningsSets, 1)
		earnings := deps.repo.earningsSets[0]
		require.Len(t, earnings, 2)

		assert.Equal(t, early.ID, earnings[0].EmployeeID)
		assert.Equal(t, cycle.ID, earnings[0].CycleID)
		assert.Equal(t, 24, earnings[0].TotalEligibleWorkingDays)
		assert.Equal(t, "1166.666667", earnings[0].PerDaySalary.StringFixed(6))
		assert.Equal(t, "28000.00", earnings[0].GrossEarned.StringFixed(2))

		assert.Equal(t, late.ID, earnings[1].EmployeeID)
		assert.Equal(t, 12, earnings[1].TotalEligibleWorkingDays)
		assert.Equal(t, "2333.333333", earnings[1].PerDaySalary.StringFixed(6))
		assert.Equal(t, "28000.00", earnings[1].GrossEarned.StringFixed(2))

		// the employee with no eligible days is never fetched
		assert.Equal(t, []string{early.ID.String(), late.ID.String()}, deps.attendance.fetches)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("pending at gate - no cycle created", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.attendance.pending = 3
		deps.profiles.employees = []profile.Profile{employee(date(2024, time.March, 1), 28000)}

		_, err := deps.service(nil, nil).Lock(ctx, adminID, feb2025)

		assert.ErrorIs(t, err, salarycycleerrors.ErrPendingApprovals)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 409, httpErr.Status)
		assert.Equal(t, map[string]int64{"count": 3}, httpErr.Details)
		assert.Empty(t, deps.repo.cycles)
		assert.Zero(t, deps.repo.txCalls)
		assert.Empty(t, deps.attendance.fetches)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("pending during processing - rolled back, no earnings", func(t *testing.T) {
		deps := setupServiceTest(t)
		first := employee(date(2024, time.March, 1), 28000)
		second := employee(date(2024, time.March, 1), 30000)
		deps.profiles.employees = []profile.Profile{first, second}
		deps.attendance.byEmployee[first.ID.String()] = presentAllMonth(feb, feb.Start)
		deps.attendance.byEmployee[second.ID.String()] = []attendance.Attendance{
			row(date(2025, time.February, 10), attendance.StatusPresent, nil),
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service(nil, nil).Lock(ctx, adminID, feb2025)

		assert.ErrorIs(t, err, salarycycleerrors.ErrPendingApprovalDuringProcessing)
		assert.Empty(t, deps.repo.earningsSets)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("no eligible employees - empty batch is success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.profiles.employees = []profile.Profile{employee(date(2025, time.April, 1), 28000)}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service(nil, nil).Lock(ctx, adminID, feb2025)

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Inserted)
		assert.NotEmpty(t, resp.CycleID)
		assert.Len(t, deps.repo.cycles, 1)
		assert.Empty(t, deps.repo.earningsSets)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("locking twice against a tracking double creates two cycles", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := deps.service(nil, nil)

		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, true)

		first, err := svc.Lock(ctx, adminID, feb2025)
		require.NoError(t, err)
		second, err := svc.Lock(ctx, adminID, feb2025)
		require.NoError(t, err)

		assert.Len(t, deps.repo.cycles, 2)
		assert.NotEqual(t, first.CycleID, second.CycleID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("storage unique violation maps to already locked", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.createCycleErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_cycles_period"}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service(nil, nil).Lock(ctx, adminID, feb2025)

		assert.ErrorIs(t, err, salarycycleerrors.ErrCycleAlreadyLocked)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("earnings insert failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		emp := employee(date(2024, time.March, 1), 28000)
		deps.profiles.employees = []profile.Profile{emp}
		deps.repo.createEarningsErr = errors.New("connection reset")

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service(nil, nil).Lock(ctx, adminID, feb2025)

		assert.EqualError(t, err, "connection reset")
		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing parameters", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service(nil, nil).Lock(ctx, adminID, salarycycle.LockRequest{Year: 2025})

		assert.ErrorIs(t, err, salarycycleerrors.ErrMissingParameters)
		assert.Equal(t, "MISSING_PARAMETERS", apperror.ToHTTP(err).Code)
	})

	t.Run("month out of range", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service(nil, nil).Lock(ctx, adminID, salarycycle.LockRequest{Year: 2025, Month: 13})

		assert.ErrorIs(t, err, salarycycleerrors.ErrInvalidPeriod)
	})

	t.Run("invalid admin id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service(nil, nil).Lock(ctx, "not-a-uuid", feb2025)

		assert.ErrorIs(t, err, salarycycleerrors.ErrInvalidAdmin)
		assert.Empty(t, deps.repo.cycles)
	})

	t.Run("queues locked event and drops cached view", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctrl := gomock.NewController(t)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		emp := employee(date(2024, time.March, 1), 28000)
		deps.profiles.employees = []profile.Profile{emp}
		deps.attendance.byEmployee[emp.ID.String()] = presentAllMonth(feb, feb.Start)
		reqCtx := contextutil.WithRequestID(ctx, "rid-42")

		expectTx(t, deps.sqlMock, true)
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
		outbox.EXPECT().
			Create(reqCtx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.SalaryCycleLockedTopic, e.Topic)
				assert.Equal(t, events.SalaryCycleLockedEventType, e.EventType)
				assert.Equal(t, "salary_cycle", e.AggregateType)
				assert.Equal(t, "rid-42", e.RequestID)
				assert.Equal(t, kafka.OutboxStatusPending, e.Status)
				assert.NoError(t, kafka.ValidateOutboxEvent(e))

				var payload events.SalaryCycleLockedEvent
				assert.NoError(t, json.Unmarshal(e.Payload, &payload))
				assert.Equal(t, e.AggregateID, payload.CycleID)
				assert.Equal(t, 2025, payload.Year)
				assert.Equal(t, 2, payload.Month)
				assert.Equal(t, 1, payload.Inserted)
				assert.Equal(t, adminID, payload.LockedBy)
				return nil
			})
		redisMock.ExpectDel(salarycycle.GetCycleViewKey(2025, 2)).SetVal(1)

		resp, err := deps.service(outbox, rdb).Lock(reqCtx, adminID, feb2025)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Inserted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctrl := gomock.NewController(t)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)

		expectTx(t, deps.sqlMock, false)
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service(outbox, nil).Lock(ctx, adminID, feb2025)

		assert.EqualError(t, err, "outbox down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestSalaryCycleService_GetCycleView(t *testing.T) {
	ctx := context.Background()
	key := salarycycle.GetCycleViewKey(2025, 2)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		rdb, redisMock := redismock.NewClientMock()
		cached := `{"cycle":{"id":"c-1","year":2025,"month":2,"locked_by":"a-1","locked_at":"2025-03-01T00:00:00Z"},"earnings":[],"payments":[]}`
		redisMock.ExpectGet(key).SetVal(cached)

		resp, err := deps.service(nil, rdb).GetCycleView(ctx, salarycycle.CycleQuery{Year: 2025, Month: 2})

		require.NoError(t, err)
		require.NotNil(t, resp.Cycle)
		assert.Equal(t, "c-1", resp.Cycle.ID)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("miss on an unlocked period caches the empty view", func(t *testing.T) {
		deps := setupServiceTest(t)
		rdb, redisMock := redismock.NewClientMock()
		deps.repo.findCycleByPeriodFn = func(ctx context.Context, year, month int) (*salarycycle.SalaryCycle, error) {
			return nil, gorm.ErrRecordNotFound
		}
		redisMock.ExpectGet(key).RedisNil()
		redisMock.ExpectSet(key, []byte(`{"cycle":null,"earnings":[],"payments":[]}`), 10*time.Minute).SetVal("OK")

		resp, err := deps.service(nil, rdb).GetCycleView(ctx, salarycycle.CycleQuery{Year: 2025, Month: 2})

		require.NoError(t, err)
		assert.Nil(t, resp.Cycle)
		assert.NotNil(t, resp.Earnings)
		assert.Empty(t, resp.Earnings)
		assert.NotNil(t, resp.Payments)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("locked period without cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		cycle := salarycycle.SalaryCycle{ID: uuid.New(), Year: 2025, Month: 2, LockedBy: uuid.New(), LockedAt: date(2025, time.March, 1)}
		earning := salarycycle.SalaryEarning{ID: uuid.New(), CycleID: cycle.ID, EmployeeID: uuid.New(), GrossEarned: decimal.RequireFromString("28000.00")}
		payment := salarycycle.SalaryPayment{ID: uuid.New(), CycleID: cycle.ID, EmployeeID: earning.EmployeeID, Amount: decimal.NewFromInt(1000)}
		deps.repo.findCycleByPeriodFn = func(ctx context.Context, year, month int) (*salarycycle.SalaryCycle, error) {
			assert.Equal(t, 2025, year)
			assert.Equal(t, 2, month)
			return &cycle, nil
		}
		deps.repo.findEarningsByCycleFn = func(ctx context.Context, cycleID string) ([]salarycycle.SalaryEarning, error) {
			assert.Equal(t, cycle.ID.String(), cycleID)
			return []salarycycle.SalaryEarning{earning}, nil
		}
		deps.repo.findPaymentsByCycleFn = func(ctx context.Context, cycleID string) ([]salarycycle.SalaryPayment, error) {
			return []salarycycle.SalaryPayment{payment}, nil
		}

		resp, err := deps.service(nil, nil).GetCycleView(ctx, salarycycle.CycleQuery{Year: 2025, Month: 2})

		require.NoError(t, err)
		require.NotNil(t, resp.Cycle)
		assert.Equal(t, cycle.ID.String(), resp.Cycle.ID)
		require.Len(t, resp.Earnings, 1)
		assert.Equal(t, "28000.00", resp.Earnings[0].GrossEarned.StringFixed(2))
		require.Len(t, resp.Payments, 1)
		assert.Equal(t, payment.ID.String(), resp.Payments[0].ID)
	})

	t.Run("store failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.findCycleByPeriodFn = func(ctx context.Context, year, month int) (*salarycycle.SalaryCycle, error) {
			return nil, errors.New("db down")
		}

		_, err := deps.service(nil, nil).GetCycleView(ctx, salarycycle.CycleQuery{Year: 2025, Month: 2})

		assert.EqualError(t, err, "db down")
	})

	t.Run("missing parameters", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service(nil, nil).GetCycleView(ctx, salarycycle.CycleQuery{Month: 2})

		assert.ErrorIs(t, err, salarycycleerrors.ErrMissingParameters)
	})
}

func TestSalaryCycleService_AddPayment(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.NewString()
	cycle := salarycycle.SalaryCycle{ID: uuid.New(), Year: 2025, Month: 2}

	t.Run("success defaults paid_at and invalidates view", func(t *testing.T) {
		deps := setupServiceTest(t)
		rdb, redisMock := redismock.NewClientMock()
		deps.repo.findCycleByIDFn = func(ctx context.Context, id string) (*salarycycle.SalaryCycle, error) {
			return &cycle, nil
		}
		redisMock.ExpectDel(salarycycle.GetCycleViewKey(2025, 2)).SetVal(1)
		note := "first tranche"
		employeeID := uuid.NewString()

		before := time.Now().UTC()
		resp, err := deps.service(nil, rdb).AddPayment(ctx, actorID, salarycycle.CreatePaymentRequest{
			CycleID:    cycle.ID.String(),
			EmployeeID: employeeID,
			Amount:     decimal.RequireFromString("1500.505"),
			Note:       &note,
		})

		require.NoError(t, err)
		require.Len(t, deps.repo.payments, 1)
		got := deps.repo.payments[0]
		assert.Equal(t, "1500.51", got.Amount.StringFixed(2))
		assert.Equal(t, actorID, got.CreatedBy.String())
		assert.Equal(t, employeeID, got.EmployeeID.String())
		assert.False(t, got.PaidAt.Before(before))
		assert.Equal(t, got.ID.String(), resp.ID)
		assert.Equal(t, &note, resp.Note)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("explicit paid_at kept", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.findCycleByIDFn = func(ctx context.Context, id string) (*salarycycle.SalaryCycle, error) {
			return &cycle, nil
		}
		paidAt := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)

		_, err := deps.service(nil, nil).AddPayment(ctx, actorID, salarycycle.CreatePaymentRequest{
			CycleID:    cycle.ID.String(),
			EmployeeID: uuid.NewString(),
			Amount:     decimal.NewFromInt(10),
			PaidAt:     &paidAt,
		})

		require.NoError(t, err)
		assert.Equal(t, paidAt, deps.repo.payments[0].PaidAt)
	})

	t.Run("unknown cycle", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.findCycleByIDFn = func(ctx context.Context, id string) (*salarycycle.SalaryCycle, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service(nil, nil).AddPayment(ctx, actorID, salarycycle.CreatePaymentRequest{
			CycleID:    uuid.NewString(),
			EmployeeID: uuid.NewString(),
			Amount:     decimal.NewFromInt(10),
		})

		assert.ErrorIs(t, err, salarycycleerrors.ErrCycleNotFound)
		assert.Equal(t, 404, apperror.ToHTTP(err).Status)
		assert.Empty(t, deps.repo.payments)
	})

	t.Run("non positive amount", func(t *testing.T) {
		deps := setupServiceTest(t)

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := deps.service(nil, nil).AddPayment(ctx, actorID, salarycycle.CreatePaymentRequest{
				CycleID:    cycle.ID.String(),
				EmployeeID: uuid.NewString(),
				Amount:     amount,
			})
			assert.ErrorIs(t, err, salarycycleerrors.ErrInvalidAmount)
		}
		assert.Empty(t, deps.repo.payments)
	})
}

func TestSalaryCycleService_GetMySalary(t *testing.T) {
	deps := setupServiceTest(t)
	employeeID := uuid.NewString()
	deps.repo.findEarningsByEmployeeFn = func(ctx context.Context, id string, limit int) ([]salarycycle.SalaryEarning, error) {
		assert.Equal(t, employeeID, id)
		assert.Equal(t, 12, limit)
		return []salarycycle.SalaryEarning{{ID: uuid.New()}}, nil
	}
	deps.repo.findPaymentsByEmployeeFn = func(ctx context.Context, id string, limit int) ([]salarycycle.SalaryPayment, error) {
		assert.Equal(t, 50, limit)
		return nil, nil
	}

	resp, err := deps.service(nil, nil).GetMySalary(context.Background(), employeeID)

	require.NoError(t, err)
	assert.Len(t, resp.Earnings, 1)
	assert.NotNil(t, resp.Payments)
	assert.Empty(t, resp.Payments)
}
