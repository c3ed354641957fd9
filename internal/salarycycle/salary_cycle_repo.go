package salarycycle

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

const earningsBatchSize = 500

//go:generate mockgen -source=salary_cycle_repo.go -destination=mock/salary_cycle_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateCycle(ctx context.Context, cycle *SalaryCycle) error
	// CreateEarnings inserts the whole slice as one batch.
	CreateEarnings(ctx context.Context, earnings []SalaryEarning) error
	FindCycleByPeriod(ctx context.Context, year, month int) (*SalaryCycle, error)
	FindCycleByID(ctx context.Context, id string) (*SalaryCycle, error)
	FindEarningsByCycle(ctx context.Context, cycleID string) ([]SalaryEarning, error)
	FindPaymentsByCycle(ctx context.Context, cycleID string) ([]SalaryPayment, error)
	CreatePayment(ctx context.Context, payment *SalaryPayment) error
	FindEarningsByEmployee(ctx context.Context, employeeID string, limit int) ([]SalaryEarning, error)
	FindPaymentsByEmployee(ctx context.Context, employeeID string, limit int) ([]SalaryPayment, error)
}

type repository struct {
	db *gorm.DB
	// txErr is set when WithTx could not bind the transaction; every call
	// then fails with it instead of silently running outside the tx.
	txErr error
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	gdb, err := connection.GormFromTx(tx)
	if err != nil {
		return &repository{txErr: err}
	}
	return &repository{db: gdb}
}

func (r *repository) conn(ctx context.Context) (*gorm.DB, error) {
	if r.txErr != nil {
		return nil, r.txErr
	}
	return r.db.WithContext(ctx), nil
}

func (r *repository) CreateCycle(ctx context.Context, cycle *SalaryCycle) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Create(cycle).Error
}

func (r *repository) CreateEarnings(ctx context.Context, earnings []SalaryEarning) error {
	if len(earnings) == 0 {
		return nil
	}
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.CreateInBatches(earnings, earningsBatchSize).Error
}

func (r *repository) FindCycleByPeriod(ctx context.Context, year, month int) (*SalaryCycle, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var cycle SalaryCycle
	if err := db.Where("year = ? AND month = ?", year, month).First(&cycle).Error; err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (r *repository) FindCycleByID(ctx context.Context, id string) (*SalaryCycle, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var cycle SalaryCycle
	if err := db.First(&cycle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (r *repository) FindEarningsByCycle(ctx context.Context, cycleID string) ([]SalaryEarning, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var rows []SalaryEarning
	err = db.Where("cycle_id = ?", cycleID).
		Order("employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPaymentsByCycle(ctx context.Context, cycleID string) ([]SalaryPayment, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var rows []SalaryPayment
	err = db.Where("cycle_id = ?", cycleID).
		Order("paid_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreatePayment(ctx context.Context, payment *SalaryPayment) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Create(payment).Error
}

func (r *repository) FindEarningsByEmployee(ctx context.Context, employeeID string, limit int) ([]SalaryEarning, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var rows []SalaryEarning
	err = db.Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPaymentsByEmployee(ctx context.Context, employeeID string, limit int) ([]SalaryPayment, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var rows []SalaryPayment
	err = db.Where("employee_id = ?", employeeID).
		Order("paid_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
