package salarycycle

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryCycle marks a (year, month) as locked. At most one row may exist per
// period; the unique index is the only guard against a second lock.
type SalaryCycle struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Year     int       `gorm:"column:year;not null;uniqueIndex:uq_salary_cycles_period,priority:1"`
	Month    int       `gorm:"column:month;not null;uniqueIndex:uq_salary_cycles_period,priority:2"`
	LockedBy uuid.UUID `gorm:"column:locked_by;type:uuid;not null"`
	LockedAt time.Time `gorm:"column:locked_at;not null"`
}

func (SalaryCycle) TableName() string {
	return "salary_cycles"
}

// SalaryEarning is written once when its cycle is locked and never updated.
type SalaryEarning struct {
	ID                       uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CycleID                  uuid.UUID       `gorm:"column:cycle_id;type:uuid;not null;uniqueIndex:uq_salary_earnings_cycle_employee,priority:1"`
	EmployeeID               uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_salary_earnings_cycle_employee,priority:2;index"`
	MonthlySalary            decimal.Decimal `gorm:"column:monthly_salary;type:numeric(14,2);not null"`
	TotalEligibleWorkingDays int             `gorm:"column:total_eligible_working_days;not null"`
	PerDaySalary             decimal.Decimal `gorm:"column:per_day_salary;type:numeric(18,6);not null"`
	GrossEarned              decimal.Decimal `gorm:"column:gross_earned;type:numeric(14,2);not null"`
	CreatedAt                time.Time       `gorm:"column:created_at"`
}

func (SalaryEarning) TableName() string {
	return "salary_earnings"
}

type SalaryPayment struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CycleID    uuid.UUID       `gorm:"column:cycle_id;type:uuid;not null;index"`
	EmployeeID uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	Note       *string         `gorm:"column:note;type:text"`
	PaidAt     time.Time       `gorm:"column:paid_at;not null"`
	CreatedBy  uuid.UUID       `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
}

func (SalaryPayment) TableName() string {
	return "salary_payments"
}
