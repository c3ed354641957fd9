package salarycycle

import (
	"time"

	"github.com/shopspring/decimal"
)

// LockRequest is range-checked by the service so the CLI gets the same
// validation as the HTTP route.
type LockRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type LockResponse struct {
	CycleID  string `json:"cycle_id"`
	Inserted int    `json:"inserted"`
}

type CycleQuery struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

type CycleResponse struct {
	ID       string    `json:"id"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	LockedBy string    `json:"locked_by"`
	LockedAt time.Time `json:"locked_at"`
}

type EarningResponse struct {
	ID                       string          `json:"id"`
	CycleID                  string          `json:"cycle_id"`
	EmployeeID               string          `json:"employee_id"`
	MonthlySalary            decimal.Decimal `json:"monthly_salary"`
	TotalEligibleWorkingDays int             `json:"total_eligible_working_days"`
	PerDaySalary             decimal.Decimal `json:"per_day_salary"`
	GrossEarned              decimal.Decimal `json:"gross_earned"`
	CreatedAt                time.Time       `json:"created_at"`
}

type PaymentResponse struct {
	ID         string          `json:"id"`
	CycleID    string          `json:"cycle_id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note"`
	PaidAt     time.Time       `json:"paid_at"`
	CreatedBy  string          `json:"created_by"`
}

// CycleViewResponse has a nil Cycle and empty lists when the period is not
// locked yet.
type CycleViewResponse struct {
	Cycle    *CycleResponse    `json:"cycle"`
	Earnings []EarningResponse `json:"earnings"`
	Payments []PaymentResponse `json:"payments"`
}

type CreatePaymentRequest struct {
	CycleID    string          `json:"cycle_id" binding:"required,uuid"`
	EmployeeID string          `json:"employee_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note"`
	PaidAt     *time.Time      `json:"paid_at"`
}

type MySalaryResponse struct {
	Earnings []EarningResponse `json:"earnings"`
	Payments []PaymentResponse `json:"payments"`
}
