package salarycycle

import (
	"go-payroll/internal/attendance"
	salarycycleerrors "go-payroll/internal/salarycycle/errors"
	"go-payroll/internal/shared/period"

	"github.com/shopspring/decimal"
)

const grossScale = 2

var half = decimal.NewFromFloat(0.5)

// DayCredit is the share of the per-day rate one calendar day earns.
// A pending attendance row returns an error because the lock cannot
// produce a final figure for it.
func DayCredit(day EligibleDay, rate decimal.Decimal, idx attendance.Index, employeeID string) (decimal.Decimal, error) {
	if day.Holiday {
		return rate, nil
	}

	row, ok := idx.Lookup(day.Date)
	if !ok {
		return decimal.Zero, nil
	}
	if row.IsPending() {
		return decimal.Zero, salarycycleerrors.PendingApprovalDuringProcessing(employeeID, day.Date.Format(period.DateLayout))
	}
	if row.IsDenied() {
		return decimal.Zero, nil
	}

	switch row.Status {
	case attendance.StatusPresent:
		return rate, nil
	case attendance.StatusHalfDay:
		return rate.Mul(half), nil
	default:
		return decimal.Zero, nil
	}
}

// ComputeGross sums the day credits over cal and rounds to cents.
func ComputeGross(cal Calendar, rate decimal.Decimal, idx attendance.Index, employeeID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, day := range cal {
		credit, err := DayCredit(day, rate, idx, employeeID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(credit)
	}
	return total.Round(grossScale), nil
}
