package salarycycle

import (
	"time"

	"go-payroll/internal/holiday"
	"go-payroll/internal/shared/period"

	"github.com/shopspring/decimal"
)

const perDayScale = 6

type EligibleDay struct {
	Date    time.Time
	Holiday bool
}

// Calendar lists one employee's paid working days for a period, ascending.
type Calendar []EligibleDay

// BuildCalendar walks p from the later of its start and joinDate. Sundays
// are never eligible; holidays are eligible and flagged.
func BuildCalendar(p period.Period, joinDate time.Time, holidays holiday.Set) Calendar {
	span := p.From(joinDate)
	if span.IsEmpty() {
		return nil
	}

	var cal Calendar
	for d := range span.Days() {
		if d.Weekday() == time.Sunday {
			continue
		}
		cal = append(cal, EligibleDay{Date: d, Holiday: holidays.Contains(d)})
	}
	return cal
}

// TotalEligibleWorkingDays is len(c).
func (c Calendar) TotalEligibleWorkingDays() int {
	return len(c)
}

// PerDayRate divides monthly by days, rounded half away from zero to six
// fractional digits. days must be positive.
func PerDayRate(monthly decimal.Decimal, days int) decimal.Decimal {
	return monthly.DivRound(decimal.NewFromInt(int64(days)), perDayScale)
}
