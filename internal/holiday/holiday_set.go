package holiday

import (
	"time"

	"go-payroll/internal/shared/period"
)

// Set is an immutable lookup of paid holiday dates. The zero value is empty.
type Set struct {
	dates map[string]struct{}
}

// NewSet keeps only rows flagged is_holiday.
func NewSet(rows []Holiday) Set {
	dates := make(map[string]struct{}, len(rows))
	for _, h := range rows {
		if !h.IsHoliday {
			continue
		}
		dates[period.Day(h.Date).Format(period.DateLayout)] = struct{}{}
	}
	return Set{dates: dates}
}

func (s Set) Contains(d time.Time) bool {
	_, ok := s.dates[period.Day(d).Format(period.DateLayout)]
	return ok
}

func (s Set) Len() int {
	return len(s.dates)
}
