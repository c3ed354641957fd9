package attendance

import (
	"time"

	"go-payroll/internal/shared/period"
)

// Index is an immutable by-date view over one employee's attendance rows.
type Index struct {
	byDate map[string]Attendance
}

// NewIndex keys rows by calendar date. If a date repeats, the last row wins.
func NewIndex(rows []Attendance) Index {
	byDate := make(map[string]Attendance, len(rows))
	for _, row := range rows {
		byDate[period.Day(row.Date).Format(period.DateLayout)] = row
	}
	return Index{byDate: byDate}
}

func (i Index) Lookup(d time.Time) (Attendance, bool) {
	row, ok := i.byDate[period.Day(d).Format(period.DateLayout)]
	return row, ok
}

func (i Index) Len() int {
	return len(i.byDate)
}
