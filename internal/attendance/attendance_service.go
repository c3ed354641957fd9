package attendance

import (
	"context"
	"time"

	"go-payroll/internal/shared/period"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	// ListPending lists rows of the month still waiting for approval, i.e.
	// what blocks the salary cycle from being locked.
	ListPending(ctx context.Context, q PendingQuery) (PendingAttendanceResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListPending(ctx context.Context, q PendingQuery) (PendingAttendanceResponse, error) {
	rows, err := s.repo.FindPendingInPeriod(ctx, period.Month(q.Year, time.Month(q.Month)))
	if err != nil {
		return PendingAttendanceResponse{}, err
	}

	pending := make([]PendingAttendanceRow, len(rows))
	for i, row := range rows {
		pending[i] = mapToPendingRow(row)
	}

	return PendingAttendanceResponse{
		Year:    q.Year,
		Month:   q.Month,
		Count:   len(pending),
		Pending: pending,
	}, nil
}

func mapToPendingRow(a Attendance) PendingAttendanceRow {
	row := PendingAttendanceRow{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format(period.DateLayout),
		Status:     a.Status,
	}
	if a.Employee != nil {
		row.EmployeeName = a.Employee.FullName
	}
	return row
}
