package attendance

import (
	"context"

	"go-payroll/internal/shared/period"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	CountPendingInPeriod(ctx context.Context, p period.Period) (int64, error)
	FindPendingInPeriod(ctx context.Context, p period.Period) ([]Attendance, error)
	FindByEmployeeInPeriod(ctx context.Context, employeeID string, p period.Period) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func inPeriod(p period.Period) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("attendance.date >= ? AND attendance.date <= ?", p.Start, p.End)
	}
}

func (r *repository) CountPendingInPeriod(ctx context.Context, p period.Period) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Scopes(inPeriod(p)).
		Where("attendance.is_approved IS NULL").
		Count(&count).Error
	return count, err
}

func (r *repository) FindPendingInPeriod(ctx context.Context, p period.Period) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(inPeriod(p)).
		Where("attendance.is_approved IS NULL").
		Order("attendance.date ASC, attendance.employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeInPeriod(ctx context.Context, employeeID string, p period.Period) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(inPeriod(p)).
		Where("attendance.employee_id = ?", employeeID).
		Order("attendance.date ASC").
		Find(&rows).Error
	return rows, err
}
