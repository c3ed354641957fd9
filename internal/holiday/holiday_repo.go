package holiday

import (
	"context"

	"go-payroll/internal/shared/period"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	FindInPeriod(ctx context.Context, p period.Period) ([]Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindInPeriod(ctx context.Context, p period.Period) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", p.Start, p.End).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
