package profile

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Profile, error)
	// FindSalariedEmployees returns active employees with a monthly salary set.
	FindSalariedEmployees(ctx context.Context) ([]Profile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindSalariedEmployees(ctx context.Context) ([]Profile, error) {
	var rows []Profile
	err := r.db.WithContext(ctx).
		Where("role = ?", RoleEmployee).
		Where("is_active = ?", true).
		Where("monthly_salary IS NOT NULL").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
