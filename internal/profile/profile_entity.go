package profile

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type Profile struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	FullName      string           `gorm:"column:full_name;type:varchar(150)"`
	Role          string           `gorm:"column:role;type:varchar(20);not null;default:employee;index"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	JoinDate      time.Time        `gorm:"column:join_date;type:date;not null"`
	MonthlySalary *decimal.Decimal `gorm:"column:monthly_salary;type:numeric(14,2)"`
	CreatedAt     time.Time        `gorm:"column:created_at"`
	UpdatedAt     time.Time        `gorm:"column:updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
