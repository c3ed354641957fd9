package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusHalfDay = "half_day"
	StatusAbsent  = "absent"
	StatusOnLeave = "on_leave"
)

// Attendance is one row per (employee, date). IsApproved is nil while the
// row waits for review, true once approved and false when denied.
type Attendance struct {
	ID         uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date       time.Time    `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date;index"`
	Status     string       `gorm:"column:status;type:varchar(20);not null"`
	IsApproved *bool        `gorm:"column:is_approved"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	CreatedAt  time.Time    `gorm:"column:created_at"`
	UpdatedAt  time.Time    `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

func (a Attendance) IsPending() bool {
	return a.IsApproved == nil
}

func (a Attendance) IsDenied() bool {
	return a.IsApproved != nil && !*a.IsApproved
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "profiles"
}
