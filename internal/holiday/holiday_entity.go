package holiday

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Date      time.Time `gorm:"column:date;type:date;not null;uniqueIndex"`
	Name      string    `gorm:"column:name;type:varchar(150)"`
	IsHoliday bool      `gorm:"column:is_holiday;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
