package meal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is owner-scoped: only the user referenced by UserID may read or
// mutate it.
type Meal struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"type:text;not null"`
	DateTime    time.Time `gorm:"index;not null"`
	IsOnDiet    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (m *Meal) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
