package model

import "time"

// Failure is an incident recorded against a Unit.
type Failure struct {
	ID          int64     `gorm:"primaryKey"`
	UnitID      int64     `gorm:"index;not null"`
	Description string    `gorm:"size:500;not null"`
	FailureDate time.Time `gorm:"type:date;not null;index"`
	Note        string    `gorm:"type:text"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	// Associations
	Unit Unit `gorm:"constraint:OnDelete:CASCADE"`
}
