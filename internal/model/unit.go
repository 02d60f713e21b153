package model

import "time"

// Unit is an operational unit that failures are reported against.
type Unit struct {
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"size:200;not null;index"`
	Group      string    `gorm:"column:group_name;size:100;not null"`
	Technician string    `gorm:"size:200"`
	ExternalID string    `gorm:"uniqueIndex;size:50;not null"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Associations
	Failures []Failure `gorm:"foreignKey:UnitID"`
}
