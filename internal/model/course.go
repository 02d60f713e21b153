package model

import "time"

// Course is a read-only catalog record owned by a University.
type Course struct {
	ID             int64  `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Code           string `json:"code" yaml:"code"`
	DurationMonths int    `json:"duration_months" yaml:"duration_months"`
	Language       string `json:"language" yaml:"language"`
	// TuitionFee is in euros; 0 means free.
	TuitionFee   int       `json:"tuition_fee" yaml:"tuition_fee"`
	Description  string    `json:"description" yaml:"description"`
	UniversityID int64     `json:"university_id" yaml:"university_id"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}
