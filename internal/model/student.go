package model

import (
	"time"

	"gopkg.in/yaml.v3"

	"uniadmin-backend/internal/parse"
)

// Student is a read-only catalog record enrolled in a Course.
type Student struct {
	ID             int64     `json:"id" yaml:"id"`
	FirstName      string    `json:"first_name" yaml:"first_name"`
	LastName       string    `json:"last_name" yaml:"last_name"`
	Email          string    `json:"email" yaml:"email"`
	Nationality    string    `json:"nationality" yaml:"nationality"`
	BirthDate      Date      `json:"birth_date" yaml:"birth_date"`
	EnrollmentDate time.Time `json:"enrollment_date" yaml:"enrollment_date"`
	CourseID       int64     `json:"course_id" yaml:"course_id"`
}

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String formats the date, or returns "" for the zero value.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(parse.DateLayout)
}

// MarshalJSON writes null for the zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(parse.DateLayout) + `"`), nil
}

// UnmarshalYAML accepts YYYY-MM-DD scalars.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	raw := value.Value
	if raw == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(parse.DateLayout, raw)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}
