package model

import "time"

// University is a read-only catalog record.
type University struct {
	ID              int64     `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Country         string    `json:"country" yaml:"country"`
	City            string    `json:"city" yaml:"city"`
	Website         string    `json:"website" yaml:"website"`
	EstablishedYear int       `json:"established_year" yaml:"established_year"`
	Description     string    `json:"description" yaml:"description"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}
