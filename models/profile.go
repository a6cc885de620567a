package models

import (
	"time"
)

type NannyProfile struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	FullName        string    `json:"full_name"`
	City            string    `json:"city"`
	Zip             string    `json:"zip"`
	YearsExperience int       `json:"years_experience"`
	Availability    string    `json:"availability"`
	Bio             string    `json:"bio"`
	ServicesOffered string    `json:"services_offered"`
	PreferredRate   float64   `json:"preferred_rate"`
	ContactInfo     string    `json:"contact_info"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type FamilyProfile struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	FullName    string    `json:"full_name"`
	City        string    `json:"city"`
	Zip         string    `json:"zip"`
	Needs       string    `json:"needs"`
	Schedule    string    `json:"schedule"`
	Budget      float64   `json:"budget"`
	Bio         string    `json:"bio"`
	ContactInfo string    `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NannyProfileFilter carries the optional search predicates. A nil numeric
// field omits its predicate entirely.
type NannyProfileFilter struct {
	City          string
	Zip           string
	MinExperience *int
	MaxRate       *float64
}
