package models

import (
	"encoding/json"
	"strings"
)

// FlexNumber accepts a JSON number or a numeric string. Mobile clients
// submit profile numbers from text inputs, so both forms must coerce.
type FlexNumber string

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexNumber(strings.TrimSpace(s))
		return nil
	}
	if trimmed == "null" {
		*f = ""
		return nil
	}
	*f = FlexNumber(trimmed)
	return nil
}

func (f FlexNumber) String() string {
	return string(f)
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NannyProfileRequest struct {
	FullName        string     `json:"full_name"`
	City            string     `json:"city"`
	Zip             string     `json:"zip"`
	YearsExperience FlexNumber `json:"years_experience"`
	Availability    string     `json:"availability"`
	Bio             string     `json:"bio"`
	ServicesOffered string     `json:"services_offered"`
	PreferredRate   FlexNumber `json:"preferred_rate"`
	ContactInfo     string     `json:"contact_info"`
}

type FamilyProfileRequest struct {
	FullName    string     `json:"full_name"`
	City        string     `json:"city"`
	Zip         string     `json:"zip"`
	Needs       string     `json:"needs"`
	Schedule    string     `json:"schedule"`
	Budget      FlexNumber `json:"budget"`
	Bio         string     `json:"bio"`
	ContactInfo string     `json:"contact_info"`
}

type ContactRequestRequest struct {
	NannyID int    `json:"nanny_id"`
	Message string `json:"message"`
}

type MessageRequest struct {
	ContactRequestID int    `json:"contact_request_id"`
	Body             string `json:"body"`
}

// UserResponse is the public view of a user. The password hash is never
// serialized anywhere, but auth responses also omit created_at.
type UserResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
