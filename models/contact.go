package models

import (
	"time"
)

const ContactStatusPending = "pending"

type ContactRequest struct {
	ID        int       `json:"id"`
	FamilyID  int       `json:"family_id"`
	NannyID   int       `json:"nanny_id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRequestThread is a contact request joined with the display names
// of both parties for the thread list.
type ContactRequestThread struct {
	ContactRequest
	NannyName  string `json:"nanny_name"`
	FamilyName string `json:"family_name"`
}

type Message struct {
	ID               int       `json:"id"`
	ContactRequestID int       `json:"contact_request_id"`
	SenderID         int       `json:"sender_id"`
	SenderEmail      string    `json:"sender_email"`
	Body             string    `json:"body"`
	CreatedAt        time.Time `json:"created_at"`
}
