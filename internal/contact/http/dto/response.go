package dto

import "time"

// ContactResponse is the external representation of a contact.
type ContactResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactListResponse wraps a list of contacts.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}
