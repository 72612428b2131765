package dto

import (
	"github.com/allisson/contacts/internal/contact/domain"
	"github.com/allisson/contacts/internal/contact/usecase"
)

// ToCreateContactInput converts a CreateContactRequest DTO to a CreateContactInput use case input
func ToCreateContactInput(req CreateContactRequest) usecase.CreateContactInput {
	return usecase.CreateContactInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
}

// ToUpdateContactInput converts an UpdateContactRequest DTO to an UpdateContactInput use case input
func ToUpdateContactInput(req UpdateContactRequest) usecase.UpdateContactInput {
	return usecase.UpdateContactInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
}

// ToContactResponse converts a domain Contact model to a ContactResponse DTO
func ToContactResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		UserID:    contact.UserID,
		Name:      contact.Name,
		Phone:     contact.Phone,
		Email:     contact.Email,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

// ToContactListResponse converts a slice of domain Contacts to a ContactListResponse DTO
func ToContactListResponse(contacts []*domain.Contact) ContactListResponse {
	items := make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		items = append(items, ToContactResponse(contact))
	}
	return ContactListResponse{Contacts: items}
}
