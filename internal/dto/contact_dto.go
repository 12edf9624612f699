package dto

import (
	"time"

	"github.com/noah-isme/contact-api/internal/models"
	"github.com/noah-isme/contact-api/internal/validate"
)

// ContactRequest is the public submission payload. Field-level rules are
// enforced by the sanitize/validate pipeline, not by struct tags, so the
// caller receives every failure in one pass.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Priority  string `json:"priority"`
}

// ContactResponse is the serialized representation of a stored submission.
type ContactResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	IsSpam    bool      `json:"is_spam"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContactResponse converts a model into a DTO.
func NewContactResponse(model models.Contact) ContactResponse {
	return ContactResponse{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Phone:     model.Phone,
		Subject:   model.Subject,
		Message:   model.Message,
		Status:    model.Status,
		Priority:  model.Priority,
		IsSpam:    model.IsSpam,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewContactResponseSlice converts a slice of models into DTOs.
func NewContactResponseSlice(items []models.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewContactResponse(item))
	}
	return out
}

// ValidationFailure is the 422 payload: the full ordered error list plus the
// informational spam sub-result.
type ValidationFailure struct {
	Errors []string            `json:"errors"`
	Spam   validate.SpamResult `json:"spamCheck"`
}

// ContactListRequest carries admin listing filters. IsSpam is tri-state:
// nil means no filter.
type ContactListRequest struct {
	Page     int
	Limit    int
	Status   string
	Priority string
	IsSpam   *bool
}

// PaginationMeta describes the listing page window.
type PaginationMeta struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// ContactListResponse bundles one admin listing page.
type ContactListResponse struct {
	Items      []ContactResponse `json:"contacts"`
	Pagination PaginationMeta    `json:"pagination"`
}

// ContactStatusUpdateRequest is the admin status transition payload.
type ContactStatusUpdateRequest struct {
	Status string `json:"status"`
}

// ContactStatsResponse aggregates submission counts per status plus spam.
type ContactStatsResponse struct {
	Total    int64 `json:"total"`
	New      int64 `json:"new"`
	Read     int64 `json:"read"`
	Replied  int64 `json:"replied"`
	Archived int64 `json:"archived"`
	Spam     int64 `json:"spam"`
}
