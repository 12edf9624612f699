package models

import "time"

// Contact statuses an admin can move a submission through.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// Contact priorities.
const (
	ContactPriorityLow    = "low"
	ContactPriorityMedium = "medium"
	ContactPriorityHigh   = "high"
)

// Contact stores an accepted contact form submission. IsSpam is an admin
// review flag: the spam heuristic result is surfaced to logs and metrics but
// does not set it automatically.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	Email     string    `gorm:"size:160;not null;index" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	Subject   string    `gorm:"size:100;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:32;not null;default:new;index" json:"status"`
	Priority  string    `gorm:"size:32;not null;default:medium" json:"priority"`
	IPAddress string    `gorm:"size:64;not null" json:"ip_address"`
	UserAgent string    `gorm:"size:500" json:"user_agent,omitempty"`
	IsSpam    bool      `gorm:"not null;default:false;index" json:"is_spam"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
