package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission represents a message sent through the public contact
// form. Submissions are immutable once created.
type ContactSubmission struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	FirstName   string    `json:"firstName" db:"first_name" gorm:"column:first_name;type:text;not null"`
	LastName    string    `json:"lastName" db:"last_name" gorm:"column:last_name;type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null"`
	Company     *string   `json:"company,omitempty" db:"company" gorm:"type:text"`
	ProjectType *string   `json:"projectType,omitempty" db:"project_type" gorm:"column:project_type;type:text"`
	Message     string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

// InsertContact is the payload for creating a contact submission
type InsertContact struct {
	FirstName   string  `json:"firstName" validate:"required"`
	LastName    string  `json:"lastName" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Company     *string `json:"company"`
	ProjectType *string `json:"projectType"`
	Message     string  `json:"message" validate:"required"`
}

// NewContactSubmission builds a ContactSubmission from an insert payload.
func NewContactSubmission(input InsertContact) *ContactSubmission {
	return &ContactSubmission{
		ID:          uuid.New(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Company:     input.Company,
		ProjectType: input.ProjectType,
		Message:     input.Message,
		CreatedAt:   time.Now().UTC(),
	}
}
