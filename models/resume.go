package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume represents an uploaded resume file. At most one resume is active
// at any time; activation is handled transactionally by the repository.
type Resume struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Filename      string    `json:"filename" db:"filename" gorm:"type:text;not null"`
	OriginalName  string    `json:"originalName" db:"original_name" gorm:"column:original_name;type:text;not null"`
	FileURL       string    `json:"fileUrl" db:"file_url" gorm:"column:file_url;type:text;not null"`
	ParsedContent *string   `json:"parsedContent,omitempty" db:"parsed_content" gorm:"column:parsed_content;type:text"`
	IsActive      bool      `json:"isActive" db:"is_active" gorm:"column:is_active;not null;default:false"`
	UploadedAt    time.Time `json:"uploadedAt" db:"uploaded_at" gorm:"column:uploaded_at;not null"`
}

// InsertResume is the payload for creating a resume record
type InsertResume struct {
	Filename      string  `json:"filename" validate:"required"`
	OriginalName  string  `json:"originalName" validate:"required"`
	FileURL       string  `json:"fileUrl" validate:"required"`
	ParsedContent *string `json:"parsedContent"`
	IsActive      bool    `json:"isActive"`
}

// UpdateResume is the partial-update payload; nil fields are left unchanged
type UpdateResume struct {
	Filename      *string `json:"filename"`
	OriginalName  *string `json:"originalName"`
	FileURL       *string `json:"fileUrl"`
	ParsedContent *string `json:"parsedContent"`
	IsActive      *bool   `json:"isActive"`
}

// NewResume builds a Resume from an insert payload, applying defaults.
func NewResume(input InsertResume) *Resume {
	return &Resume{
		ID:            uuid.New(),
		Filename:      input.Filename,
		OriginalName:  input.OriginalName,
		FileURL:       input.FileURL,
		ParsedContent: input.ParsedContent,
		IsActive:      input.IsActive,
		UploadedAt:    time.Now().UTC(),
	}
}

// Apply merges the supplied fields of a partial update onto the resume.
func (r *Resume) Apply(input UpdateResume) {
	if input.Filename != nil {
		r.Filename = *input.Filename
	}
	if input.OriginalName != nil {
		r.OriginalName = *input.OriginalName
	}
	if input.FileURL != nil {
		r.FileURL = *input.FileURL
	}
	if input.ParsedContent != nil {
		r.ParsedContent = input.ParsedContent
	}
	if input.IsActive != nil {
		r.IsActive = *input.IsActive
	}
}
