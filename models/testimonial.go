package models

import "github.com/google/uuid"

// Testimonial represents a client testimonial surfaced on the site
type Testimonial struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Role      string    `json:"role" db:"role" gorm:"type:text;not null"`
	Company   string    `json:"company" db:"company" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url" gorm:"column:avatar_url;type:text"`
	Rating    string    `json:"rating" db:"rating" gorm:"type:text;not null;default:'5'"`
	Featured  bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
}

// InsertTestimonial is the payload for creating a testimonial
type InsertTestimonial struct {
	Name      string  `json:"name" validate:"required"`
	Role      string  `json:"role" validate:"required"`
	Company   string  `json:"company" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	AvatarURL *string `json:"avatarUrl"`
	Rating    *string `json:"rating"`
	Featured  bool    `json:"featured"`
}

// UpdateTestimonial is the partial-update payload; nil fields are left unchanged
type UpdateTestimonial struct {
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Company   *string `json:"company"`
	Content   *string `json:"content"`
	AvatarURL *string `json:"avatarUrl"`
	Rating    *string `json:"rating"`
	Featured  *bool   `json:"featured"`
}

// NewTestimonial builds a Testimonial from an insert payload, applying defaults.
func NewTestimonial(input InsertTestimonial) *Testimonial {
	rating := "5"
	if input.Rating != nil {
		rating = *input.Rating
	}
	return &Testimonial{
		ID:        uuid.New(),
		Name:      input.Name,
		Role:      input.Role,
		Company:   input.Company,
		Content:   input.Content,
		AvatarURL: input.AvatarURL,
		Rating:    rating,
		Featured:  input.Featured,
	}
}

// Apply merges the supplied fields of a partial update onto the testimonial.
func (t *Testimonial) Apply(input UpdateTestimonial) {
	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Role != nil {
		t.Role = *input.Role
	}
	if input.Company != nil {
		t.Company = *input.Company
	}
	if input.Content != nil {
		t.Content = *input.Content
	}
	if input.AvatarURL != nil {
		t.AvatarURL = input.AvatarURL
	}
	if input.Rating != nil {
		t.Rating = *input.Rating
	}
	if input.Featured != nil {
		t.Featured = *input.Featured
	}
}
