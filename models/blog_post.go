package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost represents a complete blog post with metadata
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Category  string    `json:"category" db:"category" gorm:"type:text;not null"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"column:image_url;type:text"`
	ReadTime  *string   `json:"readTime,omitempty" db:"read_time" gorm:"column:read_time;type:text"`
	Published bool      `json:"published" db:"published" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}

// InsertBlogPost is the payload for creating a blog post
type InsertBlogPost struct {
	Title     string  `json:"title" validate:"required"`
	Excerpt   string  `json:"excerpt" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	Category  string  `json:"category" validate:"required"`
	ImageURL  *string `json:"imageUrl"`
	ReadTime  *string `json:"readTime"`
	Published bool    `json:"published"`
}

// UpdateBlogPost is the partial-update payload; nil fields are left unchanged
type UpdateBlogPost struct {
	Title     *string `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	ImageURL  *string `json:"imageUrl"`
	ReadTime  *string `json:"readTime"`
	Published *bool   `json:"published"`
}

// NewBlogPost builds a BlogPost from an insert payload, applying defaults.
func NewBlogPost(input InsertBlogPost) *BlogPost {
	now := time.Now().UTC()
	return &BlogPost{
		ID:        uuid.New(),
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Category:  input.Category,
		ImageURL:  input.ImageURL,
		ReadTime:  input.ReadTime,
		Published: input.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply merges the supplied fields of a partial update onto the post and
// refreshes UpdatedAt.
func (p *BlogPost) Apply(input UpdateBlogPost) {
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Excerpt != nil {
		p.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		p.Content = *input.Content
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.ImageURL != nil {
		p.ImageURL = input.ImageURL
	}
	if input.ReadTime != nil {
		p.ReadTime = input.ReadTime
	}
	if input.Published != nil {
		p.Published = *input.Published
	}
	p.UpdatedAt = time.Now().UTC()
}
