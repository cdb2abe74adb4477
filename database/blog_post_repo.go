package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// BlogPostFilter narrows FindAll results. Zero values mean no filtering.
type BlogPostFilter struct {
	// Search matches case-insensitively as a substring of title, content
	// or excerpt.
	Search   string
	Category string
}

// FindAll returns blog posts newest-first, optionally filtered.
func (r *BlogPostRepo) FindAll(filter BlogPostFilter) ([]*models.BlogPost, error) {
	query := r.db.Order("created_at DESC")
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(excerpt) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}

	posts := []*models.BlogPost{}
	err := query.Find(&posts).Error
	return posts, err
}

// FindPublished returns published posts newest-first, for the RSS feed and
// sitemap.
func (r *BlogPostRepo) FindPublished() ([]*models.BlogPost, error) {
	posts := []*models.BlogPost{}
	err := r.db.Where("published = ?", true).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindByID returns a blog post by its ID, or nil when no row exists.
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update persists the full state of an existing blog post
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete removes a blog post by id, reporting whether a row was removed.
func (r *BlogPostRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.BlogPost{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
