package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/models"
	"gorm.io/gorm"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db}
}

// FindAll returns all testimonials, most recently created first.
// Testimonials carry no timestamp, so insertion order is approximated by id.
func (r *TestimonialRepo) FindAll() ([]*models.Testimonial, error) {
	testimonials := []*models.Testimonial{}
	err := r.db.Order("id DESC").Find(&testimonials).Error
	return testimonials, err
}

// FindByID returns a testimonial by its ID, or nil when no row exists.
func (r *TestimonialRepo) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Add inserts a new testimonial into the database
func (r *TestimonialRepo) Add(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

// Update persists the full state of an existing testimonial
func (r *TestimonialRepo) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete removes a testimonial by id, reporting whether a row was removed.
func (r *TestimonialRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.Testimonial{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
