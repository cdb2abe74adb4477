package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/models"
	"gorm.io/gorm"
)

// ContactRepo stores contact submissions. Submissions are immutable, so
// there is no update method.
type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns contact submissions newest-first.
func (r *ContactRepo) FindAll() ([]*models.ContactSubmission, error) {
	submissions := []*models.ContactSubmission{}
	err := r.db.Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

// FindByID returns a submission by its ID, or nil when no row exists.
func (r *ContactRepo) FindByID(id uuid.UUID) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	err := r.db.First(&submission, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// Add inserts a new contact submission into the database
func (r *ContactRepo) Add(submission *models.ContactSubmission) error {
	return r.db.Create(submission).Error
}

// Delete removes a submission by id, reporting whether a row was removed.
func (r *ContactRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.ContactSubmission{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
