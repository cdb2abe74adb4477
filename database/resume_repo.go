package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/models"
	"gorm.io/gorm"
)

type ResumeRepo struct {
	db *gorm.DB
}

func NewResumeRepo(db *gorm.DB) *ResumeRepo {
	return &ResumeRepo{db}
}

// FindAll returns resumes most recently uploaded first.
func (r *ResumeRepo) FindAll() ([]*models.Resume, error) {
	resumes := []*models.Resume{}
	err := r.db.Order("uploaded_at DESC").Find(&resumes).Error
	return resumes, err
}

// FindByID returns a resume by its ID, or nil when no row exists.
func (r *ResumeRepo) FindByID(id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// FindActive returns the currently active resume, or nil when none is active.
func (r *ResumeRepo) FindActive() (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "is_active = ?", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// Add inserts a new resume into the database
func (r *ResumeRepo) Add(resume *models.Resume) error {
	return r.db.Create(resume).Error
}

// Update persists the full state of an existing resume
func (r *ResumeRepo) Update(resume *models.Resume) error {
	return r.db.Save(resume).Error
}

// Delete removes a resume by id, reporting whether a row was removed.
func (r *ResumeRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.Resume{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// SetActive marks the resume with the given id as the single active one.
// The whole activate-and-deactivate runs in one transaction: when the id
// does not exist everything rolls back and every existing flag is left
// untouched, so the store never ends up with zero active resumes.
func (r *ResumeRepo) SetActive(id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Resume{}).Where("id = ?", id).Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&models.Resume{}).Where("id <> ?", id).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.First(&resume, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}
