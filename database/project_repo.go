package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectFilter narrows FindAll results. Zero values mean no filtering.
type ProjectFilter struct {
	Category string
	Featured *bool
}

// FindAll returns projects newest-first, optionally filtered by exact
// category (case-insensitive) and featured flag.
func (r *ProjectRepo) FindAll(filter ProjectFilter) ([]*models.Project, error) {
	query := r.db.Order("created_at DESC")
	if filter.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	projects := []*models.Project{}
	err := query.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no row exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update persists the full state of an existing project
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id, reporting whether a row was removed.
func (r *ProjectRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
