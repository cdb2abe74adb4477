package database

import (
	"github.com/ksalau/learnflow-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo     *ProjectRepo
	blogPostRepo    *BlogPostRepo
	testimonialRepo *TestimonialRepo
	contactRepo     *ContactRepo
	resumeRepo      *ResumeRepo
	userRepo        *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:     NewProjectRepo(db),
		blogPostRepo:    NewBlogPostRepo(db),
		testimonialRepo: NewTestimonialRepo(db),
		contactRepo:     NewContactRepo(db),
		resumeRepo:      NewResumeRepo(db),
		userRepo:        NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) ResumeRepo() *ResumeRepo {
	return d.resumeRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// Migrate creates or updates the schema for every entity table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.ContactSubmission{},
		&models.Resume{},
		&models.User{},
	)
}
