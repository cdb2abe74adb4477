package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project with its long-form case study sections
type Project struct {
	ID              uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title           string     `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string     `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription *string    `json:"longDescription,omitempty" db:"long_description" gorm:"type:text"`
	Category        string     `json:"category" db:"category" gorm:"type:text;not null"`
	Tools           StringList `json:"tools" db:"tools" gorm:"type:text"`
	ImageURL        *string    `json:"imageUrl,omitempty" db:"image_url" gorm:"column:image_url;type:text"`
	CaseStudyURL    *string    `json:"caseStudyUrl,omitempty" db:"case_study_url" gorm:"column:case_study_url;type:text"`
	ScormURL        *string    `json:"scormUrl,omitempty" db:"scorm_url" gorm:"column:scorm_url;type:text"`
	DemoURL         *string    `json:"demoUrl,omitempty" db:"demo_url" gorm:"column:demo_url;type:text"`
	Featured        bool       `json:"featured" db:"featured" gorm:"not null;default:false"`
	Challenge       *string    `json:"challenge,omitempty" db:"challenge" gorm:"type:text"`
	Solution        *string    `json:"solution,omitempty" db:"solution" gorm:"type:text"`
	Process         *string    `json:"process,omitempty" db:"process" gorm:"type:text"`
	Results         *string    `json:"results,omitempty" db:"results" gorm:"type:text"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at" gorm:"not null"`
}

// InsertProject is the payload for creating a project
type InsertProject struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	LongDescription *string  `json:"longDescription"`
	Category        string   `json:"category" validate:"required"`
	Tools           []string `json:"tools"`
	ImageURL        *string  `json:"imageUrl"`
	CaseStudyURL    *string  `json:"caseStudyUrl"`
	ScormURL        *string  `json:"scormUrl"`
	DemoURL         *string  `json:"demoUrl"`
	Featured        bool     `json:"featured"`
	Challenge       *string  `json:"challenge"`
	Solution        *string  `json:"solution"`
	Process         *string  `json:"process"`
	Results         *string  `json:"results"`
}

// UpdateProject is the partial-update payload; nil fields are left unchanged
type UpdateProject struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"longDescription"`
	Category        *string   `json:"category"`
	Tools           *[]string `json:"tools"`
	ImageURL        *string   `json:"imageUrl"`
	CaseStudyURL    *string   `json:"caseStudyUrl"`
	ScormURL        *string   `json:"scormUrl"`
	DemoURL         *string   `json:"demoUrl"`
	Featured        *bool     `json:"featured"`
	Challenge       *string   `json:"challenge"`
	Solution        *string   `json:"solution"`
	Process         *string   `json:"process"`
	Results         *string   `json:"results"`
}

// NewProject builds a Project from an insert payload, applying defaults.
func NewProject(input InsertProject) *Project {
	tools := input.Tools
	if tools == nil {
		tools = []string{}
	}
	return &Project{
		ID:              uuid.New(),
		Title:           input.Title,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Category:        input.Category,
		Tools:           StringList(tools),
		ImageURL:        input.ImageURL,
		CaseStudyURL:    input.CaseStudyURL,
		ScormURL:        input.ScormURL,
		DemoURL:         input.DemoURL,
		Featured:        input.Featured,
		Challenge:       input.Challenge,
		Solution:        input.Solution,
		Process:         input.Process,
		Results:         input.Results,
		CreatedAt:       time.Now().UTC(),
	}
}

// Apply merges the supplied fields of a partial update onto the project.
func (p *Project) Apply(input UpdateProject) {
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.LongDescription != nil {
		p.LongDescription = input.LongDescription
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Tools != nil {
		p.Tools = StringList(*input.Tools)
	}
	if input.ImageURL != nil {
		p.ImageURL = input.ImageURL
	}
	if input.CaseStudyURL != nil {
		p.CaseStudyURL = input.CaseStudyURL
	}
	if input.ScormURL != nil {
		p.ScormURL = input.ScormURL
	}
	if input.DemoURL != nil {
		p.DemoURL = input.DemoURL
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if input.Challenge != nil {
		p.Challenge = input.Challenge
	}
	if input.Solution != nil {
		p.Solution = input.Solution
	}
	if input.Process != nil {
		p.Process = input.Process
	}
	if input.Results != nil {
		p.Results = input.Results
	}
}
