package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"narike/portfolio-api/internal/models"
)

type ProjectRepository interface {
	FindAll() ([]models.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Preload("Images").
		Order("id ASC").
		Order("name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find projects: %w", err)
	}

	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects found")
	}

	return projects, nil
}
