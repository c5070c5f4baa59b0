package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"narike/portfolio-api/internal/models"
)

type ExperienceRepository interface {
	FindAll() ([]models.Experience, error)
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

// FindAll returns all experience entries, current roles first.
func (r *experienceRepository) FindAll() ([]models.Experience, error) {
	var experiences []models.Experience
	err := r.db.
		Order("end_date DESC NULLS FIRST").
		Order("start_date DESC").
		Find(&experiences).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find experiences: %w", err)
	}

	if len(experiences) == 0 {
		return nil, fmt.Errorf("no experiences found")
	}

	return experiences, nil
}
