package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"narike/portfolio-api/internal/models"
)

type AboutRepository interface {
	Find() (*models.AboutMe, error)
}

type aboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

// Find returns the single about-me row.
func (r *aboutRepository) Find() (*models.AboutMe, error) {
	var about models.AboutMe
	if err := r.db.First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("about me not found")
		}
		return nil, fmt.Errorf("failed to find about me: %w", err)
	}
	return &about, nil
}
