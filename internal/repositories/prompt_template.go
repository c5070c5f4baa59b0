package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"narike/portfolio-api/internal/models"
)

type PromptTemplateRepository interface {
	Create(template *models.PromptTemplate) error
	FindLatestByName(name string) (*models.PromptTemplate, error)
}

type promptTemplateRepository struct {
	db *gorm.DB
}

func NewPromptTemplateRepository(db *gorm.DB) PromptTemplateRepository {
	return &promptTemplateRepository{db: db}
}

func (r *promptTemplateRepository) Create(template *models.PromptTemplate) error {
	if err := r.db.Create(template).Error; err != nil {
		return fmt.Errorf("failed to create prompt template: %w", err)
	}
	return nil
}

// FindLatestByName returns the most recently created template with the given
// name. Older rows with the same name are kept as superseded versions.
func (r *promptTemplateRepository) FindLatestByName(name string) (*models.PromptTemplate, error) {
	var template models.PromptTemplate
	err := r.db.
		Where("name = ?", name).
		Order("created_at DESC").
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("prompt template not found")
		}
		return nil, fmt.Errorf("failed to find prompt template: %w", err)
	}
	return &template, nil
}
