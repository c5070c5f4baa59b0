package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"narike/portfolio-api/internal/models"
)

type SkillRepository interface {
	FindGrouped() ([]models.SkillGroup, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

// FindGrouped returns all skills grouped by category title.
func (r *skillRepository) FindGrouped() ([]models.SkillGroup, error) {
	var categories []models.SkillCategory
	err := r.db.
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("skills.id ASC")
		}).
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find skills: %w", err)
	}

	var groups []models.SkillGroup
	for _, category := range categories {
		if len(category.Skills) == 0 {
			continue
		}
		group := models.SkillGroup{Category: category.Title}
		for _, skill := range category.Skills {
			group.Skills = append(group.Skills, skill.Name)
		}
		groups = append(groups, group)
	}

	if len(groups) == 0 {
		return nil, fmt.Errorf("no skills found")
	}

	return groups, nil
}
