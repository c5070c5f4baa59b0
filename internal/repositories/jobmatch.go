package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"narike/portfolio-api/internal/models"
)

type JobMatchRepository interface {
	Create(match *models.JobMatch) error
	List(filter models.JobMatchFilter) (*models.JobMatchListResponse, error)
}

type jobMatchRepository struct {
	db *gorm.DB
}

func NewJobMatchRepository(db *gorm.DB) JobMatchRepository {
	return &jobMatchRepository{db: db}
}

func (r *jobMatchRepository) Create(match *models.JobMatch) error {
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	if match.Status == "" {
		match.Status = "new"
	}
	if match.MatchedDate.IsZero() {
		match.MatchedDate = time.Now().UTC()
	}

	if err := r.db.Create(match).Error; err != nil {
		return fmt.Errorf("failed to create job match: %w", err)
	}
	return nil
}

func (r *jobMatchRepository) List(filter models.JobMatchFilter) (*models.JobMatchListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	query := r.db.Model(&models.JobMatch{})

	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(job_title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(job_description) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Company != "" {
		query = query.Where("LOWER(company) LIKE ?", "%"+strings.ToLower(filter.Company)+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MinMatchPercentage != nil {
		query = query.Where("match_percentage >= ?", *filter.MinMatchPercentage)
	}
	if filter.FromDate != nil {
		query = query.Where("matched_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("matched_date <= ?", *filter.ToDate)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count job matches: %w", err)
	}

	var matches []models.JobMatch
	err := query.
		Order("matched_date DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job matches: %w", err)
	}

	items := make([]models.JobMatchListItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, models.JobMatchListItem{
			ID:              m.ID,
			JobTitle:        m.JobTitle,
			Company:         m.Company,
			MatchPercentage: m.MatchPercentage,
			Salary:          m.Salary,
			Location:        m.Location,
			Status:          m.Status,
			MatchedDate:     m.MatchedDate,
		})
	}

	return &models.JobMatchListResponse{
		Items:      items,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}
