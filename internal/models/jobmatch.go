package models

import (
	"time"

	"github.com/google/uuid"
)

// JobMatch is the persisted summary of one completed analysis.
type JobMatch struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobTitle        string    `gorm:"type:text;not null" json:"job_title"`
	Company         string    `gorm:"type:text;not null" json:"company"`
	MatchPercentage int       `gorm:"not null" json:"match_percentage"`
	JobDescription  string    `gorm:"type:text" json:"job_description,omitempty"`
	Requirements    string    `gorm:"type:text" json:"requirements,omitempty"`
	Salary          string    `gorm:"type:text" json:"salary,omitempty"`
	Location        string    `gorm:"type:text" json:"location,omitempty"`
	Status          string    `gorm:"type:text;default:'new'" json:"status"`
	MatchedDate     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"matched_date"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobMatch) TableName() string {
	return "job_matches"
}

type JobMatchFilter struct {
	SearchTerm         string     `query:"search"`
	Company            string     `query:"company"`
	Status             string     `query:"status"`
	MinMatchPercentage *int       `query:"min_match"`
	FromDate           *time.Time `query:"from"`
	ToDate             *time.Time `query:"to"`
	Page               int        `query:"page"`
	PageSize           int        `query:"page_size"`
}

type JobMatchListItem struct {
	ID              uuid.UUID `json:"id"`
	JobTitle        string    `json:"job_title"`
	Company         string    `json:"company"`
	MatchPercentage int       `json:"match_percentage"`
	Salary          string    `json:"salary,omitempty"`
	Location        string    `json:"location,omitempty"`
	Status          string    `json:"status"`
	MatchedDate     time.Time `json:"matched_date"`
}

type JobMatchListResponse struct {
	Items      []JobMatchListItem `json:"items"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}
