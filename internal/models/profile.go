package models

import (
	"time"
)

type AboutMe struct {
	ID                int       `gorm:"primary_key" json:"id"`
	FullName          string    `gorm:"type:text;not null" json:"full_name"`
	Bio               string    `gorm:"type:text" json:"bio"`
	Location          string    `gorm:"type:text" json:"location"`
	Email             string    `gorm:"type:text" json:"email"`
	GitHub            string    `gorm:"type:text" json:"github"`
	LinkedIn          string    `gorm:"type:text" json:"linkedin"`
	ProfilePictureURL string    `gorm:"type:text" json:"profile_picture_url"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AboutMe) TableName() string {
	return "about_me"
}

type Experience struct {
	ID         int        `gorm:"primary_key" json:"id"`
	Title      string     `gorm:"type:text;not null" json:"title"`
	Company    string     `gorm:"type:text;not null" json:"company"`
	Location   string     `gorm:"type:text" json:"location"`
	StartDate  time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate    *time.Time `gorm:"type:date" json:"end_date,omitempty"` // nil while the role is current
	Highlights []string   `gorm:"serializer:json" json:"highlights"`
}

func (Experience) TableName() string {
	return "experiences"
}

type Project struct {
	ID           int            `gorm:"primary_key" json:"id"`
	Name         string         `gorm:"type:text;not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	URL          string         `gorm:"type:text" json:"url,omitempty"`
	GitHubRepo   string         `gorm:"type:text" json:"github_repo,omitempty"`
	IsInProgress bool           `gorm:"default:false" json:"is_in_progress"`
	Images       []ProjectImage `gorm:"foreignKey:ProjectID" json:"images,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

type ProjectImage struct {
	ID        int    `gorm:"primary_key" json:"id"`
	URL       string `gorm:"type:text;not null" json:"url"`
	ProjectID int    `gorm:"not null" json:"project_id"`
}

func (ProjectImage) TableName() string {
	return "project_images"
}

type Skill struct {
	ID              int           `gorm:"primary_key" json:"id"`
	Name            string        `gorm:"type:text;not null" json:"name"`
	SkillCategoryID int           `gorm:"not null" json:"skill_category_id"`
	SkillCategory   SkillCategory `gorm:"foreignKey:SkillCategoryID" json:"-"`
}

func (Skill) TableName() string {
	return "skills"
}

type SkillCategory struct {
	ID     int     `gorm:"primary_key" json:"id"`
	Title  string  `gorm:"type:text;not null" json:"title"`
	Skills []Skill `gorm:"foreignKey:SkillCategoryID" json:"skills,omitempty"`
}

func (SkillCategory) TableName() string {
	return "skill_categories"
}
