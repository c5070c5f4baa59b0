package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"narike/portfolio-api/internal/models"
)

func TestRenderCvHTML(t *testing.T) {
	cv := &models.TailoredCv{
		Name:            "Narike Avenant",
		Email:           "narike@gmail.com",
		Phone:           "0512278249",
		LinkedIn:        "https://www.linkedin.com/in/narike-avenant-65008037/",
		GitHub:          "https://github.com/Eureka-dot-net",
		PersonalWebsite: "https://narike-personalprofile.azurewebsites.net/",
		Summary:         "Backend engineer with DevOps roots.",
		Experience: []models.CvExperience{
			{
				Title:      "DevOps Consultant",
				Company:    "ALM Online",
				StartDate:  "2018-06",
				EndDate:    "2025-03",
				Highlights: []string{"Automated release pipelines"},
			},
			{
				Title:      "Software Developer",
				Company:    "Freelance",
				StartDate:  "2025-04",
				Highlights: []string{"Building portfolio services in Go"},
			},
		},
		Projects: []models.CvProject{
			{Name: "Portfolio API", Description: "Backend for my site"},
		},
		Skills: []models.SkillGroup{
			{Category: "Backend", Skills: []string{"Go", "C#"}},
		},
	}

	html, err := renderCvHTML(cv)

	assert.NoError(t, err)
	assert.Contains(t, html, "<h1>Narike Avenant</h1>")
	assert.Contains(t, html, "narike@gmail.com")
	assert.Contains(t, html, "Backend engineer with DevOps roots.")
	assert.Contains(t, html, "DevOps Consultant — ALM Online")
	assert.Contains(t, html, "2018-06 to 2025-03")
	assert.Contains(t, html, "2025-04 to Present")
	assert.Contains(t, html, "<li>Automated release pipelines</li>")
	assert.Contains(t, html, "Portfolio API")
	assert.Contains(t, html, "<b>Backend:</b> Go, C#")
}

func TestRenderCvHTMLEscapesContent(t *testing.T) {
	cv := &models.TailoredCv{
		Name:    "Narike Avenant",
		Summary: "<script>alert(1)</script>",
	}

	html, err := renderCvHTML(cv)

	assert.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
