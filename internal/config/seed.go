package config

import (
	"log"
	"time"

	"gorm.io/gorm"

	"narike/portfolio-api/internal/models"
)

// jobMatchPromptV1 is the initial "Job Match Evaluation" template. Newer
// versions are inserted as additional rows with the same name; the latest
// CreatedAt wins. Contact details use privacy placeholders so the model never
// sees real contact data — the server substitutes the real values afterwards.
const jobMatchPromptV1 = `You are an expert recruiter evaluating how well a candidate matches a job description.

CANDIDATE EXPERIENCE:
{{experienceSummary}}

CANDIDATE SKILLS:
{{skillsSummary}}

CANDIDATE PROJECTS:
{{projectSummary}}

JOB DESCRIPTION:
{{jobDescription}}

Evaluate the match and produce a tailored CV that emphasises the most relevant experience, skills and projects for this job. Do not invent experience the candidate does not have. Use "CANDIDATE_NAME", "CANDIDATE_EMAIL", "CANDIDATE_PHONE", "CANDIDATE_LINKEDIN_URL", "CANDIDATE_GITHUB_URL" and "CANDIDATE_PORTFOLIO_URL" as placeholders for contact details.

Return ONLY a JSON object in exactly this shape, with no commentary:
{
  "jobInformation": {
    "jobTitle": "<job title from the description>",
    "company": "<company name, or empty string>",
    "salary": "<salary if stated>",
    "location": "<location if stated>",
    "requirements": "<one-line summary of the key requirements>"
  },
  "matchEvaluation": {
    "matchPercentage": <0-100>,
    "explanation": "<2-4 paragraphs explaining the score, separated by \n>"
  },
  "tailoredCv": {
    "name": "CANDIDATE_NAME",
    "email": "CANDIDATE_EMAIL",
    "phone": "CANDIDATE_PHONE",
    "linkedIn": "CANDIDATE_LINKEDIN_URL",
    "gitHub": "CANDIDATE_GITHUB_URL",
    "personalWebsite": "CANDIDATE_PORTFOLIO_URL",
    "summary": "<short professional summary tailored to the job>",
    "experience": [ { "title": "", "company": "", "location": "", "startDate": "yyyy-MM", "endDate": "yyyy-MM or empty if current", "highlights": [""] } ],
    "projects": [ { "name": "", "description": "", "url": "", "gitHubRepo": "" } ],
    "skills": [ { "category": "", "skills": [""] } ]
  }
}`

// SeedData populates empty tables with the candidate's profile. Safe to run
// on every startup.
func SeedData(db *gorm.DB) error {
	var aboutCount int64
	if err := db.Model(&models.AboutMe{}).Count(&aboutCount).Error; err != nil {
		return err
	}
	if aboutCount == 0 {
		about := &models.AboutMe{
			FullName: "Narike Avenant",
			Bio: "Skilled IT professional with over 17 years of experience in software development " +
				"and DevOps engineering, with a focus on CI/CD pipelines and cloud infrastructure.",
			Location:          "Netanya, Israel",
			Email:             "narike@gmail.com",
			GitHub:            "https://github.com/Eureka-dot-net",
			LinkedIn:          "https://www.linkedin.com/in/narike-avenant-65008037/",
			ProfilePictureURL: "/images/profile.jpg",
		}
		if err := db.Create(about).Error; err != nil {
			return err
		}
		log.Println("✅ Seeded about me")
	}

	var experienceCount int64
	if err := db.Model(&models.Experience{}).Count(&experienceCount).Error; err != nil {
		return err
	}
	if experienceCount == 0 {
		end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		experiences := []models.Experience{
			{
				Title:     "DevOps Consultant",
				Company:   "ALM Online",
				Location:  "UK / Remote",
				StartDate: time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   &end,
				Highlights: []string{
					"Built and maintained CI/CD pipelines in Azure DevOps for multiple product teams",
					"Managed cloud infrastructure and release automation",
					"Mentored developers on pipeline and branching strategy",
				},
			},
			{
				Title:     "Software Developer",
				Company:   "Independent",
				Location:  "Remote",
				StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				Highlights: []string{
					"Built a full-stack personal portfolio platform with an AI-assisted job match analyzer",
				},
			},
		}
		if err := db.Create(&experiences).Error; err != nil {
			return err
		}
		log.Println("✅ Seeded experience")
	}

	var categoryCount int64
	if err := db.Model(&models.SkillCategory{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		categories := []models.SkillCategory{
			{Title: "Backend", Skills: []models.Skill{
				{Name: "Go"}, {Name: "C#"}, {Name: "REST APIs"}, {Name: "PostgreSQL"},
			}},
			{Title: "DevOps", Skills: []models.Skill{
				{Name: "Azure DevOps"}, {Name: "Docker"}, {Name: "CI/CD"}, {Name: "Terraform"},
			}},
			{Title: "Frontend", Skills: []models.Skill{
				{Name: "React"}, {Name: "TypeScript"},
			}},
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		log.Println("✅ Seeded skills")
	}

	var projectCount int64
	if err := db.Model(&models.Project{}).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount == 0 {
		projects := []models.Project{
			{
				Name:         "Personal Portfolio Platform",
				Description:  "Full-stack portfolio site with an AI job match analyzer that scores job descriptions against the candidate profile and generates a tailored CV.",
				URL:          "https://narike-personalprofile.azurewebsites.net/",
				GitHubRepo:   "https://github.com/Eureka-dot-net",
				IsInProgress: true,
			},
		}
		if err := db.Create(&projects).Error; err != nil {
			return err
		}
		log.Println("✅ Seeded projects")
	}

	var templateCount int64
	err := db.Model(&models.PromptTemplate{}).
		Where("name = ?", "Job Match Evaluation").
		Count(&templateCount).Error
	if err != nil {
		return err
	}
	if templateCount == 0 {
		template := &models.PromptTemplate{
			Name:        "Job Match Evaluation",
			Description: "Evaluates how well the candidate matches a job description and tailors a CV",
			Template:    jobMatchPromptV1,
		}
		if err := db.Create(template).Error; err != nil {
			return err
		}
		log.Println("✅ Seeded job match prompt template")
	}

	return nil
}
