package services

import (
	"fmt"
	"strings"

	"narike/portfolio-api/internal/models"
)

// Placeholder tokens recognized in job match prompt templates. Tokens the
// template does not contain are simply not substituted.
const (
	TokenExperienceSummary = "{{experienceSummary}}"
	TokenSkillsSummary     = "{{skillsSummary}}"
	TokenJobDescription    = "{{jobDescription}}"
	TokenProjectSummary    = "{{projectSummary}}"
)

const monthLayout = "2006-01"

// BuildJobMatchPrompt renders the profile snapshot into the template's
// placeholder tokens. All substitutions happen in a single pass over the
// template, so rendered content can never be re-expanded.
func BuildJobMatchPrompt(jobDescription string, profile models.ProfileSnapshot, template string) string {
	replacer := strings.NewReplacer(
		TokenExperienceSummary, experienceSummary(profile.Experiences),
		TokenSkillsSummary, skillsSummary(profile.Skills),
		TokenJobDescription, jobDescription,
		TokenProjectSummary, projectSummary(profile.Projects),
	)
	return replacer.Replace(template)
}

func experienceSummary(experiences []models.Experience) string {
	blocks := make([]string, 0, len(experiences))
	for _, e := range experiences {
		end := "Present"
		if e.EndDate != nil {
			end = e.EndDate.Format(monthLayout)
		}
		blocks = append(blocks, fmt.Sprintf(
			"- %s at %s (%s to %s):\n  %s",
			e.Title, e.Company, e.StartDate.Format(monthLayout), end,
			strings.Join(e.Highlights, "\n  "),
		))
	}
	return strings.Join(blocks, "\n\n")
}

func skillsSummary(groups []models.SkillGroup) string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("- %s: %s", g.Category, strings.Join(g.Skills, ", ")))
	}
	return strings.Join(lines, "\n")
}

func projectSummary(projects []models.Project) string {
	blocks := make([]string, 0, len(projects))
	for _, p := range projects {
		lines := []string{
			fmt.Sprintf("- **%s**", p.Name),
			fmt.Sprintf("  Description: %s", p.Description),
		}
		if strings.TrimSpace(p.URL) != "" {
			lines = append(lines, fmt.Sprintf("  Live URL: %s", p.URL))
		}
		if strings.TrimSpace(p.GitHubRepo) != "" {
			lines = append(lines, fmt.Sprintf("  GitHub: %s", p.GitHubRepo))
		}
		if p.IsInProgress {
			lines = append(lines, "  Status: In progress")
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
