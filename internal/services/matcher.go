package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"narike/portfolio-api/internal/models"
	"narike/portfolio-api/internal/repositories"
)

// JobMatchTemplateName selects the prompt template used for job match
// analysis; the most recently created row with this name wins.
const JobMatchTemplateName = "Job Match Evaluation"

// The candidate's real contact details. The prompt only ever contains privacy
// placeholders, so whatever contact values the model echoes back are replaced
// with these before the CV is rendered.
const (
	candidateName     = "Narike Avenant"
	candidateEmail    = "narike@gmail.com"
	candidatePhone    = "0512278249"
	candidateLinkedIn = "https://www.linkedin.com/in/narike-avenant-65008037/"
	candidateGitHub   = "https://github.com/Eureka-dot-net"
	candidateWebsite  = "https://narike-personalprofile.azurewebsites.net/"
)

type MatcherService interface {
	Evaluate(ctx context.Context, jobDescription string) *JobMatchOutcome
}

type matcherService struct {
	experienceRepo repositories.ExperienceRepository
	skillRepo      repositories.SkillRepository
	projectRepo    repositories.ProjectRepository
	templateRepo   repositories.PromptTemplateRepository
	jobMatchRepo   repositories.JobMatchRepository
	geminiService  GeminiService
	cvBuilder      CvFileBuilder
}

func NewMatcherService(
	experienceRepo repositories.ExperienceRepository,
	skillRepo repositories.SkillRepository,
	projectRepo repositories.ProjectRepository,
	templateRepo repositories.PromptTemplateRepository,
	jobMatchRepo repositories.JobMatchRepository,
	geminiService GeminiService,
	cvBuilder CvFileBuilder,
) MatcherService {
	return &matcherService{
		experienceRepo: experienceRepo,
		skillRepo:      skillRepo,
		projectRepo:    projectRepo,
		templateRepo:   templateRepo,
		jobMatchRepo:   jobMatchRepo,
		geminiService:  geminiService,
		cvBuilder:      cvBuilder,
	}
}

// Evaluate runs the full analysis workflow for one job description. It always
// returns an outcome; no step failure escapes as an error or panic. Retries
// live entirely inside the provider client — every step here is a terminal
// failure point.
func (m *matcherService) Evaluate(ctx context.Context, jobDescription string) *JobMatchOutcome {
	experiences, err := m.experienceRepo.FindAll()
	if err != nil {
		return PermanentFailureOutcome("Could not load experience: " + err.Error())
	}

	skills, err := m.skillRepo.FindGrouped()
	if err != nil {
		return PermanentFailureOutcome("Could not load skills: " + err.Error())
	}

	projects, err := m.projectRepo.FindAll()
	if err != nil {
		return PermanentFailureOutcome("Could not load projects: " + err.Error())
	}

	promptTemplate, err := m.templateRepo.FindLatestByName(JobMatchTemplateName)
	if err != nil {
		return PermanentFailureOutcome("Could not load prompt template: " + err.Error())
	}

	profile := models.ProfileSnapshot{
		Experiences: experiences,
		Skills:      skills,
		Projects:    projects,
	}

	prompt := BuildJobMatchPrompt(jobDescription, profile, promptTemplate.Template)

	raw, err := m.geminiService.GenerateJobMatch(ctx, prompt)
	if err != nil {
		return providerFailureOutcome(err)
	}

	analysis, err := ParseJobMatchResponse(raw)
	if err != nil {
		return PermanentFailureOutcome(err.Error())
	}

	// Never trust model-returned contact details.
	analysis.TailoredCv.Name = candidateName
	analysis.TailoredCv.Email = candidateEmail
	analysis.TailoredCv.Phone = candidatePhone
	analysis.TailoredCv.LinkedIn = candidateLinkedIn
	analysis.TailoredCv.GitHub = candidateGitHub
	analysis.TailoredCv.PersonalWebsite = candidateWebsite

	document, err := m.cvBuilder.GenerateDoc(ctx, &analysis.TailoredCv)
	if err != nil {
		return PermanentFailureOutcome(err.Error())
	}

	// Best effort bookkeeping: the user already has a valid analysis, so a
	// failed save is logged and swallowed.
	record := &models.JobMatch{
		JobTitle:        analysis.JobInformation.JobTitle,
		Company:         analysis.JobInformation.Company,
		MatchPercentage: analysis.MatchEvaluation.MatchPercentage,
		JobDescription:  jobDescription,
		Requirements:    analysis.JobInformation.Requirements,
		Salary:          analysis.JobInformation.Salary,
		Location:        analysis.JobInformation.Location,
	}
	if err := m.jobMatchRepo.Create(record); err != nil {
		log.Printf("⚠️  Failed to save job match history: %v\n", err)
	}

	return SuccessOutcome(analysis.MatchEvaluation, analysis.TailoredCv, document)
}

func providerFailureOutcome(err error) *JobMatchOutcome {
	var quotaErr *QuotaExceededError
	if errors.As(err, &quotaErr) {
		hint := ""
		if quotaErr.RetryAfterSeconds > 0 {
			hint = fmt.Sprintf("%d seconds", quotaErr.RetryAfterSeconds)
		}
		return QuotaExceededOutcome(hint)
	}

	var unavailableErr *ServiceUnavailableError
	if errors.As(err, &unavailableErr) {
		return TransientFailureOutcome(err.Error())
	}

	var statusErr *ProviderStatusError
	if errors.As(err, &statusErr) {
		return PermanentFailureOutcome(err.Error())
	}

	// Transport failures and cancellations may clear up on a later request.
	return TransientFailureOutcome(err.Error())
}
