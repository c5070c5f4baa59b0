package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"narike/portfolio-api/internal/models"
	"narike/portfolio-api/internal/repositories"
	"narike/portfolio-api/internal/services"
)

// maxJobDescriptionLength mirrors the front end's input cap.
const maxJobDescriptionLength = 2500

// evaluateTimeout bounds one analysis end to end, so repeated provider
// backoff can never hold a request open indefinitely.
const evaluateTimeout = 2 * time.Minute

type JobMatchHandler struct {
	matcher      services.MatcherService
	jobMatchRepo repositories.JobMatchRepository
}

func NewJobMatchHandler(
	matcher services.MatcherService,
	jobMatchRepo repositories.JobMatchRepository,
) *JobMatchHandler {
	return &JobMatchHandler{
		matcher:      matcher,
		jobMatchRepo: jobMatchRepo,
	}
}

// HandleAnalyze handles POST /jobmatch
func (h *JobMatchHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.JobMatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	if len(req.JobDescription) > maxJobDescriptionLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description exceeds the maximum length of 2500 characters",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), evaluateTimeout)
	defer cancel()

	outcome := h.matcher.Evaluate(ctx, req.JobDescription)

	switch outcome.Kind() {
	case services.OutcomeSuccess:
		return c.JSON(models.JobMatchResponse{
			MatchEvaluation: outcome.Evaluation(),
			TailoredCv:      outcome.Document(),
		})
	case services.OutcomeQuotaExceeded:
		resp := fiber.Map{
			"error": "Analysis is rate limited right now. Please try again later.",
		}
		if outcome.RetryAfter() != "" {
			resp["retry_after"] = outcome.RetryAfter()
		}
		return c.Status(fiber.StatusTooManyRequests).JSON(resp)
	case services.OutcomeTransientFailure:
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": outcome.Reason(),
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": outcome.Reason(),
		})
	}
}

// HandleList handles GET /jobmatch
func (h *JobMatchHandler) HandleList(c *fiber.Ctx) error {
	var filter models.JobMatchFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid filter parameters",
		})
	}

	result, err := h.jobMatchRepo.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list job matches",
		})
	}

	return c.JSON(result)
}
