package handlers

import (
	"github.com/gofiber/fiber/v2"

	"narike/portfolio-api/internal/repositories"
)

type ProfileHandler struct {
	aboutRepo      repositories.AboutRepository
	experienceRepo repositories.ExperienceRepository
	skillRepo      repositories.SkillRepository
	projectRepo    repositories.ProjectRepository
}

func NewProfileHandler(
	aboutRepo repositories.AboutRepository,
	experienceRepo repositories.ExperienceRepository,
	skillRepo repositories.SkillRepository,
	projectRepo repositories.ProjectRepository,
) *ProfileHandler {
	return &ProfileHandler{
		aboutRepo:      aboutRepo,
		experienceRepo: experienceRepo,
		skillRepo:      skillRepo,
		projectRepo:    projectRepo,
	}
}

func (h *ProfileHandler) HandleGetAbout(c *fiber.Ctx) error {
	about, err := h.aboutRepo.Find()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(about)
}

func (h *ProfileHandler) HandleGetExperience(c *fiber.Ctx) error {
	experiences, err := h.experienceRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(experiences)
}

func (h *ProfileHandler) HandleGetSkills(c *fiber.Ctx) error {
	groups, err := h.skillRepo.FindGrouped()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(groups)
}

func (h *ProfileHandler) HandleGetProjects(c *fiber.Ctx) error {
	projects, err := h.projectRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(projects)
}
