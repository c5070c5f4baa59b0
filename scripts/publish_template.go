package main

import (
	"log"
	"os"

	"narike/portfolio-api/internal/config"
	"narike/portfolio-api/internal/models"
	"narike/portfolio-api/internal/repositories"
	"narike/portfolio-api/internal/services"
)

// Publishes a new version of the job match prompt template from a text file.
// The server always picks the newest row with the template name, so this
// takes effect without a redeploy.
//
// Usage: go run scripts/publish_template.go <template-file> [description]
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <template-file> [description]", os.Args[0])
	}

	body, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("❌ Failed to read template file: %v", err)
	}

	description := "Updated job match evaluation template"
	if len(os.Args) > 2 {
		description = os.Args[2]
	}

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	templateRepo := repositories.NewPromptTemplateRepository(db)

	template := &models.PromptTemplate{
		Name:        services.JobMatchTemplateName,
		Description: description,
		Template:    string(body),
	}

	if err := templateRepo.Create(template); err != nil {
		log.Fatalf("❌ Failed to publish template: %v", err)
	}

	log.Printf("✅ Published template %q version %d\n", template.Name, template.ID)
}
