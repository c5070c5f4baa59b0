package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"narike/portfolio-api/internal/models"
)

const (
	cvFileName    = "TailoredCV.pdf"
	cvContentType = "application/pdf"
)

type CvFileBuilder interface {
	GenerateDoc(ctx context.Context, cv *models.TailoredCv) (models.FileAttachment, error)
}

type cvFileBuilder struct{}

func NewCvFileBuilder() CvFileBuilder {
	return &cvFileBuilder{}
}

var cvTemplate = template.Must(template.New("cv").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; color: #333333; margin: 40px; }
  h1 { text-align: center; color: #2F5597; margin-bottom: 4px; }
  .contact { text-align: center; font-size: 0.9em; margin-bottom: 24px; }
  h2 { color: #2F5597; border-bottom: 1px solid #4472C4; padding-bottom: 2px; }
  .entry { margin-bottom: 14px; }
  .entry-title { font-weight: bold; }
  .entry-meta { font-style: italic; font-size: 0.9em; }
  ul { margin: 4px 0 0 18px; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<div class="contact">{{.Email}} | {{.Phone}} | {{.LinkedIn}} | {{.GitHub}} | {{.PersonalWebsite}}</div>
{{if .Summary}}<h2>Professional Summary</h2><p>{{.Summary}}</p>{{end}}
{{if .Experience}}<h2>Experience</h2>
{{range .Experience}}<div class="entry">
  <div class="entry-title">{{.Title}} — {{.Company}}</div>
  <div class="entry-meta">{{.StartDate}}{{if .EndDate}} to {{.EndDate}}{{else}} to Present{{end}}{{if .Location}} · {{.Location}}{{end}}</div>
  <ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>
</div>{{end}}{{end}}
{{if .Projects}}<h2>Projects</h2>
{{range .Projects}}<div class="entry">
  <div class="entry-title">{{.Name}}</div>
  <p>{{.Description}}</p>
</div>{{end}}{{end}}
{{if .Skills}}<h2>Skills</h2>
<ul>{{range .Skills}}<li><b>{{.Category}}:</b> {{join .Skills ", "}}</li>{{end}}</ul>{{end}}
</body>
</html>`))

// GenerateDoc renders the tailored CV into HTML and prints it to PDF with a
// headless Chrome instance.
func (b *cvFileBuilder) GenerateDoc(ctx context.Context, cv *models.TailoredCv) (models.FileAttachment, error) {
	html, err := renderCvHTML(cv)
	if err != nil {
		return models.FileAttachment{}, err
	}

	pdf, err := printToPDF(ctx, html)
	if err != nil {
		return models.FileAttachment{}, fmt.Errorf("failed to render CV document: %w", err)
	}

	return models.FileAttachment{
		FileName:    cvFileName,
		ContentType: cvContentType,
		Content:     pdf,
	}, nil
}

func renderCvHTML(cv *models.TailoredCv) (string, error) {
	var buf bytes.Buffer
	if err := cvTemplate.Execute(&buf, cv); err != nil {
		return "", fmt.Errorf("failed to render CV template: %w", err)
	}
	return buf.String(), nil
}

func printToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	chromeCtx, cancelChrome := chromedp.NewContext(allocCtx)
	defer cancelChrome()

	var pdf []byte
	err := chromedp.Run(chromeCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 in inches
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}
