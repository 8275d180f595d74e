// Package render turns generated article content into complete,
// self-contained HTML documents. The page chrome and styling are static;
// rendering the same input always yields the same output.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

// templateFS contains the HTML templates bundled with the binary.
//
//go:embed templates/*
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.gohtml"))

// Page holds everything needed to render one article document.
type Page struct {
	// Topic is the article subject, used for the title and footer.
	Topic string

	// CategoryLabel is the human-readable category name.
	CategoryLabel string

	// BodyHTML is the article markup produced by the model. It is
	// embedded as-is, so callers must only pass model output they trust.
	BodyHTML string

	// MetaDescription populates the <meta name="description"> tag.
	MetaDescription string
}

// pageData is the template payload; BodyHTML is marked safe so the
// article markup is not escaped.
type pageData struct {
	Topic           string
	CategoryLabel   string
	BodyHTML        template.HTML
	MetaDescription string
}

// Render produces a complete styled HTML document for the page.
func Render(p Page) (string, error) {
	if p.Topic == "" {
		return "", fmt.Errorf("render: topic cannot be empty")
	}
	if p.CategoryLabel == "" {
		return "", fmt.Errorf("render: category label cannot be empty")
	}

	var b strings.Builder
	err := pageTemplate.Execute(&b, pageData{
		Topic:           p.Topic,
		CategoryLabel:   p.CategoryLabel,
		BodyHTML:        template.HTML(p.BodyHTML),
		MetaDescription: p.MetaDescription,
	})
	if err != nil {
		return "", fmt.Errorf("render: failed to execute page template: %w", err)
	}

	return b.String(), nil
}
