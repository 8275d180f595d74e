package domain

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"
)

// CategorySpec describes one content category: its identifier, the label
// shown in rendered pages, and the prompt template used to ask the model
// for an article. Specs are process-wide constants and never mutated.
type CategorySpec struct {
	ID             string
	Label          string
	PromptTemplate string

	// parsed is the compiled form of PromptTemplate.
	parsed *template.Template
}

// promptData carries the values substituted into a prompt template.
type promptData struct {
	Topic string
}

// categoryRegistry holds the fixed set of supported categories.
var categoryRegistry = buildRegistry([]CategorySpec{
	{
		ID:             "facts",
		Label:          "Interesting Facts",
		PromptTemplate: "Write an engaging, well-researched article presenting surprising and verified facts about {{.Topic}}.",
	},
	{
		ID:             "history",
		Label:          "History",
		PromptTemplate: "Write an engaging article covering the history and evolution of {{.Topic}}, from its origins to the present day.",
	},
	{
		ID:             "future_analysis",
		Label:          "Future Analysis",
		PromptTemplate: "Write a forward-looking analysis of where {{.Topic}} is heading, covering emerging trends and likely developments.",
	},
	{
		ID:             "how_it_works",
		Label:          "How It Works",
		PromptTemplate: "Write a clear explainer article describing how {{.Topic}} works, breaking the mechanics down for a general audience.",
	},
	{
		ID:             "comparisons",
		Label:          "Comparisons",
		PromptTemplate: "Write a balanced article comparing {{.Topic}} with its main alternatives, covering strengths and weaknesses of each.",
	},
	{
		ID:             "common_myths",
		Label:          "Common Myths",
		PromptTemplate: "Write an article debunking the most common myths and misconceptions about {{.Topic}}, explaining the reality behind each.",
	},
	{
		ID:             "getting_started",
		Label:          "Getting Started",
		PromptTemplate: "Write a practical beginner's guide to getting started with {{.Topic}}, including first steps and pitfalls to avoid.",
	},
})

// buildRegistry compiles the prompt templates and indexes the specs by ID.
// It panics on a malformed template since the registry is a compile-time
// constant of the application.
func buildRegistry(specs []CategorySpec) map[string]CategorySpec {
	registry := make(map[string]CategorySpec, len(specs))
	for _, spec := range specs {
		spec.parsed = template.Must(template.New(spec.ID).Parse(spec.PromptTemplate))
		registry[spec.ID] = spec
	}
	return registry
}

// LookupCategory returns the CategorySpec for the given ID.
// Returns ErrUnknownCategory if the ID is not registered.
func LookupCategory(id string) (CategorySpec, error) {
	spec, ok := categoryRegistry[id]
	if !ok {
		return CategorySpec{}, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	return spec, nil
}

// IsValidCategory reports whether the given ID names a registered category.
func IsValidCategory(id string) bool {
	_, ok := categoryRegistry[id]
	return ok
}

// CategoryIDs returns the registered category IDs in lexical order.
func CategoryIDs() []string {
	ids := make([]string, 0, len(categoryRegistry))
	for id := range categoryRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Prompt substitutes the topic into the category's prompt template.
func (c CategorySpec) Prompt(topic string) (string, error) {
	if topic == "" {
		return "", ErrEmptyTopic
	}

	var buf bytes.Buffer
	if err := c.parsed.Execute(&buf, promptData{Topic: topic}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template for category %q: %w", c.ID, err)
	}
	return buf.String(), nil
}
