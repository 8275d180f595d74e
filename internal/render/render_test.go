package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	page := Page{
		Topic:           "Quantum Computing",
		CategoryLabel:   "Interesting Facts",
		BodyHTML:        "<h1>Quantum Computing</h1><p>Quantum computing uses qubits.</p>",
		MetaDescription: "Learn quantum computing facts.",
	}

	doc, err := Render(page)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"), "output should be a complete document")
	assert.Contains(t, doc, `<meta name="description" content="Learn quantum computing facts.">`)
	assert.Contains(t, doc, "<title>Quantum Computing | Interesting Facts</title>")
	assert.Contains(t, doc, "<p>Quantum computing uses qubits.</p>",
		"article body should be embedded unescaped")
	assert.NotContains(t, doc, "{{.Topic}}", "output should not contain raw template placeholders")
	assert.NotContains(t, doc, "{{.BodyHTML}}")
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	page := Page{
		Topic:           "Go",
		CategoryLabel:   "History",
		BodyHTML:        "<p>body</p>",
		MetaDescription: "desc",
	}

	first, err := Render(page)
	require.NoError(t, err)
	second, err := Render(page)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderEscapesMetadata(t *testing.T) {
	t.Parallel()

	page := Page{
		Topic:           `Tags <&> "quotes"`,
		CategoryLabel:   "Comparisons",
		BodyHTML:        "<p>body</p>",
		MetaDescription: `a "quoted" <description>`,
	}

	doc, err := Render(page)
	require.NoError(t, err)

	assert.NotContains(t, doc, `content="a "quoted"`,
		"meta description must be attribute-escaped")
	assert.Contains(t, doc, "&lt;description&gt;")
}

func TestRenderValidation(t *testing.T) {
	t.Parallel()

	_, err := Render(Page{CategoryLabel: "History", BodyHTML: "<p>x</p>"})
	assert.Error(t, err, "empty topic should be rejected")

	_, err = Render(Page{Topic: "Go", BodyHTML: "<p>x</p>"})
	assert.Error(t, err, "empty category label should be rejected")
}
