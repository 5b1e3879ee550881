package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFRenderer_Idempotent(t *testing.T) {
	renderer := NewPDFRenderer()

	text := "Skills: Python, Go\nBuilt scalable systems"

	first, err := renderer.Render(text)
	require.NoError(t, err)
	second, err := renderer.Render(text)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data, "repeated renders must be byte-identical")
}

func TestPDFRenderer_Output(t *testing.T) {
	renderer := NewPDFRenderer()

	doc, err := renderer.Render("Skills: Python, Go\nBuilt scalable systems")
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", doc.MediaType)
	assert.True(t, strings.HasPrefix(string(doc.Data), "%PDF"), "output must be a PDF")
	assert.NotEmpty(t, doc.Data)
}

func TestPDFRenderer_HeadingAndBulletRoundTrip(t *testing.T) {
	renderer := NewPDFRenderer()
	extractor := NewPDFExtractor()

	doc, err := renderer.Render("Skills: Python, Go\n\nBuilt scalable systems")
	require.NoError(t, err)

	content, err := extractor.Extract(doc.Data)
	require.NoError(t, err)

	// Heading line printed as-is, body line bulleted, blank line skipped
	assert.Contains(t, content.Text, "Skills: Python, Go")
	assert.Contains(t, content.Text, "Built scalable systems")
	assert.Equal(t, 1, content.PageCount)
}

func TestPDFRenderer_LongTextPaginates(t *testing.T) {
	renderer := NewPDFRenderer()
	extractor := NewPDFExtractor()

	var sb strings.Builder
	for i := 0; i < 80; i++ {
		sb.WriteString("Delivered production features on schedule\n")
	}

	doc, err := renderer.Render(sb.String())
	require.NoError(t, err)

	content, err := extractor.Extract(doc.Data)
	require.NoError(t, err)
	assert.Greater(t, content.PageCount, 1, "content past page height must break onto a new page")
}

func TestExtractedTextFlowsIntoPrompt(t *testing.T) {
	renderer := NewPDFRenderer()
	extractor := NewPDFExtractor()
	pb := NewPromptBuilder(0)

	doc, err := renderer.Render("Senior Backend Engineer")
	require.NoError(t, err)

	content, err := extractor.Extract(doc.Data)
	require.NoError(t, err)

	prompt := pb.BuildRewritePrompt(content.Text, "Looking for a backend engineer")
	assert.Contains(t, prompt, "Senior Backend Engineer")
}
