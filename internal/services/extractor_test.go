package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExtractor_RejectsGarbage(t *testing.T) {
	extractor := NewPDFExtractor()

	_, err := extractor.Extract([]byte("this is not a pdf"))
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr), "malformed input must surface as ExtractionError")
}

func TestPDFExtractor_RejectsEmpty(t *testing.T) {
	extractor := NewPDFExtractor()

	_, err := extractor.Extract(nil)
	assert.Error(t, err)
}

func TestPDFExtractor_TrimsResult(t *testing.T) {
	renderer := NewPDFRenderer()
	extractor := NewPDFExtractor()

	doc, err := renderer.Render("Skills: Go")
	require.NoError(t, err)

	content, err := extractor.Extract(doc.Data)
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSpace(content.Text), content.Text)
	assert.NotEmpty(t, content.Text)
}
