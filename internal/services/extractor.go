package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type TextExtractor interface {
	Extract(data []byte) (*ExtractedContent, error)
}

// ExtractedContent is the plain text pulled out of an uploaded resume.
// Page texts are concatenated in page order, newline-separated, and the
// whole result is trimmed. Pages with no extractable text contribute an
// empty string.
type ExtractedContent struct {
	Text      string
	PageCount int
}

type pdfExtractor struct{}

func NewPDFExtractor() TextExtractor {
	return &pdfExtractor{}
}

func (p *pdfExtractor) Extract(data []byte) (content *ExtractedContent, err error) {
	// The pdf package panics on some malformed files; a bad upload must
	// surface as an ExtractionError, not take the process down.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = &ExtractionError{Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}

	totalPage := reader.NumPage()
	pageTexts := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			pageTexts = append(pageTexts, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable page contributes an empty string, same as a blank one
			pageTexts = append(pageTexts, "")
			continue
		}

		pageTexts = append(pageTexts, text)
	}

	text := strings.TrimSpace(strings.Join(pageTexts, "\n"))

	return &ExtractedContent{
		Text:      text,
		PageCount: totalPage,
	}, nil
}
