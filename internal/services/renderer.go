package services

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// RenderedDocument is the downloadable artifact: an in-memory byte buffer
// plus its media type. No temporary files are involved, so concurrent
// sessions never collide on a shared path.
type RenderedDocument struct {
	Data      []byte
	MediaType string
}

type DocumentRenderer interface {
	Render(text string) (*RenderedDocument, error)
}

type pdfRenderer struct{}

func NewPDFRenderer() DocumentRenderer {
	return &pdfRenderer{}
}

// Render lays the rewritten resume out as a single-column A4 PDF. Blank
// lines are skipped. A line containing a colon is a section heading and is
// rendered bold as-is; every other line gets a bullet marker. Output is
// byte-identical across calls for the same text: the creation date is
// pinned so the bytes are a pure function of the input.
func (p *pdfRenderer) Render(text string) (*RenderedDocument, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	doc.SetMargins(15, 15, 15)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.Contains(line, ":") {
			doc.SetFont("Arial", "B", 12)
			doc.CellFormat(0, 8, tr(line), "", 1, "L", false, 0, "")
		} else {
			doc.SetFont("Arial", "", 11)
			doc.CellFormat(0, 8, tr("• "+line), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}

	return &RenderedDocument{
		Data:      buf.Bytes(),
		MediaType: "application/pdf",
	}, nil
}
