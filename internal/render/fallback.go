package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// FallbackPDF builds a minimal single-page PDF naming the document. It is a
// degraded-mode stand-in used when the converter is unavailable, not a
// faithful rendering of the template.
func FallbackPDF(title, documentNo string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, title)
	pdf.Ln(16)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Document number: %s", documentNo))
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 6,
		"PDF conversion was unavailable when this document was requested. "+
			"Download the Word version for the full rendering.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: building fallback pdf: %w", err)
	}
	return buf.Bytes(), nil
}
