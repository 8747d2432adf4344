package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"billforge/internal/domain"
)

// LibreOffice converts Word documents to PDF by shelling out to a headless
// soffice process. Conversion runs under a bounded timeout because the
// external process can hang.
type LibreOffice struct {
	Binary  string
	Timeout time.Duration
}

// NewLibreOffice creates a converter. An empty binary defaults to "soffice".
func NewLibreOffice(binary string, timeout time.Duration) *LibreOffice {
	if binary == "" {
		binary = "soffice"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LibreOffice{Binary: binary, Timeout: timeout}
}

// Convert writes the document to a scratch directory, runs the conversion and
// reads the resulting PDF back.
func (l *LibreOffice) Convert(ctx context.Context, docxBytes []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.Timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "billforge-convert-")
	if err != nil {
		return nil, fmt.Errorf("libreoffice: creating scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "document.docx")
	if err := os.WriteFile(src, docxBytes, 0o600); err != nil {
		return nil, fmt.Errorf("libreoffice: writing source document: %w", err)
	}

	cmd := exec.CommandContext(ctx, l.Binary,
		"--headless", "--norestore", "--convert-to", "pdf", "--outdir", dir, src)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConversionFailed, string(out), err)
	}

	pdf, err := os.ReadFile(filepath.Join(dir, "document.pdf"))
	if err != nil {
		return nil, fmt.Errorf("%w: reading converted output: %v", domain.ErrConversionFailed, err)
	}
	return pdf, nil
}
