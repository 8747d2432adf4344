package port

import "context"

// PDFConverter converts a rendered Word document into PDF bytes.
type PDFConverter interface {
	Convert(ctx context.Context, docxBytes []byte) ([]byte, error)
}
