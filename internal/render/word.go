// Package render binds placeholder data into binary Word templates and
// produces downloadable document bytes, with a PDF conversion path.
package render

import (
	"bytes"
	"context"
	"fmt"

	docx "github.com/lukasjarosch/go-docx"

	"billforge/internal/domain"
	"billforge/internal/port"
	"billforge/internal/template"
)

// MIME types of the produced documents.
const (
	WordContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	PDFContentType  = "application/pdf"
)

// TemplateName returns the template file for a document kind and signature
// variant.
func TemplateName(kind domain.DocumentKind, withSignature bool) string {
	base := "invoice"
	if kind == domain.KindPurchaseOrder {
		base = "purchase_order"
	}
	if withSignature {
		return base + "_signed.docx"
	}
	return base + ".docx"
}

// WordRenderer fills Word templates with binding data.
type WordRenderer struct {
	templates port.TemplateStore
}

// NewWordRenderer creates a WordRenderer reading templates from the store.
func NewWordRenderer(templates port.TemplateStore) *WordRenderer {
	return &WordRenderer{templates: templates}
}

// Render loads the named template and substitutes every placeholder. A missing
// template surfaces domain.ErrTemplateNotFound; substitution failures
// propagate unchanged.
func (r *WordRenderer) Render(ctx context.Context, name string, b template.Binding) ([]byte, error) {
	raw, err := r.templates.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	doc, err := docx.OpenBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("render: opening template %s: %w", name, err)
	}

	placeholders := docx.PlaceholderMap{}
	for key, value := range b.Placeholders() {
		if value == nil {
			// Absent line-item slot: blank the token instead of
			// leaving it visible.
			placeholders[key] = ""
			continue
		}
		placeholders[key] = value
	}

	if err := doc.ReplaceAll(placeholders); err != nil {
		return nil, fmt.Errorf("render: substituting placeholders in %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("render: writing document: %w", err)
	}
	return buf.Bytes(), nil
}
