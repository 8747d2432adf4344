package render

import (
	"context"
	"log"

	"billforge/internal/domain"
	"billforge/internal/port"
	"billforge/internal/template"
)

// Result is the outcome of a render. Degraded marks fallback output so the
// HTTP layer can tell the caller which path produced the bytes.
type Result struct {
	Bytes       []byte
	ContentType string
	Degraded    bool
}

// Pipeline orchestrates the Word render and the PDF conversion chain.
type Pipeline struct {
	word      *WordRenderer
	converter port.PDFConverter
}

// NewPipeline wires the renderer and converter together.
func NewPipeline(templates port.TemplateStore, converter port.PDFConverter) *Pipeline {
	return &Pipeline{word: NewWordRenderer(templates), converter: converter}
}

// Word renders the template for the kind/signature variant. Template lookup
// and substitution failures are fatal for the request.
func (p *Pipeline) Word(ctx context.Context, kind domain.DocumentKind, withSignature bool, b template.Binding) (Result, error) {
	docBytes, err := p.word.Render(ctx, TemplateName(kind, withSignature), b)
	if err != nil {
		return Result{}, err
	}
	return Result{Bytes: docBytes, ContentType: WordContentType}, nil
}

// PDF renders the Word document and converts it. When conversion fails the
// pipeline degrades to a placeholder PDF instead of failing the request; a
// Word render failure still aborts.
func (p *Pipeline) PDF(ctx context.Context, kind domain.DocumentKind, withSignature bool, b template.Binding, title string) (Result, error) {
	docBytes, err := p.word.Render(ctx, TemplateName(kind, withSignature), b)
	if err != nil {
		return Result{}, err
	}

	pdf, err := p.converter.Convert(ctx, docBytes)
	if err != nil {
		log.Printf("render: pdf conversion failed for %s, serving fallback: %v", b.DocumentNo, err)
		fallback, fbErr := FallbackPDF(title, b.DocumentNo)
		if fbErr != nil {
			return Result{}, fbErr
		}
		return Result{Bytes: fallback, ContentType: PDFContentType, Degraded: true}, nil
	}
	return Result{Bytes: pdf, ContentType: PDFContentType}, nil
}
