package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billforge/internal/render"
)

func TestFallbackPDF(t *testing.T) {
	pdf, err := render.FallbackPDF("Invoice", "INV-250314-001")

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
