package pdftext_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-tarjeta/internal/domain"
	"github.com/jhoicas/control-tarjeta/internal/infrastructure/pdftext"
)

func TestExtractPages_BytesNoPDF(t *testing.T) {
	_, err := pdftext.NewExtractor().ExtractPages(context.Background(), []byte("esto no es un PDF"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnreadableDocument))
}

func TestExtractPages_PDFTruncado(t *testing.T) {
	_, err := pdftext.NewExtractor().ExtractPages(context.Background(), []byte("%PDF-1.4\n1 0 obj\n<<"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnreadableDocument))
}
