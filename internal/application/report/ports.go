package report

import (
	"context"

	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
)

// PageTextExtractor obtiene el texto de cada página de un PDF, línea por línea.
// Debe devolver un error que envuelva domain.ErrUnreadableDocument si el PDF no se puede abrir o decodificar.
type PageTextExtractor interface {
	ExtractPages(ctx context.Context, pdf []byte) ([]string, error)
}

// Renderer genera el informe en un formato concreto (PDF, XLSX, XML).
type Renderer interface {
	Render(ctx context.Context, r entity.Report) ([]byte, error)
}
