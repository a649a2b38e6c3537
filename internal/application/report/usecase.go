// Package report orquesta el ciclo de un request: validar tamaño → extraer
// texto → escanear anclas → renderizar. No guarda estado entre llamadas: los
// bytes subidos viven sólo en memoria durante el request.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/control-tarjeta/internal/application/dto"
	"github.com/jhoicas/control-tarjeta/internal/domain"
	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
	"github.com/jhoicas/control-tarjeta/internal/domain/statement"
	"github.com/jhoicas/control-tarjeta/pkg/logger"
	"github.com/jhoicas/control-tarjeta/pkg/money"
)

// Textos fijos de la vista previa.
const (
	PreviewSubtitle = "Resumen de importes (6 ítems)"
	PreviewNotice   = "No subas documentos con datos sensibles. El procesamiento es temporal y no se guarda ningún archivo en servidores propios."
)

// Config parámetros del informe y del límite de subida.
type Config struct {
	Title          string
	FileName       string // sin extensión
	Footer         string
	MaxUploadBytes int64
	Location       *time.Location
}

// File informe listo para descargar.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// UseCase extracción + informe de una liquidación Cabal / Credicoop.
type UseCase struct {
	extractor PageTextExtractor
	scanner   *statement.Scanner
	renderers map[entity.ReportFormat]Renderer
	cfg       Config
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso inyectando el extractor de texto y los renderizadores por formato.
func NewUseCase(
	extractor PageTextExtractor,
	renderers map[entity.ReportFormat]Renderer,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		extractor: extractor,
		scanner:   statement.NewScanner(),
		renderers: renderers,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// MaxUploadBytes límite de tamaño aceptado.
func (uc *UseCase) MaxUploadBytes() int64 { return uc.cfg.MaxUploadBytes }

// Extract valida el tamaño y devuelve el resumen del documento.
//
// Retorna:
//   - domain.ErrInputTooLarge       si supera el límite (no se llama al extractor).
//   - domain.ErrInvalidInput        si no hay bytes.
//   - domain.ErrUnreadableDocument  si el PDF no se puede leer.
func (uc *UseCase) Extract(ctx context.Context, pdf []byte) (*statement.Extraction, error) {
	if err := uc.checkSize(int64(len(pdf))); err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}

	pages, err := uc.extractor.ExtractPages(ctx, pdf)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.Is(err, domain.ErrUnreadableDocument) {
			err = fmt.Errorf("%w: %w", domain.ErrUnreadableDocument, err)
		}
		uc.log.Warn().Err(err).Int("bytes", len(pdf)).Msg("documento ilegible")
		return nil, err
	}

	ex := uc.scanner.Scan(pages)
	uc.log.Debug().
		Int("pages", ex.Pages).
		Dict("matches", matchesDict(ex.Matches)).
		Msg("extracción completada")
	return ex, nil
}

// CheckSize valida el tamaño declarado de una subida antes de leerla.
func (uc *UseCase) CheckSize(size int64) error { return uc.checkSize(size) }

func (uc *UseCase) checkSize(size int64) error {
	if uc.cfg.MaxUploadBytes > 0 && size > uc.cfg.MaxUploadBytes {
		return fmt.Errorf("%w: %d bytes (máximo %d)", domain.ErrInputTooLarge, size, uc.cfg.MaxUploadBytes)
	}
	return nil
}

// Preview devuelve la tabla de la vista previa con los importes ya formateados.
func (uc *UseCase) Preview(ctx context.Context, pdf []byte) (*dto.SummaryPreviewResponse, error) {
	ex, err := uc.Extract(ctx, pdf)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.SummaryRowDTO, 0, len(ex.Summary.Rows))
	for _, r := range ex.Summary.Rows {
		rows = append(rows, dto.SummaryRowDTO{
			Concept:   r.Concept,
			Amount:    r.Amount.StringFixed(2),
			Formatted: money.Format(r.Amount),
		})
	}
	return &dto.SummaryPreviewResponse{
		Title:       uc.cfg.Title,
		Subtitle:    PreviewSubtitle,
		Notice:      PreviewNotice,
		GeneratedAt: uc.now().In(uc.cfg.Location).Format(entity.GeneratedAtLayout),
		Pages:       ex.Pages,
		Rows:        rows,
	}, nil
}

// Report extrae el resumen y genera el informe en el formato pedido.
// Un título vacío usa el configurado.
func (uc *UseCase) Report(ctx context.Context, pdf []byte, title string, format entity.ReportFormat) (*File, error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, format)
	}

	ex, err := uc.Extract(ctx, pdf)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		title = uc.cfg.Title
	}
	doc := entity.Report{
		ID:          uuid.NewString(),
		Title:       title,
		GeneratedAt: uc.now().In(uc.cfg.Location),
		Summary:     ex.Summary,
		Footer:      uc.cfg.Footer,
	}

	content, err := renderer.Render(ctx, doc)
	if err != nil {
		uc.log.Error().Err(err).Str("format", string(format)).Str("report_id", doc.ID).Msg("render del informe")
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
	}

	uc.log.Info().
		Str("report_id", doc.ID).
		Str("format", string(format)).
		Int("size", len(content)).
		Msg("informe generado")

	return &File{
		Name:        uc.cfg.FileName + format.Extension(),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

func matchesDict(m map[string]int) *zerolog.Event {
	d := zerolog.Dict()
	for k, v := range m {
		d = d.Int(k, v)
	}
	return d
}
