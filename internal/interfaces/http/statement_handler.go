package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/control-tarjeta/internal/application/dto"
	"github.com/jhoicas/control-tarjeta/internal/application/report"
	"github.com/jhoicas/control-tarjeta/internal/domain"
	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
)

// FormFieldFile campo multipart con el PDF de la liquidación.
const FormFieldFile = "file"

// StatementHandler maneja la subida de liquidaciones y la descarga del informe.
type StatementHandler struct {
	uc *report.UseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *report.UseCase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// Summary godoc
// @Summary      Vista previa de importes de la liquidación
// @Description  Extrae los seis importes fiscales del PDF subido y los devuelve formateados.
// @Tags         statements
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Liquidación Cabal / Credicoop (PDF)"
// @Success      200   {object}  dto.SummaryPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/statements/summary [post]
func (h *StatementHandler) Summary(c *fiber.Ctx) error {
	data, err := h.readUpload(c)
	if err != nil {
		return h.writeError(c, err)
	}
	out, err := h.uc.Preview(requestContext(c), data)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Descargar el informe de importes
// @Description  Genera el informe (pdf, xlsx o xml) con los seis importes de la liquidación subida.
// @Tags         statements
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        file    formData  file    true   "Liquidación Cabal / Credicoop (PDF)"
// @Param        title   formData  string  false  "Título del informe"
// @Param        format  query     string  false  "pdf | xlsx | xml"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/statements/report [post]
func (h *StatementHandler) Report(c *fiber.Ctx) error {
	format, ok := entity.ParseReportFormat(c.Query("format"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "format debe ser pdf, xlsx o xml",
		})
	}

	data, err := h.readUpload(c)
	if err != nil {
		return h.writeError(c, err)
	}

	file, err := h.uc.Report(requestContext(c), data, c.FormValue("title"), format)
	if err != nil {
		return h.writeError(c, err)
	}

	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Status(fiber.StatusOK).Send(file.Content)
}

// readUpload valida el tamaño declarado antes de leer el archivo a memoria.
func (h *StatementHandler) readUpload(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile(FormFieldFile)
	if err != nil {
		return nil, fmt.Errorf("%w: campo %q requerido", domain.ErrInvalidInput, FormFieldFile)
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return nil, fmt.Errorf("%w: se espera un archivo .pdf", domain.ErrInvalidInput)
	}
	if err := h.uc.CheckSize(fh.Size); err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: abrir archivo: %w", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	r := io.Reader(f)
	if limit := h.uc.MaxUploadBytes(); limit > 0 {
		r = io.LimitReader(f, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: leer archivo: %w", domain.ErrInvalidInput, err)
	}
	return data, nil
}

func (h *StatementHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInputTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Code: "INPUT_TOO_LARGE", Message: tooLargeMessage(h.uc.MaxUploadBytes()),
		})
	case errors.Is(err, domain.ErrUnreadableDocument):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "UNREADABLE_DOCUMENT", Message: "No se pudo leer el PDF.",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrRender):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "RENDER_FAILED", Message: "no se pudo generar el informe",
		})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
			Code: "TIMEOUT", Message: "la solicitud tardó demasiado",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func tooLargeMessage(limit int64) string {
	if limit <= 0 {
		return "El archivo es demasiado grande."
	}
	return fmt.Sprintf("El archivo supera %d MB.", limit/(1024*1024))
}

func requestContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
