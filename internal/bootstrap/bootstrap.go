// Package bootstrap arma el caso de uso de informes con sus adaptadores
// concretos. Lo comparten el servidor HTTP y la CLI.
package bootstrap

import (
	"github.com/jhoicas/control-tarjeta/internal/application/report"
	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
	infrapdf "github.com/jhoicas/control-tarjeta/internal/infrastructure/pdf"
	"github.com/jhoicas/control-tarjeta/internal/infrastructure/pdftext"
	"github.com/jhoicas/control-tarjeta/internal/infrastructure/xlsx"
	"github.com/jhoicas/control-tarjeta/internal/infrastructure/xmlreport"
	"github.com/jhoicas/control-tarjeta/pkg/config"
	"github.com/jhoicas/control-tarjeta/pkg/logger"
)

// Renderers devuelve un renderizador por cada formato soportado.
func Renderers() map[entity.ReportFormat]report.Renderer {
	return map[entity.ReportFormat]report.Renderer{
		entity.ReportFormatPDF:  infrapdf.NewMarotoReportGenerator(),
		entity.ReportFormatXLSX: xlsx.NewExcelizeReportGenerator(),
		entity.ReportFormatXML:  xmlreport.NewEtreeReportGenerator(),
	}
}

// ReportConfig traduce la configuración de la aplicación a la del caso de uso.
func ReportConfig(cfg *config.Config) report.Config {
	return report.Config{
		Title:          cfg.Report.Title,
		FileName:       cfg.Report.FileName,
		Footer:         cfg.Report.Footer,
		MaxUploadBytes: cfg.Upload.MaxBytes(),
		Location:       cfg.Report.Location(),
	}
}

// NewReportUseCase caso de uso con extractor ledongthuc/pdf y los tres renderizadores.
func NewReportUseCase(cfg *config.Config, log *logger.Logger) *report.UseCase {
	if _, err := cfg.Report.LoadLocation(); err != nil && log != nil {
		log.Warn().Err(err).Msg("se usa la zona horaria local")
	}
	return report.NewUseCase(pdftext.NewExtractor(), Renderers(), ReportConfig(cfg), log)
}
