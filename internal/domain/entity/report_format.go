package entity

import "strings"

// ReportFormat formato del informe descargable.
type ReportFormat string

const (
	ReportFormatPDF  ReportFormat = "pdf"
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatXML  ReportFormat = "xml"
)

// ParseReportFormat normaliza el formato recibido; vacío equivale a PDF.
// El segundo valor es false si el formato no está soportado.
func ParseReportFormat(s string) (ReportFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return ReportFormatPDF, true
	case "xlsx", "excel":
		return ReportFormatXLSX, true
	case "xml":
		return ReportFormatXML, true
	}
	return "", false
}

// ContentType MIME type de la respuesta HTTP.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ReportFormatXML:
		return "application/xml"
	default:
		return "application/pdf"
	}
}

// Extension extensión de archivo con punto.
func (f ReportFormat) Extension() string {
	switch f {
	case ReportFormatXLSX:
		return ".xlsx"
	case ReportFormatXML:
		return ".xml"
	default:
		return ".pdf"
	}
}
