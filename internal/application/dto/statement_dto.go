package dto

// SummaryRowDTO fila de la vista previa. Amount con punto decimal y dos
// decimales; Formatted con el formato de los informes ("1.234,50").
type SummaryRowDTO struct {
	Concept   string `json:"concept" yaml:"concept"`
	Amount    string `json:"amount" yaml:"amount"`
	Formatted string `json:"formatted" yaml:"formatted"`
}

// SummaryPreviewResponse respuesta de POST /api/statements/summary.
type SummaryPreviewResponse struct {
	Title       string          `json:"title" yaml:"title"`
	Subtitle    string          `json:"subtitle" yaml:"subtitle"`
	Notice      string          `json:"notice" yaml:"notice"`
	GeneratedAt string          `json:"generated_at" yaml:"generated_at"`
	Pages       int             `json:"pages" yaml:"pages"`
	Rows        []SummaryRowDTO `json:"rows" yaml:"rows"`
}
