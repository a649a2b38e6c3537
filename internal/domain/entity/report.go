package entity

import "time"

// GeneratedAtLayout formato de la marca "Generado:" (DD/MM/YYYY HH:MM).
const GeneratedAtLayout = "02/01/2006 15:04"

// Report datos que necesita cualquier renderizador del informe.
type Report struct {
	ID          string
	Title       string
	GeneratedAt time.Time // ya convertido a la zona horaria local configurada
	Summary     *Summary
	Footer      string
}

// GeneratedAtText devuelve la fecha de generación formateada.
func (r Report) GeneratedAtText() string {
	return r.GeneratedAt.Format(GeneratedAtLayout)
}
