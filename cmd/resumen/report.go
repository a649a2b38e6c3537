package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/control-tarjeta/internal/domain"
	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
)

func (e *env) reportCmd() *cobra.Command {
	var (
		output string
		title  string
		format string
	)
	cmd := &cobra.Command{
		Use:   "report <liquidacion.pdf>",
		Short: "Genera el informe descargable (pdf, xlsx o xml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := entity.ParseReportFormat(format)
			if !ok {
				return fmt.Errorf("%w: formato %q (pdf, xlsx o xml)", domain.ErrInvalidInput, format)
			}
			uc := e.useCase()
			data, err := readStatement(uc, args[0])
			if err != nil {
				return err
			}
			file, err := uc.Report(cmd.Context(), data, title, f)
			if err != nil {
				return err
			}
			if output == "" {
				output = file.Name
			}
			if err := os.WriteFile(output, file.Content, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Informe generado: %s (%d bytes)\n", output, len(file.Content))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Ruta de salida (por defecto el nombre configurado en REPORT_FILENAME)")
	cmd.Flags().StringVar(&title, "title", "", "Título del informe (por defecto REPORT_TITLE)")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "Formato: pdf, xlsx o xml")
	return cmd
}
