package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/control-tarjeta/internal/application/dto"
	"github.com/jhoicas/control-tarjeta/internal/application/report"
	"github.com/jhoicas/control-tarjeta/internal/domain"
)

func (e *env) summaryCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "summary <liquidacion.pdf>",
		Short: "Muestra los seis importes extraídos de la liquidación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "table", "json", "yaml":
			default:
				return fmt.Errorf("%w: formato %q (table, json o yaml)", domain.ErrInvalidInput, format)
			}
			uc := e.useCase()
			data, err := readStatement(uc, args[0])
			if err != nil {
				return err
			}
			out, err := uc.Preview(cmd.Context(), data)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(out); err != nil {
					return err
				}
				return enc.Close()
			default:
				return printSummary(w, out)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Salida: table, json o yaml (json/yaml = cuerpo de POST /api/statements/summary)")
	return cmd
}

// readStatement valida el tamaño con Stat antes de leer el archivo.
func readStatement(uc *report.UseCase, path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	if err := uc.CheckSize(info.Size()); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	return data, nil
}

func printSummary(w io.Writer, out *dto.SummaryPreviewResponse) error {
	fmt.Fprintln(w, out.Title)
	fmt.Fprintln(w, out.Subtitle)
	fmt.Fprintf(w, "Generado: %s\n\n", out.GeneratedAt)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Concepto\tMonto ($)\t")
	for _, r := range out.Rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", r.Concept, r.Formatted)
	}
	return tw.Flush()
}
