package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/control-tarjeta/internal/application/report"
	"github.com/jhoicas/control-tarjeta/internal/bootstrap"
	"github.com/jhoicas/control-tarjeta/pkg/config"
	"github.com/jhoicas/control-tarjeta/pkg/logger"
)

// env compartido por los subcomandos; se arma en PersistentPreRunE.
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	verbose bool

	// newUseCase permite inyectar fakes en tests.
	newUseCase func(*config.Config, *logger.Logger) *report.UseCase
}

func newRootCmd() *cobra.Command {
	e := &env{newUseCase: bootstrap.NewReportUseCase}
	return e.rootCmd()
}

func (e *env) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resumen",
		Short: "Control de importes de liquidaciones Cabal / Credicoop",
		Long: `resumen extrae de la liquidación de tarjeta Cabal / Credicoop los importes de
IVA 21% y 10,5%, sus bases netas, la percepción RG 333 y la retención de IIBB,
y genera el informe en PDF, XLSX o XML.

La configuración se lee de variables de entorno (REPORT_TITLE, UPLOAD_MAX_MB,
JWT_SECRET, ...) o de un archivo .env en el directorio actual.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := cfg.Log.Level
			if e.verbose {
				level = "debug"
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: "development", Level: level, Output: cmd.ErrOrStderr()})
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Log de depuración (anclas encontradas por documento)")

	root.AddCommand(e.summaryCmd(), e.reportCmd(), e.tokenCmd())
	return root
}

// useCase construye el caso de uso con la configuración cargada.
func (e *env) useCase() *report.UseCase {
	return e.newUseCase(e.cfg, e.log)
}
