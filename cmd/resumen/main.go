// Command resumen procesa liquidaciones Cabal / Credicoop desde la terminal.
//
//	resumen summary liquidacion.pdf
//	resumen report liquidacion.pdf -o informe.pdf --format pdf
//	resumen token --user u-1 --role contador
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
