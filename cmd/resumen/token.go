package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/control-tarjeta/pkg/jwt"
)

func (e *env) tokenCmd() *cobra.Command {
	var (
		userID string
		role   string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un Bearer token para la API (requiere JWT_SECRET)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !e.cfg.JWT.Enabled() {
				return errors.New("JWT_SECRET no configurado: la API no exige token")
			}
			tok, err := jwt.Generate(e.cfg.JWT.Secret, userID, role, e.cfg.JWT.Issuer, e.cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Identificador del usuario")
	cmd.Flags().StringVar(&role, "role", "contador", "Rol: admin | contador")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
