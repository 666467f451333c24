package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			log.Info().Str("database", cfg.DatabasePath).Msg("migrations completed successfully")
			return nil
		},
	}
}
