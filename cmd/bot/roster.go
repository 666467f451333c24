package main

import (
	"fmt"
	"os"

	"github.com/diegoclair/movie-club-bot/internal/config"
	"github.com/diegoclair/movie-club-bot/internal/domain/service"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

func rosterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the member roster",
	}
	cmd.AddCommand(rosterSetupCommand())
	cmd.AddCommand(rosterListCommand())
	return cmd
}

func rosterSetupCommand() *cobra.Command {
	var (
		file string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Replace the roster with the members of a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := config.LoadRoster(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "This replaces the roster with %d members:\n", len(members))
			for i, m := range members {
				fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, m.DisplayName, m.Handle)
			}

			if !yes {
				fmt.Fprintf(out, "Type CONFIRM within %s to continue: ", cfg.ConfirmTimeout)
				err := service.AwaitConfirmation(cmd.Context(), clockwork.NewRealClock(), cfg.ConfirmTimeout, os.Stdin, "CONFIRM")
				if err != nil {
					return fmt.Errorf("roster unchanged: %w", err)
				}
			}

			a, _, err := openApp(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			active, err := a.svc.Roster.SetupRoster(cmd.Context(), members)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Roster set up with %d members\n", len(active))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "roster.yaml", "YAML file with the members")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func rosterListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active and inactive members",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			active, inactive, err := a.svc.Roster.ListMembers(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range active {
				fmt.Fprintf(out, "%d. %s (%s)\n", *m.Position+1, m.DisplayName, m.Handle)
			}
			for _, m := range inactive {
				fmt.Fprintf(out, "-  %s (%s) inactive\n", m.DisplayName, m.Handle)
			}
			return nil
		},
	}
}
