package main

import (
	"fmt"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/spf13/cobra"
)

func rotationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Inspect or start the pick rotation",
	}
	cmd.AddCommand(rotationStartCommand())
	cmd.AddCommand(rotationScheduleCommand())
	return cmd
}

func rotationStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start DATE",
		Short: "Start the rotation on DATE with the first member of the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := domain.ParseDate(args[0])
			if err != nil {
				return err
			}

			a, _, err := openApp(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.svc.Rotation.SetRotationStart(cmd.Context(), start); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rotation starts on %s\n", start.Format(domain.DateLayout))
			return nil
		},
	}
}

func rotationScheduleCommand() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the upcoming turns",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			turns, err := a.svc.Rotation.Schedule(cmd.Context(), k)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range turns {
				marker := ""
				switch {
				case t.IsSkipped:
					marker = " (skipped)"
				case t.IsCurrent:
					marker = " <- current"
				}
				fmt.Fprintf(out, "%s  %s%s\n", t.Period, t.Member.DisplayName, marker)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "count", "n", domain.DefaultScheduleLength, "number of turns to print")
	return cmd
}
