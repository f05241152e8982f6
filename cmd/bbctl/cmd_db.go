package main

import (
	"fmt"

	"github.com/bigbinarytech/institute/internal/bootstrap"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		applied, err := bootstrap.RunMigrations(ctx, s.cfg, s.pool, s.logger)
		if err != nil {
			return err
		}
		if applied == 0 {
			color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "Database already up to date")
			return nil
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", applied)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create default data and the bootstrap admin",
	Long: `Create the default specializations (only when there are none), every missing
website content section and the configured admin account (only when no admin exists).
Existing rows are never modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		deps, err := s.dependencies()
		if err != nil {
			return err
		}
		res, err := bootstrap.RunSeed(ctx, s.cfg, deps)
		if res != nil {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Specializations created: %d\n", res.Specializations)
			fmt.Fprintf(out, "Content sections created: %d\n", res.ContentSections)
			if res.AdminCreated {
				color.New(color.FgGreen).Fprintf(out, "Admin account created: %s\n", s.cfg.Admin.Email)
			}
		}
		return err
	},
}
