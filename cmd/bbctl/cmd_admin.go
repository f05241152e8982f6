package main

import (
	"errors"
	"strings"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage dashboard accounts",
}

var (
	adminEmail    string
	adminPassword string
	adminName     string
	adminRole     string
)

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin or editor account",
	Example: `  bbctl admin create --email admin@bigbinarytech.com --password 'change-me-now'
  bbctl admin create --email editor@bigbinarytech.com --password 'change-me-now' --role editor --name "Content Editor"`,
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
		user, err := deps.AuthService.CreateAdmin(ctx, &dto.CreateAdminRequest{
			Email:    adminEmail,
			Password: adminPassword,
			FullName: adminName,
			Role:     models.Role(strings.ToLower(adminRole)),
		})
		if err != nil {
			var custom *apperrors.CustomError
			if errors.As(err, &custom) {
				return errors.New(custom.Message)
			}
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Created %s account %s (%s)\n", adminRole, user.Email, user.ID)
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "account email")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "account password")
	adminCreateCmd.Flags().StringVar(&adminName, "name", "", "display name")
	adminCreateCmd.Flags().StringVar(&adminRole, "role", string(models.RoleAdmin), "admin or editor")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
}
