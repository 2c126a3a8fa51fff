package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yigit/examdesk/internal/app/models/dto"
	"github.com/yigit/examdesk/internal/app/services"
	"github.com/yigit/examdesk/internal/pkg/auth"
	"github.com/yigit/examdesk/internal/pkg/validation"
)

func newCreateAdminCommand(configPath *string) *cobra.Command {
	req := &dto.CreateAdminRequest{}

	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRequest(req); err != nil {
				return err
			}

			s, err := openSession(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer s.Close()

			authService := services.NewAuthService(s.repos.UserRepository, s.repos.StreamRepository, auth.NewBcryptHasher(), nil, s.logger)
			admin, err := authService.CreateAdmin(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %d <%s>\n", admin.ID, admin.Email)
			return nil
		},
	}
	createAdminCmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&req.FullName, "name", "", "admin full name")
	createAdminCmd.Flags().StringVar(&req.Password, "password", "", "admin password")
	return createAdminCmd
}

// validateRequest applies the same binding rules gin uses for HTTP payloads.
func validateRequest(req any) error {
	validate, err := validation.New()
	if err != nil {
		return err
	}
	if err := validate.Struct(req); err != nil {
		detail := dto.HandleValidationError(err)
		fields, ok := detail.Details.([]dto.FieldError)
		if !ok {
			return fmt.Errorf("%s: %v", detail.Message, detail.Details)
		}
		messages := make([]string, 0, len(fields))
		for _, field := range fields {
			messages = append(messages, field.Message)
		}
		return fmt.Errorf("%s: %s", detail.Message, strings.Join(messages, "; "))
	}
	return nil
}
