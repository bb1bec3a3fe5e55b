package cmd

import (
	"fmt"

	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type passwordFlags struct {
	Email string
}

type passwordRunner struct {
	svc   *service.Service
	flags *passwordFlags
}

func NewPasswordCmd(svc *service.Service) *cobra.Command {
	flags := &passwordFlags{}

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change the account password",
		Long: `Change the password of an account. If you forgot the current
password, run 'domdom auth forgot' instead to reset it with an
emailed code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &passwordRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Account email (defaults to the signed-in account)")

	return cmd
}

func (r *passwordRunner) Run(cmd *cobra.Command) error {
	email := r.flags.Email
	if email == "" {
		if snap, err := r.svc.Session.Current(); err == nil {
			email = snap.UserEmail
		}
	}
	if email == "" {
		var err error
		email, err = prompts.PromptEmail()
		if err != nil {
			return err
		}
	}

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
