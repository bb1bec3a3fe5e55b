package auth

import (
	"fmt"

	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type registerRunner struct {
	svc *service.Service
}

func NewRegisterCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long: `Create a new domdom account. The password must be at least 8
characters and contain a lowercase letter, an uppercase letter, a digit
and a special character (!@#$%^&*).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &registerRunner{svc: svc}
			return runner.Run(cmd)
		},
	}
}

func (r *registerRunner) Run(cmd *cobra.Command) error {
	email, err := prompts.PromptEmail()
	if err != nil {
		return err
	}

	name, err := prompts.PromptDisplayName()
	if err != nil {
		return err
	}

	password, err := prompts.PromptNewPassword("Password:")
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

	snap, err := r.svc.Session.SignUp(cmd.Context(), email, name, password)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Welcome, %s! You are now signed in.\n", snap.UserName)
	return nil
}
