package auth

import (
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type loginFlags struct {
	Email string
}

type loginRunner struct {
	svc   *service.Service
	flags *loginFlags
}

func NewLoginCmd(svc *service.Service) *cobra.Command {
	flags := &loginFlags{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and cache your data locally",
		Long: `Sign in to the domdom service. On success your categories,
transactions and wallet are cached locally for the other commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &loginRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Account email")

	return cmd
}

func (r *loginRunner) Run(cmd *cobra.Command) error {
	email := r.flags.Email
	var err error
	if email == "" {
		email, err = prompts.PromptEmail()
		if err != nil {
			return err
		}
	}

	password, err := prompts.PromptSignInPassword()
	if err != nil {
		return err
	}

	snap, err := r.svc.Session.SignIn(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Signed in as %s (%s)\n", snap.UserName, snap.UserEmail)
	return nil
}
