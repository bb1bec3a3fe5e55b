package auth

import (
	"errors"

	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/store"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewLogoutCmd(svc *service.Service) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the current session",
		Long: `Sign out. By default the cached data stays on disk and is
refreshed on the next sign in; --purge removes it as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Session.SignOut(purge); err != nil {
				if errors.Is(err, store.ErrNoSession) {
					pterm.Info.Println("Not signed in")
					return nil
				}
				return err
			}
			pterm.Success.Println("Signed out")
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "Also delete the locally cached data")

	return cmd
}
