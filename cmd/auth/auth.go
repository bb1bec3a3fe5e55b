package auth

import (
	"github.com/domdomvn/domdom/internal/service"
	"github.com/spf13/cobra"
)

func NewAuthCmd(svc *service.Service) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, register, recover a password or sign out",
		Long:  `Sign in, register, recover a password or sign out.`,
	}

	authCmd.AddCommand(NewLoginCmd(svc))
	authCmd.AddCommand(NewRegisterCmd(svc))
	authCmd.AddCommand(NewForgotCmd(svc))
	authCmd.AddCommand(NewLogoutCmd(svc))

	return authCmd
}
