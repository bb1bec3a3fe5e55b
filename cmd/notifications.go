package cmd

import (
	"github.com/domdomvn/domdom/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewNotificationsCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Show the latest service notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := svc.Session.Current()
			if err != nil {
				return err
			}

			if snap.Notification == "" {
				pterm.Info.Println("No notifications")
				return nil
			}

			pterm.Info.Println(snap.Notification)
			return nil
		},
	}
}
