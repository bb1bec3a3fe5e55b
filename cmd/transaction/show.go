package transaction

import (
	"fmt"

	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc: svc,
			}
			return runner.Run(args)
		},
	}
}

func (r *ShowCommandRunner) Run(args []string) error {
	snap, err := r.svc.Session.Current()
	if err != nil {
		return err
	}

	t, ok := snap.TransactionByID(model.ID(args[0]))
	if !ok {
		return fmt.Errorf("transaction not found: %s", args[0])
	}

	category, _ := snap.CategoryByID(t.CategoryID)
	return views.RenderTransactionDetail(t, category)
}
