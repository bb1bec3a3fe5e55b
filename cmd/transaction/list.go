package transaction

import (
	"fmt"
	"time"

	"github.com/domdomvn/domdom/internal/constants"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Month string
	Limit int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions",
		Long: `List transactions from the cached snapshot, newest first.

This is the quickest way to find a transaction ID for edit or delete.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Only show one month (YYYY-MM)")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of transactions to display")

	return cmd
}

func (r *listRunner) Run() error {
	snap, err := r.svc.Session.Current()
	if err != nil {
		return err
	}

	filter := constants.FilterAll
	var month time.Time
	title := "Recent transactions"
	if r.flags.Month != "" {
		parsed, err := time.Parse(constants.MonthFormat, r.flags.Month)
		if err != nil {
			return fmt.Errorf("invalid month format, use YYYY-MM: %w", err)
		}
		filter = constants.FilterMonth
		month = service.MonthOf(parsed)
		title = "Transactions in " + parsed.Format("01/2006")
	}

	transactions := service.FilterTransactions(snap.Transactions, filter, month, time.Now())
	transactions = service.SortTransactions(transactions, service.SortDesc, service.SortNone)

	if r.flags.Limit > 0 && len(transactions) > r.flags.Limit {
		transactions = transactions[:r.flags.Limit]
	}

	return views.RenderTransactionList(transactions, snap, title)
}
