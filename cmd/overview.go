package cmd

import (
	"fmt"
	"time"

	"github.com/domdomvn/domdom/internal/constants"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/views"
	"github.com/spf13/cobra"
)

type overviewFlags struct {
	Filter     string
	Month      string
	SortDate   string
	SortAmount string
}

type overviewRunner struct {
	svc   *service.Service
	flags *overviewFlags
}

func NewOverviewCmd(svc *service.Service) *cobra.Command {
	flags := &overviewFlags{}

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show your balance and transaction history",
		Long: `Show the overview screen: total balance, money in/out for the
selected period and the transaction history grouped by day.

Examples:
# This month
domdom overview --filter current

# A specific month, largest amounts first
domdom overview --filter month --month 2025-06 --sort-amount desc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &overviewRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Period filter: all, current or month")
	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Month to show (YYYY-MM), implies --filter month")
	cmd.Flags().StringVar(&flags.SortDate, "sort-date", "desc", "Date sort: none, desc or asc")
	cmd.Flags().StringVar(&flags.SortAmount, "sort-amount", "none", "Amount sort: none, desc or asc")

	return cmd
}

func (r *overviewRunner) Run() error {
	snap, err := r.svc.Session.Current()
	if err != nil {
		return err
	}

	opts, err := r.buildOptions()
	if err != nil {
		return err
	}

	ov := service.BuildOverview(snap.Transactions, snap.Wallet, opts, time.Now())

	return views.RenderOverview(ov, snap, filterLabel(opts))
}

func (r *overviewRunner) buildOptions() (service.OverviewOptions, error) {
	filter := r.flags.Filter
	if filter == "" {
		filter = r.svc.Config.Defaults.Filter
	}
	if r.flags.Month != "" {
		filter = constants.FilterMonth
	}

	switch filter {
	case constants.FilterAll, constants.FilterCurrent, constants.FilterMonth:
	default:
		return service.OverviewOptions{}, fmt.Errorf("invalid filter: %s (use all, current or month)", filter)
	}

	var month time.Time
	if filter == constants.FilterMonth {
		if r.flags.Month == "" {
			return service.OverviewOptions{}, fmt.Errorf("--month is required with --filter month")
		}
		parsed, err := time.Parse(constants.MonthFormat, r.flags.Month)
		if err != nil {
			return service.OverviewOptions{}, fmt.Errorf("invalid month format, use YYYY-MM: %w", err)
		}
		month = service.MonthOf(parsed)
	}

	dateSort, err := parseSort("sort-date", r.flags.SortDate)
	if err != nil {
		return service.OverviewOptions{}, err
	}
	amountSort, err := parseSort("sort-amount", r.flags.SortAmount)
	if err != nil {
		return service.OverviewOptions{}, err
	}

	return service.OverviewOptions{
		Filter:     filter,
		Month:      month,
		DateSort:   dateSort,
		AmountSort: amountSort,
	}, nil
}

func parseSort(flag, value string) (service.SortCriteria, error) {
	switch service.SortCriteria(value) {
	case service.SortNone, service.SortDesc, service.SortAsc:
		return service.SortCriteria(value), nil
	}
	return service.SortNone, fmt.Errorf("invalid --%s: %s (use none, desc or asc)", flag, value)
}

func filterLabel(opts service.OverviewOptions) string {
	switch opts.Filter {
	case constants.FilterCurrent:
		return "this month"
	case constants.FilterMonth:
		return opts.Month.Format("01/2006")
	default:
		return "all time"
	}
}
