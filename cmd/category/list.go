package category

import (
	"fmt"

	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type string
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories of one tab",
		Long:  `List the categories of the expense or income tab.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", model.CategoryExpense, "Category tab: expense or income")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	switch r.flags.Type {
	case model.CategoryExpense, model.CategoryIncome:
	default:
		return fmt.Errorf("invalid type: %s (use expense or income)", r.flags.Type)
	}

	categories, err := r.svc.Category.List(r.flags.Type)
	if err != nil {
		return err
	}

	return views.RenderCategoryList(categories, r.flags.Type)
}
