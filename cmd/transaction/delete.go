package transaction

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui"
	"github.com/domdomvn/domdom/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// surveyOpts contains custom options for all survey prompts
var surveyOpts = []survey.AskOpt{ui.IconOption()}

type DeleteCommandRunner struct {
	svc *service.Service
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction. It is removed from your history and totals.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DeleteCommandRunner{
				svc: svc,
			}
			return runner.Run(cmd, args)
		},
	}
}

func (r *DeleteCommandRunner) Run(cmd *cobra.Command, args []string) error {
	snap, err := r.svc.Session.Current()
	if err != nil {
		return err
	}

	transactionID := model.ID(args[0])
	t, ok := snap.TransactionByID(transactionID)
	if !ok {
		return fmt.Errorf("transaction not found: %s", args[0])
	}

	category, _ := snap.CategoryByID(t.CategoryID)

	pterm.Warning.Printf("About to delete transaction %s:\n", transactionID)
	deletionInfo := pterm.TableData{
		{"Date", t.Date.Request()},
		{"Category", category.Name},
		{"Amount", ui.ColorByType(utils.FormatAmount(t.Amount)+" VND", t.Type)},
		{"Note", t.Note},
	}

	pterm.DefaultTable.WithData(deletionInfo).Render()

	pterm.Warning.Println("This action cannot be undone!")

	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: "Do you want to delete this transaction?",
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, surveyOpts...); err != nil {
		return err
	}

	if !confirmation {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	if _, err := r.svc.Transaction.Delete(cmd.Context(), transactionID); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction %s deleted successfully\n", transactionID)
	return nil
}
