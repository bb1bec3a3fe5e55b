package transaction

import (
	"fmt"

	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/prompts"
	"github.com/domdomvn/domdom/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type EditCommandRunner struct {
	svc *service.Service
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction's amount, date, note and description
interactively. The category can't be changed after creation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &EditCommandRunner{
				svc: svc,
			}
			return runner.Run(cmd, args)
		},
	}
}

func (r *EditCommandRunner) Run(cmd *cobra.Command, args []string) error {
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
	if err := views.RenderTransactionDetail(t, category); err != nil {
		return err
	}

	amount, err := prompts.PromptTransactionAmount(fmt.Sprint(t.Amount))
	if err != nil {
		return err
	}

	date, err := prompts.PromptTransactionDate(t.Date)
	if err != nil {
		return err
	}

	note, err := prompts.PromptFreeText("Note:", t.Note)
	if err != nil {
		return err
	}

	description, err := prompts.PromptFreeText("Description:", t.Description)
	if err != nil {
		return err
	}

	_, err = r.svc.Transaction.Edit(cmd.Context(), service.EditTransactionInput{
		TransactionID: transactionID,
		Amount:        amount,
		Date:          date,
		Note:          note,
		Description:   description,
	})
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction %s updated\n", transactionID)
	return nil
}
