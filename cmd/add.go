package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/prompts"
	"github.com/domdomvn/domdom/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Amount   string
	Category string
	Date     string
	Note     string
	Desc     string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command

	// defaults prefill the interactive form, used by the scan flow
	defaults service.AddTransactionInput
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Record an income or expense. The direction is taken from the
chosen category, so picking "Salary" records income and picking "Food"
records an expense.

Examples:
# Interactive mode
domdom add

# Quick mode with flags
domdom add --amount 45000 --category Food --note "Lunch"

# A past expense
domdom add --amount 120000 --category Shopping --date 15/06/2025`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount in VND (e.g. 45000 or 45,000)")
	cmd.Flags().StringVar(&flags.Category, "category", "", "Category name or ID")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Transaction date (DD/MM/YYYY), default is today")
	cmd.Flags().StringVarP(&flags.Note, "note", "n", "", "Short note")
	cmd.Flags().StringVar(&flags.Desc, "desc", "", "Longer description")

	return cmd
}

func (r *addRunner) Run() error {
	snap, err := r.svc.Session.Current()
	if err != nil {
		return err
	}

	var input service.AddTransactionInput

	hasFlags := r.cmd.Flags().Changed("amount") || r.cmd.Flags().Changed("category")
	if hasFlags {
		input, err = r.flagsMode(snap)
	} else {
		input, err = r.interactiveMode(snap)
	}
	if err != nil {
		return err
	}

	updated, err := r.svc.Transaction.Add(r.cmd.Context(), input)
	if err != nil {
		return err
	}

	category, _ := updated.CategoryByID(input.CategoryID)
	pterm.Success.Printf("Recorded %s VND (%s) on %s\n",
		utils.FormatAmount(input.Amount), category.Name, input.Date.Request())
	return nil
}

func (r *addRunner) flagsMode(snap *model.Snapshot) (service.AddTransactionInput, error) {
	if r.flags.Amount == "" || r.flags.Category == "" {
		return service.AddTransactionInput{}, fmt.Errorf("when using flags, --amount and --category are both required")
	}

	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return service.AddTransactionInput{}, fmt.Errorf("invalid amount: %w", err)
	}

	category, err := resolveCategory(snap, r.flags.Category)
	if err != nil {
		return service.AddTransactionInput{}, err
	}

	date := model.Date{Time: time.Now()}
	if r.flags.Date != "" {
		date, err = model.ParseDate(r.flags.Date)
		if err != nil {
			return service.AddTransactionInput{}, fmt.Errorf("invalid date format, use DD/MM/YYYY: %w", err)
		}
	}

	return service.AddTransactionInput{
		Amount:      amount,
		CategoryID:  category.ID,
		Date:        date,
		Note:        r.flags.Note,
		Description: r.flags.Desc,
	}, nil
}

func (r *addRunner) interactiveMode(snap *model.Snapshot) (service.AddTransactionInput, error) {
	tab, err := prompts.PromptCategoryTab()
	if err != nil {
		return service.AddTransactionInput{}, err
	}

	categories := snap.CategoriesByType(tab)
	if len(categories) == 0 {
		return service.AddTransactionInput{}, fmt.Errorf("no %s categories yet, create one with 'domdom category create'", tab)
	}

	categoryID, err := prompts.PromptCategorySelection(categories, "Category:")
	if err != nil {
		return service.AddTransactionInput{}, err
	}

	defaultAmount := ""
	if r.defaults.Amount > 0 {
		defaultAmount = fmt.Sprint(r.defaults.Amount)
	}
	amount, err := prompts.PromptTransactionAmount(defaultAmount)
	if err != nil {
		return service.AddTransactionInput{}, err
	}

	defaultDate := r.defaults.Date
	if defaultDate.IsZero() {
		defaultDate = model.Date{Time: time.Now()}
	}
	date, err := prompts.PromptTransactionDate(defaultDate)
	if err != nil {
		return service.AddTransactionInput{}, err
	}

	note, err := prompts.PromptFreeText("Note (optional):", r.defaults.Note)
	if err != nil {
		return service.AddTransactionInput{}, err
	}

	description, err := prompts.PromptFreeText("Description (optional):", r.defaults.Description)
	if err != nil {
		return service.AddTransactionInput{}, err
	}

	return service.AddTransactionInput{
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        date,
		Note:        note,
		Description: description,
	}, nil
}

// resolveCategory accepts either a category id or a (case-insensitive)
// category name.
func resolveCategory(snap *model.Snapshot, ref string) (model.Category, error) {
	if category, ok := snap.CategoryByID(model.ID(ref)); ok {
		return category, nil
	}
	for _, c := range snap.Categories {
		if strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	return model.Category{}, fmt.Errorf("unknown category: %s", ref)
}
