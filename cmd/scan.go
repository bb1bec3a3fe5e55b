package cmd

import (
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/prompts"
	"github.com/domdomvn/domdom/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type scanFlags struct {
	Image string
}

type scanRunner struct {
	svc   *service.Service
	flags *scanFlags
	cmd   *cobra.Command
}

func NewScanCmd(svc *service.Service) *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Extract a transaction from a receipt image",
		Long: `Send a hosted receipt image through text extraction and use the
result to prefill a new transaction.

Example:
domdom scan --image https://example.com/receipt.jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &scanRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Image, "image", "i", "", "URL of the receipt image")

	return cmd
}

func (r *scanRunner) Run() error {
	imageURL := r.flags.Image
	var err error
	if imageURL == "" {
		imageURL, err = prompts.PromptInput("Receipt image URL:", "", nil)
		if err != nil {
			return err
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start("Extracting text from receipt...")
	result, err := r.svc.Transaction.Scan(r.cmd.Context(), imageURL)
	if err != nil {
		if spinner != nil {
			spinner.Fail("Extraction failed")
		}
		return err
	}
	if spinner != nil {
		spinner.Success("Receipt scanned")
	}

	defaults := service.AddTransactionInput{
		Note:        result.Note,
		Description: result.Description,
	}
	if result.TotalAmount != "" {
		if amount, err := utils.ParseAmount(result.TotalAmount); err == nil {
			defaults.Amount = amount
		}
	}
	if result.Date != "" {
		if date, err := model.ParseDate(result.Date); err == nil {
			defaults.Date = date
		}
	}

	tableData := pterm.TableData{
		{"Amount", result.TotalAmount},
		{"Date", result.Date},
		{"Description", result.Description},
		{"Note", result.Note},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	confirmed, err := prompts.PromptConfirm("Create a transaction from this receipt?", true)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	runner := &addRunner{
		svc:      r.svc,
		flags:    &addFlags{},
		cmd:      r.cmd,
		defaults: defaults,
	}
	return runner.Run()
}
