package cmd

import (
	"fmt"

	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/prompts"
	"github.com/domdomvn/domdom/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type walletRunner struct {
	svc *service.Service
}

func NewWalletCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "wallet [amount]",
		Short: "Show or set your cash wallet balance",
		Long: `Show the wallet balance, or set it to a new value. Changing the
wallet shifts the running total by the same difference, so history is
left untouched.

Examples:
# Show the current wallet
domdom wallet

# Set it to 1,500,000 VND
domdom wallet 1500000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &walletRunner{svc: svc}
			return runner.Run(cmd, args)
		},
	}
}

func (r *walletRunner) Run(cmd *cobra.Command, args []string) error {
	snap, err := r.svc.Session.Current()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		pterm.Printf("Wallet: %s VND\n", utils.FormatAmount(snap.Wallet))
		return nil
	}

	newWallet, err := utils.ParseAmount(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	confirmed, err := prompts.PromptConfirm(
		fmt.Sprintf("Set wallet to %s VND (was %s VND)?",
			utils.FormatAmount(newWallet), utils.FormatAmount(snap.Wallet)),
		true,
	)
	if err != nil {
		return err
	}
	if !confirmed {
		pterm.Info.Println("Wallet unchanged")
		return nil
	}

	updated, err := r.svc.Wallet.Update(cmd.Context(), newWallet)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Wallet set to %s VND\n", utils.FormatAmount(updated.Wallet))
	return nil
}
