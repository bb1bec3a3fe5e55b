package views

import (
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/ui"
	"github.com/domdomvn/domdom/internal/utils"
	"github.com/pterm/pterm"
)

func RenderAccountInfo(snap *model.Snapshot) error {
	ui.PrintL2Title("Account")

	tableData := pterm.TableData{
		{"Name", snap.UserName},
		{"Email", snap.UserEmail},
		{"Wallet", utils.FormatAmount(snap.Wallet) + " VND"},
		{"Ledger balance", ui.ColorBySign(utils.FormatAmount(snap.Amount)+" VND", snap.Amount)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
