package views

import (
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/ui"
	"github.com/domdomvn/domdom/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(t model.Transaction, category model.Category) error {
	amount := utils.FormatAmount(t.Amount) + " VND"
	if t.Type == model.TypeIncome {
		amount = "+" + amount
	} else {
		amount = "-" + amount
	}

	note := t.Note
	if note == "" {
		note = "-"
	}
	description := t.Description
	if description == "" {
		description = "-"
	}

	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", string(t.ID)},
		{"Date", t.Date.Request()},
		{"Type", ui.ColorByType(t.Type, t.Type)},
		{"Category", category.Name + " (" + category.Icon + ")"},
		{"Amount", ui.ColorByType(amount, t.Type)},
		{"Note", note},
		{"Description", description},
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
