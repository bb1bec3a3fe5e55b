package views

import (
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/ui"
	"github.com/domdomvn/domdom/internal/utils"
	"github.com/pterm/pterm"
)

// RenderTransactionList draws a flat transaction table, most useful when
// hunting for an ID to edit or delete.
func RenderTransactionList(transactions []model.Transaction, snap *model.Snapshot, title string) error {
	if len(transactions) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println(title)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Category", "Note", "Amount"},
	}

	for _, t := range transactions {
		category, _ := snap.CategoryByID(t.CategoryID)

		amount := utils.FormatAmount(t.Amount) + " VND"
		if t.Type == model.TypeIncome {
			amount = "+" + amount
		} else {
			amount = "-" + amount
		}

		tableData = append(tableData, []string{
			string(t.ID),
			t.Date.Request(),
			ui.ColorByType(t.Type, t.Type),
			category.Name,
			t.Note,
			ui.ColorByType(amount, t.Type),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
	return nil
}
