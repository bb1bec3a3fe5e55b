package views

import (
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui"
	"github.com/domdomvn/domdom/internal/utils"
	"github.com/pterm/pterm"
)

// RenderOverview draws the overview screen: header balance, the filtered
// summary card, then one section per calendar day.
func RenderOverview(ov service.Overview, snap *model.Snapshot, filterLabel string) error {
	pterm.DefaultSection.Printf("Balance: %s VND", utils.FormatAmount(ov.TotalBalance))

	pterm.Printf("Wallet: %s VND\n", utils.FormatAmount(snap.Wallet))
	if snap.Notification != "" {
		pterm.Info.Println(snap.Notification)
	}
	pterm.Println()

	ui.PrintL2Title("Overview (%s)", filterLabel)
	summary := pterm.TableData{
		{"Money in", pterm.Green(utils.FormatAmount(ov.TotalIncome) + " VND")},
		{"Money out", pterm.Red("-" + utils.FormatAmount(ov.TotalExpense) + " VND")},
		{"Balance", ui.ColorBySign(utils.FormatAmount(ov.Balance)+" VND", ov.Balance)},
	}
	if err := pterm.DefaultTable.WithData(summary).Render(); err != nil {
		return err
	}

	if len(ov.Groups) == 0 {
		pterm.Warning.Println("No transactions for this period")
		return nil
	}

	for _, group := range ov.Groups {
		pterm.Println()
		dayTitle := group.Date.Format("Monday, 02/01/2006")
		dayTotal := ui.ColorBySign(utils.FormatSigned(group.Total)+" VND", group.Total)
		pterm.DefaultSection.WithLevel(2).Printf("%s   %s", dayTitle, dayTotal)

		tableData := pterm.TableData{
			{"ID", "Category", "Note", "Amount"},
		}
		for _, t := range group.Transactions {
			category, _ := snap.CategoryByID(t.CategoryID)

			amount := utils.FormatAmount(t.Amount) + " VND"
			if t.Type == model.TypeIncome {
				amount = "+" + amount
			} else {
				amount = "-" + amount
			}

			tableData = append(tableData, []string{
				string(t.ID),
				ui.ColorByType(category.Name, t.Type),
				t.Note,
				ui.ColorByType(amount, t.Type),
			})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
			return err
		}
	}

	pterm.Println()
	pterm.Info.Printf("Total: %s in, %s out across the full ledger\n",
		utils.FormatAmount(ov.IncomeFixed), utils.FormatAmount(ov.ExpenseFixed))
	return nil
}
