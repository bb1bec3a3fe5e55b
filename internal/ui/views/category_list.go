package views

import (
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/ui"
	"github.com/pterm/pterm"
)

func RenderCategoryList(categories []model.Category, categoryType string) error {
	ui.PrintL2Title("%s categories", categoryTitle(categoryType))

	if len(categories) == 0 {
		pterm.Warning.Println("No categories yet")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Name", "Icon"},
	}
	for _, c := range categories {
		tableData = append(tableData, []string{
			string(c.ID),
			ui.ColorByType(c.Name, transactionTypeOf(categoryType)),
			c.Icon,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d categories\n", len(categories))
	return nil
}

func categoryTitle(categoryType string) string {
	if categoryType == model.CategoryIncome {
		return "Income"
	}
	return "Expense"
}

func transactionTypeOf(categoryType string) string {
	if categoryType == model.CategoryIncome {
		return model.TypeIncome
	}
	return model.TypeExpense
}
