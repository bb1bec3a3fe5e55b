package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/domdomvn/domdom/internal/constants"
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/validation"
)

// PromptCategoryTab asks which tab the new category belongs to
func PromptCategoryTab() (string, error) {
	selected, err := PromptSelect("Category type:", []string{"Expense", "Income"}, "Expense")
	if err != nil {
		return "", err
	}
	if selected == "Income" {
		return model.CategoryIncome, nil
	}
	return model.CategoryExpense, nil
}

// PromptCategoryName prompts for a category name, rejecting duplicates
// within the tab before anything is sent to the server.
func PromptCategoryName(existing []model.Category) (string, error) {
	return PromptInput("Category name:", "", func(s string) error {
		return validation.ValidateCategoryName(s, existing)
	})
}

// PromptCategoryIcon shows the fixed icon picker set.
func PromptCategoryIcon() (string, error) {
	var opts []huh.Option[string]
	for _, icon := range constants.CategoryIcons {
		opts = append(opts, huh.NewOption(icon, icon))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title("Choose an icon:").
		Options(opts...).
		Value(&selected).
		Height(15).
		Run()
	return selected, err
}
