package prompts

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/domdomvn/domdom/internal/constants"
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/utils"
	"github.com/domdomvn/domdom/internal/validation"
)

// PromptTransactionAmount prompts for an amount in whole dong
func PromptTransactionAmount(defaultValue string) (int64, error) {
	raw, err := PromptAmount(
		"Amount (VND):",
		"Digits and commas only, e.g. 150,000",
		func(s string) error {
			if s == "" && defaultValue != "" {
				return nil
			}
			return validation.ValidateAmount(s)
		},
	)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		raw = defaultValue
	}

	return utils.ParseAmount(raw)
}

// PromptTransactionDate prompts for the transaction date
func PromptTransactionDate(defaultDate model.Date) (model.Date, error) {
	def := time.Now().Format(constants.DateFormat)
	if !defaultDate.IsZero() {
		def = defaultDate.DayKey()
	}

	raw, err := PromptDate(
		"Transaction Date (YYYY-MM-DD):",
		def,
		"Press Enter to keep the suggested date",
	)
	if err != nil {
		return model.Date{}, err
	}

	date, err := model.ParseDate(raw)
	if err != nil {
		return model.Date{}, fmt.Errorf("invalid date: %s", raw)
	}
	return date, nil
}

// PromptCategorySelection prompts for a category from one tab, showing
// each category's icon identifier next to its name.
func PromptCategorySelection(categories []model.Category, message string) (model.ID, error) {
	if len(categories) == 0 {
		return "", fmt.Errorf("no categories yet; create one with 'domdom category create'")
	}

	var opts []huh.Option[string]
	idByDisplay := make(map[string]model.ID)

	for _, c := range categories {
		display := fmt.Sprintf("%s (%s)", c.Name, c.Icon)
		opts = append(opts, huh.NewOption(display, display))
		idByDisplay[display] = c.ID
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(15).
		Run()
	if err != nil {
		return "", err
	}

	return idByDisplay[selected], nil
}

// PromptFreeText prompts for a note or description; emoji are rejected
// inline before submission.
func PromptFreeText(message string, defaultValue string) (string, error) {
	return PromptInput(message, defaultValue, func(s string) error {
		return validation.ValidateFreeText(s)
	})
}
