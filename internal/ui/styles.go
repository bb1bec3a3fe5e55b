package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// ColorBySign paints money green when the value is non-negative and red
// otherwise, matching the income/expense palette used everywhere.
func ColorBySign(text string, value int64) string {
	if value >= 0 {
		return pterm.Green(text)
	}
	return pterm.Red(text)
}

// ColorByType paints text by transaction direction.
func ColorByType(text string, transactionType string) string {
	if transactionType == "income" {
		return pterm.Green(text)
	}
	return pterm.Red(text)
}
