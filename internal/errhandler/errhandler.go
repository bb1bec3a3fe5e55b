package errhandler

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/domdomvn/domdom/internal/api"
	"github.com/domdomvn/domdom/internal/store"
)

func HandleError(err error) {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) || strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	if errors.Is(err, store.ErrNoSession) {
		pterm.Error.Println("You are not signed in. Run 'domdom auth login' first.")
		return
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		pterm.Error.Println(apiErr.Error())
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
