package prompts

import (
	"fmt"

	"github.com/domdomvn/domdom/internal/validation"
)

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

// PromptEmail prompts for an account email
func PromptEmail() (string, error) {
	return PromptInput("Email:", "", func(s string) error {
		return validation.ValidateEmail(s)
	})
}

// PromptSignInPassword prompts for the existing password; no strength
// check on sign-in.
func PromptSignInPassword() (string, error) {
	return PromptPassword("Password:", nil)
}

// PromptNewPassword prompts for a new password and enforces the policy
// inline.
func PromptNewPassword(message string) (string, error) {
	return PromptPassword(message, func(s string) error {
		return validation.ValidatePassword(s)
	})
}

// PromptResetCode prompts for the code sent by a Forgot_password
// request. The code is only checked locally.
func PromptResetCode() (string, error) {
	return PromptInput("Reset code:", "", func(s string) error {
		return validation.ValidateResetCode(s)
	})
}

// PromptDisplayName prompts for the account display name on sign-up
func PromptDisplayName() (string, error) {
	return PromptInput("Name:", "", func(s string) error {
		if s == "" {
			return errRequired("name")
		}
		return nil
	})
}
