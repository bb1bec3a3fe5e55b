package validation

import (
	"fmt"
	"strings"

	"github.com/domdomvn/domdom/internal/constants"
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/utils"
)

// ValidateEmail checks the basic shape of an email address before any
// request is sent.
func ValidateEmail(val any) error {
	email, ok := val.(string)
	if !ok {
		return fmt.Errorf("email must be a string")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email address")
	}
	domain := email[at+1:]
	if strings.Contains(domain, "@") || !strings.Contains(domain, ".") {
		return fmt.Errorf("invalid email address")
	}
	if strings.ContainsAny(email, " \t") {
		return fmt.Errorf("invalid email address")
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword enforces the account password policy: at least 8
// characters with a lowercase letter, an uppercase letter, a digit and a
// special character.
func ValidatePassword(val any) error {
	password, ok := val.(string)
	if !ok {
		return fmt.Errorf("password must be a string")
	}

	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune("!@#$%^&*", r):
			hasSpecial = true
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return fmt.Errorf("password needs lowercase, uppercase, a digit and a special character (!@#$%%^&*)")
	}
	return nil
}

// ValidateResetCode checks the password reset code a user received by
// email. Verification is local only: the code must be entered, but the
// server never sees it and the update_password call does not carry it.
func ValidateResetCode(val any) error {
	code, ok := val.(string)
	if !ok {
		return fmt.Errorf("reset code must be a string")
	}
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("reset code is required")
	}
	return nil
}

// emojiRanges lists the codepoint ranges rejected in free text. The list
// matches what the original client blocked; it is deliberately not a full
// emoji census.
var emojiRanges = [][2]rune{
	{0x1F600, 0x1F64F},
	{0x1F300, 0x1F5FF},
	{0x1F680, 0x1F6FF},
	{0x1F1E0, 0x1F1FF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
}

// ContainsEmoji reports whether text contains a blocked emoji codepoint.
func ContainsEmoji(text string) bool {
	for _, r := range text {
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				return true
			}
		}
	}
	return false
}

// ValidateFreeText validates a note or description field. Both are
// optional but must not contain emoji.
func ValidateFreeText(val any) error {
	text, ok := val.(string)
	if !ok {
		return fmt.Errorf("text must be a string")
	}

	if ContainsEmoji(text) {
		return fmt.Errorf("emoji are not allowed")
	}
	if len(text) > constants.MaxNoteLen {
		return fmt.Errorf("text too long (max %d characters)", constants.MaxNoteLen)
	}
	return nil
}

// ValidateAmount validates a user-typed amount string: digits and comma
// separators only, strictly positive.
func ValidateAmount(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	amount, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateCategoryName checks a new category name against the existing
// categories of the same tab. Uniqueness is case-insensitive and checked
// client-side before any request is sent.
func ValidateCategoryName(name string, existing []model.Category) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("category name too long (max %d characters)", constants.MaxNameLen)
	}

	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return fmt.Errorf("category '%s' already exists", c.Name)
		}
	}
	return nil
}
