package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAmount renders a whole-dong amount with thousands separators, the
// way every screen displays money (e.g. 1500000 -> "1,500,000").
func FormatAmount(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatSigned renders an amount with an explicit +/- prefix.
func FormatSigned(amount int64) string {
	if amount >= 0 {
		return "+" + FormatAmount(amount)
	}
	return FormatAmount(amount)
}

// ParseAmount parses a user-typed amount. Only digits and comma
// separators are accepted; separators are stripped before parsing.
func ParseAmount(input string) (int64, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return 0, fmt.Errorf("amount is required")
	}

	for _, r := range raw {
		if (r < '0' || r > '9') && r != ',' {
			return 0, fmt.Errorf("amount may only contain digits and commas")
		}
	}

	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0, fmt.Errorf("amount is required")
	}

	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", input)
	}
	return amount, nil
}
