package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// ID is an opaque identifier assigned by the remote API. The server is
// inconsistent about encoding ids as JSON numbers or strings, so both are
// accepted on the wire.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", s, err)
	}
	*id = ID(n.String())
	return nil
}

// Date is a calendar date; time-of-day is never significant beyond the
// day/month/year it falls on.
type Date struct {
	time.Time
}

func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// dateLayouts are tried in order when decoding server dates. The backend
// has been observed returning full timestamps, bare ISO dates and the
// DD/MM/YYYY form it accepts on requests.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date: %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(time.RFC3339))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DayKey truncates the date to its calendar day, for grouping.
func (d Date) DayKey() string {
	return d.Format("2006-01-02")
}

// Request renders the date the way the API expects it on mutations
// (DD/MM/YYYY).
func (d Date) Request() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("02/01/2006")
}

// SameMonth reports whether the date falls in the same calendar month and
// year as t.
func (d Date) SameMonth(t time.Time) bool {
	return d.Year() == t.Year() && d.Month() == t.Month()
}

// Transaction is a single ledger entry owned by the remote API. Amount is
// always a non-negative magnitude; the sign is derived from Type.
type Transaction struct {
	ID          ID     `json:"transaction_id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Date        Date   `json:"date"`
	CategoryID  ID     `json:"category_id"`
	Note        string `json:"note"`
	Description string `json:"description"`
}

// Signed returns the amount with its direction applied: positive for
// income, negative for expense.
func (t Transaction) Signed() int64 {
	if t.Type == TypeIncome {
		return t.Amount
	}
	return -t.Amount
}
