package service

import (
	"sort"
	"time"

	"github.com/domdomvn/domdom/internal/constants"
	"github.com/domdomvn/domdom/internal/model"
)

// SortCriteria is one of the overview's tri-state sort toggles.
type SortCriteria string

const (
	SortNone SortCriteria = constants.SortNone
	SortDesc SortCriteria = constants.SortDesc
	SortAsc  SortCriteria = constants.SortAsc
)

// Toggle advances the criterion through its cycle:
// none -> desc -> asc -> none.
func (c SortCriteria) Toggle() SortCriteria {
	switch c {
	case SortNone:
		return SortDesc
	case SortDesc:
		return SortAsc
	default:
		return SortNone
	}
}

// OverviewOptions are the user-selected filter and sort criteria of the
// overview screen.
type OverviewOptions struct {
	Filter     string    // all | current | month
	Month      time.Time // selected month, used when Filter == month
	DateSort   SortCriteria
	AmountSort SortCriteria
}

// DayGroup is one calendar day of the ledger with its signed total.
type DayGroup struct {
	Date         model.Date
	Total        int64
	Transactions []model.Transaction
}

// Overview is the view model of the overview screen. The Fixed totals
// cover the entire unfiltered list and never move with the filter; the
// plain totals cover the filtered list shown in the summary card.
type Overview struct {
	Groups []DayGroup

	TotalIncome  int64
	TotalExpense int64
	Balance      int64

	IncomeFixed  int64
	ExpenseFixed int64
	BalanceFixed int64

	// TotalBalance is wallet + BalanceFixed, the header figure shown
	// regardless of the active filter.
	TotalBalance int64
}

// MonthOf normalizes a picked date to the first day of its month.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// BuildOverview computes the grouped, filtered, ordered view model from
// the snapshot's raw lists. Pure: no I/O, no mutation of the input slice.
// now is the render time; the "current" filter is evaluated against it.
func BuildOverview(transactions []model.Transaction, wallet int64, opts OverviewOptions, now time.Time) Overview {
	var ov Overview

	for _, t := range transactions {
		if t.Type == model.TypeIncome {
			ov.IncomeFixed += t.Amount
		} else {
			ov.ExpenseFixed += t.Amount
		}
	}
	ov.BalanceFixed = ov.IncomeFixed - ov.ExpenseFixed
	ov.TotalBalance = wallet + ov.BalanceFixed

	filtered := FilterTransactions(transactions, opts.Filter, opts.Month, now)
	filtered = SortTransactions(filtered, opts.DateSort, opts.AmountSort)

	for _, t := range filtered {
		if t.Type == model.TypeIncome {
			ov.TotalIncome += t.Amount
		} else {
			ov.TotalExpense += t.Amount
		}
	}
	ov.Balance = ov.TotalIncome - ov.TotalExpense

	ov.Groups = groupByDay(filtered, opts.DateSort)
	return ov
}

// FilterTransactions keeps the transactions matching the date filter. The
// input slice is never modified; "all" returns a copy for consistency
// with the sorted paths.
func FilterTransactions(transactions []model.Transaction, filter string, month time.Time, now time.Time) []model.Transaction {
	out := make([]model.Transaction, 0, len(transactions))

	switch filter {
	case constants.FilterCurrent:
		for _, t := range transactions {
			if t.Date.SameMonth(now) {
				out = append(out, t)
			}
		}
	case constants.FilterMonth:
		for _, t := range transactions {
			if t.Date.SameMonth(month) {
				out = append(out, t)
			}
		}
	default:
		out = append(out, transactions...)
	}
	return out
}

// SortTransactions orders transactions by the two tri-state criteria.
// When both are active the date is the primary key and the signed amount
// breaks date ties; with a single active criterion only that key is used;
// with neither, the input order is preserved.
func SortTransactions(transactions []model.Transaction, dateSort, amountSort SortCriteria) []model.Transaction {
	if dateSort == SortNone && amountSort == SortNone {
		return transactions
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]

		if dateSort != SortNone && amountSort != SortNone {
			if !a.Date.Equal(b.Date.Time) {
				return lessDate(a.Date, b.Date, dateSort)
			}
			return lessAmount(a.Signed(), b.Signed(), amountSort)
		}
		if dateSort != SortNone {
			return lessDate(a.Date, b.Date, dateSort)
		}
		return lessAmount(a.Signed(), b.Signed(), amountSort)
	})
	return transactions
}

func lessDate(a, b model.Date, dir SortCriteria) bool {
	if dir == SortAsc {
		return a.Before(b.Time)
	}
	return a.After(b.Time)
}

func lessAmount(a, b int64, dir SortCriteria) bool {
	if dir == SortAsc {
		return a < b
	}
	return a > b
}

// groupByDay buckets transactions by calendar day, keeping the incoming
// per-transaction order inside each bucket. Group order follows the date
// sort criterion and defaults to newest first when it is unset.
func groupByDay(transactions []model.Transaction, dateSort SortCriteria) []DayGroup {
	if len(transactions) == 0 {
		return nil
	}

	index := make(map[string]int)
	var groups []DayGroup

	for _, t := range transactions {
		key := t.Date.DayKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			day, _ := model.ParseDate(key)
			groups = append(groups, DayGroup{Date: day})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
		groups[i].Total += t.Signed()
	}

	dir := dateSort
	if dir == SortNone {
		dir = SortDesc
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return lessDate(groups[i].Date, groups[j].Date, dir)
	})

	return groups
}
