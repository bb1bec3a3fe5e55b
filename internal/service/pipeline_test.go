package service

import (
	"testing"
	"time"

	"github.com/domdomvn/domdom/internal/constants"
	"github.com/domdomvn/domdom/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id, transactionType string, amount int64, day string) model.Transaction {
	date, err := model.ParseDate(day)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:     model.ID(id),
		Type:   transactionType,
		Amount: amount,
		Date:   date,
	}
}

func TestBuildOverviewGroupsAndTotals(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeExpense, 100, "2024-06-01"),
		tx("2", model.TypeIncome, 500, "2024-06-01"),
		tx("3", model.TypeExpense, 50, "2024-06-02"),
	}
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	ov := BuildOverview(transactions, 0, OverviewOptions{Filter: constants.FilterAll}, now)

	assert.Equal(t, int64(500), ov.TotalIncome)
	assert.Equal(t, int64(150), ov.TotalExpense)
	assert.Equal(t, int64(350), ov.Balance)

	require.Len(t, ov.Groups, 2)
	// default group order is newest day first
	assert.Equal(t, "2024-06-02", ov.Groups[0].Date.DayKey())
	assert.Equal(t, int64(-50), ov.Groups[0].Total)
	assert.Equal(t, "2024-06-01", ov.Groups[1].Date.DayKey())
	assert.Equal(t, int64(400), ov.Groups[1].Total)
}

func TestBuildOverviewEmptyList(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	ov := BuildOverview(nil, 1_000_000, OverviewOptions{Filter: constants.FilterAll}, now)

	assert.Zero(t, ov.TotalIncome)
	assert.Zero(t, ov.TotalExpense)
	assert.Zero(t, ov.Balance)
	assert.Zero(t, ov.IncomeFixed)
	assert.Zero(t, ov.ExpenseFixed)
	assert.Zero(t, ov.BalanceFixed)
	assert.Equal(t, int64(1_000_000), ov.TotalBalance)
	assert.Empty(t, ov.Groups)
}

func TestBuildOverviewFixedTotalsIgnoreFilter(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeIncome, 1000, "2024-05-10"),
		tx("2", model.TypeExpense, 300, "2024-06-02"),
		tx("3", model.TypeIncome, 200, "2024-06-20"),
	}
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, filter := range []string{constants.FilterAll, constants.FilterCurrent, constants.FilterMonth} {
		opts := OverviewOptions{Filter: filter, Month: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
		ov := BuildOverview(transactions, 0, opts, now)

		assert.Equal(t, int64(1200), ov.IncomeFixed, "filter %s", filter)
		assert.Equal(t, int64(300), ov.ExpenseFixed, "filter %s", filter)
		assert.Equal(t, ov.IncomeFixed-ov.ExpenseFixed, ov.BalanceFixed, "filter %s", filter)
	}
}

func TestBuildOverviewTotalBalanceIncludesWallet(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeIncome, 2_000_000, "2024-06-01"),
		tx("2", model.TypeExpense, 500_000, "2024-06-02"),
	}
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	ov := BuildOverview(transactions, 1_000_000, OverviewOptions{Filter: constants.FilterCurrent}, now)

	assert.Equal(t, int64(2_500_000), ov.TotalBalance)
}

func TestBuildOverviewGroupTotalsSumToBalance(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeExpense, 75, "2024-06-03"),
		tx("2", model.TypeIncome, 900, "2024-06-03"),
		tx("3", model.TypeExpense, 120, "2024-06-07"),
		tx("4", model.TypeIncome, 40, "2024-06-09"),
	}
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	ov := BuildOverview(transactions, 0, OverviewOptions{Filter: constants.FilterCurrent}, now)

	var sum int64
	for _, g := range ov.Groups {
		sum += g.Total
	}
	assert.Equal(t, ov.Balance, sum)
}

func TestFilterTransactionsIsIdempotent(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeIncome, 100, "2024-05-31"),
		tx("2", model.TypeExpense, 50, "2024-06-01"),
		tx("3", model.TypeIncome, 25, "2024-06-30"),
	}
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	once := FilterTransactions(transactions, constants.FilterCurrent, time.Time{}, now)
	twice := FilterTransactions(once, constants.FilterCurrent, time.Time{}, now)

	assert.Equal(t, once, twice)
	require.Len(t, once, 2)
	assert.Equal(t, model.ID("2"), once[0].ID)
	assert.Equal(t, model.ID("3"), once[1].ID)
}

func TestFilterTransactionsDoesNotMutateInput(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeIncome, 100, "2024-06-01"),
		tx("2", model.TypeExpense, 50, "2024-06-02"),
	}
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	filtered := FilterTransactions(transactions, constants.FilterAll, time.Time{}, now)
	SortTransactions(filtered, SortAsc, SortNone)

	assert.Equal(t, model.ID("1"), transactions[0].ID)
	assert.Equal(t, model.ID("2"), transactions[1].ID)
}

func TestFilterTransactionsByMonth(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeIncome, 100, "2024-04-30"),
		tx("2", model.TypeExpense, 50, "2024-05-01"),
		tx("3", model.TypeIncome, 25, "2024-05-31"),
		tx("4", model.TypeExpense, 10, "2024-06-01"),
	}
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	month := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	filtered := FilterTransactions(transactions, constants.FilterMonth, month, now)

	require.Len(t, filtered, 2)
	assert.Equal(t, model.ID("2"), filtered[0].ID)
	assert.Equal(t, model.ID("3"), filtered[1].ID)
}

func TestSortCriteriaToggleCycle(t *testing.T) {
	c := SortNone

	c = c.Toggle()
	assert.Equal(t, SortDesc, c)

	c = c.Toggle()
	assert.Equal(t, SortAsc, c)

	c = c.Toggle()
	assert.Equal(t, SortNone, c)
}

func TestSortTransactionsSingleCriterion(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeIncome, 300, "2024-06-05"),
		tx("2", model.TypeExpense, 100, "2024-06-01"),
		tx("3", model.TypeIncome, 50, "2024-06-10"),
	}

	byDate := SortTransactions(append([]model.Transaction(nil), transactions...), SortAsc, SortNone)
	assert.Equal(t, []model.ID{"2", "1", "3"}, ids(byDate))

	byAmount := SortTransactions(append([]model.Transaction(nil), transactions...), SortNone, SortDesc)
	// signed values: +300, -100, +50
	assert.Equal(t, []model.ID{"1", "3", "2"}, ids(byAmount))
}

func TestSortTransactionsBothActiveDateWins(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeIncome, 10, "2024-06-01"),
		tx("2", model.TypeIncome, 999, "2024-06-03"),
		tx("3", model.TypeExpense, 500, "2024-06-02"),
	}

	sorted := SortTransactions(transactions, SortDesc, SortDesc)

	// amount sort never reorders across different dates
	assert.Equal(t, []model.ID{"2", "3", "1"}, ids(sorted))
}

func TestSortTransactionsAmountBreaksDateTies(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeExpense, 700, "2024-06-01"),
		tx("2", model.TypeIncome, 20, "2024-06-01"),
		tx("3", model.TypeIncome, 400, "2024-06-01"),
	}

	sorted := SortTransactions(transactions, SortDesc, SortDesc)

	// same day, so signed amounts decide: +400, +20, -700
	assert.Equal(t, []model.ID{"3", "2", "1"}, ids(sorted))
}

func TestSortTransactionsNoneKeepsOrder(t *testing.T) {
	transactions := []model.Transaction{
		tx("3", model.TypeIncome, 1, "2024-06-09"),
		tx("1", model.TypeExpense, 2, "2024-06-01"),
		tx("2", model.TypeIncome, 3, "2024-06-05"),
	}

	sorted := SortTransactions(transactions, SortNone, SortNone)

	assert.Equal(t, []model.ID{"3", "1", "2"}, ids(sorted))
}

func TestGroupByDayKeepsRowOrderWithinGroup(t *testing.T) {
	transactions := []model.Transaction{
		tx("1", model.TypeExpense, 10, "2024-06-01"),
		tx("2", model.TypeIncome, 20, "2024-06-01"),
		tx("3", model.TypeExpense, 30, "2024-06-01"),
	}

	groups := groupByDay(transactions, SortNone)

	require.Len(t, groups, 1)
	assert.Equal(t, []model.ID{"1", "2", "3"}, ids(groups[0].Transactions))
	assert.Equal(t, int64(-20), groups[0].Total)
}

func TestMonthOf(t *testing.T) {
	picked := time.Date(2024, 6, 17, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), MonthOf(picked))
}

func ids(transactions []model.Transaction) []model.ID {
	out := make([]model.ID, len(transactions))
	for i, t := range transactions {
		out[i] = t.ID
	}
	return out
}
