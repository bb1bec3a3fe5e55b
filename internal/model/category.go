package model

// Category types mirror transaction types: a category belongs to either
// the expense tab or the income tab.
const (
	CategoryExpense = "expense"
	CategoryIncome  = "income"
)

// Category is immutable once created; there is no edit flow.
type Category struct {
	ID   ID     `json:"category_id"`
	Name string `json:"category_name"`
	Icon string `json:"category_icon"`
	Type string `json:"category_type"`
}

// UnknownCategory is rendered when a transaction references a category id
// that is not present in the snapshot.
var UnknownCategory = Category{
	Name: "Unknown",
	Icon: "help-circle",
}
