package api

import (
	"encoding/json"

	"github.com/domdomvn/domdom/internal/model"
)

// Operation names carried in the envelope's "type" field. Casing follows
// the server exactly, including the capitalized Forgot_password.
const (
	opSignIn                  = "signin"
	opSignUp                  = "signup"
	opForgotPassword          = "Forgot_password"
	opUpdatePassword          = "update_password"
	opInsertTransactions      = "insert_transactions"
	opUpdateTransaction       = "update_transaction"
	opUpdateTransactionStatus = "update_status_transaction"
	opInsertCategories        = "insert_categories"
	opUpdateWallet            = "update_wallet"
	opExtractText             = "extract_text"
)

// CategoryList tolerates both encodings the server has used for nested
// collections: a plain JSON array, and the legacy form where the array is
// itself serialized into a JSON string.
type CategoryList []model.Category

func (l *CategoryList) UnmarshalJSON(data []byte) error {
	data, err := unwrapNested(data)
	if err != nil {
		return err
	}
	if data == nil {
		*l = nil
		return nil
	}
	var out []model.Category
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// TransactionList mirrors CategoryList for the transactions collection.
type TransactionList []model.Transaction

func (l *TransactionList) UnmarshalJSON(data []byte) error {
	data, err := unwrapNested(data)
	if err != nil {
		return err
	}
	if data == nil {
		*l = nil
		return nil
	}
	var out []model.Transaction
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// unwrapNested peels one string layer off a double-encoded value. A nil
// return with nil error means the field was null or empty.
func unwrapNested(data []byte) ([]byte, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	if data[0] != '"' {
		return data, nil
	}
	var inner string
	if err := json.Unmarshal(data, &inner); err != nil {
		return nil, err
	}
	if inner == "" {
		return nil, nil
	}
	return []byte(inner), nil
}

// Response is the union of fields the API returns. Sign-in/up responses
// carry the identity fields; every mutation additionally returns the
// refreshed amount, categories, transactions, wallet and notification to
// be merged into the local snapshot.
type Response struct {
	Message      string          `json:"message"`
	UserID       model.ID        `json:"user_id"`
	UserName     string          `json:"user_name"`
	UserEmail    string          `json:"user_email"`
	Note         string          `json:"note"`
	Amount       int64           `json:"amount"`
	Wallet       int64           `json:"wallet"`
	Notification string          `json:"notification"`
	Categories   CategoryList    `json:"categories"`
	Transactions TransactionList `json:"transactions"`
}

// Snapshot converts a sign-in/up response into a full local snapshot.
func (r *Response) Snapshot() model.Snapshot {
	return model.Snapshot{
		UserID:       r.UserID,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		Amount:       r.Amount,
		Wallet:       r.Wallet,
		Note:         r.Note,
		Notification: r.Notification,
		Categories:   r.Categories,
		Transactions: r.Transactions,
	}
}

// ExtractResult is the payload of extract_text: fields the OCR service
// pulled from a receipt image. The note field keeps the server's original
// name on the wire.
type ExtractResult struct {
	TotalAmount string `json:"total_amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Note        string `json:"ghichu"`
}

// InsertTransactionRequest carries a new transaction. The amount travels
// as an unformatted digit string and the date as DD/MM/YYYY; both quirks
// are part of the server contract.
type InsertTransactionRequest struct {
	Type            string   `json:"type"`
	UserID          string   `json:"user_id"`
	Amount          string   `json:"amount"`
	CategoryID      model.ID `json:"category_id"`
	Date            string   `json:"date"`
	Note            string   `json:"note"`
	Description     string   `json:"description"`
	TransactionType string   `json:"transaction_type"`
}

// UpdateTransactionRequest edits an existing transaction in place.
type UpdateTransactionRequest struct {
	Type          string   `json:"type"`
	UserID        model.ID `json:"user_id"`
	TransactionID model.ID `json:"transaction_id"`
	Amount        string   `json:"amount"`
	Date          string   `json:"date"`
	Description   string   `json:"description"`
	Note          string   `json:"note"`
}

// InsertCategoryRequest creates a category in one tab.
type InsertCategoryRequest struct {
	Type         string `json:"type"`
	UserID       string `json:"user_id"`
	CategoryName string `json:"category_name"`
	CategoryIcon string `json:"category_icon"`
	CategoryType string `json:"category_type"`
}

type signInRequest struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

type updatePasswordRequest struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateStatusRequest struct {
	Type          string   `json:"type"`
	TransactionID model.ID `json:"transaction_id"`
	Status        string   `json:"status"`
}

type updateWalletRequest struct {
	Type   string   `json:"type"`
	UserID model.ID `json:"user_id"`
	Wallet int64    `json:"wallet"`
}

type extractTextRequest struct {
	Type     string   `json:"type"`
	UserID   model.ID `json:"user_id"`
	ImageURL string   `json:"image_url"`
}
