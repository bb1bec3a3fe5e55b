package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/domdomvn/domdom/internal/api"
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/store"
	"github.com/domdomvn/domdom/internal/validation"
)

type TransactionService struct {
	repo   store.Repository
	remote FinanceAPI
	guard  *inflightGuard
}

// AddTransactionInput is a validated add-transaction form. The type
// (income/expense) is derived from the chosen category, never entered
// directly.
type AddTransactionInput struct {
	Amount      int64
	CategoryID  model.ID
	Date        model.Date
	Note        string
	Description string
}

// EditTransactionInput edits an existing transaction in place. The
// category cannot be changed after creation.
type EditTransactionInput struct {
	TransactionID model.ID
	Amount        int64
	Date          model.Date
	Note          string
	Description   string
}

func (in AddTransactionInput) validate(snap *model.Snapshot) (model.Category, error) {
	if in.Amount <= 0 {
		return model.Category{}, fmt.Errorf("amount must be greater than zero")
	}
	if in.CategoryID == "" {
		return model.Category{}, fmt.Errorf("a category is required")
	}
	category, ok := snap.CategoryByID(in.CategoryID)
	if !ok {
		return model.Category{}, fmt.Errorf("unknown category: %s", in.CategoryID)
	}
	if err := validation.ValidateFreeText(in.Note); err != nil {
		return model.Category{}, fmt.Errorf("note: %w", err)
	}
	if err := validation.ValidateFreeText(in.Description); err != nil {
		return model.Category{}, fmt.Errorf("description: %w", err)
	}
	return category, nil
}

// Add creates a transaction on the server and merges the refreshed
// snapshot fields from the response.
func (ts *TransactionService) Add(ctx context.Context, input AddTransactionInput) (*model.Snapshot, error) {
	snap, err := currentSnapshot(ts.repo)
	if err != nil {
		return nil, err
	}

	category, err := input.validate(snap)
	if err != nil {
		return nil, err
	}

	release, err := ts.guard.acquire("transaction:add")
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := ts.remote.InsertTransaction(ctx, api.InsertTransactionRequest{
		UserID:          string(snap.UserID),
		Amount:          strconv.FormatInt(input.Amount, 10),
		CategoryID:      input.CategoryID,
		Date:            input.Date.Request(),
		Note:            input.Note,
		Description:     input.Description,
		TransactionType: category.Type,
	})
	if err != nil {
		return nil, err
	}

	mergeMutation(snap, resp)
	if err := ts.repo.SaveSnapshot(snap); err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return snap, nil
}

// Edit updates a transaction in place. The server response for
// update_transaction has never been observed to carry the refreshed
// collections, so the cached list is rewritten locally instead of merged
// from the response.
func (ts *TransactionService) Edit(ctx context.Context, input EditTransactionInput) (*model.Snapshot, error) {
	snap, err := currentSnapshot(ts.repo)
	if err != nil {
		return nil, err
	}

	if _, ok := snap.TransactionByID(input.TransactionID); !ok {
		return nil, fmt.Errorf("transaction not found: %s", input.TransactionID)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	if err := validation.ValidateFreeText(input.Note); err != nil {
		return nil, fmt.Errorf("note: %w", err)
	}
	if err := validation.ValidateFreeText(input.Description); err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}

	release, err := ts.guard.acquire("transaction:" + string(input.TransactionID))
	if err != nil {
		return nil, err
	}
	defer release()

	_, err = ts.remote.UpdateTransaction(ctx, api.UpdateTransactionRequest{
		UserID:        snap.UserID,
		TransactionID: input.TransactionID,
		Amount:        strconv.FormatInt(input.Amount, 10),
		Date:          input.Date.Request(),
		Description:   input.Description,
		Note:          input.Note,
	})
	if err != nil {
		return nil, err
	}

	for i := range snap.Transactions {
		if snap.Transactions[i].ID == input.TransactionID {
			snap.Transactions[i].Amount = input.Amount
			snap.Transactions[i].Date = input.Date
			snap.Transactions[i].Note = input.Note
			snap.Transactions[i].Description = input.Description
			break
		}
	}

	if err := ts.repo.SaveSnapshot(snap); err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return snap, nil
}

// Delete soft-deletes a transaction server-side (status flip) and filters
// it out of the cached list. On any request failure the cache is left
// untouched.
func (ts *TransactionService) Delete(ctx context.Context, transactionID model.ID) (*model.Snapshot, error) {
	snap, err := currentSnapshot(ts.repo)
	if err != nil {
		return nil, err
	}

	if _, ok := snap.TransactionByID(transactionID); !ok {
		return nil, fmt.Errorf("transaction not found: %s", transactionID)
	}

	release, err := ts.guard.acquire("transaction:" + string(transactionID))
	if err != nil {
		return nil, err
	}
	defer release()

	if err := ts.remote.UpdateTransactionStatus(ctx, transactionID, api.StatusDeleted); err != nil {
		return nil, err
	}

	snap.RemoveTransaction(transactionID)
	if err := ts.repo.SaveSnapshot(snap); err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return snap, nil
}

// Scan sends a hosted receipt image through the OCR operation and maps
// the extracted fields into add-transaction form defaults.
func (ts *TransactionService) Scan(ctx context.Context, imageURL string) (*api.ExtractResult, error) {
	snap, err := currentSnapshot(ts.repo)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, fmt.Errorf("an image URL is required")
	}
	return ts.remote.ExtractText(ctx, snap.UserID, imageURL)
}
