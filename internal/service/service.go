package service

import (
	"context"

	"github.com/domdomvn/domdom/internal/api"
	"github.com/domdomvn/domdom/internal/config"
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/store"
)

// FinanceAPI is the remote finance API surface the services depend on.
// *api.Client satisfies it; tests substitute a fake.
type FinanceAPI interface {
	SignIn(ctx context.Context, email, password string) (*api.Response, error)
	SignUp(ctx context.Context, email, name, password string) (*api.Response, error)
	ForgotPassword(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, password string) error
	InsertTransaction(ctx context.Context, req api.InsertTransactionRequest) (*api.Response, error)
	UpdateTransaction(ctx context.Context, req api.UpdateTransactionRequest) (*api.Response, error)
	UpdateTransactionStatus(ctx context.Context, transactionID model.ID, status string) error
	InsertCategory(ctx context.Context, req api.InsertCategoryRequest) (*api.Response, error)
	UpdateWallet(ctx context.Context, userID model.ID, wallet int64) (*api.Response, error)
	ExtractText(ctx context.Context, userID model.ID, imageURL string) (*api.ExtractResult, error)
}

type Service struct {
	Session     *SessionService
	Transaction *TransactionService
	Category    *CategoryService
	Wallet      *WalletService
	Config      *config.Config
}

func NewService(repo store.Repository, remote FinanceAPI, cfg *config.Config) *Service {
	guard := newInflightGuard()
	return &Service{
		Session:     &SessionService{repo: repo, remote: remote, guard: guard},
		Transaction: &TransactionService{repo: repo, remote: remote, guard: guard},
		Category:    &CategoryService{repo: repo, remote: remote, guard: guard},
		Wallet:      &WalletService{repo: repo, remote: remote, guard: guard},
		Config:      cfg,
	}
}

// currentSnapshot loads the signed-in user's cached snapshot.
func currentSnapshot(repo store.Repository) (*model.Snapshot, error) {
	userID, err := repo.CurrentSession()
	if err != nil {
		return nil, err
	}
	return repo.GetSnapshot(userID)
}
