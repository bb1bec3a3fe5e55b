package service

import (
	"context"
	"fmt"

	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/store"
)

type WalletService struct {
	repo   store.Repository
	remote FinanceAPI
	guard  *inflightGuard
}

// Update sets the cash wallet balance. Unlike every other mutation, the
// running amount is derived locally before the request:
//
//	newAmount = amount + (newWallet - wallet)
//
// and on success both the raw wallet value and the derived amount are
// written to the snapshot, ignoring the server's amount for this pair.
// The other mutation paths take the response verbatim; the two behaviors
// are kept separate on purpose.
func (ws *WalletService) Update(ctx context.Context, newWallet int64) (*model.Snapshot, error) {
	if newWallet < 0 {
		return nil, fmt.Errorf("wallet balance can't be negative")
	}

	snap, err := currentSnapshot(ws.repo)
	if err != nil {
		return nil, err
	}

	newAmount := snap.Amount + (newWallet - snap.Wallet)

	release, err := ws.guard.acquire("wallet")
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := ws.remote.UpdateWallet(ctx, snap.UserID, newWallet); err != nil {
		return nil, err
	}

	snap.Wallet = newWallet
	snap.Amount = newAmount
	if err := ws.repo.SaveSnapshot(snap); err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return snap, nil
}
