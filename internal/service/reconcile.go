package service

import (
	"github.com/domdomvn/domdom/internal/api"
	"github.com/domdomvn/domdom/internal/model"
)

// mergeMutation applies a mutation response to the cached snapshot. The
// server is authoritative: amount, wallet, categories, transactions and
// notification are replaced wholesale, never merged field by field. The
// one exception is the wallet update path, which derives the new amount
// locally; see WalletService.Update.
func mergeMutation(snap *model.Snapshot, resp *api.Response) {
	snap.Amount = resp.Amount
	snap.Wallet = resp.Wallet
	snap.Notification = resp.Notification
	snap.Categories = resp.Categories
	snap.Transactions = resp.Transactions
}
