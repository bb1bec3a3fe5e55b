package store

import "github.com/domdomvn/domdom/internal/model"

type Repository interface {
	// Snapshot Operations
	SaveSnapshot(snap *model.Snapshot) error
	GetSnapshot(userID model.ID) (*model.Snapshot, error)
	DeleteSnapshot(userID model.ID) error

	// Session Operations
	SetSession(userID model.ID) error
	CurrentSession() (model.ID, error)
	ClearSession() error

	ExecTx(fn func(Repository) error) error
	Close() error
}
