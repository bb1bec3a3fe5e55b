package store

import "errors"

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrNoSession        = errors.New("not signed in")
)
