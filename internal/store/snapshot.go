package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/domdomvn/domdom/internal/model"
)

// SaveSnapshot upserts the whole snapshot row for a user. Categories and
// transactions are stored as typed JSON arrays in their own columns, so a
// read never has to parse a value twice.
func (s *Store) SaveSnapshot(snap *model.Snapshot) error {
	categories, err := json.Marshal(snap.Categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	transactions, err := json.Marshal(snap.Transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	_, err = s.db.Exec(`
        INSERT INTO snapshots (user_id, user_name, user_email, amount, wallet, note, notification, categories, transactions, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(user_id) DO UPDATE SET
            user_name = excluded.user_name,
            user_email = excluded.user_email,
            amount = excluded.amount,
            wallet = excluded.wallet,
            note = excluded.note,
            notification = excluded.notification,
            categories = excluded.categories,
            transactions = excluded.transactions,
            updated_at = excluded.updated_at;
    `,
		string(snap.UserID), snap.UserName, snap.UserEmail,
		snap.Amount, snap.Wallet, snap.Note, snap.Notification,
		string(categories), string(transactions), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (s *Store) GetSnapshot(userID model.ID) (*model.Snapshot, error) {
	var (
		snap         model.Snapshot
		id           string
		categories   string
		transactions string
	)

	err := s.db.QueryRow(`
        SELECT user_id, user_name, user_email, amount, wallet, note, notification, categories, transactions
        FROM snapshots
        WHERE user_id = ?
    `, string(userID)).Scan(
		&id, &snap.UserName, &snap.UserEmail,
		&snap.Amount, &snap.Wallet, &snap.Note, &snap.Notification,
		&categories, &transactions,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	snap.UserID = model.ID(id)
	if err := json.Unmarshal([]byte(categories), &snap.Categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	if err := json.Unmarshal([]byte(transactions), &snap.Transactions); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return &snap, nil
}

func (s *Store) DeleteSnapshot(userID model.ID) error {
	_, err := s.db.Exec(`DELETE FROM snapshots WHERE user_id = ?`, string(userID))
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// SetSession records the signed-in user. There is at most one session row;
// signing in replaces it.
func (s *Store) SetSession(userID model.ID) error {
	_, err := s.db.Exec(`
        INSERT INTO session (id, user_id, signed_in_at)
        VALUES (1, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            user_id = excluded.user_id,
            signed_in_at = excluded.signed_in_at;
    `, string(userID), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (s *Store) CurrentSession() (model.ID, error) {
	var userID string
	err := s.db.QueryRow(`SELECT user_id FROM session WHERE id = 1`).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to query session: %w", err)
	}
	return model.ID(userID), nil
}

func (s *Store) ClearSession() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
