package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/domdomvn/domdom/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewStore(dbPath, os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		UserID:       "u1",
		UserName:     "Lan",
		UserEmail:    "lan@example.com",
		Amount:       350_000,
		Wallet:       1_000_000,
		Notification: "hello",
		Categories: []model.Category{
			{ID: "c1", Name: "Food", Icon: "hamburger", Type: model.CategoryExpense},
		},
		Transactions: []model.Transaction{
			{ID: "t1", Type: model.TypeExpense, Amount: 45_000, Date: model.NewDate(2024, 6, 1), CategoryID: "c1", Note: "lunch"},
		},
	}
}

func TestSaveAndGetSnapshot(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSnapshot(testSnapshot()))

	got, err := s.GetSnapshot("u1")
	require.NoError(t, err)

	assert.Equal(t, "Lan", got.UserName)
	assert.Equal(t, int64(1_000_000), got.Wallet)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "Food", got.Categories[0].Name)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, int64(45_000), got.Transactions[0].Amount)
	assert.Equal(t, "2024-06-01", got.Transactions[0].Date.DayKey())
}

func TestSaveSnapshotUpserts(t *testing.T) {
	s := newTestStore(t)

	snap := testSnapshot()
	require.NoError(t, s.SaveSnapshot(snap))

	snap.Wallet = 2_000_000
	snap.Transactions = nil
	require.NoError(t, s.SaveSnapshot(snap))

	got, err := s.GetSnapshot("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000), got.Wallet)
	assert.Empty(t, got.Transactions)
}

func TestGetSnapshotMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetSnapshot("nobody")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CurrentSession()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, s.SaveSnapshot(testSnapshot()))
	require.NoError(t, s.SetSession("u1"))

	userID, err := s.CurrentSession()
	require.NoError(t, err)
	assert.Equal(t, model.ID("u1"), userID)

	require.NoError(t, s.ClearSession())
	_, err = s.CurrentSession()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSetSessionReplacesPreviousUser(t *testing.T) {
	s := newTestStore(t)

	first := testSnapshot()
	require.NoError(t, s.SaveSnapshot(first))

	second := testSnapshot()
	second.UserID = "u2"
	second.UserEmail = "minh@example.com"
	require.NoError(t, s.SaveSnapshot(second))

	require.NoError(t, s.SetSession("u1"))
	require.NoError(t, s.SetSession("u2"))

	userID, err := s.CurrentSession()
	require.NoError(t, err)
	assert.Equal(t, model.ID("u2"), userID)
}

func TestExecTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSnapshot(testSnapshot()))

	err := s.ExecTx(func(repo Repository) error {
		if err := repo.SetSession("u1"); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	_, err = s.CurrentSession()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDeleteSnapshotCascadesSession(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSnapshot(testSnapshot()))
	require.NoError(t, s.SetSession("u1"))

	require.NoError(t, s.DeleteSnapshot("u1"))

	_, err := s.GetSnapshot("u1")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	_, err = s.CurrentSession()
	assert.ErrorIs(t, err, ErrNoSession)
}
