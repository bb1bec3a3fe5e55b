package service

import (
	"context"
	"fmt"

	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/store"
	"github.com/domdomvn/domdom/internal/validation"
)

type SessionService struct {
	repo   store.Repository
	remote FinanceAPI
	guard  *inflightGuard
}

// SignIn authenticates against the API and installs the returned snapshot
// as the local cache for the session.
func (ss *SessionService) SignIn(ctx context.Context, email, password string) (*model.Snapshot, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	release, err := ss.guard.acquire("auth")
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := ss.remote.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	snap := resp.Snapshot()
	err = ss.repo.ExecTx(func(repo store.Repository) error {
		if err := repo.SaveSnapshot(&snap); err != nil {
			return err
		}
		return repo.SetSession(snap.UserID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &snap, nil
}

// SignUp registers a new account. Password strength is enforced before
// any request is sent.
func (ss *SessionService) SignUp(ctx context.Context, email, name, password string) (*model.Snapshot, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	release, err := ss.guard.acquire("auth")
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := ss.remote.SignUp(ctx, email, name, password)
	if err != nil {
		return nil, err
	}

	snap := resp.Snapshot()
	err = ss.repo.ExecTx(func(repo store.Repository) error {
		if err := repo.SaveSnapshot(&snap); err != nil {
			return err
		}
		return repo.SetSession(snap.UserID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &snap, nil
}

// SignOut drops the session. The cached snapshot is kept by default since
// signing back in replaces it wholesale anyway; purge removes it too.
func (ss *SessionService) SignOut(purge bool) error {
	if !purge {
		return ss.repo.ClearSession()
	}

	userID, err := ss.repo.CurrentSession()
	if err != nil {
		return err
	}
	return ss.repo.ExecTx(func(repo store.Repository) error {
		if err := repo.ClearSession(); err != nil {
			return err
		}
		return repo.DeleteSnapshot(userID)
	})
}

// Current returns the signed-in user's cached snapshot, read at screen
// focus time.
func (ss *SessionService) Current() (*model.Snapshot, error) {
	return currentSnapshot(ss.repo)
}

// ForgotPassword asks the server to send an OTP to the account email. No
// local state changes.
func (ss *SessionService) ForgotPassword(ctx context.Context, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	return ss.remote.ForgotPassword(ctx, email)
}

// UpdatePassword changes the password for an account. Nothing in the
// snapshot depends on it, so no cache mutation happens.
func (ss *SessionService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	release, err := ss.guard.acquire("password")
	if err != nil {
		return err
	}
	defer release()

	return ss.remote.UpdatePassword(ctx, email, newPassword)
}
