package service

import (
	"context"
	"fmt"

	"github.com/domdomvn/domdom/internal/api"
	"github.com/domdomvn/domdom/internal/constants"
	"github.com/domdomvn/domdom/internal/model"
	"github.com/domdomvn/domdom/internal/store"
	"github.com/domdomvn/domdom/internal/validation"
)

type CategoryService struct {
	repo   store.Repository
	remote FinanceAPI
	guard  *inflightGuard
}

// List returns the categories of one tab (expense or income) from the
// cached snapshot.
func (cs *CategoryService) List(categoryType string) ([]model.Category, error) {
	snap, err := currentSnapshot(cs.repo)
	if err != nil {
		return nil, err
	}
	return snap.CategoriesByType(categoryType), nil
}

// Create adds a category to one tab. The name must be unique within the
// tab (case-insensitive); the check runs before any request is sent.
func (cs *CategoryService) Create(ctx context.Context, name, icon, categoryType string) (*model.Snapshot, error) {
	if categoryType != model.CategoryExpense && categoryType != model.CategoryIncome {
		return nil, fmt.Errorf("invalid category type: %s", categoryType)
	}
	if icon == "" {
		return nil, fmt.Errorf("an icon is required")
	}
	if !constants.ValidCategoryIcon(icon) {
		return nil, fmt.Errorf("unknown icon: %s", icon)
	}

	snap, err := currentSnapshot(cs.repo)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateCategoryName(name, snap.CategoriesByType(categoryType)); err != nil {
		return nil, err
	}

	release, err := cs.guard.acquire("category")
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := cs.remote.InsertCategory(ctx, api.InsertCategoryRequest{
		UserID:       string(snap.UserID),
		CategoryName: name,
		CategoryIcon: icon,
		CategoryType: categoryType,
	})
	if err != nil {
		return nil, err
	}

	mergeMutation(snap, resp)
	if err := cs.repo.SaveSnapshot(snap); err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return snap, nil
}
