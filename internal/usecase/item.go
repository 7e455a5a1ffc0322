package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/aibekm/item-service/internal/domain"
	"github.com/aibekm/item-service/internal/repository"
)

type ItemUsecase struct {
	repo repository.ItemRepository
}

func NewItemUsecase(repo repository.ItemRepository) *ItemUsecase {
	return &ItemUsecase{repo: repo}
}

type CreateItemInput struct {
	OwnerID     string
	Name        string
	Description *string
}

type UpdateItemInput struct {
	Name        *string
	Description *string
}

func validateName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > domain.ItemNameMaxLen {
		return domain.ErrInvalidItemName
	}
	return nil
}

func (u *ItemUsecase) Create(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	item := &domain.Item{
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
	}

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return created, nil
}

func (u *ItemUsecase) List(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	items, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (u *ItemUsecase) Get(ctx context.Context, itemID, ownerID string) (*domain.Item, error) {
	item, err := u.repo.GetByID(ctx, itemID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update applies the non-nil fields. An all-nil input is rejected before
// touching storage.
func (u *ItemUsecase) Update(ctx context.Context, itemID, ownerID string, input UpdateItemInput) (*domain.Item, error) {
	if input.Name == nil && input.Description == nil {
		return nil, domain.ErrNoFieldsProvided
	}
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
	}

	item, err := u.repo.Update(ctx, itemID, ownerID, repository.UpdateItemInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (u *ItemUsecase) Delete(ctx context.Context, itemID, ownerID string) error {
	if err := u.repo.Delete(ctx, itemID, ownerID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
