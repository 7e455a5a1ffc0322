package repository

import (
	"context"

	"github.com/aibekm/item-service/internal/domain"
)

// UpdateItemInput carries a partial update. Nil fields are left untouched.
type UpdateItemInput struct {
	Name        *string
	Description *string
}

// ItemRepository persists items. Every read/write is scoped by both item ID
// and owner ID; an item owned by someone else is indistinguishable from one
// that does not exist.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error)
	GetByID(ctx context.Context, itemID, ownerID string) (*domain.Item, error)
	Update(ctx context.Context, itemID, ownerID string, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, itemID, ownerID string) error
}
