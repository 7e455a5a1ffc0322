package repository

import (
	"context"

	"github.com/aibekm/item-service/internal/domain"
)

// UserRepository persists user records. Email uniqueness is enforced by the
// storage layer, not checked here, so concurrent signups with the same email
// resolve to exactly one winner.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
