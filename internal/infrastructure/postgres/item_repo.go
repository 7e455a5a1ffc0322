package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aibekm/item-service/internal/domain"
	"github.com/aibekm/item-service/internal/repository"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

const itemColumns = `id, owner_id, name, description, created_at, updated_at`

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `
		INSERT INTO items (owner_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING ` + itemColumns

	row := r.pool.QueryRow(ctx, query, item.OwnerID, item.Name, item.Description)
	return scanItem(row)
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ItemRepository) GetByID(ctx context.Context, itemID, ownerID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND owner_id = $2`
	return scanItem(r.pool.QueryRow(ctx, query, itemID, ownerID))
}

// Update applies only the non-nil fields in a single owner-scoped statement.
// Zero matched rows means not found (or not yours, which looks the same).
func (r *ItemRepository) Update(ctx context.Context, itemID, ownerID string, input repository.UpdateItemInput) (*domain.Item, error) {
	args := []any{itemID, ownerID}
	set := []string{"updated_at = NOW()"}

	if input.Name != nil {
		args = append(args, *input.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if input.Description != nil {
		args = append(args, *input.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		UPDATE items SET %s
		WHERE id = $1 AND owner_id = $2
		RETURNING `+itemColumns,
		strings.Join(set, ", "))

	return scanItem(r.pool.QueryRow(ctx, query, args...))
}

func (r *ItemRepository) Delete(ctx context.Context, itemID, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM items WHERE id = $1 AND owner_id = $2`, itemID, ownerID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &it, nil
}
