package domain

import (
	"errors"
	"time"
)

const ItemNameMaxLen = 200

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrNoFieldsProvided = errors.New("no fields to update")
	ErrInvalidItemName  = errors.New("item name must be between 1 and 200 characters")
)

type Item struct {
	ID          string
	OwnerID     string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
