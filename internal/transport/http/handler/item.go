package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aibekm/item-service/internal/domain"
	"github.com/aibekm/item-service/internal/usecase"
)

type itemUsecaser interface {
	Create(ctx context.Context, input usecase.CreateItemInput) (*domain.Item, error)
	List(ctx context.Context, ownerID string) ([]*domain.Item, error)
	Get(ctx context.Context, itemID, ownerID string) (*domain.Item, error)
	Update(ctx context.Context, itemID, ownerID string, input usecase.UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, itemID, ownerID string) error
}

type ItemHandler struct {
	itemUsecase itemUsecaser
	logger      *slog.Logger
}

func NewItemHandler(itemUsecase itemUsecaser, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{itemUsecase: itemUsecase, logger: logger.With("component", "item_handler")}
}

type createItemRequest struct {
	Name        string  `json:"name"        binding:"required,max=200"`
	Description *string `json:"description"`
}

type updateItemRequest struct {
	Name        *string `json:"name"        binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// itemID extracts and validates the :id path parameter. A malformed id is a
// client error and never reaches storage.
func itemID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidItemID})
		return "", false
	}
	return id, true
}

func (h *ItemHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errItemNotFound})
	case errors.Is(err, domain.ErrNoFieldsProvided):
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoFieldsProvided})
	case errors.Is(err, domain.ErrInvalidItemName):
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidItemName.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errServiceUnavailable})
	default:
		h.logger.Error(op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
	}
}

// POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.itemUsecase.Create(c.Request.Context(), usecase.CreateItemInput{
		OwnerID:     c.GetString("userID"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.fail(c, "create item", err)
		return
	}

	c.JSON(http.StatusCreated, toItemResponse(item))
}

// GET /items
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemUsecase.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.fail(c, "list items", err)
		return
	}

	out := make([]itemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

// GET /items/:id
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := h.itemUsecase.Get(c.Request.Context(), id, c.GetString("userID"))
	if err != nil {
		h.fail(c, "get item", err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

// PUT /items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.itemUsecase.Update(c.Request.Context(), id, c.GetString("userID"), usecase.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.fail(c, "update item", err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

// DELETE /items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := h.itemUsecase.Delete(c.Request.Context(), id, c.GetString("userID")); err != nil {
		h.fail(c, "delete item", err)
		return
	}

	c.Status(http.StatusNoContent)
}
