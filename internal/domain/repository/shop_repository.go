package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
)

// ShopRepository defines the interface for shop data operations
type ShopRepository interface {
	// CreateWithOwner creates the shop and its owner account in one transaction
	CreateWithOwner(ctx context.Context, shop *entity.Shop, owner *entity.User) error

	// GetByID retrieves a shop by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// SlugExists checks if a slug is already taken
	SlugExists(ctx context.Context, slug string) (bool, error)
}
