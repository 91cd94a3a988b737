package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/repository"
)

func NewItemMemoryRepository() *ItemMemoryRepository {
	return &ItemMemoryRepository{
		MemoryRepository: repository.NewMemoryRepository[domain.Item, int](),
	}
}

// ItemMemoryRepository keeps the inventory in memory. It is lost on restart.
type ItemMemoryRepository struct {
	*repository.MemoryRepository[domain.Item, int]
}

var _ domain.Repository = (*ItemMemoryRepository)(nil)

// Seed adds the items of a YAML list to the inventory.
func (repo *ItemMemoryRepository) Seed(ctx context.Context, r io.Reader) error {
	if err := repository.LoadYAML[domain.Item, int](ctx, repo.MemoryRepository, r); err != nil {
		return fmt.Errorf("could not seed items: %w", err)
	}

	return nil
}
