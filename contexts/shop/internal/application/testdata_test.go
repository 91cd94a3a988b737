package application_test

import (
	"context"

	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/contexts/shop/internal/interfaces/repository"
	"github.com/go-arrower/recordstore/optional"
)

var ctx = context.Background()

var (
	hammer = domain.Item{
		ID:          0,
		Name:        "Hammer",
		Price:       9.99,
		Count:       20,
		Category:    domain.CategoryTools,
		Description: optional.Of("The strongest hammer you can have for $10"),
	}
	pliers = domain.Item{ID: 1, Name: "Pliers", Price: 5.99, Count: 20, Category: domain.CategoryTools}
	nails  = domain.Item{ID: 2, Name: "Nails", Price: 1.99, Count: 100, Category: domain.CategoryConsumables}
)

func seededRepository() *repository.ItemMemoryRepository {
	repo := repository.NewItemMemoryRepository()
	_ = repo.CreateAll(ctx, []domain.Item{hammer, pliers, nails})

	return repo
}
