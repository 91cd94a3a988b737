package domain

import (
	"context"

	"github.com/go-arrower/recordstore/repository"
)

type Repository interface {
	Create(ctx context.Context, item Item) error
	// CreateWithNextID adds the item build returns for the next free ID.
	CreateWithNextID(ctx context.Context, build func(id int) Item) (Item, error)
	FindByID(ctx context.Context, id int) (Item, error)
	All(ctx context.Context) ([]Item, error)
	Limit(ctx context.Context, n int) ([]Item, error)
	FindBy(ctx context.Context, conds ...repository.Condition[Item]) ([]Item, error)
	Modify(ctx context.Context, id int, change func(Item) (Item, error)) (Item, error)
	DeleteByID(ctx context.Context, id int) (Item, error)

	Count(ctx context.Context) (int, error)
}
