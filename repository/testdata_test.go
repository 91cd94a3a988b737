package repository_test

import (
	"context"
	"errors"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/go-arrower/recordstore/repository"
)

var errChangeRejected = errors.New("change rejected")

var ctx = context.Background()

type (
	EntityID string
	Entity   struct {
		ID   EntityID
		Name string
	}

	ToolID int
	Tool   struct {
		ID    ToolID
		Name  string
		Price float64
	}

	Student struct {
		StudentID uint
		Name      string
	}
)

type EntityWithoutID struct {
	Name string
}

func testEntity() Entity {
	return Entity{
		ID:   EntityID(uuid.New().String()),
		Name: gofakeit.Name(),
	}
}

func hammer() Tool { return Tool{ID: 1, Name: "Hammer", Price: 9.99} }
func pliers() Tool { return Tool{ID: 2, Name: "Pliers", Price: 5.99} }

func seededToolRepository() *repository.MemoryRepository[Tool, ToolID] {
	repo := repository.NewMemoryRepository[Tool, ToolID]()
	_ = repo.CreateAll(ctx, []Tool{hammer(), pliers()})

	return repo
}

// toolMemoryRepository shows how a repository can be extended with own methods.
type toolMemoryRepository struct {
	*repository.MemoryRepository[Tool, ToolID]
}

func (repo *toolMemoryRepository) FindCheaperThan(ctx context.Context, price float64) ([]Tool, error) {
	return repo.FindBy(ctx, func(t Tool) bool { return t.Price < price })
}
