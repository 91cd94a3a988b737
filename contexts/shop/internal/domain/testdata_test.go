package domain_test

import (
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/optional"
)

var (
	hammer = domain.Item{
		ID:          1,
		Name:        "Hammer",
		Price:       9.99,
		Count:       20,
		Category:    domain.CategoryTools,
		Description: optional.Of("The strongest hammer you can have for $10"),
	}
	pliers = domain.Item{
		ID:       2,
		Name:     "Pliers",
		Price:    5.99,
		Count:    0,
		Category: domain.CategoryTools,
	}
	nails = domain.Item{
		ID:       3,
		Name:     "Nails",
		Price:    1.99,
		Count:    100,
		Category: domain.CategoryConsumables,
	}
)

func inventory() []domain.Item {
	return []domain.Item{hammer, pliers, nails}
}
