package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/contexts/shop/internal/interfaces/repository"
	"github.com/go-arrower/recordstore/optional"
)

func TestItemMemoryRepository_Seed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewItemMemoryRepository()

	err := repo.Seed(ctx, strings.NewReader(`
- id: 0
  name: Hammer
  price: 9.99
  count: 20
  category: tools
  description: The strongest hammer you can have for $10
- id: 1
  name: Nails
  price: 1.99
  count: 100
  category: consumables
`))
	require.NoError(t, err)

	hammer, err := repo.FindByID(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, optional.Of("The strongest hammer you can have for $10"), hammer.Description)

	nails, err := repo.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, domain.CategoryConsumables, nails.Category)
	assert.False(t, nails.Description.IsSet())

	saw, err := repo.CreateWithNextID(ctx, func(id int) domain.Item { return domain.Item{ID: id, Name: "Saw"} })
	assert.NoError(t, err)
	assert.Equal(t, 2, saw.ID)
}
