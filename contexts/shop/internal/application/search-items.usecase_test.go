package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/recordstore/contexts/shop/internal/application"
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/optional"
	"github.com/go-arrower/recordstore/repository"
	"github.com/go-arrower/recordstore/repository/q"
)

func TestSearchItemsQueryHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("no criteria returns all in order", func(t *testing.T) {
		t.Parallel()

		handler := application.NewSearchItemsQueryHandler(seededRepository())

		res, err := handler.H(ctx, application.SearchItemsQuery{})
		assert.NoError(t, err)
		assert.Equal(t, []domain.Item{hammer, pliers, nails}, res.Selection)
	})

	t.Run("filter", func(t *testing.T) {
		t.Parallel()

		handler := application.NewSearchItemsQueryHandler(seededRepository())

		query := application.SearchItemsQuery{Filter: domain.Filter{MinPrice: optional.Of(6.0)}}

		res, err := handler.H(ctx, query)
		assert.NoError(t, err)
		assert.Equal(t, []domain.Item{hammer}, res.Selection)
		assert.Equal(t, query, res.Query)
	})

	t.Run("name ignores case", func(t *testing.T) {
		t.Parallel()

		handler := application.NewSearchItemsQueryHandler(seededRepository())

		res, err := handler.H(ctx, application.SearchItemsQuery{Filter: domain.Filter{Name: optional.Of("hammer")}})
		assert.NoError(t, err)
		assert.Equal(t, []domain.Item{hammer}, res.Selection)
	})

	t.Run("where expression", func(t *testing.T) {
		t.Parallel()

		handler := application.NewSearchItemsQueryHandler(seededRepository())

		res, err := handler.H(ctx, application.SearchItemsQuery{
			Filter: domain.Filter{Category: optional.Of(domain.CategoryTools)},
			Where:  `price < 6`,
		})
		assert.NoError(t, err)
		assert.Equal(t, []domain.Item{pliers}, res.Selection)
	})

	t.Run("limit caps the selection", func(t *testing.T) {
		t.Parallel()

		handler := application.NewSearchItemsQueryHandler(seededRepository())

		res, err := handler.H(ctx, application.SearchItemsQuery{
			Filter: domain.Filter{Category: optional.Of(domain.CategoryTools)},
			Limit:  optional.Of(1),
		})
		assert.NoError(t, err)
		assert.Equal(t, []domain.Item{hammer}, res.Selection)

		res, err = handler.H(ctx, application.SearchItemsQuery{
			Filter: domain.Filter{Category: optional.Of(domain.CategoryTools)},
			Limit:  optional.Of(10),
		})
		assert.NoError(t, err)
		assert.Equal(t, []domain.Item{hammer, pliers}, res.Selection)

		res, err = handler.H(ctx, application.SearchItemsQuery{
			Filter: domain.Filter{Category: optional.Of(domain.CategoryTools)},
			Limit:  optional.Of(-1),
		})
		assert.NoError(t, err, "a match is no error, even if the limit selects none of it")
		assert.Empty(t, res.Selection)
	})

	t.Run("invalid expression", func(t *testing.T) {
		t.Parallel()

		handler := application.NewSearchItemsQueryHandler(seededRepository())

		_, err := handler.H(ctx, application.SearchItemsQuery{Where: `colour == "red"`})
		assert.ErrorIs(t, err, q.ErrInvalidExpression)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()

		handler := application.NewSearchItemsQueryHandler(seededRepository())

		_, err := handler.H(ctx, application.SearchItemsQuery{Filter: domain.Filter{MinCount: optional.Of(1000)}})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
