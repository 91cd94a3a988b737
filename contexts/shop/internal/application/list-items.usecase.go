package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/optional"
)

func NewListItemsQueryHandler(repo domain.Repository) app.Query[ListItemsQuery, ListItemsResponse] {
	return app.NewValidatedQuery[ListItemsQuery, ListItemsResponse](nil, &listItemsQueryHandler{repo: repo})
}

type listItemsQueryHandler struct {
	repo domain.Repository
}

type (
	ListItemsQuery struct {
		// Limit is the maximum number of items returned. If not set, all items are returned,
		// a non-positive limit returns none.
		Limit optional.Value[int]
	}
	ListItemsResponse struct {
		Items []domain.Item
	}
)

func (h *listItemsQueryHandler) H(ctx context.Context, query ListItemsQuery) (ListItemsResponse, error) {
	var (
		items []domain.Item
		err   error
	)

	if limit, ok := query.Limit.Get(); ok {
		items, err = h.repo.Limit(ctx, limit)
	} else {
		items, err = h.repo.All(ctx)
	}

	if err != nil {
		return ListItemsResponse{}, fmt.Errorf("could not list items: %w", err)
	}

	return ListItemsResponse{Items: items}, nil
}
