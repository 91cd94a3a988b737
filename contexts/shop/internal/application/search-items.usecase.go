package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/optional"
	"github.com/go-arrower/recordstore/repository/q"
)

func NewSearchItemsQueryHandler(repo domain.Repository) app.Query[SearchItemsQuery, SearchItemsResponse] {
	return app.NewValidatedQuery[SearchItemsQuery, SearchItemsResponse](nil, &searchItemsQueryHandler{repo: repo})
}

type searchItemsQueryHandler struct {
	repo domain.Repository
}

type (
	SearchItemsQuery struct {
		Filter domain.Filter
		// Where is an optional expression all selected items have to satisfy,
		// e.g. `price < 10 && category == "tools"`.
		Where string
		// Limit caps the selection. A non-positive limit selects nothing.
		Limit optional.Value[int]
	}
	SearchItemsResponse struct {
		Query     SearchItemsQuery
		Selection []domain.Item
	}
)

func (h *searchItemsQueryHandler) H(ctx context.Context, query SearchItemsQuery) (SearchItemsResponse, error) {
	conds, err := query.Filter.Conditions()
	if err != nil {
		return SearchItemsResponse{}, fmt.Errorf("could not filter items: %w", err)
	}

	if query.Where != "" {
		cond, err := q.Expr[domain.Item](query.Where)
		if err != nil {
			return SearchItemsResponse{}, fmt.Errorf("could not parse where: %w", err)
		}

		conds = append(conds, cond)
	}

	items, err := h.repo.FindBy(ctx, conds...)
	if err != nil {
		return SearchItemsResponse{}, fmt.Errorf("could not search items: %w", err)
	}

	if limit, ok := query.Limit.Get(); ok {
		items = items[:min(max(limit, 0), len(items))]
	}

	return SearchItemsResponse{
		Query:     query,
		Selection: items,
	}, nil
}
