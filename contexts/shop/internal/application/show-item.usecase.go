package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
)

func NewShowItemQueryHandler(repo domain.Repository) app.Query[ShowItemQuery, ShowItemResponse] {
	return app.NewValidatedQuery[ShowItemQuery, ShowItemResponse](nil, &showItemQueryHandler{repo: repo})
}

type showItemQueryHandler struct {
	repo domain.Repository
}

type (
	ShowItemQuery struct {
		ID int
	}
	ShowItemResponse struct {
		Item domain.Item
	}
)

func (h *showItemQueryHandler) H(ctx context.Context, query ShowItemQuery) (ShowItemResponse, error) {
	item, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return ShowItemResponse{}, fmt.Errorf("could not get item: %w", err)
	}

	return ShowItemResponse{Item: item}, nil
}
