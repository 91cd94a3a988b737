package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
)

func NewDeleteItemRequestHandler(repo domain.Repository) app.Request[DeleteItemRequest, DeleteItemResponse] {
	return app.NewValidatedRequest[DeleteItemRequest, DeleteItemResponse](nil, &deleteItemRequestHandler{repo: repo})
}

type deleteItemRequestHandler struct {
	repo domain.Repository
}

type (
	DeleteItemRequest struct {
		ID int
	}
	DeleteItemResponse struct {
		Item domain.Item
	}
)

func (h *deleteItemRequestHandler) H(ctx context.Context, req DeleteItemRequest) (DeleteItemResponse, error) {
	item, err := h.repo.DeleteByID(ctx, req.ID)
	if err != nil {
		return DeleteItemResponse{}, fmt.Errorf("could not delete item: %w", err)
	}

	return DeleteItemResponse{Item: item}, nil
}
