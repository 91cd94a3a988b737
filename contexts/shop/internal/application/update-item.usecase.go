package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
)

func NewUpdateItemRequestHandler(repo domain.Repository) app.Request[UpdateItemRequest, UpdateItemResponse] {
	return app.NewValidatedRequest[UpdateItemRequest, UpdateItemResponse](nil, &updateItemRequestHandler{repo: repo})
}

type updateItemRequestHandler struct {
	repo domain.Repository
}

type (
	UpdateItemRequest struct {
		ID    int
		Patch domain.Patch
	}
	UpdateItemResponse struct {
		Item domain.Item
	}
)

// H rejects an empty patch before the item is looked up,
// so the caller gets the same answer for existing and unknown ids.
func (h *updateItemRequestHandler) H(ctx context.Context, req UpdateItemRequest) (UpdateItemResponse, error) {
	if req.Patch.IsEmpty() {
		return UpdateItemResponse{}, fmt.Errorf("%w: no fields provided for update", app.ErrInvalidRequest)
	}

	if req.Patch.HasBlankName() {
		return UpdateItemResponse{}, fmt.Errorf("%w: name is blank", app.ErrInvalidRequest)
	}

	item, err := h.repo.Modify(ctx, req.ID, func(item domain.Item) (domain.Item, error) {
		return req.Patch.Apply(item), nil
	})
	if err != nil {
		return UpdateItemResponse{}, fmt.Errorf("could not update item: %w", err)
	}

	return UpdateItemResponse{Item: item}, nil
}
