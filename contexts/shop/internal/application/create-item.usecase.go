package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/optional"
)

func NewCreateItemRequestHandler(repo domain.Repository) app.Request[CreateItemRequest, CreateItemResponse] {
	return app.NewValidatedRequest[CreateItemRequest, CreateItemResponse](nil, &createItemRequestHandler{repo: repo})
}

type createItemRequestHandler struct {
	repo domain.Repository
}

type (
	CreateItemRequest struct {
		// ID is assigned by the shop, if it is not set.
		ID          optional.Value[int]    `json:"id"          validate:"omitempty,gte=0"`
		Name        string                 `json:"name"        validate:"required,max=20"`
		Price       float64                `json:"price"       validate:"gt=0"`
		Count       int                    `json:"count"       validate:"gte=0"`
		Category    string                 `json:"category"    validate:"required,oneof=tools consumables"`
		Description optional.Value[string] `json:"description" validate:"omitempty,max=200"`
	}
	CreateItemResponse struct {
		Item domain.Item
	}
)

func (h *createItemRequestHandler) H(ctx context.Context, req CreateItemRequest) (CreateItemResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return CreateItemResponse{}, fmt.Errorf("%w: name is blank", app.ErrInvalidRequest)
	}

	newItem := func(id int) domain.Item {
		return domain.Item{
			ID:          id,
			Name:        req.Name,
			Price:       req.Price,
			Count:       req.Count,
			Category:    req.Category,
			Description: req.Description,
		}
	}

	var (
		item domain.Item
		err  error
	)

	if id, ok := req.ID.Get(); ok {
		item = newItem(id)
		err = h.repo.Create(ctx, item)
	} else {
		item, err = h.repo.CreateWithNextID(ctx, newItem)
	}

	if err != nil {
		return CreateItemResponse{}, fmt.Errorf("could not create item: %w", err)
	}

	return CreateItemResponse{Item: item}, nil
}
