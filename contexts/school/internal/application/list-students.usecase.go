package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
	"github.com/go-arrower/recordstore/optional"
)

func NewListStudentsQueryHandler(repo domain.Repository) app.Query[ListStudentsQuery, ListStudentsResponse] {
	return app.NewValidatedQuery[ListStudentsQuery, ListStudentsResponse](nil, &listStudentsQueryHandler{repo: repo})
}

type listStudentsQueryHandler struct {
	repo domain.Repository
}

type (
	ListStudentsQuery struct {
		Limit optional.Value[int]
	}
	ListStudentsResponse struct {
		Students []domain.Student
	}
)

func (h *listStudentsQueryHandler) H(ctx context.Context, query ListStudentsQuery) (ListStudentsResponse, error) {
	var (
		students []domain.Student
		err      error
	)

	if limit, ok := query.Limit.Get(); ok {
		students, err = h.repo.Limit(ctx, limit)
	} else {
		students, err = h.repo.All(ctx)
	}

	if err != nil {
		return ListStudentsResponse{}, fmt.Errorf("could not list students: %w", err)
	}

	return ListStudentsResponse{Students: students}, nil
}
