package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
	"github.com/go-arrower/recordstore/optional"
	"github.com/go-arrower/recordstore/repository/q"
)

func NewSearchStudentsQueryHandler(repo domain.Repository) app.Query[SearchStudentsQuery, SearchStudentsResponse] {
	return app.NewValidatedQuery[SearchStudentsQuery, SearchStudentsResponse](nil, &searchStudentsQueryHandler{repo: repo})
}

type searchStudentsQueryHandler struct {
	repo domain.Repository
}

type (
	SearchStudentsQuery struct {
		Filter domain.Filter
		Where  string
		Limit  optional.Value[int]
	}
	SearchStudentsResponse struct {
		Query     SearchStudentsQuery
		Selection []domain.Student
	}
)

func (h *searchStudentsQueryHandler) H(ctx context.Context, query SearchStudentsQuery) (SearchStudentsResponse, error) {
	conds, err := query.Filter.Conditions()
	if err != nil {
		return SearchStudentsResponse{}, fmt.Errorf("could not filter students: %w", err)
	}

	if query.Where != "" {
		cond, err := q.Expr[domain.Student](query.Where)
		if err != nil {
			return SearchStudentsResponse{}, fmt.Errorf("could not parse where: %w", err)
		}

		conds = append(conds, cond)
	}

	students, err := h.repo.FindBy(ctx, conds...)
	if err != nil {
		return SearchStudentsResponse{}, fmt.Errorf("could not search students: %w", err)
	}

	if limit, ok := query.Limit.Get(); ok {
		students = students[:min(max(limit, 0), len(students))]
	}

	return SearchStudentsResponse{Query: query, Selection: students}, nil
}
