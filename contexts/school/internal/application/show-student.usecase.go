package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
)

func NewShowStudentQueryHandler(repo domain.Repository) app.Query[ShowStudentQuery, ShowStudentResponse] {
	return app.NewValidatedQuery[ShowStudentQuery, ShowStudentResponse](nil, &showStudentQueryHandler{repo: repo})
}

type showStudentQueryHandler struct {
	repo domain.Repository
}

type (
	ShowStudentQuery struct {
		ID int
	}
	ShowStudentResponse struct {
		Student domain.Student
	}
)

func (h *showStudentQueryHandler) H(ctx context.Context, query ShowStudentQuery) (ShowStudentResponse, error) {
	student, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return ShowStudentResponse{}, fmt.Errorf("could not get student: %w", err)
	}

	return ShowStudentResponse{Student: student}, nil
}
