package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
)

func NewRemoveStudentRequestHandler(repo domain.Repository) app.Request[RemoveStudentRequest, RemoveStudentResponse] {
	return app.NewValidatedRequest[RemoveStudentRequest, RemoveStudentResponse](nil, &removeStudentRequestHandler{repo: repo})
}

type removeStudentRequestHandler struct {
	repo domain.Repository
}

type (
	RemoveStudentRequest struct {
		ID int
	}
	RemoveStudentResponse struct {
		Student domain.Student
	}
)

func (h *removeStudentRequestHandler) H(ctx context.Context, req RemoveStudentRequest) (RemoveStudentResponse, error) {
	student, err := h.repo.DeleteByID(ctx, req.ID)
	if err != nil {
		return RemoveStudentResponse{}, fmt.Errorf("could not remove student: %w", err)
	}

	return RemoveStudentResponse{Student: student}, nil
}
