package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
)

func NewUpdateStudentRequestHandler(repo domain.Repository) app.Request[UpdateStudentRequest, UpdateStudentResponse] {
	return app.NewValidatedRequest[UpdateStudentRequest, UpdateStudentResponse](nil, &updateStudentRequestHandler{repo: repo})
}

type updateStudentRequestHandler struct {
	repo domain.Repository
}

type (
	UpdateStudentRequest struct {
		ID    int
		Patch domain.Patch
	}
	UpdateStudentResponse struct {
		Student domain.Student
	}
)

func (h *updateStudentRequestHandler) H(ctx context.Context, req UpdateStudentRequest) (UpdateStudentResponse, error) {
	if req.Patch.IsEmpty() {
		return UpdateStudentResponse{}, fmt.Errorf("%w: no fields provided for update", app.ErrInvalidRequest)
	}

	if req.Patch.HasBlankName() {
		return UpdateStudentResponse{}, fmt.Errorf("%w: name is blank", app.ErrInvalidRequest)
	}

	student, err := h.repo.Modify(ctx, req.ID, func(s domain.Student) (domain.Student, error) {
		return req.Patch.Apply(s), nil
	})
	if err != nil {
		return UpdateStudentResponse{}, fmt.Errorf("could not update student: %w", err)
	}

	return UpdateStudentResponse{Student: student}, nil
}
