package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
	"github.com/go-arrower/recordstore/optional"
)

func NewEnrolStudentRequestHandler(repo domain.Repository) app.Request[EnrolStudentRequest, EnrolStudentResponse] {
	return app.NewValidatedRequest[EnrolStudentRequest, EnrolStudentResponse](nil, &enrolStudentRequestHandler{repo: repo})
}

type enrolStudentRequestHandler struct {
	repo domain.Repository
}

type (
	EnrolStudentRequest struct {
		ID   optional.Value[int] `json:"id"   validate:"omitempty,gt=0"`
		Name string              `json:"name" validate:"required,max=50"`
		Age  int                 `json:"age"  validate:"gt=0"`
		Year string              `json:"year" validate:"required,max=10"`
	}
	EnrolStudentResponse struct {
		Student domain.Student
	}
)

func (h *enrolStudentRequestHandler) H(ctx context.Context, req EnrolStudentRequest) (EnrolStudentResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return EnrolStudentResponse{}, fmt.Errorf("%w: name is blank", app.ErrInvalidRequest)
	}

	newStudent := func(id int) domain.Student {
		return domain.Student{StudentID: id, Name: req.Name, Age: req.Age, Year: req.Year}
	}

	var (
		student domain.Student
		err     error
	)

	if id, ok := req.ID.Get(); ok {
		student = newStudent(id)
		err = h.repo.Create(ctx, student)
	} else {
		student, err = h.repo.CreateWithNextID(ctx, newStudent)
	}

	if err != nil {
		return EnrolStudentResponse{}, fmt.Errorf("could not enrol student: %w", err)
	}

	return EnrolStudentResponse{Student: student}, nil
}
