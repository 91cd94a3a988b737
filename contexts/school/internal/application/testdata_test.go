package application_test

import (
	"context"

	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
	"github.com/go-arrower/recordstore/contexts/school/internal/interfaces/repository"
)

var ctx = context.Background()

var (
	john = domain.Student{StudentID: 1, Name: "John", Age: 17, Year: "12A"}
	tim  = domain.Student{StudentID: 2, Name: "Tim", Age: 15, Year: "10D"}
)

func seededRepository() *repository.StudentMemoryRepository {
	repo := repository.NewStudentMemoryRepository()
	_ = repo.CreateAll(ctx, []domain.Student{john, tim})

	return repo
}
