package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
	"github.com/go-arrower/recordstore/repository"
)

func NewStudentMemoryRepository() *StudentMemoryRepository {
	return &StudentMemoryRepository{
		MemoryRepository: repository.NewMemoryRepository[domain.Student, int](
			repository.WithIDField("StudentID"),
		),
	}
}

// StudentMemoryRepository keeps the students in memory. They are lost on restart.
type StudentMemoryRepository struct {
	*repository.MemoryRepository[domain.Student, int]
}

var _ domain.Repository = (*StudentMemoryRepository)(nil)

// Seed adds the students of a YAML list.
func (repo *StudentMemoryRepository) Seed(ctx context.Context, r io.Reader) error {
	if err := repository.LoadYAML[domain.Student, int](ctx, repo.MemoryRepository, r); err != nil {
		return fmt.Errorf("could not seed students: %w", err)
	}

	return nil
}
