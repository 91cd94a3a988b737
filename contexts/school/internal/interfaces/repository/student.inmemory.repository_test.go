package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
	"github.com/go-arrower/recordstore/contexts/school/internal/interfaces/repository"
	globalRepository "github.com/go-arrower/recordstore/repository"
)

func TestStudentMemoryRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("student id is the primary key", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewStudentMemoryRepository()

		err := repo.Create(ctx, domain.Student{StudentID: 5, Name: "John", Age: 17, Year: "12A"})
		require.NoError(t, err)

		john, err := repo.FindByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, "John", john.Name)

		err = repo.Create(ctx, domain.Student{StudentID: 5, Name: "Tim", Age: 15, Year: "10D"})
		assert.ErrorIs(t, err, globalRepository.ErrAlreadyExists)

		tim, err := repo.CreateWithNextID(ctx, func(id int) domain.Student {
			return domain.Student{StudentID: id, Name: "Tim", Age: 15, Year: "10D"}
		})
		assert.NoError(t, err)
		assert.Equal(t, 6, tim.StudentID)
	})

	t.Run("seed", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewStudentMemoryRepository()

		err := repo.Seed(ctx, strings.NewReader(`
- {id: 1, name: John, age: 17, year: 12A}
- {id: 2, name: Tim, age: 15, year: 10D}
`))
		require.NoError(t, err)

		all, err := repo.All(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []domain.Student{
			{StudentID: 1, Name: "John", Age: 17, Year: "12A"},
			{StudentID: 2, Name: "Tim", Age: 15, Year: "10D"},
		}, all)
	})

	t.Run("seed with unknown field", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewStudentMemoryRepository()

		err := repo.Seed(ctx, strings.NewReader(`- {id: 1, name: John, grade: A}`))
		assert.ErrorIs(t, err, globalRepository.ErrInvalidSeed)

		count, _ := repo.Count(ctx)
		assert.Equal(t, 0, count)
	})
}
