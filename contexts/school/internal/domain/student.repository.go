package domain

import (
	"context"

	"github.com/go-arrower/recordstore/repository"
)

type Repository interface {
	Create(ctx context.Context, student Student) error
	CreateWithNextID(ctx context.Context, build func(id int) Student) (Student, error)
	FindByID(ctx context.Context, id int) (Student, error)
	All(ctx context.Context) ([]Student, error)
	Limit(ctx context.Context, n int) ([]Student, error)
	FindBy(ctx context.Context, conds ...repository.Condition[Student]) ([]Student, error)
	Modify(ctx context.Context, id int, change func(Student) (Student, error)) (Student, error)
	DeleteByID(ctx context.Context, id int) (Student, error)

	Count(ctx context.Context) (int, error)
}
