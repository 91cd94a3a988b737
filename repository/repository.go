package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrStorage       = errors.New("storage error")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrIDChanged     = fmt.Errorf("%w: id of an entity can not change", ErrStorage)
)

// Condition selects the entities a FindBy call returns.
type Condition[E any] func(e E) bool

// Where is a readability helper to turn a function literal into a Condition.
func Where[E any](f func(e E) bool) Condition[E] {
	return f
}

// And returns a Condition that matches if all conditions match.
// Without any conditions it matches everything.
func And[E any](conds ...Condition[E]) Condition[E] {
	return func(e E) bool {
		for _, cond := range conds {
			if cond != nil && !cond(e) {
				return false
			}
		}

		return true
	}
}

// Option sets optional properties of a repository.
type Option func(config *repoConfig)

type repoConfig struct {
	idFieldName string
}

// WithIDField set's the name of the field that is used as an id or primary key.
// If not set, it is assumed that the entity struct has a field with the name "ID".
func WithIDField(idFieldName string) Option { //nolint:revive // unexported-return is OK for this option
	return func(config *repoConfig) {
		config.idFieldName = idFieldName
	}
}

// Repository is a general purpose interface documenting which methods are available by the generic MemoryRepository.
// ID is the primary key and needs to be of one of the underlying types.
// If your repository needs additional methods, you can extend your own repository easily to tune it to your use case.
type Repository[E any, ID id] interface { //nolint:interfacebloat // showcase of all methods that are possible
	Create(ctx context.Context, entity E) error
	CreateWithNextID(ctx context.Context, build func(id ID) E) (E, error)
	CreateAll(ctx context.Context, entities []E) error
	Modify(ctx context.Context, id ID, change func(E) (E, error)) (E, error)
	DeleteByID(ctx context.Context, id ID) (E, error)

	All(ctx context.Context) ([]E, error)
	Limit(ctx context.Context, n int) ([]E, error)
	FindBy(ctx context.Context, conds ...Condition[E]) ([]E, error)
	FindByID(ctx context.Context, id ID) (E, error)

	Count(ctx context.Context) (int, error)
}

// id are the types allowed as a primary key used in the generic Repository.
type id interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func isStringID[ID id]() bool {
	return reflect.TypeOf(*new(ID)).Kind() == reflect.String
}
