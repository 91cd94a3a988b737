package repository

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository returns an implementation of Repository for the given entity E.
// It is expected that E has a field called `ID`, that is used as the primary key and can
// be overwritten by WithIDField.
// If your repository needs additional methods, you can embed this repo into our own implementation to extend
// your own repository easily to your use case.
//
// Entities are kept in insertion order, all methods returning more than one entity
// preserve that order. There is no index apart from the primary key, so FindBy is a linear scan.
func NewMemoryRepository[E any, ID id](opts ...Option) *MemoryRepository[E, ID] {
	repo := &MemoryRepository[E, ID]{
		Mutex: &sync.Mutex{},
		data:  make(map[ID]E),
		order: []ID{},
		maxID: *new(ID),
		repoConfig: repoConfig{
			idFieldName: "ID",
		},
	}

	for _, opt := range opts {
		opt(&repo.repoConfig)
	}

	return repo
}

// MemoryRepository implements Repository in a generic way.
// Every method either succeeds completely or leaves the collection untouched.
type MemoryRepository[E any, ID id] struct {
	// Mutex is embedded, so that repositories who extend MemoryRepository can lock the same mutex as other methods.
	*sync.Mutex

	data  map[ID]E
	order []ID

	// maxID is the largest integer ID ever stored or handed out by nextID.
	maxID ID

	repoConfig
}

var _ Repository[struct{ ID int }, int] = (*MemoryRepository[struct{ ID int }, int])(nil)

const panicIDNotSupported = "type of ID is not supported: "

func (repo *MemoryRepository[E, ID]) getID(t any) ID { //nolint:ireturn // fp, as it is not recognised even with "generic" setting
	val := reflect.ValueOf(t)

	idField := val.FieldByName(repo.idFieldName)
	if !idField.IsValid() {
		panic("entity does not have the field with name: " + repo.idFieldName)
	}

	var id ID

	switch idField.Kind() {
	case reflect.String:
		reflect.ValueOf(&id).Elem().SetString(idField.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		reflect.ValueOf(&id).Elem().SetInt(idField.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		reflect.ValueOf(&id).Elem().SetUint(idField.Uint())
	default:
		panic(panicIDNotSupported + idField.Kind().String())
	}

	return id
}

// nextID returns a new ID. For string IDs it is a random uuid,
// for integer IDs it is one larger than any ID the repository has seen so far.
// It expects the lock to be held.
func (repo *MemoryRepository[E, ID]) nextID() ID { //nolint:ireturn // fp, as it is not recognised even with "generic" setting
	var id ID

	switch reflect.TypeOf(id).Kind() {
	case reflect.String:
		reflect.ValueOf(&id).Elem().SetString(uuid.New().String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// the generic does not know which integer type ID is, so reflection is used for the increment.
		newID := reflect.ValueOf(&repo.maxID).Elem().Int() + 1
		reflect.ValueOf(&repo.maxID).Elem().SetInt(newID)
		reflect.ValueOf(&id).Elem().SetInt(newID)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		newID := reflect.ValueOf(&repo.maxID).Elem().Uint() + 1
		reflect.ValueOf(&repo.maxID).Elem().SetUint(newID)
		reflect.ValueOf(&id).Elem().SetUint(newID)
	default:
		panic(panicIDNotSupported + reflect.TypeOf(id).Kind().String())
	}

	return id
}

// Create adds entity to the end of the collection.
// It fails with ErrAlreadyExists if an entity with the same ID is present.
func (repo *MemoryRepository[E, ID]) Create(_ context.Context, entity E) error {
	repo.Lock()
	defer repo.Unlock()

	id := repo.getID(entity)
	if err := repo.checkInsertable(id); err != nil {
		return err
	}

	repo.insert(id, entity)

	return nil
}

// CreateWithNextID adds the entity build returns for a new ID.
// Getting the ID and adding the entity happen under the same lock,
// so no other Create can take the ID in between.
// build has to use the given ID, otherwise it fails with ErrIDChanged.
func (repo *MemoryRepository[E, ID]) CreateWithNextID(_ context.Context, build func(id ID) E) (E, error) { //nolint:ireturn // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	id := repo.nextID()

	entity := build(id)
	if repo.getID(entity) != id {
		return *new(E), fmt.Errorf("%w: expected id %v", ErrIDChanged, id)
	}

	if err := repo.checkInsertable(id); err != nil {
		return *new(E), err
	}

	repo.insert(id, entity)

	return entity, nil
}

// CreateAll adds all entities or none of them.
func (repo *MemoryRepository[E, ID]) CreateAll(_ context.Context, entities []E) error {
	repo.Lock()
	defer repo.Unlock()

	seen := make(map[ID]struct{}, len(entities))

	for _, e := range entities {
		id := repo.getID(e)
		if err := repo.checkInsertable(id); err != nil {
			return err
		}

		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate id %v in batch", ErrAlreadyExists, id)
		}

		seen[id] = struct{}{}
	}

	for _, e := range entities {
		repo.insert(repo.getID(e), e)
	}

	return nil
}

func (repo *MemoryRepository[E, ID]) checkInsertable(id ID) error {
	if isStringID[ID]() && id == *new(ID) {
		return fmt.Errorf("%w: missing ID", ErrStorage)
	}

	if _, found := repo.data[id]; found {
		return fmt.Errorf("%w: id %v", ErrAlreadyExists, id)
	}

	return nil
}

// insert expects the lock to be held.
func (repo *MemoryRepository[E, ID]) insert(id ID, entity E) {
	repo.data[id] = entity
	repo.order = append(repo.order, id)

	if !isStringID[ID]() && id > repo.maxID {
		repo.maxID = id
	}
}

func (repo *MemoryRepository[E, ID]) FindByID(_ context.Context, id ID) (E, error) { //nolint:ireturn // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	if e, ok := repo.data[id]; ok {
		return e, nil
	}

	return *new(E), fmt.Errorf("%w: id %v", ErrNotFound, id)
}

// Modify replaces the entity with the given id by the result of change.
// change is called while the repository is locked, so it MUST NOT call the repository.
// If change returns an error, the entity stays as it was and the error is returned.
func (repo *MemoryRepository[E, ID]) Modify(
	_ context.Context,
	id ID,
	change func(E) (E, error),
) (E, error) { //nolint:ireturn // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	old, found := repo.data[id]
	if !found {
		return *new(E), fmt.Errorf("%w: id %v", ErrNotFound, id)
	}

	updated, err := change(old)
	if err != nil {
		return *new(E), fmt.Errorf("could not modify entity: %w", err)
	}

	if repo.getID(updated) != id {
		return *new(E), ErrIDChanged
	}

	repo.data[id] = updated

	return updated, nil
}

// DeleteByID removes the entity and returns it.
func (repo *MemoryRepository[E, ID]) DeleteByID(_ context.Context, id ID) (E, error) { //nolint:ireturn // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	old, found := repo.data[id]
	if !found {
		return *new(E), fmt.Errorf("%w: id %v", ErrNotFound, id)
	}

	delete(repo.data, id)

	if i := slices.Index(repo.order, id); i >= 0 {
		repo.order = slices.Delete(repo.order, i, i+1)
	}

	return old, nil
}

// All returns every entity in insertion order.
func (repo *MemoryRepository[E, ID]) All(_ context.Context) ([]E, error) {
	repo.Lock()
	defer repo.Unlock()

	return repo.ordered(len(repo.order)), nil
}

// Limit returns the first n entities in insertion order.
// If n exceeds the size of the collection all entities are returned,
// if n is not positive, none are.
func (repo *MemoryRepository[E, ID]) Limit(_ context.Context, n int) ([]E, error) {
	repo.Lock()
	defer repo.Unlock()

	return repo.ordered(n), nil
}

func (repo *MemoryRepository[E, ID]) ordered(n int) []E {
	n = max(0, min(n, len(repo.order)))
	result := make([]E, 0, n)

	for _, id := range repo.order[:n] {
		result = append(result, repo.data[id])
	}

	return result
}

// FindBy returns all entities matching every one of conds, in insertion order.
// Without any conds all entities match.
// If nothing matches it returns ErrNotFound.
func (repo *MemoryRepository[E, ID]) FindBy(_ context.Context, conds ...Condition[E]) ([]E, error) {
	repo.Lock()
	defer repo.Unlock()

	match := And(conds...)
	result := []E{}

	for _, id := range repo.order {
		if e := repo.data[id]; match(e) {
			result = append(result, e)
		}
	}

	if len(result) == 0 {
		return result, fmt.Errorf("%w: no entity matches", ErrNotFound)
	}

	return result, nil
}

func (repo *MemoryRepository[E, ID]) Count(_ context.Context) (int, error) {
	repo.Lock()
	defer repo.Unlock()

	return len(repo.data), nil
}
