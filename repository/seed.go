package repository

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSeed is returned, if seed data can not be decoded.
var ErrInvalidSeed = errors.New("invalid seed")

// LoadYAML decodes a YAML list of entities from r and adds all of them to repo.
// Unknown keys are an error. Either all entities are created or none.
func LoadYAML[E any, ID id](ctx context.Context, repo Repository[E, ID], r io.Reader) error {
	var entities []E

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&entities); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidSeed, err) //nolint:errorlint // do not expose yaml internals
	}

	if err := repo.CreateAll(ctx, entities); err != nil {
		return fmt.Errorf("could not seed: %w", err)
	}

	return nil
}
