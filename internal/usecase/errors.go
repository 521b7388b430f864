package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-clinic-records/pkg/idgen"
	"go-clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrValidation      = errors.New("invalid input")
	ErrDuplicatePerson = errors.New("a person with the same name, surname, birth date and phone already exists")
	ErrPersistence     = errors.New("failed to persist changes")
	ErrUnchanged       = errors.New("nothing to change")
)

func validate(v *validator.CustomValidator, req interface{}) error {
	if err := v.Validate(req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func persistErr(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

// loadOrEmpty returns the stored collection, or an empty one if it cannot be read.
func loadOrEmpty[T any](ctx context.Context, log *logrus.Logger, name string, load func(context.Context) ([]T, error)) []T {
	items, err := load(ctx)
	if err != nil {
		log.Warnf("Failed to load %s, starting with an empty collection: %+v", name, err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func nextID[T any](prefix string, items []T, id func(T) string) (string, error) {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = id(item)
	}
	return idgen.Next(prefix, idgen.Max(prefix, ids))
}
