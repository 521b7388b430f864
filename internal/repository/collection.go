package repository

import (
	"context"
	"errors"

	"go-clinic-records/internal/infrastructure/storage"
)

// loadCollection treats a missing file as an empty collection.
func loadCollection[T any](ctx context.Context, store *storage.JSONStore[T]) ([]T, error) {
	items, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}
