package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/amaumene/escort/internal/domain"
	"github.com/timshannon/bolthold"
)

func Open(path string, mode os.FileMode) (*bolthold.Store, error) {
	store, err := bolthold.Open(path, mode, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return store, nil
}

// translate maps bolthold sentinels onto domain errors and wraps the rest.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bolthold.ErrNotFound):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case errors.Is(err, bolthold.ErrKeyExists):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}
