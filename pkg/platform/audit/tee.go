package audit

import (
	"context"
	"errors"
)

// TeeStore appends to every underlying store and serves reads from the first.
// Used to pair a queryable store with a write-only sink such as Kafka.
type TeeStore struct {
	stores []Store
}

func NewTeeStore(stores ...Store) *TeeStore {
	return &TeeStore{stores: stores}
}

func (t *TeeStore) Append(ctx context.Context, event Event) error {
	var errs []error
	for _, s := range t.stores {
		if err := s.Append(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *TeeStore) ListByPackage(ctx context.Context, pkg string) ([]Event, error) {
	if len(t.stores) == 0 {
		return nil, nil
	}
	return t.stores[0].ListByPackage(ctx, pkg)
}
