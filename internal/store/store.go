package store

import "CollectIQ/internal/model"

// Store persists aggregated price points. The pipeline itself is
// storage-agnostic: it hands points to a Store and reads a series back,
// with insert-or-update semantics keyed on
// (product, date, condition, source).
type Store interface {
	UpsertPoints(product string, points []model.PricePoint) error
	Series(product string) ([]model.PricePoint, error)
	Close() error
}

// NoopStore is used when no database is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) UpsertPoints(_ string, _ []model.PricePoint) error { return nil }
func (n *NoopStore) Series(_ string) ([]model.PricePoint, error)       { return nil, nil }
func (n *NoopStore) Close() error                                      { return nil }
