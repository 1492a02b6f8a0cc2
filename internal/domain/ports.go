package domain

import "context"

// EntryStore holds registered entries keyed by name. Implementations can be
// in-memory or backed by a persistent store; callers never see the map.
type EntryStore interface {
	Get(ctx context.Context, name string) (*Entry, error)
	Contains(ctx context.Context, name string) bool
	Insert(ctx context.Context, entry *Entry) error
	List(ctx context.Context) ([]*Entry, error)
}
