package theme

import (
	"context"
	"fmt"
	"sync"
)

// Store is durable key-value storage scoped to one visitor.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Controller reads and writes the preference through a Store.
type Controller struct {
	store Store
}

func NewController(store Store) *Controller {
	return &Controller{store: store}
}

// Preference reports whether dark mode is stored. Unavailable storage, a
// missing value, or anything other than the dark marker all read as light.
func (c *Controller) Preference(ctx context.Context) bool {
	v, found, err := c.store.Get(ctx, Key)
	if err != nil || !found {
		return false
	}
	return v == string(Dark)
}

// Theme is Preference as a Theme.
func (c *Controller) Theme(ctx context.Context) Theme {
	return FromDark(c.Preference(ctx))
}

// SetPreference writes the flag through to storage and returns the Theme to
// render with. Write failures are returned unrecovered.
func (c *Controller) SetPreference(ctx context.Context, dark bool) (Theme, error) {
	t := FromDark(dark)
	if err := c.store.Set(ctx, Key, string(t)); err != nil {
		return t, fmt.Errorf("save theme preference: %w", err)
	}
	return t, nil
}

// Toggle flips the stored preference.
func (c *Controller) Toggle(ctx context.Context) (Theme, error) {
	return c.SetPreference(ctx, !c.Preference(ctx))
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

var _ Store = (*MemoryStore)(nil)
