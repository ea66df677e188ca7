// Package memdir provides an in-memory customer directory with optional
// JSON snapshot persistence.
package memdir

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/asfuyao/outcome"
	"github.com/asfuyao/outcome/internal/domain/customer"
	"github.com/asfuyao/outcome/internal/ports"
)

// Compile-time checks for the ports this adapter serves.
var (
	_ ports.CustomerDirectory = (*Directory)(nil)
	_ ports.HealthChecker     = (*Directory)(nil)
)

// Directory stores customer entries in memory behind an RWMutex. When a
// snapshot path is configured, every mutation is persisted to disk with an
// atomic tmp-then-rename write, and New reloads the snapshot on startup.
type Directory struct {
	mu      sync.RWMutex
	entries map[int64]customer.Customer
	nextID  int64

	snapshotPath string
	now          func() time.Time
	logger       *slog.Logger
}

// Option configures a Directory.
type Option func(*Directory)

// WithClock overrides the timestamp source. Useful for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// New creates a Directory. If snapshotPath is non-empty and the file exists,
// the snapshot is loaded; a snapshot that cannot be parsed is a data-corrupt
// fault, not a silent reset. An empty snapshotPath disables persistence.
func New(snapshotPath string, logger *slog.Logger, opts ...Option) (*Directory, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	d := &Directory{
		entries:      make(map[int64]customer.Customer),
		nextID:       1,
		snapshotPath: snapshotPath,
		now:          time.Now,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.loadSnapshot(); err != nil {
		return nil, err
	}
	return d, nil
}

// List returns all directory entries ordered by ID.
func (d *Directory) List(_ context.Context) outcome.Outcome[[]customer.Customer] {
	d.mu.RLock()
	defer d.mu.RUnlock()

	customers := make([]customer.Customer, 0, len(d.entries))
	for _, c := range d.entries {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].ID < customers[j].ID
	})
	return outcome.Success(customers)
}

// Lookup returns the customer for the ID, or a not-found fault.
func (d *Directory) Lookup(_ context.Context, id int64) outcome.Outcome[*customer.Customer] {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.entries[id]
	if !ok {
		return outcome.Failure[*customer.Customer](outcome.KindNotFound, notFoundMsg(id))
	}
	return outcome.Success(&c)
}

// Insert stores a new customer, assigning its ID and timestamps.
func (d *Directory) Insert(_ context.Context, c *customer.Customer) outcome.Outcome[*customer.Customer] {
	d.mu.Lock()
	defer d.mu.Unlock()

	stored := *c
	stored.ID = d.nextID
	d.nextID++

	ts := d.now().UTC()
	stored.CreatedAt = ts
	stored.UpdatedAt = ts

	d.entries[stored.ID] = stored
	if err := d.persistLocked(); err != nil {
		delete(d.entries, stored.ID)
		return outcome.FailureOf[*customer.Customer](err)
	}
	return outcome.Success(&stored)
}

// Update replaces the mutable fields of an existing customer.
func (d *Directory) Update(_ context.Context, id int64, c *customer.Customer) outcome.Outcome[*customer.Customer] {
	d.mu.Lock()
	defer d.mu.Unlock()

	existing, ok := d.entries[id]
	if !ok {
		return outcome.Failure[*customer.Customer](outcome.KindNotFound, notFoundMsg(id))
	}

	updated := existing
	updated.Name = c.Name
	updated.Email = c.Email
	updated.Status = c.Status
	updated.UpdatedAt = d.now().UTC()

	d.entries[id] = updated
	if err := d.persistLocked(); err != nil {
		d.entries[id] = existing
		return outcome.FailureOf[*customer.Customer](err)
	}
	return outcome.Success(&updated)
}

// Remove deletes the entry for the ID.
func (d *Directory) Remove(_ context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	existing, ok := d.entries[id]
	if !ok {
		return outcome.NewFault(outcome.KindNotFound, notFoundMsg(id))
	}

	delete(d.entries, id)
	if f := d.persistLocked(); f != nil {
		d.entries[id] = existing
		return f
	}
	return nil
}

// Name implements ports.HealthChecker.
func (d *Directory) Name() string {
	return "directory-store"
}

// HealthCheck reports whether the snapshot location is writable. Without
// persistence the in-memory store is always healthy.
func (d *Directory) HealthCheck(_ context.Context) error {
	if d.snapshotPath == "" {
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if f := d.persistLocked(); f != nil {
		return f
	}
	return nil
}

func notFoundMsg(id int64) string {
	return fmt.Sprintf("customer %d not found", id)
}
