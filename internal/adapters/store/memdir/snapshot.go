package memdir

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/asfuyao/outcome"
	"github.com/asfuyao/outcome/internal/domain/customer"
)

// snapshot is the on-disk representation of the directory.
type snapshot struct {
	NextID    int64            `json:"next_id"`
	Customers []customerRecord `json:"customers"`
}

// customerRecord mirrors customer.Customer with JSON tags so the domain
// entity stays free of serialization concerns.
type customerRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// loadSnapshot restores entries from the snapshot file. A missing file is a
// fresh start; an unreadable or unparsable file is a data-corrupt fault so a
// damaged directory is never silently replaced by an empty one.
func (d *Directory) loadSnapshot() error {
	if d.snapshotPath == "" {
		return nil
	}

	data, err := os.ReadFile(d.snapshotPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return outcome.NewFault(outcome.KindDataCorrupt,
			fmt.Sprintf("reading snapshot %s: %v", d.snapshotPath, err))
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return outcome.NewFault(outcome.KindDataCorrupt,
			fmt.Sprintf("parsing snapshot %s: %v", d.snapshotPath, err))
	}

	entries := make(map[int64]customer.Customer, len(snap.Customers))
	maxID := int64(0)
	for _, rec := range snap.Customers {
		status := customer.Status(rec.Status)
		if !status.IsValid() {
			return outcome.NewFault(outcome.KindDataCorrupt,
				fmt.Sprintf("snapshot %s: customer %d has status %q", d.snapshotPath, rec.ID, rec.Status))
		}
		entries[rec.ID] = customer.Customer{
			ID:        rec.ID,
			Name:      rec.Name,
			Email:     rec.Email,
			Status:    status,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		}
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}

	d.entries = entries
	d.nextID = snap.NextID
	if d.nextID <= maxID {
		d.nextID = maxID + 1
	}

	d.logger.Info("loaded directory snapshot",
		slog.String("path", d.snapshotPath),
		slog.Int("customers", len(entries)),
	)
	return nil
}

// persistLocked writes the snapshot with a tmp-then-rename so readers never
// observe a partial file. Callers must hold at least a read lock. Returns nil
// when persistence is disabled.
func (d *Directory) persistLocked() *outcome.Fault {
	if d.snapshotPath == "" {
		return nil
	}

	snap := snapshot{NextID: d.nextID}
	for _, c := range d.entries {
		snap.Customers = append(snap.Customers, customerRecord{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Status:    c.Status.String(),
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return outcome.NewFault(outcome.KindInvalidState,
			fmt.Sprintf("encoding snapshot: %v", err))
	}

	// Each writer gets its own temp file so concurrent persists (mutations,
	// readiness probes) never race each other on the rename.
	tmp, err := os.CreateTemp(filepath.Dir(d.snapshotPath), filepath.Base(d.snapshotPath)+".tmp-")
	if err != nil {
		return outcome.NewFault(outcome.KindInvalidState,
			fmt.Sprintf("creating snapshot temp file: %v", err))
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return outcome.NewFault(outcome.KindInvalidState,
			fmt.Sprintf("writing snapshot %s: %v", tmp.Name(), err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return outcome.NewFault(outcome.KindInvalidState,
			fmt.Sprintf("closing snapshot %s: %v", tmp.Name(), err))
	}
	if err := os.Rename(tmp.Name(), d.snapshotPath); err != nil {
		_ = os.Remove(tmp.Name())
		return outcome.NewFault(outcome.KindInvalidState,
			fmt.Sprintf("replacing snapshot %s: %v", d.snapshotPath, err))
	}
	return nil
}
