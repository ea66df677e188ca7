package app

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// maxJournalEntries bounds the delivery journal; the oldest entries are
// discarded once the cap is reached.
const maxJournalEntries = 1000

// DeliveryRecord is one journaled notification attempt.
type DeliveryRecord struct {
	CustomerID int64
	Subject    string
	At         time.Time
}

// deliveryJournal is a bounded, concurrency-safe log of notifications. The
// notify flow journals a record before delivering; a failed delivery removes
// the record again during rollback, so the journal only ever holds
// notifications that completed.
type deliveryJournal struct {
	mu      sync.Mutex
	entries []DeliveryRecord
}

func (j *deliveryJournal) add(rec DeliveryRecord) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, rec)
	if len(j.entries) > maxJournalEntries {
		j.entries = j.entries[len(j.entries)-maxJournalEntries:]
	}
}

// drop removes the most recent entry equal to rec. A no-op when no such
// entry exists, which keeps rollback idempotent.
func (j *deliveryJournal) drop(rec DeliveryRecord) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i := len(j.entries) - 1; i >= 0; i-- {
		if j.entries[i] == rec {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)
			return
		}
	}
}

// recent returns up to n entries, newest first.
func (j *deliveryJournal) recent(n int) []DeliveryRecord {
	j.mu.Lock()
	defer j.mu.Unlock()

	if n > len(j.entries) {
		n = len(j.entries)
	}
	out := make([]DeliveryRecord, 0, n)
	for i := len(j.entries) - 1; i >= len(j.entries)-n; i-- {
		out = append(out, j.entries[i])
	}
	return out
}

// recordAction journals a notification as the first staged step of the notify
// flow. Rollback erases the record when a later step fails.
type recordAction struct {
	journal *deliveryJournal
	rec     DeliveryRecord
}

func (a *recordAction) Execute(_ context.Context) error {
	a.journal.add(a.rec)
	return nil
}

func (a *recordAction) Rollback(_ context.Context) error {
	a.journal.drop(a.rec)
	return nil
}

func (a *recordAction) Description() string {
	return fmt.Sprintf("record notification for customer %d", a.rec.CustomerID)
}
