// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asfuyao/outcome"
	appctx "github.com/asfuyao/outcome/internal/app/context"
	"github.com/asfuyao/outcome/internal/app/fanout"
	"github.com/asfuyao/outcome/internal/domain/customer"
	"github.com/asfuyao/outcome/internal/platform/telemetry"
	"github.com/asfuyao/outcome/internal/ports"
	"github.com/asfuyao/outcome/nullobj"
)

// Compile-time check that CustomerService implements ports.CustomerService.
var _ ports.CustomerService = (*CustomerService)(nil)

// CustomerService implements ports.CustomerService by orchestrating the
// directory store and the mail gateway through their ports. It handles
// validation, structured logging, and delivery bookkeeping but contains no
// business logic.
//
// Lookups for notification go through a null-object finder: an ID that
// matches no directory entry resolves to a neutral contact whose SendEmail
// completes without sending, so callers never branch on absence.
type CustomerService struct {
	directory   ports.CustomerDirectory
	mailer      ports.Mailer
	finder      *nullobj.Finder[int64, customer.Contact]
	journal     *deliveryJournal
	metrics     *telemetry.Metrics
	bulkWorkers int
	logger      *slog.Logger
}

// NewCustomerService creates a CustomerService. The directory port provides
// storage for customer entries; the mailer port delivers messages through the
// downstream mail gateway. bulkWorkers bounds BulkNotify concurrency. If
// metrics is nil, metric recording is skipped.
func NewCustomerService(
	directory ports.CustomerDirectory,
	mailer ports.Mailer,
	metrics *telemetry.Metrics,
	bulkWorkers int,
	logger *slog.Logger,
) *CustomerService {
	if bulkWorkers < 1 {
		bulkWorkers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &CustomerService{
		directory:   directory,
		mailer:      mailer,
		journal:     &deliveryJournal{},
		metrics:     metrics,
		bulkWorkers: bulkWorkers,
		logger:      logger,
	}

	s.finder = nullobj.NewFinder(
		func(ctx context.Context, id int64) (customer.Contact, bool) {
			return outcome.Try(directory.Lookup(ctx, id))
		},
		func(id int64) customer.Contact {
			return customer.NewGhost(id)
		},
	)

	return s
}

// ListCustomers returns all directory entries.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	s.logger.InfoContext(ctx, "listing customers")

	out := s.directory.List(ctx)
	if err := out.Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to list customers",
			slog.String("operation", "ListCustomers"),
			slog.Any("error", err),
		)
		return nil, err
	}

	customers, _ := out.Value()
	return customers, nil
}

// GetCustomer returns a single customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	s.logger.InfoContext(ctx, "fetching customer", slog.Int64("customer_id", id))

	out := s.directory.Lookup(ctx, id)
	if err := out.Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch customer",
			slog.String("operation", "GetCustomer"),
			slog.Int64("customer_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	c, _ := out.Value()
	return c, nil
}

// CreateCustomer validates and creates a new customer, returning the created
// entity with server-assigned fields (ID, timestamps).
func (s *CustomerService) CreateCustomer(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	s.logger.InfoContext(ctx, "creating customer", slog.String("name", c.Name))

	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := s.directory.Insert(ctx, c)
	if err := out.Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to create customer",
			slog.String("operation", "CreateCustomer"),
			slog.Any("error", err),
		)
		return nil, err
	}

	created, _ := out.Value()
	return created, nil
}

// UpdateCustomer validates and updates an existing customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, c *customer.Customer) (*customer.Customer, error) {
	s.logger.InfoContext(ctx, "updating customer", slog.Int64("customer_id", id))

	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := s.directory.Update(ctx, id, c)
	if err := out.Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to update customer",
			slog.String("operation", "UpdateCustomer"),
			slog.Int64("customer_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	updated, _ := out.Value()
	return updated, nil
}

// DeleteCustomer removes a customer from the directory.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting customer", slog.Int64("customer_id", id))

	if err := s.directory.Remove(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete customer",
			slog.String("operation", "DeleteCustomer"),
			slog.Int64("customer_id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// CustomerExists reports whether a directory entry exists for the ID.
// The boolean deliberately carries no diagnostic detail; callers that need
// a reason must use GetCustomer.
func (s *CustomerService) CustomerExists(ctx context.Context, id int64) bool {
	_, ok := outcome.AdaptCtx(s.directory.Lookup)(ctx, id)
	return ok
}

// Notify delivers a message to the customer with the given ID. A lookup miss
// is not an error: the neutral contact absorbs the send and the report marks
// the delivery as suppressed. The contact lookup is memoized in the
// request-scoped context, so repeated notifications to the same customer
// within one request hit the directory once.
//
// Delivery runs record-then-deliver as a staged unit: the journal record is
// staged first, then the delivery; a failed delivery rolls the record back.
// The staged work commits on an operation-scoped context so one request can
// carry several notifications.
func (s *CustomerService) Notify(ctx context.Context, id int64, msg customer.Message) (*ports.DeliveryReport, error) {
	s.logger.InfoContext(ctx, "notifying customer", slog.Int64("customer_id", id))

	if err := msg.Validate(); err != nil {
		return nil, err
	}

	rc := appctx.FromContext(ctx)
	contact, err := appctx.GetOrFetch(rc, contactKey(id), func(ctx context.Context) (customer.Contact, error) {
		return s.finder.Find(ctx, id), nil
	})
	if err != nil {
		return nil, err
	}

	courier := &countingCourier{next: s.mailer}
	rec := DeliveryRecord{CustomerID: id, Subject: msg.Subject, At: time.Now().UTC()}

	wc := appctx.New(ctx)
	if err := wc.Stage(journalKey(id), rec, &recordAction{journal: s.journal, rec: rec}); err != nil {
		return nil, err
	}
	if err := wc.AddAction(&deliverAction{contact: contact, courier: courier, msg: msg}); err != nil {
		return nil, err
	}
	if err := wc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to notify customer",
			slog.String("operation", "Notify"),
			slog.Int64("customer_id", id),
			slog.Any("error", err),
		)
		s.countNotify(ctx, 0, 0, 1)
		return nil, fmt.Errorf("notifying customer %d: %w", id, err)
	}

	report := &ports.DeliveryReport{
		CustomerID: id,
		Delivered:  courier.deliveries > 0,
		Suppressed: courier.deliveries == 0,
	}

	if report.Delivered {
		s.countNotify(ctx, 1, 0, 0)
	} else {
		s.logger.InfoContext(ctx, "notification suppressed",
			slog.String("operation", "Notify"),
			slog.Int64("customer_id", id),
		)
		s.countNotify(ctx, 0, 1, 0)
	}

	return report, nil
}

// BulkNotify delivers a message to multiple customers concurrently with
// bounded worker parallelism. Partial success semantics: each delivery
// succeeds or fails independently; only message validation fails the whole
// request.
func (s *CustomerService) BulkNotify(ctx context.Context, ids []int64, msg customer.Message) (*ports.BulkNotifyResult, error) {
	s.logger.InfoContext(ctx, "bulk notifying customers", slog.Int("count", len(ids)))

	if err := msg.Validate(); err != nil {
		return nil, err
	}

	// Workers tally outcomes through a shared SafeRef; each delivery
	// resolves its contact directly because workers must not share the
	// request-scoped cache.
	tally := appctx.NewRef(bulkTally{})
	results := fanout.Run(ctx, s.bulkWorkers, ids, func(ctx context.Context, id int64) (*ports.DeliveryReport, error) {
		report, err := s.deliverTo(ctx, id, msg)
		tally.Update(func(t *bulkTally) {
			switch {
			case err != nil:
				t.failed++
			case report.Delivered:
				t.delivered++
			default:
				t.suppressed++
			}
		})
		return report, err
	})

	result := &ports.BulkNotifyResult{}
	for i, r := range results {
		if r.Err != nil {
			result.Errors = append(result.Errors, ports.BulkNotifyError{CustomerID: ids[i], Err: r.Err})
			continue
		}
		result.Reports = append(result.Reports, *r.Value)
	}

	t := tally.Get()
	if t.failed > 0 {
		s.logger.WarnContext(ctx, "bulk notification completed with failures",
			slog.String("operation", "BulkNotify"),
			slog.Int("delivered", t.delivered),
			slog.Int("suppressed", t.suppressed),
			slog.Int("failed", t.failed),
		)
	}

	return result, nil
}

// bulkTally accumulates per-worker delivery outcomes during BulkNotify.
type bulkTally struct {
	delivered  int
	suppressed int
	failed     int
}

// deliverTo resolves the contact for an ID and delivers the message,
// recording metrics for the outcome.
func (s *CustomerService) deliverTo(ctx context.Context, id int64, msg customer.Message) (*ports.DeliveryReport, error) {
	contact := s.finder.Find(ctx, id)

	courier := &countingCourier{next: s.mailer}
	if err := contact.SendEmail(ctx, courier, msg); err != nil {
		s.countNotify(ctx, 0, 0, 1)
		return nil, fmt.Errorf("notifying customer %d: %w", id, err)
	}

	delivered := courier.deliveries > 0
	if delivered {
		s.countNotify(ctx, 1, 0, 0)
	} else {
		s.countNotify(ctx, 0, 1, 0)
	}

	return &ports.DeliveryReport{
		CustomerID: id,
		Delivered:  delivered,
		Suppressed: !delivered,
	}, nil
}

// countNotify records notification outcome counters. Safe to call with nil
// metrics.
func (s *CustomerService) countNotify(ctx context.Context, delivered, suppressed, failed int64) {
	if s.metrics == nil {
		return
	}
	if delivered > 0 {
		s.metrics.NotifyDeliveredTotal.Add(ctx, delivered)
	}
	if suppressed > 0 {
		s.metrics.NotifySuppressedTotal.Add(ctx, suppressed)
	}
	if failed > 0 {
		s.metrics.NotifyFailedTotal.Add(ctx, failed)
	}
}

// RecentDeliveries returns up to n journaled notifications, newest first.
// Rolled-back records do not appear.
func (s *CustomerService) RecentDeliveries(n int) []DeliveryRecord {
	return s.journal.recent(n)
}

// contactKey builds the request-scoped cache key for a contact lookup.
func contactKey(id int64) string {
	return fmt.Sprintf("contact:%d", id)
}

// journalKey builds the staging cache key for a journal record.
func journalKey(id int64) string {
	return fmt.Sprintf("journal:%d", id)
}

// countingCourier wraps a courier and counts successful deliveries, letting
// the service distinguish a delivered message from one a contact absorbed.
type countingCourier struct {
	next       customer.Courier
	deliveries int
}

func (c *countingCourier) Deliver(ctx context.Context, to string, msg customer.Message) error {
	if err := c.next.Deliver(ctx, to, msg); err != nil {
		return err
	}
	c.deliveries++
	return nil
}

// deliverAction adapts a single message delivery to the action interface so
// it runs through the request context's execution path.
type deliverAction struct {
	contact customer.Contact
	courier customer.Courier
	msg     customer.Message
}

func (a *deliverAction) Execute(ctx context.Context) error {
	return a.contact.SendEmail(ctx, a.courier, a.msg)
}

// Rollback is a no-op: a handed-off message cannot be recalled.
func (a *deliverAction) Rollback(_ context.Context) error { return nil }

func (a *deliverAction) Description() string {
	return fmt.Sprintf("deliver message to customer %d", a.contact.ContactID())
}
