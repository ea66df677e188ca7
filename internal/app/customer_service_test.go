package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/asfuyao/outcome"
	appctx "github.com/asfuyao/outcome/internal/app/context"
	"github.com/asfuyao/outcome/internal/domain/customer"
	"github.com/asfuyao/outcome/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validCustomer() customer.Customer {
	return customer.Customer{
		ID:        1,
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Status:    customer.StatusActive,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func validMessage() customer.Message {
	return customer.Message{Subject: "Hello!", Body: "Welcome aboard."}
}

func notFound(id int64) outcome.Outcome[*customer.Customer] {
	return outcome.Failure[*customer.Customer](outcome.KindNotFound, "no directory entry")
}

// --- NewCustomerService ---

func TestNewCustomerService_NilLogger(t *testing.T) {
	t.Parallel()
	dir := mocks.NewMockCustomerDirectory(t)
	mailer := mocks.NewMockMailer(t)

	svc := NewCustomerService(dir, mailer, nil, 4, nil)
	if svc.logger == nil {
		t.Fatal("NewCustomerService(nil logger) should create a no-op logger, got nil")
	}
}

func TestNewCustomerService_ClampsBulkWorkers(t *testing.T) {
	t.Parallel()
	dir := mocks.NewMockCustomerDirectory(t)
	mailer := mocks.NewMockMailer(t)

	svc := NewCustomerService(dir, mailer, nil, 0, discardLogger())
	if svc.bulkWorkers != 1 {
		t.Errorf("bulkWorkers = %d, want 1", svc.bulkWorkers)
	}
}

// --- ListCustomers ---

func TestCustomerService_ListCustomers(t *testing.T) {
	t.Parallel()

	t.Run("returns customers on success", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		want := []customer.Customer{
			{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", Status: customer.StatusActive},
			{ID: 2, Name: "Alan Turing", Email: "alan@example.com", Status: customer.StatusSuspended},
		}
		dir.EXPECT().List(mock.Anything).Return(outcome.Success(want))

		got, err := svc.ListCustomers(context.Background())
		if err != nil {
			t.Fatalf("ListCustomers() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Errorf("ListCustomers() len = %d, want 2", len(got))
		}
		if got[0].Name != "Ada Lovelace" {
			t.Errorf("ListCustomers()[0].Name = %q, want %q", got[0].Name, "Ada Lovelace")
		}
	})

	t.Run("returns fault when store fails", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		dir.EXPECT().List(mock.Anything).
			Return(outcome.Failure[[]customer.Customer](outcome.KindDataCorrupt, "snapshot unreadable"))

		_, err := svc.ListCustomers(context.Background())
		if !errors.Is(err, outcome.ErrDataCorrupt) {
			t.Errorf("ListCustomers() error = %v, want ErrDataCorrupt", err)
		}
	})
}

// --- GetCustomer ---

func TestCustomerService_GetCustomer(t *testing.T) {
	t.Parallel()

	t.Run("returns customer on hit", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		c := validCustomer()
		dir.EXPECT().Lookup(mock.Anything, int64(1)).Return(outcome.Success(&c))

		got, err := svc.GetCustomer(context.Background(), 1)
		if err != nil {
			t.Fatalf("GetCustomer() error = %v, want nil", err)
		}
		if got.Name != "Ada Lovelace" {
			t.Errorf("GetCustomer().Name = %q, want %q", got.Name, "Ada Lovelace")
		}
	})

	t.Run("returns not-found fault on miss", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		dir.EXPECT().Lookup(mock.Anything, int64(42)).Return(notFound(42))

		_, err := svc.GetCustomer(context.Background(), 42)
		if !errors.Is(err, outcome.ErrNotFound) {
			t.Errorf("GetCustomer() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("propagates wrapped cause chains intact", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		wrapped := outcome.NewFault(outcome.KindNotFound, "no directory entry").
			Wrap(outcome.KindDataCorrupt, "resolving customer 42")
		dir.EXPECT().Lookup(mock.Anything, int64(42)).
			Return(outcome.FailureOf[*customer.Customer](wrapped))

		_, err := svc.GetCustomer(context.Background(), 42)
		if !errors.Is(err, outcome.ErrDataCorrupt) {
			t.Errorf("GetCustomer() error = %v, want ErrDataCorrupt", err)
		}
		if !errors.Is(err, outcome.ErrNotFound) {
			t.Errorf("GetCustomer() error = %v, want root ErrNotFound preserved", err)
		}
	})
}

// --- CreateCustomer ---

func TestCustomerService_CreateCustomer(t *testing.T) {
	t.Parallel()

	t.Run("creates valid customer", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		c := validCustomer()
		c.ID = 0
		created := validCustomer()
		dir.EXPECT().Insert(mock.Anything, &c).Return(outcome.Success(&created))

		got, err := svc.CreateCustomer(context.Background(), &c)
		if err != nil {
			t.Fatalf("CreateCustomer() error = %v, want nil", err)
		}
		if got.ID != 1 {
			t.Errorf("CreateCustomer().ID = %d, want 1", got.ID)
		}
	})

	t.Run("rejects invalid customer without touching store", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		c := validCustomer()
		c.Email = "not-an-address"

		_, err := svc.CreateCustomer(context.Background(), &c)
		if !errors.Is(err, outcome.ErrInvalidArgument) {
			t.Errorf("CreateCustomer() error = %v, want ErrInvalidArgument", err)
		}
	})
}

// --- UpdateCustomer ---

func TestCustomerService_UpdateCustomer(t *testing.T) {
	t.Parallel()

	t.Run("updates existing customer", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		c := validCustomer()
		c.Name = "Ada King"
		updated := c
		dir.EXPECT().Update(mock.Anything, int64(1), &c).Return(outcome.Success(&updated))

		got, err := svc.UpdateCustomer(context.Background(), 1, &c)
		if err != nil {
			t.Fatalf("UpdateCustomer() error = %v, want nil", err)
		}
		if got.Name != "Ada King" {
			t.Errorf("UpdateCustomer().Name = %q, want %q", got.Name, "Ada King")
		}
	})

	t.Run("returns not-found fault for unknown id", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		c := validCustomer()
		dir.EXPECT().Update(mock.Anything, int64(42), &c).Return(notFound(42))

		_, err := svc.UpdateCustomer(context.Background(), 42, &c)
		if !errors.Is(err, outcome.ErrNotFound) {
			t.Errorf("UpdateCustomer() error = %v, want ErrNotFound", err)
		}
	})
}

// --- DeleteCustomer ---

func TestCustomerService_DeleteCustomer(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing customer", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		dir.EXPECT().Remove(mock.Anything, int64(1)).Return(nil)

		if err := svc.DeleteCustomer(context.Background(), 1); err != nil {
			t.Fatalf("DeleteCustomer() error = %v, want nil", err)
		}
	})

	t.Run("propagates store fault", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		dir.EXPECT().Remove(mock.Anything, int64(42)).
			Return(outcome.NewFault(outcome.KindNotFound, "no directory entry"))

		err := svc.DeleteCustomer(context.Background(), 42)
		if !errors.Is(err, outcome.ErrNotFound) {
			t.Errorf("DeleteCustomer() error = %v, want ErrNotFound", err)
		}
	})
}

// --- CustomerExists ---

func TestCustomerService_CustomerExists(t *testing.T) {
	t.Parallel()

	t.Run("true for existing entry", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		c := validCustomer()
		dir.EXPECT().Lookup(mock.Anything, int64(1)).Return(outcome.Success(&c))

		if !svc.CustomerExists(context.Background(), 1) {
			t.Error("CustomerExists() = false, want true")
		}
	})

	t.Run("false on miss, regardless of fault detail", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		dir.EXPECT().Lookup(mock.Anything, int64(42)).Return(notFound(42))

		if svc.CustomerExists(context.Background(), 42) {
			t.Error("CustomerExists() = true, want false")
		}
	})
}

// --- Notify ---

func TestCustomerService_Notify(t *testing.T) {
	t.Parallel()

	t.Run("delivers to active customer", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		mailer := mocks.NewMockMailer(t)
		svc := NewCustomerService(dir, mailer, nil, 4, discardLogger())

		c := validCustomer()
		msg := validMessage()
		dir.EXPECT().Lookup(mock.Anything, int64(1)).Return(outcome.Success(&c))
		mailer.EXPECT().Deliver(mock.Anything, "ada@example.com", msg).Return(nil)

		report, err := svc.Notify(context.Background(), 1, msg)
		if err != nil {
			t.Fatalf("Notify() error = %v, want nil", err)
		}
		if !report.Delivered {
			t.Error("report.Delivered = false, want true")
		}
		if report.Suppressed {
			t.Error("report.Suppressed = true, want false")
		}
	})

	t.Run("suppresses on directory miss without error", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		mailer := mocks.NewMockMailer(t)
		svc := NewCustomerService(dir, mailer, nil, 4, discardLogger())

		dir.EXPECT().Lookup(mock.Anything, int64(42)).Return(notFound(42))
		// No Deliver expectation: the neutral contact must not send.

		report, err := svc.Notify(context.Background(), 42, validMessage())
		if err != nil {
			t.Fatalf("Notify() error = %v, want nil", err)
		}
		if report.Delivered {
			t.Error("report.Delivered = true, want false for missing customer")
		}
		if !report.Suppressed {
			t.Error("report.Suppressed = false, want true for missing customer")
		}
	})

	t.Run("suppresses for suspended customer", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		mailer := mocks.NewMockMailer(t)
		svc := NewCustomerService(dir, mailer, nil, 4, discardLogger())

		c := validCustomer()
		c.Status = customer.StatusSuspended
		dir.EXPECT().Lookup(mock.Anything, int64(1)).Return(outcome.Success(&c))

		report, err := svc.Notify(context.Background(), 1, validMessage())
		if err != nil {
			t.Fatalf("Notify() error = %v, want nil", err)
		}
		if !report.Suppressed {
			t.Error("report.Suppressed = false, want true for suspended customer")
		}
	})

	t.Run("rejects invalid message without lookup", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 4, discardLogger())

		_, err := svc.Notify(context.Background(), 1, customer.Message{})
		if !errors.Is(err, outcome.ErrInvalidArgument) {
			t.Errorf("Notify() error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("returns fault when gateway fails", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		mailer := mocks.NewMockMailer(t)
		svc := NewCustomerService(dir, mailer, nil, 4, discardLogger())

		c := validCustomer()
		msg := validMessage()
		dir.EXPECT().Lookup(mock.Anything, int64(1)).Return(outcome.Success(&c))
		mailer.EXPECT().Deliver(mock.Anything, "ada@example.com", msg).
			Return(outcome.NewFault(outcome.KindInvalidState, "gateway unavailable"))

		_, err := svc.Notify(context.Background(), 1, msg)
		if !errors.Is(err, outcome.ErrInvalidState) {
			t.Errorf("Notify() error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("journals a completed notification", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		mailer := mocks.NewMockMailer(t)
		svc := NewCustomerService(dir, mailer, nil, 4, discardLogger())

		c := validCustomer()
		msg := validMessage()
		dir.EXPECT().Lookup(mock.Anything, int64(1)).Return(outcome.Success(&c))
		mailer.EXPECT().Deliver(mock.Anything, "ada@example.com", msg).Return(nil)

		if _, err := svc.Notify(context.Background(), 1, msg); err != nil {
			t.Fatalf("Notify() error = %v, want nil", err)
		}

		recs := svc.RecentDeliveries(10)
		if len(recs) != 1 {
			t.Fatalf("RecentDeliveries() len = %d, want 1", len(recs))
		}
		if recs[0].CustomerID != 1 || recs[0].Subject != "Hello!" {
			t.Errorf("RecentDeliveries()[0] = %+v, want customer 1 / %q", recs[0], "Hello!")
		}
	})

	t.Run("rolls back the journal record when delivery fails", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		mailer := mocks.NewMockMailer(t)
		svc := NewCustomerService(dir, mailer, nil, 4, discardLogger())

		c := validCustomer()
		msg := validMessage()
		dir.EXPECT().Lookup(mock.Anything, int64(1)).Return(outcome.Success(&c))
		mailer.EXPECT().Deliver(mock.Anything, "ada@example.com", msg).
			Return(outcome.NewFault(outcome.KindInvalidState, "gateway unavailable"))

		if _, err := svc.Notify(context.Background(), 1, msg); err == nil {
			t.Fatal("Notify() error = nil, want delivery failure")
		}

		if recs := svc.RecentDeliveries(10); len(recs) != 0 {
			t.Errorf("RecentDeliveries() len = %d, want 0 after rollback", len(recs))
		}
	})

	t.Run("memoizes contact lookup within a request context", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		mailer := mocks.NewMockMailer(t)
		svc := NewCustomerService(dir, mailer, nil, 4, discardLogger())

		c := validCustomer()
		msg := validMessage()
		dir.EXPECT().Lookup(mock.Anything, int64(1)).Return(outcome.Success(&c)).Once()
		mailer.EXPECT().Deliver(mock.Anything, "ada@example.com", msg).Return(nil).Times(2)

		ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))

		for range 2 {
			if _, err := svc.Notify(ctx, 1, msg); err != nil {
				t.Fatalf("Notify() error = %v, want nil", err)
			}
		}
	})
}

// --- BulkNotify ---

func TestCustomerService_BulkNotify(t *testing.T) {
	t.Parallel()

	t.Run("partial success collects reports and errors", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		mailer := mocks.NewMockMailer(t)
		svc := NewCustomerService(dir, mailer, nil, 2, discardLogger())

		active := validCustomer()
		failing := validCustomer()
		failing.ID = 2
		failing.Email = "alan@example.com"
		msg := validMessage()

		dir.EXPECT().Lookup(mock.Anything, int64(1)).Return(outcome.Success(&active))
		dir.EXPECT().Lookup(mock.Anything, int64(2)).Return(outcome.Success(&failing))
		dir.EXPECT().Lookup(mock.Anything, int64(42)).Return(notFound(42))

		mailer.EXPECT().Deliver(mock.Anything, "ada@example.com", msg).Return(nil)
		mailer.EXPECT().Deliver(mock.Anything, "alan@example.com", msg).
			Return(outcome.NewFault(outcome.KindInvalidState, "gateway unavailable"))

		result, err := svc.BulkNotify(context.Background(), []int64{1, 2, 42}, msg)
		if err != nil {
			t.Fatalf("BulkNotify() error = %v, want nil", err)
		}

		if len(result.Reports) != 2 {
			t.Fatalf("len(Reports) = %d, want 2 (one delivered, one suppressed)", len(result.Reports))
		}
		if len(result.Errors) != 1 {
			t.Fatalf("len(Errors) = %d, want 1", len(result.Errors))
		}
		if result.Errors[0].CustomerID != 2 {
			t.Errorf("Errors[0].CustomerID = %d, want 2", result.Errors[0].CustomerID)
		}
		if !errors.Is(result.Errors[0].Err, outcome.ErrInvalidState) {
			t.Errorf("Errors[0].Err = %v, want ErrInvalidState", result.Errors[0].Err)
		}

		var delivered, suppressed int
		for _, r := range result.Reports {
			if r.Delivered {
				delivered++
			}
			if r.Suppressed {
				suppressed++
			}
		}
		if delivered != 1 || suppressed != 1 {
			t.Errorf("delivered = %d, suppressed = %d, want 1 and 1", delivered, suppressed)
		}
	})

	t.Run("rejects invalid message before any delivery", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 2, discardLogger())

		_, err := svc.BulkNotify(context.Background(), []int64{1, 2}, customer.Message{})
		if !errors.Is(err, outcome.ErrInvalidArgument) {
			t.Errorf("BulkNotify() error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("empty id list yields empty result", func(t *testing.T) {
		t.Parallel()
		dir := mocks.NewMockCustomerDirectory(t)
		svc := NewCustomerService(dir, mocks.NewMockMailer(t), nil, 2, discardLogger())

		result, err := svc.BulkNotify(context.Background(), nil, validMessage())
		if err != nil {
			t.Fatalf("BulkNotify() error = %v, want nil", err)
		}
		if len(result.Reports) != 0 || len(result.Errors) != 0 {
			t.Errorf("result = %+v, want empty", result)
		}
	})
}
