package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/asfuyao/outcome/internal/adapters/http/dto"
	"github.com/asfuyao/outcome/internal/domain/customer"
	"github.com/asfuyao/outcome/internal/ports"
)

func TestToCustomerResponse(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	updated := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	c := customer.Customer{
		ID:        42,
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Status:    customer.StatusActive,
		CreatedAt: created,
		UpdatedAt: updated,
	}

	got := dto.ToCustomerResponse(&c)

	if got.ID != 42 {
		t.Errorf("ID = %d, want 42", got.ID)
	}
	if got.Status != "active" {
		t.Errorf("Status = %q, want %q", got.Status, "active")
	}
	if got.CreatedAt != "2026-01-15T10:30:00Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", got.CreatedAt)
	}
	if got.UpdatedAt != "2026-02-01T08:00:00Z" {
		t.Errorf("UpdatedAt = %q, want RFC3339", got.UpdatedAt)
	}
}

func TestToCustomerListResponse(t *testing.T) {
	t.Parallel()

	t.Run("empty slice yields empty list", func(t *testing.T) {
		t.Parallel()
		got := dto.ToCustomerListResponse(nil)

		if got.Count != 0 {
			t.Errorf("Count = %d, want 0", got.Count)
		}
		if got.Customers == nil {
			t.Error("Customers = nil, want empty slice")
		}
	})

	t.Run("count matches entries", func(t *testing.T) {
		t.Parallel()
		customers := []customer.Customer{
			{ID: 1, Name: "Ada Lovelace", Status: customer.StatusActive},
			{ID: 2, Name: "Grace Hopper", Status: customer.StatusSuspended},
		}
		got := dto.ToCustomerListResponse(customers)

		if got.Count != 2 {
			t.Errorf("Count = %d, want 2", got.Count)
		}
		if got.Customers[1].Status != "suspended" {
			t.Errorf("Customers[1].Status = %q, want %q", got.Customers[1].Status, "suspended")
		}
	})
}

func TestToBulkNotifyResponse(t *testing.T) {
	t.Parallel()

	result := &ports.BulkNotifyResult{
		Reports: []ports.DeliveryReport{
			{CustomerID: 1, Delivered: true},
			{CustomerID: 2, Suppressed: true},
		},
		Errors: []ports.BulkNotifyError{
			{CustomerID: 3, Err: errors.New("mail gateway unavailable")},
		},
	}

	got := dto.ToBulkNotifyResponse(result)

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if got.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", got.Succeeded)
	}
	if got.Failed != 1 {
		t.Errorf("Failed = %d, want 1", got.Failed)
	}
	if !got.Reports[0].Delivered || got.Reports[0].Suppressed {
		t.Errorf("Reports[0] = %+v, want delivered", got.Reports[0])
	}
	if got.Reports[1].Delivered || !got.Reports[1].Suppressed {
		t.Errorf("Reports[1] = %+v, want suppressed", got.Reports[1])
	}
	if got.Errors[0].CustomerID != 3 || got.Errors[0].Message != "mail gateway unavailable" {
		t.Errorf("Errors[0] = %+v", got.Errors[0])
	}
}
