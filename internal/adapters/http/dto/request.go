package dto

import (
	"fmt"
	"strings"

	"github.com/asfuyao/outcome/internal/domain"
	"github.com/asfuyao/outcome/internal/domain/customer"
)

// CreateCustomerRequest represents the JSON body for creating a new customer.
type CreateCustomerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateCustomerRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = domain.MsgRequired
	}
	if r.Status != "" && !customer.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToCustomer converts the request to a domain entity. An omitted status
// defaults to active.
func (r *CreateCustomerRequest) ToCustomer() *customer.Customer {
	status := customer.Status(r.Status)
	if r.Status == "" {
		status = customer.StatusActive
	}
	return &customer.Customer{
		Name:   r.Name,
		Email:  r.Email,
		Status: status,
	}
}

// UpdateCustomerRequest represents the JSON body for updating an existing
// customer. All fields are optional; nil means "do not change this field.".
type UpdateCustomerRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Status *string `json:"status,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateCustomerRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = domain.MsgMustNotEmpty
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		fields["email"] = domain.MsgMustNotEmpty
	}
	if r.Status != nil && !customer.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ApplyTo overlays the provided fields onto an existing entity.
func (r *UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Status != nil {
		c.Status = customer.Status(*r.Status)
	}
}

// NotifyRequest represents the JSON body for sending a message to a single
// customer.
type NotifyRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate checks that the message has a subject and a body.
func (r *NotifyRequest) Validate() error {
	return r.ToMessage().Validate()
}

// ToMessage converts the request to the domain message value object.
func (r *NotifyRequest) ToMessage() customer.Message {
	return customer.Message{Subject: r.Subject, Body: r.Body}
}

// BulkNotifyRequest represents the JSON body for sending one message to
// multiple customers.
type BulkNotifyRequest struct {
	CustomerIDs []int64 `json:"customer_ids"`
	Subject     string  `json:"subject"`
	Body        string  `json:"body"`
}

// Validate checks that at least one recipient is given and the message is
// well formed.
func (r *BulkNotifyRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.CustomerIDs) == 0 {
		fields["customer_ids"] = domain.MsgMustNotEmpty
	}
	if strings.TrimSpace(r.Subject) == "" {
		fields["subject"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Body) == "" {
		fields["body"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToMessage converts the request to the domain message value object.
func (r *BulkNotifyRequest) ToMessage() customer.Message {
	return customer.Message{Subject: r.Subject, Body: r.Body}
}
