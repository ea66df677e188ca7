package customer

import (
	"context"
	"testing"
)

func TestGhost_SendEmailIsRecordedNoop(t *testing.T) {
	t.Parallel()

	courier := &recordingCourier{}
	ghost := NewGhost(42)

	err := ghost.SendEmail(context.Background(), courier, Message{Subject: "Hello!", Body: "Hi"})
	if err != nil {
		t.Fatalf("Ghost.SendEmail() = %v, want nil", err)
	}

	// Nothing was delivered, but the invocation is observable.
	if len(courier.sent) != 0 {
		t.Errorf("courier.sent = %v, want no deliveries from neutral variant", courier.sent)
	}
	if got := ghost.Calls(); len(got) != 1 || got[0] != "SendEmail" {
		t.Errorf("ghost.Calls() = %v, want [SendEmail]", got)
	}
}

func TestGhost_ContactIdentity(t *testing.T) {
	t.Parallel()

	ghost := NewGhost(42)
	if ghost.ContactID() != 42 {
		t.Errorf("ContactID() = %d, want 42", ghost.ContactID())
	}
	if ghost.DisplayName() != "" {
		t.Errorf("DisplayName() = %q, want empty", ghost.DisplayName())
	}
}
