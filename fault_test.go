package outcome

import (
	"errors"
	"testing"
)

func TestFault_WrapPreservesOriginal(t *testing.T) {
	t.Parallel()

	original := NewFault(KindNotFound, "customer 42 absent")

	wrapped := original.Wrap(KindInvalidState, "preparing notification")

	// The original node must be unchanged after being used as a cause.
	if got := original.Kind(); got != KindNotFound {
		t.Errorf("original.Kind() = %q after Wrap, want %q", got, KindNotFound)
	}
	if got := original.Message(); got != "customer 42 absent" {
		t.Errorf("original.Message() = %q after Wrap, want unchanged", got)
	}
	if original.Cause() != nil {
		t.Error("original.Cause() != nil after Wrap, want nil")
	}

	if wrapped.Kind() != KindInvalidState {
		t.Errorf("wrapped.Kind() = %q, want %q", wrapped.Kind(), KindInvalidState)
	}
	if wrapped.Cause() != original {
		t.Error("wrapped.Cause() does not reference the original fault")
	}
}

func TestFault_ChainTerminates(t *testing.T) {
	t.Parallel()

	root := NewFault(KindDataCorrupt, "unexpected EOF")
	mid := root.Wrap(KindInvalidState, "decoding snapshot")
	top := mid.Wrap(KindInvalidState, "loading directory")

	chain := top.Chain()
	if len(chain) != 3 {
		t.Fatalf("len(Chain()) = %d, want 3", len(chain))
	}
	if chain[0] != top || chain[1] != mid || chain[2] != root {
		t.Error("Chain() order is not outermost-first")
	}
	if top.Root() != root {
		t.Errorf("Root() = %v, want the innermost fault", top.Root())
	}
}

func TestFault_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fault *Fault
		want  string
	}{
		{
			name:  "root fault",
			fault: NewFault(KindInvalidArgument, "id is required"),
			want:  "invalid_argument: id is required",
		},
		{
			name: "wrapped fault renders full chain",
			fault: NewFault(KindDataCorrupt, "unexpected EOF").
				Wrap(KindInvalidState, "loading directory"),
			want: "invalid_state: loading directory: data_corrupt: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.fault.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFault_ErrorsIsMatchesWholeChain(t *testing.T) {
	t.Parallel()

	f := NewFault(KindNotFound, "customer 42 absent").
		Wrap(KindInvalidState, "preparing notification")

	if !errors.Is(f, ErrInvalidState) {
		t.Error("errors.Is(f, ErrInvalidState) = false, want true for outermost kind")
	}
	if !errors.Is(f, ErrNotFound) {
		t.Error("errors.Is(f, ErrNotFound) = false, want true for cause kind")
	}
	if errors.Is(f, ErrDataCorrupt) {
		t.Error("errors.Is(f, ErrDataCorrupt) = true, want false")
	}
}

func TestFaultOf(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		if got := FaultOf(nil, KindInvalidState); got != nil {
			t.Errorf("FaultOf(nil) = %v, want nil", got)
		}
	})

	t.Run("existing fault passes through with chain intact", func(t *testing.T) {
		t.Parallel()
		f := NewFault(KindNotFound, "absent").Wrap(KindInvalidState, "wrapped")
		got := FaultOf(f, KindDataCorrupt)
		if got != f {
			t.Errorf("FaultOf(fault) = %v, want the same fault", got)
		}
	})

	t.Run("plain error becomes root fault of fallback kind", func(t *testing.T) {
		t.Parallel()
		got := FaultOf(errors.New("disk full"), KindDataCorrupt)
		if got.Kind() != KindDataCorrupt {
			t.Errorf("Kind() = %q, want %q", got.Kind(), KindDataCorrupt)
		}
		if got.Message() != "disk full" {
			t.Errorf("Message() = %q, want %q", got.Message(), "disk full")
		}
		if got.Cause() != nil {
			t.Error("Cause() != nil, want root fault")
		}
	})
}
