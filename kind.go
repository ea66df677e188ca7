package outcome

import "errors"

// Kind classifies a failure. The set is closed: new failure categories are
// added as new kinds, never by overloading an existing one, and no numeric
// codes appear in any public contract.
type Kind string

const (
	// KindInvalidArgument reports input that fails validation.
	KindInvalidArgument Kind = "invalid_argument"

	// KindDataCorrupt reports stored or received data that cannot be decoded.
	KindDataCorrupt Kind = "data_corrupt"

	// KindNotFound reports a lookup that matched no entity.
	KindNotFound Kind = "not_found"

	// KindInvalidState reports an operation invoked on a value that cannot
	// support it, such as reading the value of a failed Outcome.
	KindInvalidState Kind = "invalid_state"
)

// Sentinel errors for errors.Is() checking. Every Fault unwraps to the
// sentinel matching its kind, so callers can branch with errors.Is without
// inspecting the Fault type.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDataCorrupt     = errors.New("data corrupt")
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
)

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindInvalidArgument, KindDataCorrupt, KindNotFound, KindInvalidState:
		return true
	default:
		return false
	}
}

// String returns the kind's string value.
func (k Kind) String() string {
	return string(k)
}

// sentinel returns the package sentinel error for the kind.
// Unknown kinds map to ErrInvalidState.
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindDataCorrupt:
		return ErrDataCorrupt
	case KindNotFound:
		return ErrNotFound
	default:
		return ErrInvalidState
	}
}
