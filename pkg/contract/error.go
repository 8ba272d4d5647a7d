// pkg/contract/error.go

package contract

// Kind classifies a contract failure. The set is closed: a failure is either
// a broken precondition, a broken postcondition, or a broken invariant.
type Kind int

const (
	// KindRequires marks a precondition failure: an input did not satisfy
	// the condition the function requires of its arguments.
	KindRequires Kind = iota

	// KindEnsures marks a postcondition failure: a produced value did not
	// satisfy the condition the function guarantees about its output.
	KindEnsures

	// KindCheck marks an invariant failure: a condition expected to hold
	// mid-computation evaluated false. This usually indicates a bug rather
	// than bad input.
	KindCheck
)

// String returns the label used when rendering failures of this kind.
func (k Kind) String() string {
	switch k {
	case KindRequires:
		return "requires validation failed"
	case KindEnsures:
		return "ensures validation failed"
	case KindCheck:
		return "check validation failed"
	default:
		return "unknown validation failed"
	}
}

// Error describes a single contract failure at runtime. It carries the
// failure classification and one human-readable message, nothing else.
//
// Error is a comparable value type: two failures are equal exactly when they
// have the same Kind and the same message, so errors.Is works through plain
// comparison.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// KindOf returns the classification of err and true if err is a contract
// failure, or zero and false otherwise.
func KindOf(err error) (Kind, bool) {
	cerr, ok := err.(Error)
	if !ok {
		return 0, false
	}
	return cerr.Kind, true
}

// IsKind reports whether err is a contract failure of kind k.
func IsKind(err error, k Kind) bool {
	kind, ok := KindOf(err)
	return ok && kind == k
}
