// pkg/contract/contract.go

// Package contract provides structured, understandable runtime contracts.
//
// Each check evaluates a caller-supplied predicate exactly once and returns
// a typed Error on failure instead of panicking, so contract violations are
// part of the function signature and propagate like any other error.
package contract

import "fmt"

// prefix is prepended to every failure message so downstream logs are
// self-describing.
const prefix = "contract validation failed: "

// Requires checks an arbitrary condition expressed by the given predicate.
// It is most useful for validating arguments at the start of a function.
// Call it once per argument so each failure message is specific to the
// violated condition:
//
//	func AddTwo(i, j int) (int, error) {
//		if err := contract.Requires(func() bool { return i > 0 }, "i must be greater than 0"); err != nil {
//			return 0, err
//		}
//		if err := contract.Requires(func() bool { return j > 0 }, "j must be greater than 0"); err != nil {
//			return 0, err
//		}
//		return i + j, nil
//	}
//
// The message may be any value; it is rendered with fmt.Sprint only when the
// predicate evaluates false, so the success path allocates nothing.
func Requires(pred func() bool, message any) error {
	if pred() {
		return nil
	}
	return Error{Kind: KindRequires, Message: prefix + render(message)}
}

// Requiresf is Requires with a format string; the arguments are formatted
// only on the failure path.
func Requiresf(pred func() bool, format string, args ...any) error {
	if pred() {
		return nil
	}
	return Error{Kind: KindRequires, Message: prefix + fmt.Sprintf(format, args...)}
}

// Ensures checks a condition expressed by a predicate run against the given
// value, yielding the value when the predicate evaluates true. It is most
// useful for checking return values at the end of a function, wrapping the
// return expression:
//
//	func AddTwo(i, j int) (int, error) {
//		return contract.Ensures(i+j, func(sum int) bool { return sum > 0 }, "the sum of i and j must be greater than 0")
//	}
//
// On failure the zero value of T is returned alongside the error; the
// computed value violated its own postcondition and is discarded.
func Ensures[T any](value T, pred func(T) bool, message any) (T, error) {
	if pred(value) {
		return value, nil
	}
	var zero T
	return zero, Error{Kind: KindEnsures, Message: prefix + render(message)}
}

// Ensuresf is Ensures with a format string; the arguments are formatted only
// on the failure path.
func Ensuresf[T any](value T, pred func(T) bool, format string, args ...any) (T, error) {
	if pred(value) {
		return value, nil
	}
	var zero T
	return zero, Error{Kind: KindEnsures, Message: prefix + fmt.Sprintf(format, args...)}
}

// Check asserts an invariant at an arbitrary point in control flow. It has
// the same shape as Requires but reports KindCheck, so callers can tell
// "argument was bad" apart from "internal invariant broke mid-computation";
// the latter usually indicates a bug, and callers may choose to treat it as
// fatal rather than recoverable.
func Check(pred func() bool, message any) error {
	if pred() {
		return nil
	}
	return Error{Kind: KindCheck, Message: prefix + render(message)}
}

// Checkf is Check with a format string; the arguments are formatted only on
// the failure path.
func Checkf(pred func() bool, format string, args ...any) error {
	if pred() {
		return nil
	}
	return Error{Kind: KindCheck, Message: prefix + fmt.Sprintf(format, args...)}
}

// render stringifies a message value at the failure site.
func render(message any) string {
	if s, ok := message.(string); ok {
		return s
	}
	return fmt.Sprint(message)
}
