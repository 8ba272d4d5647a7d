// pkg/contract/predicates.go

package contract

import "golang.org/x/exp/constraints"

// Number is a type constraint covering the built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Positive returns a predicate reporting whether its argument is greater
// than zero.
func Positive[T Number]() func(T) bool {
	return func(v T) bool { return v > 0 }
}

// NonNegative returns a predicate reporting whether its argument is zero or
// greater.
func NonNegative[T Number]() func(T) bool {
	return func(v T) bool { return v >= 0 }
}

// GreaterThan returns a predicate reporting whether its argument is strictly
// greater than bound.
func GreaterThan[T constraints.Ordered](bound T) func(T) bool {
	return func(v T) bool { return v > bound }
}

// InRange returns a predicate reporting whether its argument lies in the
// inclusive interval [lo, hi].
func InRange[T constraints.Ordered](lo, hi T) func(T) bool {
	return func(v T) bool { return v >= lo && v <= hi }
}

// NotZero returns a predicate reporting whether its argument differs from
// the zero value of its type.
func NotZero[T comparable]() func(T) bool {
	var zero T
	return func(v T) bool { return v != zero }
}

// NotEmpty returns a predicate reporting whether a slice has at least one
// element.
func NotEmpty[S ~[]E, E any]() func(S) bool {
	return func(s S) bool { return len(s) > 0 }
}
