// pkg/chain/chain.go

// Package chain sequences computations through runtime contract checks,
// short-circuiting on the first failure so call sites read as a single
// pipeline instead of a ladder of early returns.
package chain

import (
	"github.com/runtimecontracts/contract/pkg/contract"
)

// Chain threads a value of type T through contract checks and
// transformations. Once a check fails, every later step is skipped and Run
// reports the first failure.
type Chain[T any] struct {
	value T
	err   error
}

// Return wraps a value into a Chain.
func Return[T any](value T) Chain[T] {
	return Chain[T]{value: value}
}

// Fail returns a Chain already carrying err. Useful when a prior computation
// failed before the pipeline started.
func Fail[T any](err error) Chain[T] {
	return Chain[T]{err: err}
}

// Requires evaluates a precondition before later steps proceed.
func (c Chain[T]) Requires(pred func() bool, message any) Chain[T] {
	if c.err != nil {
		return c
	}
	if err := contract.Requires(pred, message); err != nil {
		c.err = err
	}
	return c
}

// Check asserts an invariant between steps.
func (c Chain[T]) Check(pred func() bool, message any) Chain[T] {
	if c.err != nil {
		return c
	}
	if err := contract.Check(pred, message); err != nil {
		c.err = err
	}
	return c
}

// Ensures validates the current value as a postcondition. On failure the
// value is dropped and the chain carries the contract error.
func (c Chain[T]) Ensures(pred func(T) bool, message any) Chain[T] {
	if c.err != nil {
		return c
	}
	value, err := contract.Ensures(c.value, pred, message)
	if err != nil {
		var zero T
		return Chain[T]{value: zero, err: err}
	}
	c.value = value
	return c
}

// Bind chains the current value through f, adopting whatever value and error
// f's chain carries.
func (c Chain[T]) Bind(f func(T) Chain[T]) Chain[T] {
	if c.err != nil {
		return c
	}
	return f(c.value)
}

// Then is similar to Bind but for plain transformations that cannot fail.
func (c Chain[T]) Then(f func(T) T) Chain[T] {
	if c.err != nil {
		return c
	}
	c.value = f(c.value)
	return c
}

// Run terminates the pipeline, returning the final value or the first
// contract failure. On failure the value is the zero value of T.
func (c Chain[T]) Run() (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return c.value, nil
}
