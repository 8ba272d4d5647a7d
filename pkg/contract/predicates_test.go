// pkg/contract/predicates_test.go

package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositive(t *testing.T) {
	pred := Positive[int]()
	assert.True(t, pred(1))
	assert.False(t, pred(0))
	assert.False(t, pred(-1))

	fpred := Positive[float64]()
	assert.True(t, fpred(0.5))
	assert.False(t, fpred(-0.5))
}

func TestNonNegative(t *testing.T) {
	pred := NonNegative[int]()
	assert.True(t, pred(0))
	assert.True(t, pred(3))
	assert.False(t, pred(-3))
}

func TestGreaterThan(t *testing.T) {
	pred := GreaterThan(10)
	assert.True(t, pred(11))
	assert.False(t, pred(10))

	spred := GreaterThan("m")
	assert.True(t, spred("n"))
	assert.False(t, spred("a"))
}

func TestInRange(t *testing.T) {
	pred := InRange(1, 5)
	assert.True(t, pred(1))
	assert.True(t, pred(3))
	assert.True(t, pred(5))
	assert.False(t, pred(0))
	assert.False(t, pred(6))
}

func TestNotZero(t *testing.T) {
	pred := NotZero[string]()
	assert.True(t, pred("x"))
	assert.False(t, pred(""))
}

func TestNotEmpty(t *testing.T) {
	pred := NotEmpty[[]int]()
	assert.True(t, pred([]int{1}))
	assert.False(t, pred(nil))
	assert.False(t, pred([]int{}))
}

func TestPredicatesComposeWithEnsures(t *testing.T) {
	sum, err := Ensures(5+6, Positive[int](), "sum must be positive")
	require.NoError(t, err)
	assert.Equal(t, 11, sum)

	_, err = Ensures(5-5, Positive[int](), "sum must be positive")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindEnsures))
}
