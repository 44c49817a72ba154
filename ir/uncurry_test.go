package ir_test

import (
	"testing"

	"github.com/arbor-lang/arbor/ir"
	"github.com/arbor-lang/arbor/name"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUncurryApply(t *testing.T) {
	f := vvar("pos", "f")
	a := vvar("pos", "a")
	b := vvar("pos", "b")
	c := vvar("pos", "c")

	// Apply(Apply(Apply(f, a), b), c) is the curried call f a b c.
	inner := ir.NewApply[string, string]("p1", ir.NewApply("p0", f, a), b)
	fn, args := ir.UncurryApply[string, string](inner, c)
	require.Equal(t, f, fn)
	require.Equal(t, []ir.Value[string, string]{a, b, c}, args)

	fn, args = ir.UncurryApply(f, a)
	require.Equal(t, f, fn)
	require.Equal(t, []ir.Value[string, string]{a}, args)
}

func TestUncurryApplyStopsAtNonApply(t *testing.T) {
	// A lambda in function position terminates the walk.
	lambda := vlambda("pos", "x", vvar("pos", "x"))
	arg := vint("pos", 1)
	fn, args := ir.UncurryApply(lambda, arg)
	require.Equal(t, lambda, fn)
	assert.Equal(t, []ir.Value[string, string]{arg}, args)
}

func TestUncurryApplyDeepChain(t *testing.T) {
	// Deep chains are flattened iteratively, not by recursion.
	f := vvar("pos", "f")
	fn := f
	want := make([]ir.Value[string, string], 0, 10000)
	for i := 0; i < 9999; i++ {
		arg := vint("pos", int64(i))
		fn = ir.NewApply("pos", fn, arg)
		want = append(want, arg)
	}
	last := vint("pos", 9999)
	want = append(want, last)
	base, args := ir.UncurryApply(fn, last)
	require.Equal(t, f, base)
	require.Equal(t, want, args)
}

func vlambda(attr string, param name.Name, body ir.Value[string, string]) ir.Value[string, string] {
	return ir.NewLambda(attr, pname(attr, param), body)
}
