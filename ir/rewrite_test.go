package ir_test

import (
	"errors"
	"testing"

	"github.com/arbor-lang/arbor/ir"
	"github.com/arbor-lang/arbor/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestRewriteDefinition(t *testing.T) {
	def := ir.NewDefinition(
		[]ir.Parameter[string, string]{
			{Name: "a", Attr: "p1", Type: intType("t1")},
		},
		intType("out"),
		vvar("pos", "a"),
	)
	rewritten, err := ir.RewriteDefinition(
		func(typ types.Type[string]) (types.Type[string], error) {
			return types.Map(func(string) string { return "rewritten" }, typ), nil
		},
		func(v ir.Value[string, string]) (ir.Value[string, string], error) {
			return ir.MapValueAttributes(id, func(string) string { return "rewritten" }, v), nil
		},
		def,
	)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", rewritten.Parameters[0].Type.Attribute())
	assert.Equal(t, "rewritten", rewritten.Output.Attribute())
	assert.Equal(t, "rewritten", rewritten.Body.Attribute())
	assert.Equal(t, "p1", rewritten.Parameters[0].Attr)
}

func TestRewriteDefinitionCollectsAllErrors(t *testing.T) {
	def := ir.NewDefinition(
		[]ir.Parameter[string, string]{
			{Name: "a", Attr: "p1", Type: intType("t1")},
			{Name: "b", Attr: "p2", Type: intType("t2")},
		},
		intType("out"),
		vvar("pos", "a"),
	)
	typeErr := errors.New("no such type")
	valueErr := errors.New("unresolved variable")
	rewritten, err := ir.RewriteDefinition(
		func(types.Type[string]) (types.Type[string], error) { return nil, typeErr },
		func(ir.Value[string, string]) (ir.Value[string, string], error) { return nil, valueErr },
		def,
	)
	require.Error(t, err)
	assert.Nil(t, rewritten)

	// Both parameters, the output type, and the body are all reported.
	errs := multierr.Errors(err)
	require.Len(t, errs, 4)
	for _, e := range errs[:3] {
		assert.ErrorIs(t, e, typeErr)
	}
	assert.ErrorIs(t, errs[3], valueErr)
}

func TestRewriteDefinitionPartialFailure(t *testing.T) {
	def := ir.NewDefinition(
		[]ir.Parameter[string, string]{
			{Name: "ok", Attr: "p1", Type: intType("t1")},
			{Name: "bad", Attr: "p2", Type: types.NewVariable[string]("t2", "bad")},
		},
		intType("out"),
		vvar("pos", "a"),
	)
	failOnVariable := func(typ types.Type[string]) (types.Type[string], error) {
		if _, ok := typ.(*types.Variable[string]); ok {
			return nil, errors.New("type variables not allowed here")
		}
		return typ, nil
	}
	keepValue := func(v ir.Value[string, string]) (ir.Value[string, string], error) {
		return v, nil
	}
	rewritten, err := ir.RewriteDefinition(failOnVariable, keepValue, def)
	require.Error(t, err)
	assert.Nil(t, rewritten)
	require.Len(t, multierr.Errors(err), 1)
	assert.Contains(t, err.Error(), `parameter "bad"`)
}
