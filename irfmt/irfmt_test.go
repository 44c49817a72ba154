package irfmt_test

import (
	"testing"

	"github.com/arbor-lang/arbor/constant"
	"github.com/arbor-lang/arbor/ir"
	"github.com/arbor-lang/arbor/irfmt"
	"github.com/arbor-lang/arbor/name"
	"github.com/arbor-lang/arbor/types"
	"github.com/stretchr/testify/assert"
)

type none = struct{}

func vint(i int64) ir.Value[none, none] {
	return ir.NewLiteral[none, none](none{}, constant.Int(i))
}

func vvar(n name.Name) ir.Value[none, none] {
	return ir.NewVariable[none, none](none{}, n)
}

func pname(n name.Name) ir.Pattern[none] {
	return ir.NewNamedPattern(none{}, n)
}

func pwild() ir.Pattern[none] {
	return ir.NewWildcardPattern(none{})
}

func local(n name.Name) name.FQName {
	return name.NewFQName(nil, nil, n)
}

func tref(n name.Name, params ...types.Type[none]) types.Type[none] {
	return types.NewReference(none{}, local(n), params...)
}

func format(v ir.Value[none, none]) string {
	return irfmt.Value(v)
}

func TestValueInline(t *testing.T) {
	f, a, b := vvar("f"), vvar("a"), vvar("b")
	cases := []struct {
		value ir.Value[none, none]
		want  string
	}{
		{vint(42), "42"},
		{vvar("x"), "x"},
		{ir.NewUnit[none, none](none{}), "()"},
		{ir.NewConstructor[none, none](none{}, local("Just")), "Just"},
		{ir.NewReference[none, none](none{}, name.NewFQName(name.Dotted("acme.sdk"), name.Dotted("list"), "map")), "acme.sdk:list:map"},
		{ir.NewTuple(none{}, vint(1), vvar("x")), "(1, x)"},
		{ir.NewList(none{}, vint(1), vint(2)), "[1, 2]"},
		{ir.NewRecord(none{},
			ir.RecordField[none, none]{Name: "a", Value: vint(1)},
			ir.RecordField[none, none]{Name: "b", Value: vvar("x")},
		), "{a = 1, b = x}"},
		{ir.NewField(none{}, vvar("r"), "age"), "r.age"},
		{ir.NewFieldFunction[none, none](none{}, "age"), ".age"},
		{ir.NewApply[none, none](none{}, ir.NewApply(none{}, f, a), b), "f a b"},
		{ir.NewApply[none, none](none{}, f, ir.NewApply(none{}, a, b)), "f (a b)"},
		{ir.NewLambda(none{}, pname("p"), vvar("p")), `\p -> p`},
		{ir.NewUpdateRecord(none{}, vvar("r"),
			ir.RecordField[none, none]{Name: "a", Value: vint(1)},
		), "{ r | a = 1 }"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, format(c.value))
	}
}

func TestValueIfThenElse(t *testing.T) {
	v := ir.NewIfThenElse[none, none](none{}, vvar("c"), vint(1), vint(2))
	assert.Equal(t, "if c then\n  1\nelse\n  2", format(v))
}

func TestValueLet(t *testing.T) {
	def := ir.NewDefinition[none, none](nil, tref("Int"), vint(1))
	v := ir.NewLetDefinition(none{}, "x", def, vvar("x"))
	assert.Equal(t, "let\n  x : Int = 1\nin\n  x", format(v))
}

func TestValueLetRecursion(t *testing.T) {
	v := ir.NewLetRecursion(none{}, map[name.Name]*ir.Definition[none, none]{
		"odd":  ir.NewDefinition[none, none](nil, tref("Int"), vvar("even")),
		"even": ir.NewDefinition[none, none](nil, tref("Int"), vvar("odd")),
	}, vvar("even"))
	// Bindings render sorted by name for deterministic output.
	assert.Equal(t, "let\n  even : Int = odd\n  odd : Int = even\nin\n  even", format(v))
}

func TestValueDestructure(t *testing.T) {
	v := ir.NewDestructure[none, none](none{},
		ir.NewTuplePattern(none{}, pname("a"), pname("b")),
		vvar("p"),
		vvar("a"),
	)
	assert.Equal(t, "let (a, b) = p\nin\n  a", format(v))
}

func TestValuePatternMatch(t *testing.T) {
	v := ir.NewPatternMatch(none{}, vvar("n"),
		ir.MatchCase[none, none]{
			Pattern: ir.NewLiteralPattern(none{}, constant.Int(0)),
			Body:    vint(1),
		},
		ir.MatchCase[none, none]{
			Pattern: pwild(),
			Body:    vint(2),
		},
	)
	assert.Equal(t, "case n of\n  0 -> 1\n  _ -> 2", format(v))
}

func TestPattern(t *testing.T) {
	cases := []struct {
		pattern ir.Pattern[none]
		want    string
	}{
		{pwild(), "_"},
		{pname("x"), "x"},
		{ir.NewUnitPattern(none{}), "()"},
		{ir.NewEmptyListPattern(none{}), "[]"},
		{ir.NewLiteralPattern(none{}, constant.Bool(true)), "True"},
		{ir.NewTuplePattern(none{}, pname("a"), pwild()), "(a, _)"},
		{ir.NewHeadTailPattern(none{}, pname("h"), pname("t")), "h :: t"},
		{ir.NewConstructorPattern[none](none{}, local("Just"),
			ir.NewHeadTailPattern(none{}, pname("h"), pwild()),
		), "Just (h :: _)"},
		{ir.NewAsPattern[none](none{}, ir.NewTuplePattern(none{}, pname("a"), pname("b")), "pair"), "(a, b) as pair"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, irfmt.Pattern(c.pattern))
	}
}

func TestType(t *testing.T) {
	intType := tref("Int")
	cases := []struct {
		typ  types.Type[none]
		want string
	}{
		{types.NewVariable[none](none{}, "a"), "a"},
		{types.NewUnit[none](none{}), "()"},
		{tref("List", types.NewVariable[none](none{}, "a")), "List a"},
		{types.NewTuple(none{}, intType, tref("Bool")), "(Int, Bool)"},
		{types.NewRecord(none{},
			types.Field[none]{Name: "x", Type: intType},
		), "{ x : Int }"},
		{types.NewExtensibleRecord(none{}, "r",
			types.Field[none]{Name: "x", Type: intType},
		), "{ r | x : Int }"},
		{types.NewFunction[none](none{}, intType, tref("Bool")), "Int -> Bool"},
		{types.NewFunction[none](none{},
			types.NewFunction[none](none{}, intType, intType),
			intType,
		), "(Int -> Int) -> Int"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, irfmt.Type(c.typ))
	}
}

func TestDefinitionAndSpecification(t *testing.T) {
	def := ir.NewDefinition(
		[]ir.Parameter[none, none]{{Name: "a", Type: tref("Int")}},
		tref("Int"),
		vvar("a"),
	)
	assert.Equal(t, "inc (a : Int) : Int = a", irfmt.Definition("inc", def))
	assert.Equal(t, "inc : (a : Int) -> Int", irfmt.Specification("inc", ir.DefinitionToSpecification(def)))
}
