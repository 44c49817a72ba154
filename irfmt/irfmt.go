// Package irfmt renders IR trees in a canonical, human-readable surface
// syntax.  The output is for debugging, goldens, and error messages; it is
// not a parseable interchange format.
package irfmt

import (
	"fmt"

	"github.com/arbor-lang/arbor/ir"
	"github.com/arbor-lang/arbor/name"
	"github.com/arbor-lang/arbor/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Value renders an expression tree.
func Value[T, A any](v ir.Value[T, A]) string {
	c := &canon[T, A]{formatter{tab: 2}}
	c.value(v, false)
	c.flush()
	return c.String()
}

// Pattern renders a pattern tree.
func Pattern[A any](p ir.Pattern[A]) string {
	c := &canon[struct{}, A]{formatter{tab: 2}}
	c.pattern(p, false)
	c.flush()
	return c.String()
}

// Type renders a type expression.
func Type[T any](t types.Type[T]) string {
	c := &canon[T, struct{}]{formatter{tab: 2}}
	c.typ(t, false)
	c.flush()
	return c.String()
}

// Definition renders a named definition with its parameter and output
// types and its body.
func Definition[T, A any](n name.Name, d *ir.Definition[T, A]) string {
	c := &canon[T, A]{formatter{tab: 2}}
	c.definition(n, d)
	c.flush()
	return c.String()
}

// Specification renders a named signature.
func Specification[T any](n name.Name, s *ir.Specification[T]) string {
	c := &canon[T, struct{}]{formatter{tab: 2}}
	c.write("%s : ", n)
	for _, in := range s.Inputs {
		c.write("(%s : ", in.Name)
		c.typ(in.Type, false)
		c.write(") -> ")
	}
	c.typ(s.Output, false)
	c.flush()
	return c.String()
}

type canon[T, A any] struct {
	formatter
}

func (c *canon[T, A]) value(v ir.Value[T, A], paren bool) {
	switch v := v.(type) {
	case *ir.Literal[T, A]:
		c.write(v.Value.String())
	case *ir.Constructor[T, A]:
		c.write(v.Name.String())
	case *ir.Tuple[T, A]:
		c.write("(")
		c.values(v.Elements)
		c.write(")")
	case *ir.List[T, A]:
		c.write("[")
		c.values(v.Elements)
		c.write("]")
	case *ir.Record[T, A]:
		c.write("{")
		c.recordFields(v.Fields)
		c.write("}")
	case *ir.Variable[T, A]:
		c.write(v.Name.String())
	case *ir.Reference[T, A]:
		c.write(v.Name.String())
	case *ir.Field[T, A]:
		c.value(v.Subject, true)
		c.write(".%s", v.Name)
	case *ir.FieldFunction[T, A]:
		c.write(".%s", v.Name)
	case *ir.Apply[T, A]:
		if paren {
			c.write("(")
		}
		fn, args := ir.UncurryApply(v.Function, v.Argument)
		c.value(fn, true)
		for _, a := range args {
			c.space()
			c.value(a, true)
		}
		if paren {
			c.write(")")
		}
	case *ir.Lambda[T, A]:
		if paren {
			c.write("(")
		}
		c.write("\\")
		c.pattern(v.Parameter, true)
		c.write(" -> ")
		c.value(v.Body, false)
		if paren {
			c.write(")")
		}
	case *ir.LetDefinition[T, A]:
		c.open("let")
		c.ret()
		c.definition(v.Name, v.Definition)
		c.close()
		c.ret()
		c.write("in")
		c.ret()
		c.open()
		c.value(v.Body, false)
		c.close()
	case *ir.LetRecursion[T, A]:
		c.open("let")
		names := maps.Keys(v.Definitions)
		slices.Sort(names)
		for _, n := range names {
			c.ret()
			c.definition(n, v.Definitions[n])
		}
		c.close()
		c.ret()
		c.write("in")
		c.ret()
		c.open()
		c.value(v.Body, false)
		c.close()
	case *ir.Destructure[T, A]:
		c.open("let ")
		c.pattern(v.Pattern, false)
		c.write(" = ")
		c.value(v.Subject, false)
		c.close()
		c.ret()
		c.write("in")
		c.ret()
		c.open()
		c.value(v.Body, false)
		c.close()
	case *ir.IfThenElse[T, A]:
		c.open("if ")
		c.value(v.Condition, false)
		c.write(" then")
		c.ret()
		c.value(v.Then, false)
		c.close()
		c.ret()
		c.open("else")
		c.ret()
		c.value(v.Else, false)
		c.close()
	case *ir.PatternMatch[T, A]:
		c.open("case ")
		c.value(v.Subject, false)
		c.write(" of")
		for _, cs := range v.Cases {
			c.ret()
			c.pattern(cs.Pattern, false)
			c.write(" -> ")
			c.value(cs.Body, false)
		}
		c.close()
	case *ir.UpdateRecord[T, A]:
		c.write("{ ")
		c.value(v.Target, true)
		c.write(" | ")
		c.recordFields(v.Fields)
		c.write(" }")
	case *ir.Unit[T, A]:
		c.write("()")
	default:
		panic(fmt.Sprintf("irfmt: unknown value node %T", v))
	}
}

func (c *canon[T, A]) values(values []ir.Value[T, A]) {
	for k, v := range values {
		if k > 0 {
			c.write(", ")
		}
		c.value(v, false)
	}
}

func (c *canon[T, A]) recordFields(fields []ir.RecordField[T, A]) {
	for k, f := range fields {
		if k > 0 {
			c.write(", ")
		}
		c.write("%s = ", f.Name)
		c.value(f.Value, false)
	}
}

func (c *canon[T, A]) definition(n name.Name, d *ir.Definition[T, A]) {
	c.write(n.String())
	for _, p := range d.Parameters {
		c.write(" (%s : ", p.Name)
		c.typ(p.Type, false)
		c.write(")")
	}
	c.write(" : ")
	c.typ(d.Output, false)
	c.write(" = ")
	c.value(d.Body, false)
}

func (c *canon[T, A]) pattern(p ir.Pattern[A], paren bool) {
	switch p := p.(type) {
	case *ir.WildcardPattern[A]:
		c.write("_")
	case *ir.AsPattern[A]:
		if _, ok := p.Pattern.(*ir.WildcardPattern[A]); ok {
			c.write(p.Name.String())
			return
		}
		if paren {
			c.write("(")
		}
		c.pattern(p.Pattern, true)
		c.write(" as %s", p.Name)
		if paren {
			c.write(")")
		}
	case *ir.TuplePattern[A]:
		c.write("(")
		for k, e := range p.Elements {
			if k > 0 {
				c.write(", ")
			}
			c.pattern(e, false)
		}
		c.write(")")
	case *ir.ConstructorPattern[A]:
		if paren && len(p.Arguments) > 0 {
			c.write("(")
		}
		c.write(p.Name.String())
		for _, a := range p.Arguments {
			c.space()
			c.pattern(a, true)
		}
		if paren && len(p.Arguments) > 0 {
			c.write(")")
		}
	case *ir.EmptyListPattern[A]:
		c.write("[]")
	case *ir.HeadTailPattern[A]:
		if paren {
			c.write("(")
		}
		c.pattern(p.Head, true)
		c.write(" :: ")
		c.pattern(p.Tail, false)
		if paren {
			c.write(")")
		}
	case *ir.LiteralPattern[A]:
		c.write(p.Value.String())
	case *ir.UnitPattern[A]:
		c.write("()")
	default:
		panic(fmt.Sprintf("irfmt: unknown pattern node %T", p))
	}
}

func (c *canon[T, A]) typ(t types.Type[T], paren bool) {
	switch t := t.(type) {
	case *types.Variable[T]:
		c.write(t.Name.String())
	case *types.Reference[T]:
		if paren && len(t.Params) > 0 {
			c.write("(")
		}
		c.write(t.Name.String())
		for _, p := range t.Params {
			c.space()
			c.typ(p, true)
		}
		if paren && len(t.Params) > 0 {
			c.write(")")
		}
	case *types.Tuple[T]:
		c.write("(")
		for k, e := range t.Elements {
			if k > 0 {
				c.write(", ")
			}
			c.typ(e, false)
		}
		c.write(")")
	case *types.Record[T]:
		c.write("{ ")
		c.typeFields(t.Fields)
		c.write(" }")
	case *types.ExtensibleRecord[T]:
		c.write("{ %s | ", t.Variable)
		c.typeFields(t.Fields)
		c.write(" }")
	case *types.Function[T]:
		if paren {
			c.write("(")
		}
		c.typ(t.Argument, true)
		c.write(" -> ")
		c.typ(t.Result, false)
		if paren {
			c.write(")")
		}
	case *types.Unit[T]:
		c.write("()")
	default:
		panic(fmt.Sprintf("irfmt: unknown type node %T", t))
	}
}

func (c *canon[T, A]) typeFields(fields []types.Field[T]) {
	for k, f := range fields {
		if k > 0 {
			c.write(", ")
		}
		c.write("%s : ", f.Name)
		c.typ(f.Type, false)
	}
}
