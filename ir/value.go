// Package ir declares the expression and pattern trees shared by the
// compiler's middle-end passes.  Every node carries an attribute of type A
// (and, through the types it references, an attribute of type T), so the
// same tree shape serves the front end annotated with source positions and
// the type checker annotated with inferred types.
//
// Construction performs no validation: trees that a later pass would
// reject, e.g. a filtering pattern in a destructuring position, are
// representable here.  Nodes are never mutated after construction; every
// transformation in this package allocates a fresh tree.
package ir

import (
	"github.com/arbor-lang/arbor/constant"
	"github.com/arbor-lang/arbor/name"
)

// Value is the interface implemented by all expression nodes.  The set of
// implementations is closed: traversals switch over every node kind and
// treat anything else as a programming error.
type Value[T, A any] interface {
	Attribute() A
	valueNode()
}

type (
	// A Literal is a constant such as 42 or "hello".
	Literal[T, A any] struct {
		Attr  A
		Value constant.Value
	}
	// A Constructor references a data constructor by fully-qualified
	// name; applying it builds a value of the constructor's type.
	Constructor[T, A any] struct {
		Attr A
		Name name.FQName
	}
	Tuple[T, A any] struct {
		Attr     A
		Elements []Value[T, A]
	}
	List[T, A any] struct {
		Attr     A
		Elements []Value[T, A]
	}
	// A Record builds a record value.  Field order is preserved.
	Record[T, A any] struct {
		Attr   A
		Fields []RecordField[T, A]
	}
	// A Variable references a locally bound name.
	Variable[T, A any] struct {
		Attr A
		Name name.Name
	}
	// A Reference references a top-level definition in some module.
	Reference[T, A any] struct {
		Attr A
		Name name.FQName
	}
	// A Field projects one field out of a record-valued subject.
	Field[T, A any] struct {
		Attr    A
		Subject Value[T, A]
		Name    name.Name
	}
	// A FieldFunction is a field access with the subject omitted,
	// usable as a first-class function, e.g. ".age".
	FieldFunction[T, A any] struct {
		Attr A
		Name name.Name
	}
	// An Apply applies a function to a single argument.  Multi-argument
	// calls are right-nested Applys; see UncurryApply.
	Apply[T, A any] struct {
		Attr     A
		Function Value[T, A]
		Argument Value[T, A]
	}
	// A Lambda is a single-parameter anonymous function.  The parameter
	// is a pattern, which must be a pure destructuring shape; that rule
	// is enforced by later passes, not here.
	Lambda[T, A any] struct {
		Attr      A
		Parameter Pattern[A]
		Body      Value[T, A]
	}
	// A LetDefinition binds one definition for the scope of Body.
	LetDefinition[T, A any] struct {
		Attr       A
		Name       name.Name
		Definition *Definition[T, A]
		Body       Value[T, A]
	}
	// A LetRecursion binds a group of mutually recursive definitions
	// for the scope of Body.  Each name is bound exactly once; the map
	// carries no ordering since recursion makes order irrelevant.
	LetRecursion[T, A any] struct {
		Attr        A
		Definitions map[name.Name]*Definition[T, A]
		Body        Value[T, A]
	}
	// A Destructure binds the names of a pure destructuring pattern to
	// the corresponding parts of Subject for the scope of Body.
	Destructure[T, A any] struct {
		Attr    A
		Pattern Pattern[A]
		Subject Value[T, A]
		Body    Value[T, A]
	}
	IfThenElse[T, A any] struct {
		Attr      A
		Condition Value[T, A]
		Then      Value[T, A]
		Else      Value[T, A]
	}
	// A PatternMatch branches on the first case whose pattern matches
	// Subject.  Case order is significant.
	PatternMatch[T, A any] struct {
		Attr    A
		Subject Value[T, A]
		Cases   []MatchCase[T, A]
	}
	// An UpdateRecord copies Target with the named fields replaced.
	UpdateRecord[T, A any] struct {
		Attr   A
		Target Value[T, A]
		Fields []RecordField[T, A]
	}
	// Unit is the canonical zero-tuple.  Producers should build Unit
	// rather than an empty Tuple.
	Unit[T, A any] struct {
		Attr A
	}
)

// A RecordField is one named entry of a Record or UpdateRecord.
type RecordField[T, A any] struct {
	Name  name.Name
	Value Value[T, A]
}

// A MatchCase is one arm of a PatternMatch.
type MatchCase[T, A any] struct {
	Pattern Pattern[A]
	Body    Value[T, A]
}

func (v *Literal[T, A]) Attribute() A       { return v.Attr }
func (v *Constructor[T, A]) Attribute() A   { return v.Attr }
func (v *Tuple[T, A]) Attribute() A         { return v.Attr }
func (v *List[T, A]) Attribute() A          { return v.Attr }
func (v *Record[T, A]) Attribute() A        { return v.Attr }
func (v *Variable[T, A]) Attribute() A      { return v.Attr }
func (v *Reference[T, A]) Attribute() A     { return v.Attr }
func (v *Field[T, A]) Attribute() A         { return v.Attr }
func (v *FieldFunction[T, A]) Attribute() A { return v.Attr }
func (v *Apply[T, A]) Attribute() A         { return v.Attr }
func (v *Lambda[T, A]) Attribute() A        { return v.Attr }
func (v *LetDefinition[T, A]) Attribute() A { return v.Attr }
func (v *LetRecursion[T, A]) Attribute() A  { return v.Attr }
func (v *Destructure[T, A]) Attribute() A   { return v.Attr }
func (v *IfThenElse[T, A]) Attribute() A    { return v.Attr }
func (v *PatternMatch[T, A]) Attribute() A  { return v.Attr }
func (v *UpdateRecord[T, A]) Attribute() A  { return v.Attr }
func (v *Unit[T, A]) Attribute() A          { return v.Attr }

func (*Literal[T, A]) valueNode()       {}
func (*Constructor[T, A]) valueNode()   {}
func (*Tuple[T, A]) valueNode()         {}
func (*List[T, A]) valueNode()          {}
func (*Record[T, A]) valueNode()        {}
func (*Variable[T, A]) valueNode()      {}
func (*Reference[T, A]) valueNode()     {}
func (*Field[T, A]) valueNode()         {}
func (*FieldFunction[T, A]) valueNode() {}
func (*Apply[T, A]) valueNode()         {}
func (*Lambda[T, A]) valueNode()        {}
func (*LetDefinition[T, A]) valueNode() {}
func (*LetRecursion[T, A]) valueNode()  {}
func (*Destructure[T, A]) valueNode()   {}
func (*IfThenElse[T, A]) valueNode()    {}
func (*PatternMatch[T, A]) valueNode()  {}
func (*UpdateRecord[T, A]) valueNode()  {}
func (*Unit[T, A]) valueNode()          {}

func NewLiteral[T, A any](attr A, value constant.Value) *Literal[T, A] {
	return &Literal[T, A]{Attr: attr, Value: value}
}

func NewConstructor[T, A any](attr A, n name.FQName) *Constructor[T, A] {
	return &Constructor[T, A]{Attr: attr, Name: n}
}

func NewTuple[T, A any](attr A, elements ...Value[T, A]) *Tuple[T, A] {
	return &Tuple[T, A]{Attr: attr, Elements: elements}
}

func NewList[T, A any](attr A, elements ...Value[T, A]) *List[T, A] {
	return &List[T, A]{Attr: attr, Elements: elements}
}

func NewRecord[T, A any](attr A, fields ...RecordField[T, A]) *Record[T, A] {
	return &Record[T, A]{Attr: attr, Fields: fields}
}

func NewVariable[T, A any](attr A, n name.Name) *Variable[T, A] {
	return &Variable[T, A]{Attr: attr, Name: n}
}

func NewReference[T, A any](attr A, n name.FQName) *Reference[T, A] {
	return &Reference[T, A]{Attr: attr, Name: n}
}

func NewField[T, A any](attr A, subject Value[T, A], n name.Name) *Field[T, A] {
	return &Field[T, A]{Attr: attr, Subject: subject, Name: n}
}

func NewFieldFunction[T, A any](attr A, n name.Name) *FieldFunction[T, A] {
	return &FieldFunction[T, A]{Attr: attr, Name: n}
}

func NewApply[T, A any](attr A, function, argument Value[T, A]) *Apply[T, A] {
	return &Apply[T, A]{Attr: attr, Function: function, Argument: argument}
}

func NewLambda[T, A any](attr A, parameter Pattern[A], body Value[T, A]) *Lambda[T, A] {
	return &Lambda[T, A]{Attr: attr, Parameter: parameter, Body: body}
}

func NewLetDefinition[T, A any](attr A, n name.Name, def *Definition[T, A], body Value[T, A]) *LetDefinition[T, A] {
	return &LetDefinition[T, A]{Attr: attr, Name: n, Definition: def, Body: body}
}

func NewLetRecursion[T, A any](attr A, defs map[name.Name]*Definition[T, A], body Value[T, A]) *LetRecursion[T, A] {
	return &LetRecursion[T, A]{Attr: attr, Definitions: defs, Body: body}
}

func NewDestructure[T, A any](attr A, pattern Pattern[A], subject, body Value[T, A]) *Destructure[T, A] {
	return &Destructure[T, A]{Attr: attr, Pattern: pattern, Subject: subject, Body: body}
}

func NewIfThenElse[T, A any](attr A, condition, then, els Value[T, A]) *IfThenElse[T, A] {
	return &IfThenElse[T, A]{Attr: attr, Condition: condition, Then: then, Else: els}
}

func NewPatternMatch[T, A any](attr A, subject Value[T, A], cases ...MatchCase[T, A]) *PatternMatch[T, A] {
	return &PatternMatch[T, A]{Attr: attr, Subject: subject, Cases: cases}
}

func NewUpdateRecord[T, A any](attr A, target Value[T, A], fields ...RecordField[T, A]) *UpdateRecord[T, A] {
	return &UpdateRecord[T, A]{Attr: attr, Target: target, Fields: fields}
}

func NewUnit[T, A any](attr A) *Unit[T, A] {
	return &Unit[T, A]{Attr: attr}
}
