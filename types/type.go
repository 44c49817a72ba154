// Package types declares the type expressions referenced by IR definitions
// and specifications.  A Type is parameterized by an attribute that every
// node carries, typically a source position or an inference annotation.
package types

import "github.com/arbor-lang/arbor/name"

// Type is the interface implemented by all type-expression nodes.  The set
// of implementations is closed: every traversal in this module switches
// over all of them and treats an unknown node as a programming error.
type Type[T any] interface {
	Attribute() T
	typeNode()
}

type (
	// A Variable is a type variable, e.g. the "a" in "List a".
	Variable[T any] struct {
		Attr T
		Name name.Name
	}
	// A Reference names a declared type together with its arguments.
	Reference[T any] struct {
		Attr   T
		Name   name.FQName
		Params []Type[T]
	}
	Tuple[T any] struct {
		Attr     T
		Elements []Type[T]
	}
	Record[T any] struct {
		Attr   T
		Fields []Field[T]
	}
	// An ExtensibleRecord is a record type open in a row variable,
	// e.g. "{ a | x : Int }".
	ExtensibleRecord[T any] struct {
		Attr     T
		Variable name.Name
		Fields   []Field[T]
	}
	// A Function is a single-argument function type; multi-argument
	// functions are right-nested Functions.
	Function[T any] struct {
		Attr     T
		Argument Type[T]
		Result   Type[T]
	}
	Unit[T any] struct {
		Attr T
	}
)

// A Field is one named entry of a record type.  Field order is significant.
type Field[T any] struct {
	Name name.Name
	Type Type[T]
}

func (t *Variable[T]) Attribute() T         { return t.Attr }
func (t *Reference[T]) Attribute() T        { return t.Attr }
func (t *Tuple[T]) Attribute() T            { return t.Attr }
func (t *Record[T]) Attribute() T           { return t.Attr }
func (t *ExtensibleRecord[T]) Attribute() T { return t.Attr }
func (t *Function[T]) Attribute() T         { return t.Attr }
func (t *Unit[T]) Attribute() T             { return t.Attr }

func (*Variable[T]) typeNode()         {}
func (*Reference[T]) typeNode()        {}
func (*Tuple[T]) typeNode()            {}
func (*Record[T]) typeNode()           {}
func (*ExtensibleRecord[T]) typeNode() {}
func (*Function[T]) typeNode()         {}
func (*Unit[T]) typeNode()             {}

func NewVariable[T any](attr T, n name.Name) *Variable[T] {
	return &Variable[T]{Attr: attr, Name: n}
}

func NewReference[T any](attr T, n name.FQName, params ...Type[T]) *Reference[T] {
	return &Reference[T]{Attr: attr, Name: n, Params: params}
}

func NewTuple[T any](attr T, elements ...Type[T]) *Tuple[T] {
	return &Tuple[T]{Attr: attr, Elements: elements}
}

func NewRecord[T any](attr T, fields ...Field[T]) *Record[T] {
	return &Record[T]{Attr: attr, Fields: fields}
}

func NewExtensibleRecord[T any](attr T, variable name.Name, fields ...Field[T]) *ExtensibleRecord[T] {
	return &ExtensibleRecord[T]{Attr: attr, Variable: variable, Fields: fields}
}

func NewFunction[T any](attr T, argument, result Type[T]) *Function[T] {
	return &Function[T]{Attr: attr, Argument: argument, Result: result}
}

func NewUnit[T any](attr T) *Unit[T] {
	return &Unit[T]{Attr: attr}
}
