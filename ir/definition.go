package ir

import (
	"github.com/arbor-lang/arbor/name"
	"github.com/arbor-lang/arbor/types"
)

// A Definition is a concrete value or function: a typed parameter list,
// the declared output type, and the implementing expression.
type Definition[T, A any] struct {
	Parameters []Parameter[T, A]
	Output     types.Type[T]
	Body       Value[T, A]
}

// A Parameter is one input of a Definition.  It carries its own node
// attribute in addition to its declared type.
type Parameter[T, A any] struct {
	Name name.Name
	Attr A
	Type types.Type[T]
}

// A Specification is the signature of a Definition with the body and all
// value-level attributes erased: what a definition provides, without how.
type Specification[T any] struct {
	Inputs []Input[T]
	Output types.Type[T]
}

// An Input is one input of a Specification.
type Input[T any] struct {
	Name name.Name
	Type types.Type[T]
}

func NewDefinition[T, A any](parameters []Parameter[T, A], output types.Type[T], body Value[T, A]) *Definition[T, A] {
	return &Definition[T, A]{Parameters: parameters, Output: output, Body: body}
}

func NewSpecification[T any](inputs []Input[T], output types.Type[T]) *Specification[T] {
	return &Specification[T]{Inputs: inputs, Output: output}
}

// DefinitionToSpecification projects a Definition onto its Specification,
// dropping the body and each parameter's attribute.  Names and types are
// kept verbatim and in order.  The projection is total and deterministic.
func DefinitionToSpecification[T, A any](d *Definition[T, A]) *Specification[T] {
	inputs := make([]Input[T], 0, len(d.Parameters))
	for _, p := range d.Parameters {
		inputs = append(inputs, Input[T]{Name: p.Name, Type: p.Type})
	}
	return &Specification[T]{Inputs: inputs, Output: d.Output}
}
