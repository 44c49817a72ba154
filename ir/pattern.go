package ir

import (
	"github.com/arbor-lang/arbor/constant"
	"github.com/arbor-lang/arbor/name"
)

// Pattern is the interface implemented by all pattern nodes.  Patterns
// carry a single attribute axis; like Value, the set of implementations is
// closed.
//
// Wildcard, As, Tuple, Unit, and a Constructor whose type has exactly one
// constructor always match and may appear in binding positions (lambda
// parameters, Destructure).  Literal, EmptyList, HeadTail, and
// multi-constructor Constructor patterns filter and belong only in
// PatternMatch cases.  This package represents either shape anywhere;
// enforcement is a later pass's job.
type Pattern[A any] interface {
	Attribute() A
	patternNode()
}

type (
	// A WildcardPattern matches anything and binds nothing.
	WildcardPattern[A any] struct {
		Attr A
	}
	// An AsPattern matches its nested pattern and also binds the whole
	// matched value to Name.  Wildcard-as-name is how a plain variable
	// binding is represented.
	AsPattern[A any] struct {
		Attr    A
		Pattern Pattern[A]
		Name    name.Name
	}
	TuplePattern[A any] struct {
		Attr     A
		Elements []Pattern[A]
	}
	// A ConstructorPattern matches a value built by the named
	// constructor and destructures its arguments.
	ConstructorPattern[A any] struct {
		Attr      A
		Name      name.FQName
		Arguments []Pattern[A]
	}
	EmptyListPattern[A any] struct {
		Attr A
	}
	// A HeadTailPattern matches a non-empty list.
	HeadTailPattern[A any] struct {
		Attr A
		Head Pattern[A]
		Tail Pattern[A]
	}
	// A LiteralPattern matches one constant.  It only filters; it never
	// binds.
	LiteralPattern[A any] struct {
		Attr  A
		Value constant.Value
	}
	UnitPattern[A any] struct {
		Attr A
	}
)

func (p *WildcardPattern[A]) Attribute() A    { return p.Attr }
func (p *AsPattern[A]) Attribute() A          { return p.Attr }
func (p *TuplePattern[A]) Attribute() A       { return p.Attr }
func (p *ConstructorPattern[A]) Attribute() A { return p.Attr }
func (p *EmptyListPattern[A]) Attribute() A   { return p.Attr }
func (p *HeadTailPattern[A]) Attribute() A    { return p.Attr }
func (p *LiteralPattern[A]) Attribute() A     { return p.Attr }
func (p *UnitPattern[A]) Attribute() A        { return p.Attr }

func (*WildcardPattern[A]) patternNode()    {}
func (*AsPattern[A]) patternNode()          {}
func (*TuplePattern[A]) patternNode()       {}
func (*ConstructorPattern[A]) patternNode() {}
func (*EmptyListPattern[A]) patternNode()   {}
func (*HeadTailPattern[A]) patternNode()    {}
func (*LiteralPattern[A]) patternNode()     {}
func (*UnitPattern[A]) patternNode()        {}

func NewWildcardPattern[A any](attr A) *WildcardPattern[A] {
	return &WildcardPattern[A]{Attr: attr}
}

func NewAsPattern[A any](attr A, pattern Pattern[A], n name.Name) *AsPattern[A] {
	return &AsPattern[A]{Attr: attr, Pattern: pattern, Name: n}
}

// NewNamedPattern binds a whole value to a name, i.e. wildcard-as-name.
func NewNamedPattern[A any](attr A, n name.Name) *AsPattern[A] {
	return &AsPattern[A]{Attr: attr, Pattern: &WildcardPattern[A]{Attr: attr}, Name: n}
}

func NewTuplePattern[A any](attr A, elements ...Pattern[A]) *TuplePattern[A] {
	return &TuplePattern[A]{Attr: attr, Elements: elements}
}

func NewConstructorPattern[A any](attr A, n name.FQName, arguments ...Pattern[A]) *ConstructorPattern[A] {
	return &ConstructorPattern[A]{Attr: attr, Name: n, Arguments: arguments}
}

func NewEmptyListPattern[A any](attr A) *EmptyListPattern[A] {
	return &EmptyListPattern[A]{Attr: attr}
}

func NewHeadTailPattern[A any](attr A, head, tail Pattern[A]) *HeadTailPattern[A] {
	return &HeadTailPattern[A]{Attr: attr, Head: head, Tail: tail}
}

func NewLiteralPattern[A any](attr A, value constant.Value) *LiteralPattern[A] {
	return &LiteralPattern[A]{Attr: attr, Value: value}
}

func NewUnitPattern[A any](attr A) *UnitPattern[A] {
	return &UnitPattern[A]{Attr: attr}
}
