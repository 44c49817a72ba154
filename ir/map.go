package ir

import (
	"fmt"

	"github.com/arbor-lang/arbor/name"
	"github.com/arbor-lang/arbor/types"
)

// MapValueAttributes rebuilds v with every node's attribute replaced by
// mapAttr(attr) and every attribute inside nested type occurrences replaced
// via mapType.  The result has exactly the shape of the input: same node
// kind at every position, same arity, same child order.  Passing identity
// functions reproduces the tree; composing two maps equals mapping the
// composed functions.
//
// The switch below must name every Value implementation.  The default arm
// is unreachable unless a node kind was added without extending the
// traversal, which is a bug worth crashing on.
func MapValueAttributes[T, A, T2, A2 any](mapType func(T) T2, mapAttr func(A) A2, v Value[T, A]) Value[T2, A2] {
	switch v := v.(type) {
	case *Literal[T, A]:
		return &Literal[T2, A2]{Attr: mapAttr(v.Attr), Value: v.Value}
	case *Constructor[T, A]:
		return &Constructor[T2, A2]{Attr: mapAttr(v.Attr), Name: v.Name}
	case *Tuple[T, A]:
		return &Tuple[T2, A2]{Attr: mapAttr(v.Attr), Elements: mapValues(mapType, mapAttr, v.Elements)}
	case *List[T, A]:
		return &List[T2, A2]{Attr: mapAttr(v.Attr), Elements: mapValues(mapType, mapAttr, v.Elements)}
	case *Record[T, A]:
		return &Record[T2, A2]{Attr: mapAttr(v.Attr), Fields: mapRecordFields(mapType, mapAttr, v.Fields)}
	case *Variable[T, A]:
		return &Variable[T2, A2]{Attr: mapAttr(v.Attr), Name: v.Name}
	case *Reference[T, A]:
		return &Reference[T2, A2]{Attr: mapAttr(v.Attr), Name: v.Name}
	case *Field[T, A]:
		return &Field[T2, A2]{
			Attr:    mapAttr(v.Attr),
			Subject: MapValueAttributes(mapType, mapAttr, v.Subject),
			Name:    v.Name,
		}
	case *FieldFunction[T, A]:
		return &FieldFunction[T2, A2]{Attr: mapAttr(v.Attr), Name: v.Name}
	case *Apply[T, A]:
		return &Apply[T2, A2]{
			Attr:     mapAttr(v.Attr),
			Function: MapValueAttributes(mapType, mapAttr, v.Function),
			Argument: MapValueAttributes(mapType, mapAttr, v.Argument),
		}
	case *Lambda[T, A]:
		return &Lambda[T2, A2]{
			Attr:      mapAttr(v.Attr),
			Parameter: MapPatternAttributes(mapAttr, v.Parameter),
			Body:      MapValueAttributes(mapType, mapAttr, v.Body),
		}
	case *LetDefinition[T, A]:
		return &LetDefinition[T2, A2]{
			Attr:       mapAttr(v.Attr),
			Name:       v.Name,
			Definition: MapDefinitionAttributes(mapType, mapAttr, v.Definition),
			Body:       MapValueAttributes(mapType, mapAttr, v.Body),
		}
	case *LetRecursion[T, A]:
		defs := make(map[name.Name]*Definition[T2, A2], len(v.Definitions))
		for n, d := range v.Definitions {
			defs[n] = MapDefinitionAttributes(mapType, mapAttr, d)
		}
		return &LetRecursion[T2, A2]{
			Attr:        mapAttr(v.Attr),
			Definitions: defs,
			Body:        MapValueAttributes(mapType, mapAttr, v.Body),
		}
	case *Destructure[T, A]:
		return &Destructure[T2, A2]{
			Attr:    mapAttr(v.Attr),
			Pattern: MapPatternAttributes(mapAttr, v.Pattern),
			Subject: MapValueAttributes(mapType, mapAttr, v.Subject),
			Body:    MapValueAttributes(mapType, mapAttr, v.Body),
		}
	case *IfThenElse[T, A]:
		return &IfThenElse[T2, A2]{
			Attr:      mapAttr(v.Attr),
			Condition: MapValueAttributes(mapType, mapAttr, v.Condition),
			Then:      MapValueAttributes(mapType, mapAttr, v.Then),
			Else:      MapValueAttributes(mapType, mapAttr, v.Else),
		}
	case *PatternMatch[T, A]:
		cases := make([]MatchCase[T2, A2], 0, len(v.Cases))
		for _, c := range v.Cases {
			cases = append(cases, MatchCase[T2, A2]{
				Pattern: MapPatternAttributes(mapAttr, c.Pattern),
				Body:    MapValueAttributes(mapType, mapAttr, c.Body),
			})
		}
		return &PatternMatch[T2, A2]{
			Attr:    mapAttr(v.Attr),
			Subject: MapValueAttributes(mapType, mapAttr, v.Subject),
			Cases:   cases,
		}
	case *UpdateRecord[T, A]:
		return &UpdateRecord[T2, A2]{
			Attr:   mapAttr(v.Attr),
			Target: MapValueAttributes(mapType, mapAttr, v.Target),
			Fields: mapRecordFields(mapType, mapAttr, v.Fields),
		}
	case *Unit[T, A]:
		return &Unit[T2, A2]{Attr: mapAttr(v.Attr)}
	default:
		panic(fmt.Sprintf("ir: unknown value node %T", v))
	}
}

func mapValues[T, A, T2, A2 any](mapType func(T) T2, mapAttr func(A) A2, in []Value[T, A]) []Value[T2, A2] {
	if in == nil {
		return nil
	}
	out := make([]Value[T2, A2], 0, len(in))
	for _, v := range in {
		out = append(out, MapValueAttributes(mapType, mapAttr, v))
	}
	return out
}

func mapRecordFields[T, A, T2, A2 any](mapType func(T) T2, mapAttr func(A) A2, in []RecordField[T, A]) []RecordField[T2, A2] {
	if in == nil {
		return nil
	}
	out := make([]RecordField[T2, A2], 0, len(in))
	for _, f := range in {
		out = append(out, RecordField[T2, A2]{
			Name:  f.Name,
			Value: MapValueAttributes(mapType, mapAttr, f.Value),
		})
	}
	return out
}

// MapPatternAttributes rebuilds p with every node's attribute replaced by
// mapAttr(attr), under the same shape-preservation and totality contract
// as MapValueAttributes.
func MapPatternAttributes[A, A2 any](mapAttr func(A) A2, p Pattern[A]) Pattern[A2] {
	switch p := p.(type) {
	case *WildcardPattern[A]:
		return &WildcardPattern[A2]{Attr: mapAttr(p.Attr)}
	case *AsPattern[A]:
		return &AsPattern[A2]{
			Attr:    mapAttr(p.Attr),
			Pattern: MapPatternAttributes(mapAttr, p.Pattern),
			Name:    p.Name,
		}
	case *TuplePattern[A]:
		elements := make([]Pattern[A2], 0, len(p.Elements))
		for _, e := range p.Elements {
			elements = append(elements, MapPatternAttributes(mapAttr, e))
		}
		return &TuplePattern[A2]{Attr: mapAttr(p.Attr), Elements: elements}
	case *ConstructorPattern[A]:
		arguments := make([]Pattern[A2], 0, len(p.Arguments))
		for _, a := range p.Arguments {
			arguments = append(arguments, MapPatternAttributes(mapAttr, a))
		}
		return &ConstructorPattern[A2]{Attr: mapAttr(p.Attr), Name: p.Name, Arguments: arguments}
	case *EmptyListPattern[A]:
		return &EmptyListPattern[A2]{Attr: mapAttr(p.Attr)}
	case *HeadTailPattern[A]:
		return &HeadTailPattern[A2]{
			Attr: mapAttr(p.Attr),
			Head: MapPatternAttributes(mapAttr, p.Head),
			Tail: MapPatternAttributes(mapAttr, p.Tail),
		}
	case *LiteralPattern[A]:
		return &LiteralPattern[A2]{Attr: mapAttr(p.Attr), Value: p.Value}
	case *UnitPattern[A]:
		return &UnitPattern[A2]{Attr: mapAttr(p.Attr)}
	default:
		panic(fmt.Sprintf("ir: unknown pattern node %T", p))
	}
}

// MapDefinitionAttributes applies mapType to each parameter's declared type
// and the output type, mapAttr to each parameter's attribute, and recurses
// into the body.
func MapDefinitionAttributes[T, A, T2, A2 any](mapType func(T) T2, mapAttr func(A) A2, d *Definition[T, A]) *Definition[T2, A2] {
	parameters := make([]Parameter[T2, A2], 0, len(d.Parameters))
	for _, p := range d.Parameters {
		parameters = append(parameters, Parameter[T2, A2]{
			Name: p.Name,
			Attr: mapAttr(p.Attr),
			Type: types.Map(mapType, p.Type),
		})
	}
	return &Definition[T2, A2]{
		Parameters: parameters,
		Output:     types.Map(mapType, d.Output),
		Body:       MapValueAttributes(mapType, mapAttr, d.Body),
	}
}

// MapSpecificationAttributes applies mapType to each input type and the
// output type.  Specifications carry no value-level attributes.
func MapSpecificationAttributes[T, T2 any](mapType func(T) T2, s *Specification[T]) *Specification[T2] {
	inputs := make([]Input[T2], 0, len(s.Inputs))
	for _, in := range s.Inputs {
		inputs = append(inputs, Input[T2]{Name: in.Name, Type: types.Map(mapType, in.Type)})
	}
	return &Specification[T2]{Inputs: inputs, Output: types.Map(mapType, s.Output)}
}

// EraseValueAttributes drops both attribute axes.  Erasure is a degenerate
// attribute map, not a separate traversal.
func EraseValueAttributes[T, A any](v Value[T, A]) Value[struct{}, struct{}] {
	return MapValueAttributes(
		func(T) struct{} { return struct{}{} },
		func(A) struct{} { return struct{}{} },
		v,
	)
}

// ErasePatternAttributes drops the pattern attribute axis.
func ErasePatternAttributes[A any](p Pattern[A]) Pattern[struct{}] {
	return MapPatternAttributes(func(A) struct{} { return struct{}{} }, p)
}
