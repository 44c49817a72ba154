package types

import "fmt"

// Map rebuilds t with every node's attribute replaced by f(attr).  The
// result has exactly the shape of the input: same node kinds, same child
// order, same field names.
func Map[T, T2 any](f func(T) T2, t Type[T]) Type[T2] {
	switch t := t.(type) {
	case *Variable[T]:
		return &Variable[T2]{Attr: f(t.Attr), Name: t.Name}
	case *Reference[T]:
		return &Reference[T2]{Attr: f(t.Attr), Name: t.Name, Params: mapSlice(f, t.Params)}
	case *Tuple[T]:
		return &Tuple[T2]{Attr: f(t.Attr), Elements: mapSlice(f, t.Elements)}
	case *Record[T]:
		return &Record[T2]{Attr: f(t.Attr), Fields: mapFields(f, t.Fields)}
	case *ExtensibleRecord[T]:
		return &ExtensibleRecord[T2]{Attr: f(t.Attr), Variable: t.Variable, Fields: mapFields(f, t.Fields)}
	case *Function[T]:
		return &Function[T2]{Attr: f(t.Attr), Argument: Map(f, t.Argument), Result: Map(f, t.Result)}
	case *Unit[T]:
		return &Unit[T2]{Attr: f(t.Attr)}
	default:
		panic(fmt.Sprintf("types: unknown type node %T", t))
	}
}

func mapSlice[T, T2 any](f func(T) T2, in []Type[T]) []Type[T2] {
	if in == nil {
		return nil
	}
	out := make([]Type[T2], 0, len(in))
	for _, t := range in {
		out = append(out, Map(f, t))
	}
	return out
}

func mapFields[T, T2 any](f func(T) T2, in []Field[T]) []Field[T2] {
	if in == nil {
		return nil
	}
	out := make([]Field[T2], 0, len(in))
	for _, fld := range in {
		out = append(out, Field[T2]{Name: fld.Name, Type: Map(f, fld.Type)})
	}
	return out
}

// Erase drops every attribute.  It is Map with a constant function, not a
// separate traversal.
func Erase[T any](t Type[T]) Type[struct{}] {
	return Map(func(T) struct{} { return struct{}{} }, t)
}
