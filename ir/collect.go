package ir

import (
	"fmt"

	"github.com/arbor-lang/arbor/name"
)

// CollectVariables returns the set of names a value depends on for scoping
// purposes: every Variable reference reachable from v, plus the name of
// every LetDefinition and every LetRecursion binding encountered, whether
// or not those binders are themselves referenced.
//
// Names bound by patterns (lambda parameters, Destructure patterns, match
// cases) are deliberately not collected; they only appear in the result if
// independently referenced as a Variable.  Consumers use this set to decide
// which names must not be shadowed, so over-reporting let binders is safe
// while reporting pattern binders would be noise.
func CollectVariables[T, A any](v Value[T, A]) name.Set {
	set := name.Set{}
	collectVariables(v, set)
	return set
}

func collectVariables[T, A any](v Value[T, A], set name.Set) {
	switch v := v.(type) {
	case *Literal[T, A]:
	case *Constructor[T, A]:
	case *Tuple[T, A]:
		for _, e := range v.Elements {
			collectVariables(e, set)
		}
	case *List[T, A]:
		for _, e := range v.Elements {
			collectVariables(e, set)
		}
	case *Record[T, A]:
		for _, f := range v.Fields {
			collectVariables(f.Value, set)
		}
	case *Variable[T, A]:
		set.Add(v.Name)
	case *Reference[T, A]:
	case *Field[T, A]:
		collectVariables(v.Subject, set)
	case *FieldFunction[T, A]:
	case *Apply[T, A]:
		collectVariables(v.Function, set)
		collectVariables(v.Argument, set)
	case *Lambda[T, A]:
		collectVariables(v.Body, set)
	case *LetDefinition[T, A]:
		set.Add(v.Name)
		collectVariables(v.Definition.Body, set)
		collectVariables(v.Body, set)
	case *LetRecursion[T, A]:
		for n, d := range v.Definitions {
			set.Add(n)
			collectVariables(d.Body, set)
		}
		collectVariables(v.Body, set)
	case *Destructure[T, A]:
		collectVariables(v.Subject, set)
		collectVariables(v.Body, set)
	case *IfThenElse[T, A]:
		collectVariables(v.Condition, set)
		collectVariables(v.Then, set)
		collectVariables(v.Else, set)
	case *PatternMatch[T, A]:
		collectVariables(v.Subject, set)
		for _, c := range v.Cases {
			collectVariables(c.Body, set)
		}
	case *UpdateRecord[T, A]:
		collectVariables(v.Target, set)
		for _, f := range v.Fields {
			collectVariables(f.Value, set)
		}
	case *Unit[T, A]:
	default:
		panic(fmt.Sprintf("ir: unknown value node %T", v))
	}
}
