package ir

// UncurryApply flattens a curried application into the applied function
// and its arguments in source order.  Given the two components of an Apply
// node whose function side is Apply(Apply(f, a), b) and whose argument is
// c, it returns (f, [a, b, c]).  For a non-nested application it returns
// (fn, [lastArgument]).
//
// The attributes of the intermediate Apply nodes are discarded; call-site
// metadata is expected to live on the outermost node, whose components the
// caller already holds.
func UncurryApply[T, A any](fn Value[T, A], lastArgument Value[T, A]) (Value[T, A], []Value[T, A]) {
	args := []Value[T, A]{lastArgument}
	for {
		apply, ok := fn.(*Apply[T, A])
		if !ok {
			break
		}
		args = append(args, apply.Argument)
		fn = apply.Function
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return fn, args
}
