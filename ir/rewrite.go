package ir

import (
	"fmt"

	"github.com/arbor-lang/arbor/types"
	"go.uber.org/multierr"
)

// RewriteDefinition rebuilds a definition through two caller-supplied,
// fallible transforms: rewriteType for each parameter type and the output
// type, rewriteValue for the body.  Every piece is attempted even after an
// earlier one fails, and the returned error aggregates all failures (see
// multierr.Errors), so one pass reports every problem instead of the first.
// The rebuilt definition is returned only when every piece succeeded.
func RewriteDefinition[T, A any](
	rewriteType func(types.Type[T]) (types.Type[T], error),
	rewriteValue func(Value[T, A]) (Value[T, A], error),
	d *Definition[T, A],
) (*Definition[T, A], error) {
	var errs error
	parameters := make([]Parameter[T, A], 0, len(d.Parameters))
	for _, p := range d.Parameters {
		typ, err := rewriteType(p.Type)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("parameter %q: %w", p.Name, err))
			continue
		}
		parameters = append(parameters, Parameter[T, A]{Name: p.Name, Attr: p.Attr, Type: typ})
	}
	output, err := rewriteType(d.Output)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("output type: %w", err))
	}
	body, err := rewriteValue(d.Body)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("body: %w", err))
	}
	if errs != nil {
		return nil, errs
	}
	return &Definition[T, A]{Parameters: parameters, Output: output, Body: body}, nil
}
