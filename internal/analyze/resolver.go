package analyze

import (
	"pathscope/internal/fieldpath"
	"pathscope/internal/payload"
)

// Resolver navigates a payload to the value addressed by a path.
type Resolver struct {
	opts Options
}

// NewResolver creates a Resolver. Depth and path ceilings do not apply.
func NewResolver(opts Options) *Resolver {
	return &Resolver{opts: opts.withDefaults()}
}

// Resolve returns the value at path and whether it exists.
//
// Array markers in the path produce no step of their own: whenever the walk
// meets a sequence it tries the sampler's elements in order and takes the
// first one under which the rest of the path resolves, whatever index the
// path names. With the default sampler that is always element 0. An object
// carrying the XML text-content key resolves to that text.
func (r *Resolver) Resolve(v any, path string) (any, bool) {
	if v == nil {
		return nil, false
	}

	value, ok := r.walk(v, fieldpath.Parse(path).Keys())
	if !ok {
		return nil, false
	}

	if text, ok := r.opts.Reserved.TextContent(value); ok {
		return text, true
	}

	return value, true
}

func (r *Resolver) walk(current any, keys fieldpath.Path) (any, bool) {
	if len(keys) == 0 {
		return current, true
	}

	switch t := current.(type) {
	case []any:
		for _, elem := range r.opts.Sampler.Elements(t) {
			if value, ok := r.walk(elem, keys); ok {
				return value, true
			}
		}

		return nil, false

	case map[string]any:
		next, ok := t[keys[0].Name]
		if !ok {
			return nil, false
		}

		return r.walk(next, keys[1:])

	default:
		return nil, false
	}
}

// Describe resolves path and reports its type and display sample.
func (r *Resolver) Describe(v any, path string) (payload.ValueType, any) {
	value, found := r.Resolve(v, path)
	t := payload.TypeOf(value, found)

	return t, payload.Sample(value, t)
}
