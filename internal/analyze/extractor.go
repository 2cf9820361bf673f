package analyze

import (
	"pathscope/internal/fieldpath"
	"pathscope/internal/payload"
)

// Options configure payload walks. Zero values select the defaults.
type Options struct {
	Reserved payload.ReservedKeys
	Sampler  payload.ArraySampler

	// MaxDepth limits how many container levels are descended (0 = no limit).
	MaxDepth int
	// MaxPaths limits the size of an extracted path set (0 = no limit).
	MaxPaths int
}

func (o Options) withDefaults() Options {
	if o.Reserved == (payload.ReservedKeys{}) {
		o.Reserved = payload.DefaultReservedKeys
	}

	if o.Sampler == nil {
		o.Sampler = payload.FirstElement{}
	}

	return o
}

// Extractor enumerates the structural paths of a payload.
type Extractor struct {
	opts Options
}

// NewExtractor creates an Extractor.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts.withDefaults()}
}

// Extract returns every distinct path reachable in v. Array indices are
// collapsed to "[*]" and metadata keys are skipped. A nil value yields an
// empty set. Extraction is deterministic: object keys are visited in
// lexical order.
func (e *Extractor) Extract(v any) *fieldpath.Set {
	set := fieldpath.NewSet()
	if v == nil {
		return set
	}

	e.walk(v, nil, 0, set)

	return set
}

func (e *Extractor) walk(v any, prefix fieldpath.Path, depth int, set *fieldpath.Set) bool {
	if e.opts.MaxDepth > 0 && depth > e.opts.MaxDepth {
		set.MarkTruncated()
		return true
	}

	switch t := v.(type) {
	case []any:
		next := prefix
		// the root itself is never wildcarded
		if len(prefix) > 0 {
			next = prefix.Slice()
			if !e.add(set, next) {
				return false
			}
		}

		for _, elem := range e.opts.Sampler.Elements(t) {
			if !e.walk(elem, next, depth+1, set) {
				return false
			}
		}

	case map[string]any:
		for _, key := range payload.Keys(t) {
			if e.opts.Reserved.IsReserved(key) {
				continue
			}

			p := prefix.Field(key)
			if !e.add(set, p) {
				return false
			}

			if val := t[key]; payload.IsComposite(val) {
				if !e.walk(val, p, depth+1, set) {
					return false
				}
			}
		}
	}

	return true
}

// add inserts p, returning false once the path ceiling stops the walk.
func (e *Extractor) add(set *fieldpath.Set, p fieldpath.Path) bool {
	s := p.String()

	if e.opts.MaxPaths > 0 && set.Len() >= e.opts.MaxPaths && !set.Contains(s) {
		set.MarkTruncated()
		return false
	}

	set.Add(s)

	return true
}
