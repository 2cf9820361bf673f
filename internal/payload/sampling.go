package payload

import "fmt"

// ArraySampler decides which elements of a sequence represent its shape.
// The extractor walks every returned element; the resolver tries them in
// order.
type ArraySampler interface {
	Name() string
	Elements(seq []any) []any
}

// FirstElement assumes homogeneous arrays and samples element 0 only.
// Non-first elements with a different shape are not inventoried.
type FirstElement struct{}

// Name implements ArraySampler.
func (FirstElement) Name() string { return SamplingFirst }

// Elements implements ArraySampler.
func (FirstElement) Elements(seq []any) []any {
	if len(seq) == 0 {
		return nil
	}

	return seq[:1]
}

// AllElements samples every element, so the inventory is the union of all
// element shapes.
type AllElements struct{}

// Name implements ArraySampler.
func (AllElements) Name() string { return SamplingAll }

// Elements implements ArraySampler.
func (AllElements) Elements(seq []any) []any {
	return seq
}

// Sampling strategy names accepted by SamplerByName.
const (
	SamplingFirst = "first-element"
	SamplingAll   = "all-elements"
)

// SamplerByName returns the sampler registered under name. An empty name
// selects FirstElement.
func SamplerByName(name string) (ArraySampler, error) {
	switch name {
	case "", SamplingFirst:
		return FirstElement{}, nil
	case SamplingAll:
		return AllElements{}, nil
	default:
		return nil, fmt.Errorf("unknown array sampling strategy %q", name)
	}
}
