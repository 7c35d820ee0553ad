package random

import (
	"fmt"
	"math"
)

// Option is a labeled weight. Weights are relative; they need not sum to 1.
type Option struct {
	Label  string  `json:"label" yaml:"label"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Table is an ordered list of options. Order is significant: it decides
// which option wins for a given draw.
type Table []Option

// Uniform builds a table giving every label weight 1.
func Uniform(labels ...string) Table {
	t := make(Table, len(labels))
	for i, l := range labels {
		t[i] = Option{Label: l, Weight: 1}
	}
	return t
}

// Total returns the sum of all weights.
func (t Table) Total() float64 {
	var total float64
	for _, o := range t {
		total += o.Weight
	}
	return total
}

// Labels returns the option labels in registration order.
func (t Table) Labels() []string {
	labels := make([]string, len(t))
	for i, o := range t {
		labels[i] = o.Label
	}
	return labels
}

// Clone returns a copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	return append(Table(nil), t...)
}

// Validate checks that the table can be sampled.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidDistribution)
	}
	for _, o := range t {
		if math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) || o.Weight < 0 {
			return fmt.Errorf("%w: option %q has weight %v", ErrInvalidDistribution, o.Label, o.Weight)
		}
	}
	if t.Total() <= 0 {
		return fmt.Errorf("%w: total weight is zero", ErrInvalidDistribution)
	}
	return nil
}

// Sample picks one label with probability proportional to its weight.
// It consumes exactly one Float64 draw from src.
func Sample(src Source, t Table) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	r := src.Float64() * t.Total()

	var (
		acc  float64
		last int
	)
	for i, o := range t {
		if o.Weight == 0 {
			continue
		}
		acc += o.Weight
		if acc > r {
			return o.Label, nil
		}
		last = i
	}

	// r landed on the total through float rounding
	return t[last].Label, nil
}

// MustSample is like Sample but panics on an invalid table.
func MustSample(src Source, t Table) string {
	label, err := Sample(src, t)
	if err != nil {
		panic(err)
	}
	return label
}
