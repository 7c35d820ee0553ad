package useragent

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/uagen/pkg/random"
)

// RegistrySpec is the raw form of the distribution tables.
type RegistrySpec struct {
	// Browsers weights browser families against each other.
	Browsers random.Table `json:"browsers" yaml:"browsers"`
	// OS holds, per browser, the weights of operating systems.
	OS map[string]random.Table `json:"os" yaml:"os"`
	// Arch holds, per operating system, the weights of process/architecture tokens.
	Arch map[string]random.Table `json:"arch" yaml:"arch"`
	// Languages is sampled uniformly.
	Languages []string `json:"languages" yaml:"languages"`
}

func (s RegistrySpec) clone() RegistrySpec {
	out := RegistrySpec{
		Browsers:  s.Browsers.Clone(),
		OS:        make(map[string]random.Table, len(s.OS)),
		Arch:      make(map[string]random.Table, len(s.Arch)),
		Languages: slices.Clone(s.Languages),
	}
	for k, t := range s.OS {
		out.OS[k] = t.Clone()
	}
	for k, t := range s.Arch {
		out.Arch[k] = t.Clone()
	}
	return out
}

// Validate checks every table and the browser -> OS -> arch cross references.
func (s RegistrySpec) Validate() error {
	if err := s.Browsers.Validate(); err != nil {
		return fmt.Errorf("browsers: %w", err)
	}

	var errs []error
	for _, browser := range s.Browsers.Labels() {
		osTable, ok := s.OS[browser]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q has no os table", ErrUnknownBrowser, browser))
			continue
		}
		if err := osTable.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("os[%s]: %w", browser, err))
			continue
		}
		for _, os := range osTable.Labels() {
			archTable, ok := s.Arch[os]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %q referenced by %q has no arch table", ErrUnknownOS, os, browser))
				continue
			}
			if err := archTable.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("arch[%s]: %w", os, err))
			}
		}
	}
	if len(s.Languages) == 0 {
		errs = append(errs, fmt.Errorf("%w: language pool is empty", ErrInvalidDistribution))
	}
	return errors.Join(errs...)
}

// Registry is the immutable set of distribution tables.
// It is safe for concurrent reads.
type Registry struct {
	spec RegistrySpec
}

// NewRegistry validates spec and returns a registry holding a private copy.
func NewRegistry(spec RegistrySpec) (*Registry, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Registry{spec: spec.clone()}, nil
}

var defaultRegistry = MustRegistry(DefaultSpec())

// MustRegistry is like NewRegistry but panics on invalid tables.
func MustRegistry(spec RegistrySpec) *Registry {
	r, err := NewRegistry(spec)
	if err != nil {
		panic(fmt.Sprintf("invalid distribution tables: %v", err))
	}
	return r
}

// DefaultRegistry returns the registry built from the compiled-in tables.
func DefaultRegistry() *Registry { return defaultRegistry }

// BrowserWeights returns the browser table.
func (r *Registry) BrowserWeights() random.Table {
	return r.spec.Browsers.Clone()
}

// OSWeights returns the OS table for browser.
func (r *Registry) OSWeights(browser string) (random.Table, error) {
	t, ok := r.spec.OS[browser]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBrowser, browser)
	}
	return t.Clone(), nil
}

// ArchWeights returns the architecture table for os.
func (r *Registry) ArchWeights(os string) (random.Table, error) {
	t, ok := r.spec.Arch[os]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOS, os)
	}
	return t.Clone(), nil
}

// Languages returns the language pool.
func (r *Registry) Languages() []string {
	return slices.Clone(r.spec.Languages)
}

// Spec returns a copy of the tables backing the registry.
func (r *Registry) Spec() RegistrySpec {
	return r.spec.clone()
}

// table lookups without copying, for the generator hot path
func (r *Registry) osTable(browser string) (random.Table, bool) {
	t, ok := r.spec.OS[browser]
	return t, ok
}

func (r *Registry) archTable(os string) (random.Table, bool) {
	t, ok := r.spec.Arch[os]
	return t, ok
}
