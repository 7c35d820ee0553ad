// Package fixture turns generated User-Agent strings into records suitable
// for seeding test databases and mocks, and encodes them in several formats.
package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uagen/pkg/random"
	"github.com/dmitrymomot/uagen/pkg/useragent"
)

// Format selects the output encoding.
type Format string

const (
	// FormatText writes one User-Agent per line.
	FormatText Format = "text"
	// FormatJSON writes one JSON record per line.
	FormatJSON Format = "json"
	// FormatYAML writes a YAML sequence of records.
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported fixture format")
	ErrInvalidCount      = errors.New("record count must be positive")
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Record is a single generated fixture.
type Record struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	UserAgent string    `json:"user_agent" yaml:"user_agent"`
	Browser   string    `json:"browser" yaml:"browser"`
	OS        string    `json:"os" yaml:"os"`
}

// Builder produces records from a generator.
type Builder struct {
	gen     *useragent.Generator
	browser string
	newID   func() uuid.UUID
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBrowser pins the browser family of every record.
func WithBrowser(browser string) BuilderOption {
	return func(b *Builder) { b.browser = browser }
}

// WithIDFunc overrides record ID generation.
func WithIDFunc(fn func() uuid.UUID) BuilderOption {
	return func(b *Builder) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// NewBuilder returns a Builder drawing from gen. Record IDs are random
// (version 4) UUIDs whose bytes come from the generator's source, so a
// seeded generator yields the same IDs on every run.
func NewBuilder(gen *useragent.Generator, opts ...BuilderOption) *Builder {
	b := &Builder{gen: gen, newID: sourceIDs(gen.Source())}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Next returns one record. Browser and OS are the sampled keys, so
// registry overrides with extra OS keys are reported as configured.
func (b *Builder) Next() (Record, error) {
	var (
		agent useragent.Agent
		err   error
	)
	if b.browser != "" {
		agent, err = b.gen.NextFor(b.browser)
		if err != nil {
			return Record{}, err
		}
	} else {
		agent = b.gen.Next()
	}
	if agent.UserAgent == "" {
		return Record{}, fmt.Errorf("%w: browser %q on %q", useragent.ErrNoTemplate, agent.Browser, agent.OS)
	}

	return Record{
		ID:        b.newID(),
		UserAgent: agent.UserAgent,
		Browser:   agent.Browser,
		OS:        agent.OS,
	}, nil
}

func sourceIDs(src random.Source) func() uuid.UUID {
	r := random.Reader(src)
	return func() uuid.UUID {
		// the reader never fails
		return uuid.Must(uuid.NewRandomFromReader(r))
	}
}

// Batch returns n records.
func (b *Builder) Batch(n int) ([]Record, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	out := make([]Record, 0, n)
	for range n {
		rec, err := b.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Write encodes records to w in the given format.
func Write(w io.Writer, format Format, records []Record) error {
	switch format {
	case FormatText:
		for _, r := range records {
			if _, err := io.WriteString(w, r.UserAgent+"\n"); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
