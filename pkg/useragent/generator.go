package useragent

import (
	"fmt"

	"github.com/dmitrymomot/uagen/pkg/random"
)

// Generator produces synthetic User-Agent strings.
//
// A Generator is as safe for concurrent use as its Source. Use one
// Generator per goroutine, or wrap the source with random.Locked.
type Generator struct {
	src      random.Source
	registry *Registry
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry replaces the default distribution tables. Nil is ignored.
func WithRegistry(r *Registry) Option {
	return func(g *Generator) {
		if r != nil {
			g.registry = r
		}
	}
}

// NewGenerator returns a Generator drawing from src. A nil src falls back
// to a time-seeded source.
func NewGenerator(src random.Source, opts ...Option) *Generator {
	if src == nil {
		src = random.NewRandom()
	}
	g := &Generator{src: src, registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Registry returns the tables the generator samples from.
func (g *Generator) Registry() *Registry { return g.registry }

// Source returns the random source the generator draws from.
func (g *Generator) Source() random.Source { return g.src }

// Agent is a generated User-Agent together with the browser and OS keys it
// was sampled from. UserAgent is empty when the browser has no template.
type Agent struct {
	Browser   string
	OS        string
	UserAgent string
}

// Next samples a browser and OS and renders their template.
func (g *Generator) Next() Agent {
	browser := g.PickBrowser()
	a, err := g.NextFor(browser)
	if err != nil {
		// registries are cross-checked on construction
		panic(err)
	}
	return a
}

// NextFor renders a template for the given browser family, sampling only
// the operating system.
func (g *Generator) NextFor(browser string) (Agent, error) {
	os, err := g.PickOS(browser)
	if err != nil {
		return Agent{}, err
	}
	return Agent{Browser: browser, OS: os, UserAgent: g.Compose(browser, os)}, nil
}

// Generate returns a random User-Agent string.
func (g *Generator) Generate() string {
	return g.Next().UserAgent
}

// GenerateFor returns a User-Agent string for the given browser family,
// sampling only the operating system.
func (g *Generator) GenerateFor(browser string) (string, error) {
	a, err := g.NextFor(browser)
	return a.UserAgent, err
}

// PickBrowser samples a browser family.
func (g *Generator) PickBrowser() string {
	return random.MustSample(g.src, g.registry.spec.Browsers)
}

// PickOS samples an operating system conditioned on browser.
func (g *Generator) PickOS(browser string) (string, error) {
	t, ok := g.registry.osTable(browser)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBrowser, browser)
	}
	return random.Sample(g.src, t)
}

// PickArch samples a process/architecture token conditioned on os.
func (g *Generator) PickArch(os string) (string, error) {
	t, ok := g.registry.archTable(os)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOS, os)
	}
	return random.Sample(g.src, t)
}

// PickLanguage returns a uniformly chosen language code.
func (g *Generator) PickLanguage() string {
	return random.Pick(g.src, g.registry.spec.Languages)
}

// Compose renders the User-Agent template of browser for os. It returns an
// empty string when browser has no template or os is not registered.
func (g *Generator) Compose(browser, os string) string {
	tmpl, ok := templates[browser]
	if !ok {
		return ""
	}
	if _, ok := g.registry.archTable(os); !ok {
		return ""
	}
	return tmpl(g, os)
}

// HasTemplate reports whether browser has a User-Agent template.
func HasTemplate(browser string) bool {
	_, ok := templates[browser]
	return ok
}

// Families lists the browser families that have a template.
func Families() []string {
	return []string{BrowserChrome, BrowserIExplorer, BrowserFirefox, BrowserSafari, BrowserOpera}
}

func (g *Generator) proc(os string) string {
	arch, err := g.PickArch(os)
	if err != nil {
		panic(err)
	}
	return arch
}

func (g *Generator) version(kind VersionKind) string {
	return FormatVersion(g.src, kind)
}
