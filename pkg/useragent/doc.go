// Package useragent generates synthetic browser User-Agent strings for
// test fixtures.
//
// A Generator samples a browser family from market-share weights, an
// operating system conditioned on that browser, and, where the template
// needs it, a process/architecture token conditioned on the OS and a
// language code. It then renders the family's template, filling version
// slots through the version formatter.
//
// # Architecture
//
//	┌────────────┐  browser, os  ┌──────────────┐
//	│  Generator  │─────────────▶│  compose.go   │──► User-Agent string
//	└────────────┘               └──────────────┘
//	    │   ▲                        │     │
//	    ▼   │                        ▼     ▼
//	┌──────────────┐          ┌─────────────┐ ┌──────────────┐
//	│ registry.go  │          │ version.go  │ │ pkg/random   │
//	│ (tables.go)  │          │ (formatter) │ │ (sampler)    │
//	└──────────────┘          └─────────────┘ └──────────────┘
//
// The distribution tables live in tables.go and are validated once at
// startup. LoadRegistry replaces them from a YAML document. Detect maps a
// User-Agent string back to the generator's browser and OS keys.
//
// # Usage
//
//	g := useragent.NewGenerator(random.New(42))
//	ua := g.Generate()
//
//	// force a family
//	ua, err := g.GenerateFor(useragent.BrowserFirefox)
//
// The same seed always yields the same sequence of strings.
//
// # Error Handling
//
// Registry construction returns errors matching ErrInvalidDistribution,
// ErrUnknownBrowser or ErrUnknownOS via errors.Is. Generate never fails on a
// validated registry. Formatting an unsupported VersionKind panics with
// ErrUnsupportedVersionKind. Compose returns "" for a browser without a
// template or an unregistered OS.
package useragent
