package useragent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/uagen/pkg/random"
)

// VersionKind names a version-like substring embedded in User-Agent strings.
type VersionKind int

// Supported version kinds.
const (
	KindNet     VersionKind = iota // .NET CLR version, a.b.c.d
	KindNT                         // Windows NT kernel version
	KindTrident                    // Trident rendering engine
	KindOSX                        // Mac OS X version, 10.a.b
	KindChrome                     // Chrome build, a.0.b.0
	KindPresto                     // Presto engine, 2.9.a
	KindPresto2                    // Opera version, a.00
	KindSafari                     // WebKit/Safari build, a.b.c
)

// segment is either a literal or an inclusive numeric range.
type segment struct {
	literal  string
	min, max int
}

func lit(s string) segment        { return segment{literal: s} }
func span(min, max int) segment   { return segment{min: min, max: max} }
func (s segment) isLiteral() bool { return s.literal != "" }

type versionRule struct {
	name     string
	segments []segment
}

var versionRules = [...]versionRule{
	KindNet:     {name: "net", segments: []segment{span(1, 3), span(0, 9), span(10000, 99999), span(0, 9)}},
	KindNT:      {name: "nt", segments: []segment{span(5, 6), span(0, 3)}},
	KindTrident: {name: "trident", segments: []segment{span(3, 7), span(0, 1)}},
	KindOSX:     {name: "osx", segments: []segment{lit("10"), span(5, 10), span(0, 9)}},
	KindChrome:  {name: "chrome", segments: []segment{span(13, 39), lit("0"), span(800, 899), lit("0")}},
	KindPresto:  {name: "presto", segments: []segment{lit("2"), lit("9"), span(160, 190)}},
	KindPresto2: {name: "presto2", segments: []segment{span(10, 12), lit("00")}},
	KindSafari:  {name: "safari", segments: []segment{span(531, 538), span(0, 2), span(0, 2)}},
}

func (k VersionKind) rule() (versionRule, bool) {
	if k < 0 || int(k) >= len(versionRules) {
		return versionRule{}, false
	}
	return versionRules[k], true
}

// String returns the kind name, e.g. "nt" or "osx".
func (k VersionKind) String() string {
	if r, ok := k.rule(); ok {
		return r.name
	}
	return "VersionKind(" + strconv.Itoa(int(k)) + ")"
}

// Pattern describes the shape of the kind, with numeric segments shown as
// inclusive ranges, e.g. "10.[5-10].[0-9]" for osx. Unknown kinds yield "".
func (k VersionKind) Pattern() string {
	r, ok := k.rule()
	if !ok {
		return ""
	}
	parts := make([]string, len(r.segments))
	for i, s := range r.segments {
		if s.isLiteral() {
			parts[i] = s.literal
			continue
		}
		parts[i] = "[" + strconv.Itoa(s.min) + "-" + strconv.Itoa(s.max) + "]"
	}
	return strings.Join(parts, ".")
}

// VersionKinds lists every supported kind.
func VersionKinds() []VersionKind {
	kinds := make([]VersionKind, len(versionRules))
	for i := range versionRules {
		kinds[i] = VersionKind(i)
	}
	return kinds
}

// ParseVersionKind maps a kind name back to its VersionKind.
func ParseVersionKind(name string) (VersionKind, error) {
	for i, r := range versionRules {
		if r.name == name {
			return VersionKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVersionKind, name)
}

// FormatVersion renders kind with "." between segments.
func FormatVersion(src random.Source, kind VersionKind) string {
	return FormatVersionDelim(src, kind, ".")
}

// FormatVersionDelim renders kind joining segments with delim. Only
// KindOSX honours delim ("10_7_3" in WebKit platform tokens); every other
// kind is always dot-separated. Each numeric segment consumes one draw;
// literal segments consume none.
// It panics on a kind outside the supported set.
func FormatVersionDelim(src random.Source, kind VersionKind, delim string) string {
	r, ok := kind.rule()
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnsupportedVersionKind, int(kind)))
	}
	if kind != KindOSX {
		delim = "."
	}

	var sb strings.Builder
	for i, s := range r.segments {
		if i > 0 {
			sb.WriteString(delim)
		}
		if s.isLiteral() {
			sb.WriteString(s.literal)
			continue
		}
		sb.WriteString(strconv.Itoa(src.Number(s.min, s.max)))
	}
	return sb.String()
}

// RevisionSuffix returns count groups of ".d" with d in [0, 9], e.g. ".4.7".
func RevisionSuffix(src random.Source, count int) string {
	var sb strings.Builder
	for range count {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(src.Number(0, 9)))
	}
	return sb.String()
}
