package useragent

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LoadRegistry reads distribution tables from a YAML (or JSON) document:
//
//	browsers:
//	  - {label: chrome, weight: 0.6}
//	  - {label: firefox, weight: 0.4}
//	os:
//	  chrome: [{label: win, weight: 1}]
//	  firefox: [{label: lin, weight: 1}]
//	arch:
//	  win: [{label: "WOW64", weight: 1}]
//	  lin: [{label: "x86_64", weight: 1}]
//	languages: [en, de]
//
// Tables are lists so registration order survives decoding. Sections that
// are omitted keep their compiled-in defaults. Language codes are upper-cased.
func LoadRegistry(r io.Reader) (*Registry, error) {
	var doc RegistrySpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrMalformedTables, err)
	}

	spec := DefaultSpec()
	if doc.Browsers != nil {
		spec.Browsers = doc.Browsers
	}
	if doc.OS != nil {
		spec.OS = doc.OS
	}
	if doc.Arch != nil {
		spec.Arch = doc.Arch
	}
	if doc.Languages != nil {
		upper := cases.Upper(language.Und)
		spec.Languages = make([]string, len(doc.Languages))
		for i, l := range doc.Languages {
			spec.Languages[i] = upper.String(l)
		}
	}

	return NewRegistry(spec)
}

// LoadRegistryFile is LoadRegistry over a file path.
func LoadRegistryFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tables file: %w", err)
	}
	defer f.Close()
	return LoadRegistry(f)
}

// WriteRegistryYAML dumps the registry tables as YAML.
func WriteRegistryYAML(w io.Writer, r *Registry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Spec()); err != nil {
		return err
	}
	return enc.Close()
}

// WriteRegistryJSON dumps the registry tables as JSON.
func WriteRegistryJSON(w io.Writer, r *Registry) error {
	return json.NewEncoder(w).Encode(r.Spec())
}
