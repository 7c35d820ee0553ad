package useragent_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uagen/pkg/random"
	"github.com/dmitrymomot/uagen/pkg/useragent"
)

const customTables = `
browsers:
  - {label: firefox, weight: 0.7}
  - {label: chrome, weight: 0.3}
os:
  firefox:
    - {label: lin, weight: 1}
  chrome:
    - {label: win, weight: 0.5}
    - {label: mac, weight: 0.5}
languages: [en, de]
`

func TestLoadRegistry(t *testing.T) {
	t.Parallel()

	r, err := useragent.LoadRegistry(strings.NewReader(customTables))
	require.NoError(t, err)

	assert.Equal(t, random.Table{
		{Label: "firefox", Weight: 0.7},
		{Label: "chrome", Weight: 0.3},
	}, r.BrowserWeights(), "order must follow the document")

	assert.Equal(t, []string{"EN", "DE"}, r.Languages())

	// arch section omitted, defaults kept
	win, err := r.ArchWeights(useragent.OSWindows)
	require.NoError(t, err)
	assert.Len(t, win, 3)

	_, err = r.OSWeights(useragent.BrowserSafari)
	assert.ErrorIs(t, err, useragent.ErrUnknownBrowser)
}

func TestLoadRegistry_Empty(t *testing.T) {
	t.Parallel()

	r, err := useragent.LoadRegistry(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, useragent.DefaultRegistry().Spec(), r.Spec())
}

func TestLoadRegistry_Errors(t *testing.T) {
	t.Parallel()

	_, err := useragent.LoadRegistry(strings.NewReader("browsers: [{label: chrome, weight: 1, extra: 2}]"))
	assert.ErrorIs(t, err, useragent.ErrMalformedTables)

	_, err = useragent.LoadRegistry(strings.NewReader("browsers: [{label: edge, weight: 1}]"))
	assert.ErrorIs(t, err, useragent.ErrUnknownBrowser)

	_, err = useragent.LoadRegistry(strings.NewReader("browsers: [{label: chrome, weight: 0}]"))
	assert.ErrorIs(t, err, useragent.ErrInvalidDistribution)
}

func TestLoadRegistryFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customTables), 0o600))

	r, err := useragent.LoadRegistryFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"firefox", "chrome"}, r.BrowserWeights().Labels())

	_, err = useragent.LoadRegistryFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteRegistry_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, useragent.WriteRegistryYAML(&buf, useragent.DefaultRegistry()))

	r, err := useragent.LoadRegistry(&buf)
	require.NoError(t, err)
	assert.Equal(t, useragent.DefaultRegistry().Spec(), r.Spec())

	buf.Reset()
	require.NoError(t, useragent.WriteRegistryJSON(&buf, useragent.DefaultRegistry()))
	var spec useragent.RegistrySpec
	require.NoError(t, json.Unmarshal(buf.Bytes(), &spec))
	assert.Equal(t, useragent.DefaultRegistry().BrowserWeights(), spec.Browsers)
}
