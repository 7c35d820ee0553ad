package fixture_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uagen/pkg/fixture"
	"github.com/dmitrymomot/uagen/pkg/random"
	"github.com/dmitrymomot/uagen/pkg/random/randomtest"
	"github.com/dmitrymomot/uagen/pkg/useragent"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"text", "json", "yaml"} {
		f, err := fixture.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, fixture.Format(name), f)
	}

	_, err := fixture.ParseFormat("csv")
	assert.ErrorIs(t, err, fixture.ErrUnsupportedFormat)
}

func TestBuilder_Next(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
	b := fixture.NewBuilder(
		useragent.NewGenerator(randomtest.MinSource{}),
		fixture.WithIDFunc(func() uuid.UUID { return id }),
	)

	rec, err := b.Next()
	require.NoError(t, err)
	assert.Equal(t, fixture.Record{
		ID:        id,
		UserAgent: "Mozilla/5.0 (Windows; U; Windows NT 5.0) AppleWebKit/531.0.0 (KHTML, like Gecko) Chrome/13.0.800.0 Safari/531.0.0",
		Browser:   useragent.BrowserChrome,
		OS:        useragent.OSWindows,
	}, rec)
}

func TestBuilder_Batch(t *testing.T) {
	t.Parallel()

	b := fixture.NewBuilder(useragent.NewGenerator(random.New(3)), fixture.WithBrowser(useragent.BrowserSafari))
	records, err := b.Batch(50)
	require.NoError(t, err)
	require.Len(t, records, 50)

	ids := map[uuid.UUID]bool{}
	for _, r := range records {
		assert.Equal(t, useragent.BrowserSafari, r.Browser)
		assert.False(t, ids[r.ID], "ids must be unique")
		ids[r.ID] = true
	}

	_, err = b.Batch(0)
	assert.ErrorIs(t, err, fixture.ErrInvalidCount)

	_, err = fixture.NewBuilder(useragent.NewGenerator(random.New(3)), fixture.WithBrowser("edge")).Next()
	assert.ErrorIs(t, err, useragent.ErrUnknownBrowser)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	records, err := fixture.NewBuilder(useragent.NewGenerator(random.New(8))).Batch(3)
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, fixture.Write(&buf, fixture.FormatText, records))
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, records[1].UserAgent, lines[1])
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, fixture.Write(&buf, fixture.FormatJSON, records))
		sc := bufio.NewScanner(&buf)
		var got []fixture.Record
		for sc.Scan() {
			var r fixture.Record
			require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
			got = append(got, r)
		}
		assert.Equal(t, records, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, fixture.Write(&buf, fixture.FormatYAML, records))
		var got []map[string]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 3)
		assert.Equal(t, records[0].UserAgent, got[0]["user_agent"])
		assert.Equal(t, records[0].ID.String(), got[0]["id"])
	})

	t.Run("unsupported", func(t *testing.T) {
		assert.ErrorIs(t, fixture.Write(&bytes.Buffer{}, "xml", records), fixture.ErrUnsupportedFormat)
	})
}

func TestBuilder_SeededBatchRepeats(t *testing.T) {
	t.Parallel()

	encode := func(seed uint64) ([]fixture.Record, []byte) {
		records, err := fixture.NewBuilder(useragent.NewGenerator(random.New(seed))).Batch(10)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, fixture.Write(&buf, fixture.FormatJSON, records))
		return records, buf.Bytes()
	}

	recsA, jsonA := encode(42)
	recsB, jsonB := encode(42)
	assert.Equal(t, recsA, recsB)
	assert.Equal(t, string(jsonA), string(jsonB))

	for _, r := range recsA {
		assert.Equal(t, uuid.Version(4), r.ID.Version())
		assert.Equal(t, uuid.RFC4122, r.ID.Variant())
	}

	recsC, _ := encode(43)
	assert.NotEqual(t, recsA[0].ID, recsC[0].ID)
}

func TestBuilder_ReportsSampledKeys(t *testing.T) {
	t.Parallel()

	spec := useragent.DefaultSpec()
	spec.Browsers = random.Uniform(useragent.BrowserFirefox)
	spec.OS[useragent.BrowserFirefox] = random.Uniform("bsd")
	spec.Arch["bsd"] = random.Uniform("amd64")
	reg, err := useragent.NewRegistry(spec)
	require.NoError(t, err)

	rec, err := fixture.NewBuilder(useragent.NewGenerator(random.New(5), useragent.WithRegistry(reg))).Next()
	require.NoError(t, err)
	assert.Equal(t, useragent.BrowserFirefox, rec.Browser)
	assert.Equal(t, "bsd", rec.OS)
	assert.Contains(t, rec.UserAgent, "(X11; Linux amd64; rv:")
}

func TestBuilder_NoTemplate(t *testing.T) {
	t.Parallel()

	spec := useragent.DefaultSpec()
	spec.Browsers = random.Uniform("edge")
	spec.OS["edge"] = random.Uniform(useragent.OSWindows)
	reg, err := useragent.NewRegistry(spec)
	require.NoError(t, err)

	b := fixture.NewBuilder(useragent.NewGenerator(random.New(5), useragent.WithRegistry(reg)))
	_, err = b.Next()
	assert.ErrorIs(t, err, useragent.ErrNoTemplate)

	_, err = b.Batch(3)
	assert.ErrorIs(t, err, useragent.ErrNoTemplate)
}
