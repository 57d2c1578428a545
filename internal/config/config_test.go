package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/panseq-form/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full definition", func(t *testing.T) {
		input := []byte(`version: "1"
lists:
  - name: query
    title: Query genomes
    items:
      - id: NC_000913.3
        label: Escherichia coli K-12 MG1655
      - id: NC_002695.2
    selected: [NC_002695.2]
  - name: reference
    items:
      - id: NC_000913.3
fields:
  - name: querySelected
    lists: [query]
  - name: referenceSelected
    lists: [reference]
tabs:
  - title: Pan-genome
    lists: [query, reference]
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "1", cfg.Version)
		require.Len(t, cfg.Lists, 2)
		assert.Equal(t, "query", cfg.Lists[0].Name)
		assert.Equal(t, "Escherichia coli K-12 MG1655", cfg.Lists[0].Items[0].Label)
		assert.Empty(t, cfg.Lists[0].Items[1].Label)
		assert.Equal(t, []string{"NC_002695.2"}, cfg.Lists[0].Selected)
		assert.Equal(t, []string{"reference"}, cfg.Fields[1].Lists)
		assert.Equal(t, "Pan-genome", cfg.Tabs[0].Title)
	})

	t.Run("lists only", func(t *testing.T) {
		cfg, err := config.Parse([]byte("lists:\n  - name: query\n    items: []\n"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Fields)
		assert.Empty(t, cfg.Tabs)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"duplicate list": `lists:
  - {name: query, items: []}
  - {name: query, items: []}
`,
		"unnamed list": `lists:
  - {items: []}
`,
		"duplicate item": `lists:
  - name: query
    items: [{id: a}, {id: a}]
`,
		"empty id": `lists:
  - name: query
    items: [{label: nameless}]
`,
		"selected unknown id": `lists:
  - name: query
    items: [{id: a}]
    selected: [b]
`,
		"field unknown list": `lists:
  - {name: query, items: []}
fields:
  - {name: querySelected, lists: [nope]}
`,
		"tab unknown list": `lists:
  - {name: query, items: []}
tabs:
  - {title: Pan, lists: [nope]}
`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(input))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Version = ""

	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	parsed, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, config.CurrentVersion, parsed.Version)
	assert.Equal(t, cfg.Lists, parsed.Lists)
	assert.Equal(t, cfg.Fields, parsed.Fields)
	assert.Equal(t, cfg.Tabs, parsed.Tabs)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Tabs, 3)

	_, ok := cfg.List("query-novel")
	assert.True(t, ok)
	_, ok = cfg.List("missing")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.yaml")
	data, err := config.Marshal(config.Default())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Lists, 3)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
