package commands_test

import (
	"testing"

	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/ruminaider/panseq-form/internal/config"
	"github.com/ruminaider/panseq-form/internal/form"
	"github.com/ruminaider/panseq-form/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Version: "1",
		Lists: []config.List{
			{Name: "query", Title: "Query genomes", Items: []config.Item{
				{ID: "w", Label: "Genome W"}, {ID: "x"}, {ID: "y"},
			}},
			{Name: "query-novel", Items: []config.Item{{ID: "z"}}},
			{Name: "reference", Items: []config.Item{{ID: "r1"}, {ID: "r2"}}, Selected: []string{"r2"}},
		},
		Tabs: []config.Tab{
			{Title: "Pan-genome", Lists: []string{"query", "reference"}},
			{Title: "Novel regions", Lists: []string{"query", "query-novel", "reference"}},
		},
	}
}

func TestNewSession(t *testing.T) {
	s, err := commands.NewSession(testConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"query", "query-novel", "reference"}, s.Registry.Names())
	assert.Equal(t, form.DefaultLayout(), s.Layout)
	assert.Equal(t, "Query genomes", s.Titles["query"])
	assert.Equal(t, "query-novel", s.Titles["query-novel"])
	assert.Len(t, s.Tabs, 2)

	ref, ok := s.Registry.Pair("reference")
	require.True(t, ok)
	assert.Equal(t, []string{"r2"}, ref.TargetIDs())
	assert.Equal(t, []string{"r1"}, transfer.IDs(ref.Visible(transfer.Source)))
}

func TestNewSession_DefaultTab(t *testing.T) {
	cfg := testConfig()
	cfg.Tabs = nil
	s, err := commands.NewSession(cfg)
	require.NoError(t, err)
	require.Len(t, s.Tabs, 1)
	assert.Equal(t, []string{"query", "query-novel", "reference"}, s.Tabs[0].Lists)
}

func TestNewSession_CustomLayout(t *testing.T) {
	cfg := testConfig()
	cfg.Fields = []config.Field{{Name: "genomes", Lists: []string{"reference", "query"}}}
	s, err := commands.NewSession(cfg)
	require.NoError(t, err)
	assert.Equal(t, form.Layout{{Name: "genomes", Lists: []string{"reference", "query"}}}, s.Layout)

	sub, err := s.Submit(0)
	require.NoError(t, err)
	v, _ := sub.Get("genomes")
	assert.Equal(t, "r2", v)
}

func TestNewSession_DuplicateItem(t *testing.T) {
	cfg := testConfig()
	cfg.Lists[0].Items = append(cfg.Lists[0].Items, config.Item{ID: "x"})
	_, err := commands.NewSession(cfg)
	assert.ErrorIs(t, err, transfer.ErrDuplicateItem)
}

func TestSessionLists(t *testing.T) {
	s, err := commands.NewSession(testConfig())
	require.NoError(t, err)

	lists := s.Lists()
	require.Len(t, lists, 3)
	assert.Equal(t, "reference", lists[2].Name)
	assert.Equal(t, []string{"r1"}, transfer.IDs(lists[2].Source))
	assert.Equal(t, []string{"r2"}, transfer.IDs(lists[2].Target))
}

func TestSubmit_UnmappedTab(t *testing.T) {
	s, err := commands.NewSession(testConfig())
	require.NoError(t, err)
	_, err = s.Submit(3)
	assert.ErrorIs(t, err, form.ErrUnmappedTabIndex)
}

func TestSubmit_OnlyActiveTabLists(t *testing.T) {
	s, err := commands.NewSession(testConfig())
	require.NoError(t, err)
	require.NoError(t, commands.ApplyPicks(s.Registry, []commands.Pick{
		{List: "query", IDs: []string{"x"}},
		{List: "query-novel", IDs: []string{"z"}},
	}))

	// Pan-genome shows query and reference, not query-novel.
	sub, err := s.Submit(0)
	require.NoError(t, err)
	q, _ := sub.Get(form.FieldQuery)
	assert.Equal(t, "x", q)
	r, _ := sub.Get(form.FieldReference)
	assert.Equal(t, "r2", r)

	sub, err = s.Submit(1)
	require.NoError(t, err)
	q, _ = sub.Get(form.FieldQuery)
	assert.Equal(t, "x,z", q)
}

func TestSubmit_UndeclaredTab(t *testing.T) {
	s, err := commands.NewSession(testConfig())
	require.NoError(t, err)
	_, err = s.Submit(2)
	assert.ErrorIs(t, err, commands.ErrUnknownTab)
}
