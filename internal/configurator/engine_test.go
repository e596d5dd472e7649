package configurator

import (
	"strings"
	"testing"

	"EportsTech/internal/entity"
	"EportsTech/internal/localization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, order int, visible bool, titleES, benefitES string) entity.ConfiguratorItem {
	return entity.ConfiguratorItem{
		ID:       id,
		Category: entity.CategoryNetworking,
		Title:    entity.LocalizedText{entity.LanguageES: titleES, entity.LanguageEN: titleES + "-en"}.Normalize(),
		Benefit:  entity.LocalizedText{entity.LanguageES: benefitES, entity.LanguageEN: benefitES + "-en"}.Normalize(),
		Visible:  visible,
		Order:    order,
	}
}

func loaded(t *testing.T, items ...entity.ConfiguratorItem) *Engine {
	t.Helper()
	e := New(nil)
	require.NoError(t, e.Load(items, UniformOptional))
	return e
}

func TestLoadFiltersAndOrders(t *testing.T) {
	e := loaded(t,
		item("c", 2, true, "C", "c"),
		item("hidden", 0, false, "H", "h"),
		item("a", 1, true, "A", "a"),
	)

	items := e.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[1].ID)
	for _, it := range items {
		assert.False(t, it.Selected)
		assert.Equal(t, LevelOptional, it.Level)
	}
	assert.Equal(t, StateReady, e.State())
}

func TestLoadRequiresRule(t *testing.T) {
	e := New(nil)
	assert.ErrorIs(t, e.Load(nil, nil), ErrNoLevelRule)
	assert.Equal(t, StateLoading, e.State())
}

func TestLoadAppliesRule(t *testing.T) {
	e := New(nil)
	rule := func(it entity.ConfiguratorItem) Level {
		if it.ID == "a" {
			return LevelEssential
		}
		return LevelRecommended
	}
	require.NoError(t, e.Load([]entity.ConfiguratorItem{item("a", 0, true, "A", "a"), item("b", 1, true, "B", "b")}, rule))
	assert.Equal(t, LevelEssential, e.Items()[0].Level)
	assert.Equal(t, LevelRecommended, e.Items()[1].Level)
}

func TestToggleBeforeLoad(t *testing.T) {
	e := New(nil)
	assert.ErrorIs(t, e.Toggle("a"), ErrNotReady)
	_, err := e.RequestQuote(entity.LanguageES)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestToggleUnknown(t *testing.T) {
	e := loaded(t, item("a", 0, true, "A", "a"))
	assert.ErrorIs(t, e.Toggle("nope"), ErrItemNotFound)
	assert.Equal(t, 0, e.SelectedCount())
}

func TestDoubleToggleIsIdentity(t *testing.T) {
	e := loaded(t,
		item("a", 0, true, "A", "a"),
		item("b", 1, true, "B", "b"),
		item("c", 2, true, "C", "c"),
	)
	require.NoError(t, e.Toggle("b"))
	before := e.Selected()

	require.NoError(t, e.Toggle("c"))
	require.NoError(t, e.Toggle("c"))

	assert.Equal(t, before, e.Selected())
	assert.Equal(t, 1, e.SelectedCount())
}

func TestSelectedKeepsSortOrder(t *testing.T) {
	e := loaded(t,
		item("a", 0, true, "Fibra", "Rápida"),
		item("b", 1, true, "VPN", "Segura"),
		item("c", 2, true, "Cloud", "Escalable"),
	)
	require.NoError(t, e.Toggle("c"))
	require.NoError(t, e.Toggle("a"))

	assert.Equal(t, 2, e.SelectedCount())
	sel := e.Selected()
	require.Len(t, sel, 2)
	assert.Equal(t, "a", sel[0].ID)
	assert.Equal(t, "c", sel[1].ID)

	q, err := e.RequestQuote(entity.LanguageES)
	require.NoError(t, err)
	lines := strings.Split(q.Message, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, localization.QuoteIntro(entity.LanguageES), lines[0])
	assert.Equal(t, "- Fibra (Rápida)", lines[1])
	assert.Equal(t, "- Cloud (Escalable)", lines[2])
	assert.Equal(t, entity.ServiceInterestCustomConfiguration, q.ServiceInterest)
	assert.Len(t, q.Items, 2)
	assert.Equal(t, StateSummaryReady, e.State())
}

func TestQuoteLineCountMatchesSelection(t *testing.T) {
	all := []entity.ConfiguratorItem{
		item("a", 0, true, "A", "a"),
		item("b", 1, true, "B", "b"),
		item("c", 2, true, "C", "c"),
		item("d", 3, true, "D", "d"),
	}
	// every subset of four items
	for mask := 0; mask < 1<<len(all); mask++ {
		e := loaded(t, all...)
		want := 0
		for i, it := range all {
			if mask&(1<<i) != 0 {
				require.NoError(t, e.Toggle(it.ID))
				want++
			}
		}
		for _, lang := range entity.SupportedLanguages {
			q, err := e.RequestQuote(lang)
			require.NoError(t, err)
			lines := strings.Split(q.Message, "\n")
			assert.Len(t, lines, want+1)
			for i, it := range e.Selected() {
				assert.Contains(t, lines[i+1], localization.Text(it.Title, lang, nil))
				assert.Contains(t, lines[i+1], localization.Text(it.Benefit, lang, nil))
			}
		}
	}
}

func TestQuoteFallsBackToBundledCopy(t *testing.T) {
	bundled := []entity.ConfiguratorItem{{
		ID:      "a",
		Title:   entity.LocalizedText{entity.LanguageEN: "Bundled"},
		Benefit: entity.LocalizedText{entity.LanguageEN: "Benefit"},
	}}
	e := New(bundled)
	stored := entity.ConfiguratorItem{ID: "a", Visible: true, Title: entity.EmptyLocalizedText(), Benefit: entity.EmptyLocalizedText()}
	require.NoError(t, e.Load([]entity.ConfiguratorItem{stored}, UniformOptional))
	require.NoError(t, e.Toggle("a"))

	q, err := e.RequestQuote(entity.LanguageDE)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(q.Message, "\n- Bundled (Benefit)"))
}

func TestQuoteStripsEmbeddedNewlines(t *testing.T) {
	e := loaded(t, item("a", 0, true, "Line\nbreak", "x"))
	require.NoError(t, e.Toggle("a"))
	q, err := e.RequestQuote(entity.LanguageES)
	require.NoError(t, err)
	assert.Len(t, strings.Split(q.Message, "\n"), 2)
}

func TestSnapshotRestore(t *testing.T) {
	e := loaded(t, item("a", 0, true, "A", "a"), item("b", 1, true, "B", "b"))
	require.NoError(t, e.Toggle("b"))

	restored := Restore(e.Snapshot(), nil)
	assert.Equal(t, StateReady, restored.State())
	assert.Equal(t, 1, restored.SelectedCount())

	require.NoError(t, restored.Toggle("b"))
	assert.Equal(t, 0, restored.SelectedCount())
	assert.Equal(t, 1, e.SelectedCount())
}
