package economics

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEconomics_TabNavigation(t *testing.T) {
	s := New()
	assert.Equal(t, MarketTrends, s.Active())

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, MarketTrends, s.Active())

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, CostComparison, s.Active())

	s.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Equal(t, GrowthProjections, s.Active())

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, GrowthProjections, s.Active())

	s.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	assert.Equal(t, MarketTrends, s.Active())
}

func TestEconomics_MarketTrends(t *testing.T) {
	out := New().render(100)
	assert.Contains(t, out, "Global Isotope Market Trends")
	assert.Contains(t, out, "2015")
	assert.Contains(t, out, "2030")
	assert.Contains(t, out, "$7.1B")
	assert.Contains(t, out, "projection 2023-2030")
}

func TestEconomics_CostComparisonMarksMinima(t *testing.T) {
	s := New()
	s.setTab(CostComparison)
	out := s.render(120)

	assert.Contains(t, out, "Production Cost Comparison")
	assert.Contains(t, out, "$10"+minMarker)
	assert.Contains(t, out, "$30"+minMarker)
	assert.NotContains(t, out, "$8,000"+minMarker)
	assert.Contains(t, out, "Unit Production Cost Comparison")
	assert.Contains(t, out, "$150/unit")
}

func TestEconomics_CostTableCursor(t *testing.T) {
	s := New()
	s.setTab(CostComparison)
	out := s.render(120)
	require.Contains(t, out, "Research Reactor")
	require.Contains(t, out, "output capacity High")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.table.Cursor())
	assert.Contains(t, s.render(120), "output capacity Very High")
}

func TestEconomics_Growth(t *testing.T) {
	s := New()
	s.setTab(GrowthProjections)
	out := s.render(120)

	assert.Contains(t, out, "Projected CAGR 2023-2030")
	// (7.1 / 4.2)^(1/7) - 1
	assert.Contains(t, out, "7.8%")
	assert.Contains(t, out, "Year-over-Year Growth")
	assert.Contains(t, out, "2016")
	assert.False(t, strings.Contains(out, "2015 "), "first year has no predecessor")
}

func TestEconomics_KeyHintsFollowTab(t *testing.T) {
	s := New()
	assert.Equal(t, "Scroll", s.KeyHints()[1].Description)
	s.setTab(CostComparison)
	assert.Equal(t, "Row", s.KeyHints()[1].Description)
}
