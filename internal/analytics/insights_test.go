package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsightsStrongGrowth(t *testing.T) {
	insights := BuildInsights(InsightFacts{RevenueGrowthPct: 15.5})

	require.Len(t, insights, 1)
	assert.Equal(t, InsightPositive, insights[0].Type)
	assert.Equal(t, "Strong Growth", insights[0].Title)
	assert.Contains(t, insights[0].Message, "15.5%")
}

func TestBuildInsightsDecline(t *testing.T) {
	insights := BuildInsights(InsightFacts{RevenueGrowthPct: -12.0})

	require.Len(t, insights, 1)
	assert.Equal(t, InsightWarning, insights[0].Type)
	assert.Contains(t, insights[0].Message, "12.0%", "decline is reported as a positive magnitude")
}

func TestBuildInsightsThresholdBoundaries(t *testing.T) {
	// Exactly at the cut points nothing fires.
	assert.Empty(t, BuildInsights(InsightFacts{RevenueGrowthPct: 10.0}))
	assert.Empty(t, BuildInsights(InsightFacts{RevenueGrowthPct: -5.0}))
	assert.Empty(t, BuildInsights(InsightFacts{RevenueGrowthPct: 3.0}))
}

func TestBuildInsightsPeakAndBestseller(t *testing.T) {
	facts := InsightFacts{
		PeakHours: []PeakHour{{Hour: 12, Label: "12 PM", Orders: 42}},
		TopItems:  []RankedEntry{{Name: "Burger", Revenue: decimal.NewFromInt(1250)}},
	}

	insights := BuildInsights(facts)

	require.Len(t, insights, 2)
	assert.Equal(t, "Peak Hour Opportunity", insights[0].Title)
	assert.Contains(t, insights[0].Message, "12 PM")
	assert.Contains(t, insights[0].Message, "42")
	assert.Equal(t, "Bestseller Success", insights[1].Title)
	assert.Contains(t, insights[1].Message, "Burger")
	assert.Contains(t, insights[1].Message, "1250")
}

func TestBuildInsightsMenuOptimization(t *testing.T) {
	// 7/10 available < 0.8 → fires.
	insights := BuildInsights(InsightFacts{TotalMenuItems: 10, ActiveMenuItems: 7})
	require.Len(t, insights, 1)
	assert.Equal(t, InsightNeutral, insights[0].Type)
	assert.Equal(t, "Menu Optimization", insights[0].Title)

	// Exactly 0.8 does not fire.
	assert.Empty(t, BuildInsights(InsightFacts{TotalMenuItems: 10, ActiveMenuItems: 8}))
	// No menu at all does not fire.
	assert.Empty(t, BuildInsights(InsightFacts{TotalMenuItems: 0, ActiveMenuItems: 0}))
}

func TestBuildInsightsPriorityOrderAndCap(t *testing.T) {
	facts := InsightFacts{
		RevenueGrowthPct: 25.0,
		PeakHours:        []PeakHour{{Hour: 18, Label: "6 PM", Orders: 10}},
		TopItems:         []RankedEntry{{Name: "Pizza", Revenue: decimal.NewFromInt(900)}},
		TotalMenuItems:   10,
		ActiveMenuItems:  5,
	}

	insights := BuildInsights(facts)

	// Growth, peak, bestseller, and menu rules all fire; cap keeps 4.
	require.Len(t, insights, maxInsights)
	assert.Equal(t, "Strong Growth", insights[0].Title)
	assert.Equal(t, "Peak Hour Opportunity", insights[1].Title)
	assert.Equal(t, "Bestseller Success", insights[2].Title)
	assert.Equal(t, "Menu Optimization", insights[3].Title)
}

func TestBuildInsightsEmptyFacts(t *testing.T) {
	assert.Empty(t, BuildInsights(InsightFacts{}))
}
