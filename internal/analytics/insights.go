package analytics

import (
	"fmt"
	"math"
)

// InsightType signals how the dashboard renders an advisory entry.
type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightWarning  InsightType = "warning"
	InsightInfo     InsightType = "info"
	InsightNeutral  InsightType = "neutral"
)

// Insight is one advisory message synthesized from computed metrics.
type Insight struct {
	Type    InsightType `json:"type"`
	Icon    string      `json:"icon"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// InsightFacts are the metric outputs the rules evaluate against.
type InsightFacts struct {
	RevenueGrowthPct float64
	PeakHours        []PeakHour
	TopItems         []RankedEntry
	TotalMenuItems   int
	ActiveMenuItems  int
}

// Fixed policy cut points. Changing them changes advisory behavior for every
// vendor, so they are constants, not configuration.
const (
	strongGrowthThreshold   = 10.0
	declineThreshold        = -5.0
	menuAvailabilityMinimum = 0.8
	maxInsights             = 4
)

// insightRule pairs a firing predicate with a message builder. Rules are
// evaluated in declaration order; order encodes priority.
type insightRule struct {
	when  func(f InsightFacts) bool
	build func(f InsightFacts) Insight
}

var insightRules = []insightRule{
	{
		when: func(f InsightFacts) bool { return f.RevenueGrowthPct > strongGrowthThreshold },
		build: func(f InsightFacts) Insight {
			return Insight{
				Type:    InsightPositive,
				Icon:    "fas fa-trending-up",
				Title:   "Strong Growth",
				Message: fmt.Sprintf("Your revenue has increased by %.1f%% this month. Keep up the great work!", f.RevenueGrowthPct),
			}
		},
	},
	{
		when: func(f InsightFacts) bool { return f.RevenueGrowthPct < declineThreshold },
		build: func(f InsightFacts) Insight {
			return Insight{
				Type:    InsightWarning,
				Icon:    "fas fa-trending-down",
				Title:   "Revenue Decline",
				Message: fmt.Sprintf("Revenue decreased by %.1f%% this month. Consider promotional campaigns.", math.Abs(f.RevenueGrowthPct)),
			}
		},
	},
	{
		when: func(f InsightFacts) bool { return len(f.PeakHours) > 0 },
		build: func(f InsightFacts) Insight {
			busiest := f.PeakHours[0]
			return Insight{
				Type:    InsightInfo,
				Icon:    "fas fa-clock",
				Title:   "Peak Hour Opportunity",
				Message: fmt.Sprintf("Your busiest time is %s with %d orders. Consider special offers during peak hours.", busiest.Label, busiest.Orders),
			}
		},
	},
	{
		when: func(f InsightFacts) bool { return len(f.TopItems) > 0 },
		build: func(f InsightFacts) Insight {
			best := f.TopItems[0]
			return Insight{
				Type:    InsightPositive,
				Icon:    "fas fa-star",
				Title:   "Bestseller Success",
				Message: fmt.Sprintf("'%s' is your top performer with %s in sales. Consider promoting it more!", best.Name, best.Revenue.StringFixed(0)),
			}
		},
	},
	{
		when: func(f InsightFacts) bool {
			return f.TotalMenuItems > 0 &&
				float64(f.ActiveMenuItems)/float64(f.TotalMenuItems) < menuAvailabilityMinimum
		},
		build: func(f InsightFacts) Insight {
			return Insight{
				Type:    InsightNeutral,
				Icon:    "fas fa-utensils",
				Title:   "Menu Optimization",
				Message: "Some menu items aren't available. Update availability or remove items to streamline your menu.",
			}
		},
	},
}

// BuildInsights runs every rule in priority order and returns the fired
// insights, capped at 4 after generation. A rule firing never suppresses a
// later rule; only the cap limits output.
func BuildInsights(f InsightFacts) []Insight {
	insights := make([]Insight, 0, maxInsights)
	for _, rule := range insightRules {
		if rule.when(f) {
			insights = append(insights, rule.build(f))
		}
	}
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}
