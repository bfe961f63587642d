package chat

import "time"

// Provenance tags where a surfaced entry came from, so curated fallback
// data is never confused with records read from the store.
type Provenance string

const (
	ProvenanceCurated Provenance = "curated"
	ProvenanceStore   Provenance = "store"
)

// OpenWindow is a fixed operating window for a curated provider. Start is
// inclusive and End exclusive, in local hours.
type OpenWindow struct {
	Days  []time.Weekday
	Start int
	End   int
	// Note is the text surfaced while the window is active.
	Note string
}

// CuratedProvider is one entry of the versioned fallback knowledge base
// used by the urgent-need branch. It is static data layered on top of the
// dynamic resource store, not derived from it.
type CuratedProvider struct {
	Source  Provenance
	Summary string
	Windows []OpenWindow
}

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// curatedFoodBanks is always surfaced in full by the urgent-need branch,
// in this order, regardless of open/closed state.
var curatedFoodBanks = []CuratedProvider{
	{
		Source:  ProvenanceCurated,
		Summary: "Matthews House Ministry (766 7th St NW, Grand Rapids, MI 49504) - Food pantry with fresh bread, produce, and groceries (ID may be required for food bank services)",
	},
	{
		Source:  ProvenanceCurated,
		Summary: "Feeding America West Michigan Food Bank (3070 Shaffer Ave SE) - Mon-Fri 8 AM-4 PM, Sat 9 AM-12 PM (ID required)",
		Windows: []OpenWindow{
			{Days: weekdays, Start: 8, End: 16, Note: "Feeding America West Michigan Food Bank is open until 4 PM today"},
			{Days: []time.Weekday{time.Saturday}, Start: 9, End: 12, Note: "Feeding America West Michigan Food Bank is open until 12 PM today"},
		},
	},
	{
		Source:  ProvenanceCurated,
		Summary: "North End Community Ministry (1005 Leonard St NE) - Food pantry: Tues & Thurs 10 AM-2 PM",
		Windows: []OpenWindow{
			{Days: weekdays, Start: 10, End: 14, Note: "North End Community Ministry is open until 2 PM today"},
		},
	},
	{
		Source:  ProvenanceCurated,
		Summary: "The Green Apple Pantry (4307 Kalamazoo Ave SE) - Wed & Fri 10 AM-2 PM (ID required)",
		Windows: []OpenWindow{
			{Days: weekdays, Start: 10, End: 14, Note: "The Green Apple Pantry is open until 2 PM today"},
		},
	},
	{
		Source:  ProvenanceCurated,
		Summary: "South End Community Outreach (1534 Jefferson Ave SE) - Food pantry: Mon & Wed 10 AM-2 PM",
		Windows: []OpenWindow{
			{Days: weekdays, Start: 10, End: 14, Note: "South End Community Outreach is open until 2 PM today"},
		},
	},
}

var (
	lunchOptions = []string{
		"Matthews House Ministry (766 7th St NW) - Free lunch served daily around 12 PM (no ID or documents needed)",
		"Heartside Ministry (54 S. Division Ave) - Breakfast 8-9:30 AM, Lunch 12-1 PM (no ID required)",
	}
	dinnerOptions = []string{
		"Degage Ministries (144 S. Division Ave) - Dinner served at 5 PM (no ID required)",
		"Mel Trotter Ministries (225 Commerce Ave SW) - Dinner served at 5:30 PM",
	}
	fallbackOptions = []string{
		"Many local churches offer free community meals - call 211 for the nearest one open today",
		"Hospital cafeterias often have affordable meal options",
	}
)

// ImmediateOptions returns the two meal entries for the current hour
// bracket: lunch services from 10:00-13:59, dinner services from
// 16:00-17:59, generic fallbacks otherwise.
func ImmediateOptions(hour int) []string {
	switch {
	case hour >= 10 && hour < 14:
		return lunchOptions
	case hour >= 16 && hour < 18:
		return dinnerOptions
	default:
		return fallbackOptions
	}
}

// OpenNow returns the curated providers with an operating window active at
// the given hour and weekday, in knowledge-base order.
func OpenNow(hour int, day time.Weekday) []string {
	open := []string{}
	for _, provider := range curatedFoodBanks {
		for _, w := range provider.Windows {
			if hour < w.Start || hour >= w.End {
				continue
			}
			for _, d := range w.Days {
				if d == day {
					open = append(open, w.Note)
					break
				}
			}
		}
	}
	return open
}

// FoodBankList returns the full curated food-bank summaries.
func FoodBankList() []string {
	list := make([]string, 0, len(curatedFoodBanks))
	for _, provider := range curatedFoodBanks {
		list = append(list, provider.Summary)
	}
	return list
}
