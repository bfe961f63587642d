package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImmediateOptions(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		contains string
	}{
		{"lunch window start", 10, "Free lunch"},
		{"lunch window end", 13, "Free lunch"},
		{"dinner window", 16, "Dinner served"},
		{"dinner window end", 17, "Dinner served"},
		{"early morning fallback", 6, "call 211"},
		{"late night fallback", 22, "call 211"},
		{"between lunch and dinner fallback", 14, "call 211"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := ImmediateOptions(tt.hour)
			assert.Len(t, options, 2)
			assert.Contains(t, options[0], tt.contains)
		})
	}
}

func TestOpenNow(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		day      time.Weekday
		expected int
	}{
		{"weekday late morning, all four open", 11, time.Tuesday, 4},
		{"weekday early morning, only the big bank", 9, time.Monday, 1},
		{"weekday after pantry hours", 15, time.Friday, 1},
		{"weekday evening, nothing open", 18, time.Wednesday, 0},
		{"saturday morning window", 10, time.Saturday, 1},
		{"saturday afternoon closed", 13, time.Saturday, 0},
		{"sunday always closed", 11, time.Sunday, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, OpenNow(tt.hour, tt.day), tt.expected)
		})
	}
}

func TestOpenNow_SaturdayNote(t *testing.T) {
	open := OpenNow(10, time.Saturday)
	assert.Equal(t, []string{"Feeding America West Michigan Food Bank is open until 12 PM today"}, open)
}

func TestFoodBankList(t *testing.T) {
	list := FoodBankList()
	assert.Len(t, list, 5)
	// Matthews House leads the list regardless of open state.
	assert.Contains(t, list[0], "Matthews House Ministry")
}

func TestCuratedProvenance(t *testing.T) {
	for _, provider := range curatedFoodBanks {
		assert.Equal(t, ProvenanceCurated, provider.Source)
	}
}
