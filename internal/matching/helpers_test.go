// internal/matching/helpers_test.go

package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		min1, max1, min2, max2 float64
		want                   float64
	}{
		{"identical ranges", 1000, 2000, 1000, 2000, 1.0},
		{"no overlap", 1000, 2000, 3000, 4000, 0.0},
		{"full containment", 1000, 4000, 2000, 3000, 1.0},
		{"half overlap of smaller", 1000, 2000, 1500, 2500, 0.5},
		{"touching edges", 1000, 2000, 2000, 3000, 0.0},
		{"coinciding point ranges", 2000, 2000, 2000, 2000, 1.0},
		{"point inside other range", 1500, 1500, 1000, 2000, 0.0},
		{"point outside other range", 2500, 2500, 1000, 2000, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rangeOverlap(tt.min1, tt.max1, tt.min2, tt.max2)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTimeDifferenceHours(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		want   float64
		wantOK bool
	}{
		{"same time", "07:00", "07:00", 0, true},
		{"one hour", "07:00", "08:00", 1, true},
		{"order independent", "08:00", "07:00", 1, true},
		{"wraps around midnight", "23:00", "01:00", 2, true},
		{"wrap half hour", "23:30", "00:00", 0.5, true},
		{"half day", "06:00", "18:00", 12, true},
		{"malformed first", "7am", "08:00", 0, false},
		{"missing minutes", "07", "08:00", 0, false},
		{"out of range hour", "25:00", "08:00", 0, false},
		{"out of range minute", "07:61", "08:00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := timeDifferenceHours(tt.a, tt.b)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestWeightedAverage(t *testing.T) {
	assert.Equal(t, 60.0, weightedAverage(nil, nil, 60))
	assert.Equal(t, 30.0, weightedAverage([]float64{30}, []float64{25}, 60))
	assert.InDelta(t, 80.0, weightedAverage([]float64{100, 60}, []float64{50, 50}, 0), 1e-9)
	assert.InDelta(t, 90.0, weightedAverage([]float64{100, 60}, []float64{75, 25}, 0), 1e-9)
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Warsaw", titleWords("warsaw"))
	assert.Equal(t, "New York City", titleWords("new york city"))
	assert.Equal(t, "", titleWords(""))
}
