// internal/matching/helpers.go
// Shared extraction and normalization utilities for the category scorers.

package matching

import (
	"strconv"
	"strings"
)

// Neutral fallback score per category, used when a profile carries no data
// for the category or when a scorer fails.
const (
	neutralBudgetScore      = 50.0
	neutralLifestyleScore   = 50.0
	neutralPersonalityScore = 60.0
	neutralScheduleScore    = 65.0
	neutralLocationScore    = 60.0
	neutralPreferencesScore = 60.0
	neutralInterestsScore   = 50.0
)

// rangeOverlap returns the overlap ratio between two ranges in [0, 1]:
// intersection length divided by the smaller range length. Two coinciding
// point ranges (min == max on both sides, equal values) count as a full
// overlap rather than dividing by zero; any other degenerate range counts
// as no overlap.
func rangeOverlap(min1, max1, min2, max2 float64) float64 {
	start := min1
	if min2 > start {
		start = min2
	}
	end := max1
	if max2 < end {
		end = max2
	}

	smaller := max1 - min1
	if other := max2 - min2; other < smaller {
		smaller = other
	}

	overlap := end - start
	if smaller <= 0 {
		if max1 == min1 && max2 == min2 && min1 == min2 {
			return 1.0
		}
		return 0.0
	}
	if overlap <= 0 {
		return 0.0
	}
	if overlap > smaller {
		return 1.0
	}
	return overlap / smaller
}

// timeDifferenceHours returns the absolute difference between two "HH:MM"
// time strings in hours, wrapping around midnight (23:00 vs 01:00 is two
// hours apart, not twenty-two). ok is false for malformed input.
func timeDifferenceHours(time1, time2 string) (float64, bool) {
	minutes1, ok := parseClock(time1)
	if !ok {
		return 0, false
	}
	minutes2, ok := parseClock(time2)
	if !ok {
		return 0, false
	}

	diff := minutes1 - minutes2
	if diff < 0 {
		diff = -diff
	}
	if wrapped := 1440 - diff; wrapped < diff {
		diff = wrapped
	}

	return float64(diff) / 60, true
}

func parseClock(value string) (int, bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// weightedAverage combines paired scores and weights; fallback is returned
// when no pairs were collected.
func weightedAverage(scores, weights []float64, fallback float64) float64 {
	if len(scores) == 0 || len(weights) == 0 {
		return fallback
	}

	var weightedSum, totalWeight float64
	for i := range scores {
		weightedSum += scores[i] * weights[i]
		totalWeight += weights[i]
	}
	if totalWeight <= 0 {
		return fallback
	}
	return weightedSum / totalWeight
}

// titleWords uppercases the first letter of each space-separated word,
// for display in explanation strings.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func derefFloat(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func derefString(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}
