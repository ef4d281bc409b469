// internal/matching/explanations.go

package matching

import "sort"

// Impact classifies how a factor affected the match.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

// Explanation is a single human-readable reason attached to a match.
// A category may contribute zero, one, or several entries; no
// deduplication is performed.
type Explanation struct {
	Category string  `json:"category"`
	Reason   string  `json:"reason"`
	Impact   Impact  `json:"impact"`
	Score    float64 `json:"score"`
}

var impactRank = map[Impact]int{
	ImpactPositive: 0,
	ImpactNeutral:  1,
	ImpactNegative: 2,
}

func rankOf(impact Impact) int {
	if rank, ok := impactRank[impact]; ok {
		return rank
	}
	return 1
}

// sortExplanations orders entries positive first, then neutral, then
// negative, and within the same impact by descending score. The sort is
// stable so equal entries keep the order their scorers produced them in;
// report generation depends on this exact ordering.
func sortExplanations(explanations []Explanation) {
	sort.SliceStable(explanations, func(i, j int) bool {
		ri, rj := rankOf(explanations[i].Impact), rankOf(explanations[j].Impact)
		if ri != rj {
			return ri < rj
		}
		return explanations[i].Score > explanations[j].Score
	})
}
