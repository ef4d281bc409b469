// internal/matching/dto.go
// Request and response shapes for the matching HTTP API.

package matching

import (
	"net/http"
	"strconv"
)

// FindMatchesParams carries the query parameters of a match listing request.
type FindMatchesParams struct {
	Limit    int     `json:"limit" validate:"gte=0,lte=100"`
	Location string  `json:"location" validate:"max=120"`
	MinScore float64 `json:"minScore" validate:"gte=0,lte=100"`
}

// ParseFindMatchesParams reads limit, location and minScore from the query
// string. Malformed numbers fall back to defaults; range violations are left
// for struct validation to report.
func ParseFindMatchesParams(r *http.Request) *FindMatchesParams {
	params := &FindMatchesParams{}
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			params.Limit = limit
		}
	}
	params.Location = query.Get("location")
	if raw := query.Get("minScore"); raw != "" {
		if minScore, err := strconv.ParseFloat(raw, 64); err == nil {
			params.MinScore = minScore
		}
	}
	return params
}

// SingleMatchResponse reports the compatibility of one specific pair.
// Match is set only when Compatible is true.
type SingleMatchResponse struct {
	Compatible bool         `json:"compatible"`
	UserID     string       `json:"userId"`
	Reason     string       `json:"reason,omitempty"`
	Match      *MatchResult `json:"match,omitempty"`
}

type RefreshResponse struct {
	Message                string        `json:"message"`
	MatchCount             int           `json:"matchCount"`
	TotalCandidates        int           `json:"totalCandidates"`
	FilteredByDealBreakers int           `json:"filteredByDealBreakers"`
	Matches                []MatchResult `json:"matches"`
}

type ScoreDistribution struct {
	High   int `json:"high"`   // 80-100
	Medium int `json:"medium"` // 50-79
	Low    int `json:"low"`    // 0-49
}

type StatsSummary struct {
	ProfileComplete        bool              `json:"profileComplete"`
	TotalPotentialMatches  int               `json:"totalPotentialMatches"`
	FilteredByDealBreakers int               `json:"filteredByDealBreakers"`
	CompatibleMatches      int               `json:"compatibleMatches"`
	ScoreDistribution      ScoreDistribution `json:"scoreDistribution"`
	TopMatchScore          *float64          `json:"topMatchScore,omitempty"`
}

type DashboardStats struct {
	TotalPotentialMatches int      `json:"totalPotentialMatches"`
	CompatibleMatches     int      `json:"compatibleMatches"`
	HighCompatibility     int      `json:"highCompatibility"`
	MediumCompatibility   int      `json:"mediumCompatibility"`
	TopMatchScore         *float64 `json:"topMatchScore,omitempty"`
}

type Dashboard struct {
	ProfileComplete bool           `json:"profileComplete"`
	Stats           DashboardStats `json:"stats"`
	TopMatches      []MatchResult  `json:"topMatches"`
}
