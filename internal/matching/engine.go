// internal/matching/engine.go
// Deterministic, explainable compatibility engine for ranking candidate
// flatmates against a seeker. The engine is stateless: every call works on
// caller-owned snapshots, so concurrent use needs no coordination.
//
// The algorithm works in three phases:
//  1. Bidirectional deal-breaker filtering: reject if either party objects
//  2. Multi-dimensional scoring: seven weighted category scorers
//  3. Explanation generation: ordered human-readable reasons per match

package matching

import (
	"fmt"
	"log"
	"math"
	"sort"
)

// Weights distributes 100 points across the seven scoring categories.
// The total must be exactly 100; NewEngine rejects anything else.
type Weights struct {
	Budget      int `json:"budget"`
	Lifestyle   int `json:"lifestyle"`
	Personality int `json:"personality"`
	Schedule    int `json:"schedule"`
	Location    int `json:"location"`
	Preferences int `json:"preferences"`
	Interests   int `json:"interests"`
}

// DefaultWeights is the production weight table.
func DefaultWeights() Weights {
	return Weights{
		Budget:      20, // financial alignment - critical for shared living
		Lifestyle:   25, // daily habits - smoking, pets, cleanliness, cooking
		Personality: 15, // social compatibility
		Schedule:    12, // sleep, wake, work hours
		Location:    10, // geographic preference alignment
		Preferences: 10, // age, gender, lease duration, languages
		Interests:   8,  // shared hobbies
	}
}

func (w Weights) sum() int {
	return w.Budget + w.Lifestyle + w.Personality + w.Schedule + w.Location + w.Preferences + w.Interests
}

// Match quality tiers by minimum score.
const (
	TierPerfect = "perfect" // >= 85
	TierGreat   = "great"   // >= 70
	TierGood    = "good"    // >= 55
	TierFair    = "fair"    // >= 40
	TierPoor    = "poor"
)

// ScoreBreakdown carries the seven category scores plus the weighted total,
// each rounded to one decimal.
type ScoreBreakdown struct {
	BudgetScore      float64 `json:"budgetScore"`
	LifestyleScore   float64 `json:"lifestyleScore"`
	PersonalityScore float64 `json:"personalityScore"`
	ScheduleScore    float64 `json:"scheduleScore"`
	LocationScore    float64 `json:"locationScore"`
	PreferencesScore float64 `json:"preferencesScore"`
	InterestsScore   float64 `json:"interestsScore"`
	TotalScore       float64 `json:"totalScore"`
}

// MatchResult is one surviving candidate with its score and explanations.
type MatchResult struct {
	UserID             string         `json:"userId"`
	Username           string         `json:"username"`
	Firstname          *string        `json:"firstname,omitempty"`
	Lastname           *string        `json:"lastname,omitempty"`
	Photo              *string        `json:"photo,omitempty"`
	Age                *int           `json:"age,omitempty"`
	Gender             *Gender        `json:"gender,omitempty"`
	Bio                *string        `json:"bio,omitempty"`
	Location           *string        `json:"location,omitempty"`
	Languages          []string       `json:"languages,omitempty"`
	CompatibilityScore float64        `json:"compatibilityScore"`
	MatchTier          string         `json:"matchTier"`
	ScoreBreakdown     ScoreBreakdown `json:"scoreBreakdown"`
	Explanations       []Explanation  `json:"explanations"`
	SharedInterests    []string       `json:"sharedInterests"`
	SharedLanguages    []string       `json:"sharedLanguages"`
	Compatible         bool           `json:"compatible"`
}

// MatchStats summarizes the full filtered+scored set, computed before the
// result list is truncated to the requested limit.
type MatchStats struct {
	AverageScore   float64 `json:"averageScore"`
	HighestScore   float64 `json:"highestScore"`
	LowestScore    float64 `json:"lowestScore"`
	PerfectMatches int     `json:"perfectMatches"`
	GreatMatches   int     `json:"greatMatches"`
	GoodMatches    int     `json:"goodMatches"`
	FairMatches    int     `json:"fairMatches"`
	PoorMatches    int     `json:"poorMatches"`
}

// MatchOutcome is the full result of one FindMatches call.
type MatchOutcome struct {
	Matches                []MatchResult `json:"matches"`
	TotalCandidates        int           `json:"totalCandidates"`
	FilteredByDealBreakers int           `json:"filteredByDealBreakers"`
	Stats                  MatchStats    `json:"stats"`

	// ExclusionReasons maps candidate ID to the deal-breaker that fired.
	// Diagnostic only, never serialized.
	ExclusionReasons map[string]string `json:"-"`
}

// Engine computes compatibility scores. Construct with NewEngine; the
// weight table is validated once and never mutated afterwards.
type Engine struct {
	weights Weights
}

// NewEngine validates the weight table and returns a ready engine.
func NewEngine(weights Weights) (*Engine, error) {
	if total := weights.sum(); total != 100 {
		return nil, fmt.Errorf("matching: weights must sum to 100, got %d", total)
	}
	return &Engine{weights: weights}, nil
}

// DefaultLimit is applied when FindMatches is called with limit <= 0.
const DefaultLimit = 20

// FindMatches ranks candidates against the seeker.
//
// Candidates are first run through the bidirectional deal-breaker filter;
// survivors are scored across seven categories, combined by weight, and
// sorted by descending score. Ties keep candidate input order. The result
// list is cut to limit, but TotalCandidates, FilteredByDealBreakers and
// Stats always describe the full input.
func (e *Engine) FindMatches(seeker *Profile, candidates []*Profile, limit int, minScore float64) *MatchOutcome {
	if limit <= 0 {
		limit = DefaultLimit
	}

	outcome := &MatchOutcome{
		Matches:          []MatchResult{},
		TotalCandidates:  len(candidates) - 1, // excluding self
		ExclusionReasons: make(map[string]string),
	}
	if outcome.TotalCandidates < 0 {
		outcome.TotalCandidates = 0
	}

	for _, candidate := range candidates {
		if candidate.ID == seeker.ID {
			continue
		}

		// Phase 1: bidirectional deal-breaker check.
		if reason := checkDealBreakers(seeker, candidate); reason != "" {
			outcome.FilteredByDealBreakers++
			outcome.ExclusionReasons[candidate.ID] = reason
			continue
		}
		if reason := checkDealBreakers(candidate, seeker); reason != "" {
			outcome.FilteredByDealBreakers++
			outcome.ExclusionReasons[candidate.ID] = "Mutual: " + reason
			continue
		}

		// Phase 2: weighted compatibility score.
		total, breakdown, explanations := e.scorePair(seeker, candidate)
		if total < minScore {
			continue
		}

		outcome.Matches = append(outcome.Matches, MatchResult{
			UserID:             candidate.ID,
			Username:           candidate.Username,
			Firstname:          candidate.Firstname,
			Lastname:           candidate.Lastname,
			Photo:              candidate.Photo,
			Age:                candidate.Age,
			Gender:             candidate.Gender,
			Bio:                candidate.Bio,
			Location:           candidate.Location,
			Languages:          candidate.Languages,
			CompatibilityScore: round1(total),
			MatchTier:          matchTier(total),
			ScoreBreakdown:     breakdown,
			Explanations:       explanations,
			SharedInterests:    sharedInterests(seeker, candidate),
			SharedLanguages:    sharedLanguages(seeker, candidate),
			Compatible:         true,
		})
	}

	sort.SliceStable(outcome.Matches, func(i, j int) bool {
		return outcome.Matches[i].CompatibilityScore > outcome.Matches[j].CompatibilityScore
	})

	outcome.Stats = calculateStats(outcome.Matches)

	if len(outcome.Matches) > limit {
		outcome.Matches = outcome.Matches[:limit]
	}

	return outcome
}

// scorePair runs the seven category scorers and combines them by weight.
// A scorer that panics is replaced by its neutral default so one bad
// candidate never aborts the batch.
func (e *Engine) scorePair(seeker, candidate *Profile) (float64, ScoreBreakdown, []Explanation) {
	var explanations []Explanation

	run := func(category string, neutral float64, scorer func(seeker, candidate *Profile) (float64, []Explanation)) float64 {
		score, entries := safeScore(category, neutral, scorer, seeker, candidate)
		explanations = append(explanations, entries...)
		return score
	}

	budget := run("Budget", neutralBudgetScore, scoreBudget)
	lifestyle := run("Lifestyle", neutralLifestyleScore, scoreLifestyle)
	personality := run("Personality", neutralPersonalityScore, scorePersonality)
	schedule := run("Schedule", neutralScheduleScore, scoreSchedule)
	location := run("Location", neutralLocationScore, scoreLocation)
	preferences := run("Preferences", neutralPreferencesScore, scorePreferences)
	interests := run("Interests", neutralInterestsScore, scoreInterests)

	total := budget*float64(e.weights.Budget)/100 +
		lifestyle*float64(e.weights.Lifestyle)/100 +
		personality*float64(e.weights.Personality)/100 +
		schedule*float64(e.weights.Schedule)/100 +
		location*float64(e.weights.Location)/100 +
		preferences*float64(e.weights.Preferences)/100 +
		interests*float64(e.weights.Interests)/100

	sortExplanations(explanations)

	breakdown := ScoreBreakdown{
		BudgetScore:      round1(budget),
		LifestyleScore:   round1(lifestyle),
		PersonalityScore: round1(personality),
		ScheduleScore:    round1(schedule),
		LocationScore:    round1(location),
		PreferencesScore: round1(preferences),
		InterestsScore:   round1(interests),
		TotalScore:       round1(total),
	}

	return total, breakdown, explanations
}

// safeScore shields the aggregator from a panicking scorer: the category
// falls back to its neutral default instead of failing the whole batch.
func safeScore(category string, neutral float64, scorer func(seeker, candidate *Profile) (float64, []Explanation), seeker, candidate *Profile) (score float64, explanations []Explanation) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("matching: %s scorer panicked (%v), using neutral score %.0f", category, r, neutral)
			score = neutral
			explanations = nil
		}
	}()
	return scorer(seeker, candidate)
}

func matchTier(score float64) string {
	switch {
	case score >= 85:
		return TierPerfect
	case score >= 70:
		return TierGreat
	case score >= 55:
		return TierGood
	case score >= 40:
		return TierFair
	default:
		return TierPoor
	}
}

func calculateStats(matches []MatchResult) MatchStats {
	stats := MatchStats{}
	if len(matches) == 0 {
		return stats
	}

	stats.HighestScore = matches[0].CompatibilityScore
	stats.LowestScore = matches[0].CompatibilityScore

	var sum float64
	for _, m := range matches {
		sum += m.CompatibilityScore
		if m.CompatibilityScore > stats.HighestScore {
			stats.HighestScore = m.CompatibilityScore
		}
		if m.CompatibilityScore < stats.LowestScore {
			stats.LowestScore = m.CompatibilityScore
		}
		switch m.MatchTier {
		case TierPerfect:
			stats.PerfectMatches++
		case TierGreat:
			stats.GreatMatches++
		case TierGood:
			stats.GoodMatches++
		case TierFair:
			stats.FairMatches++
		default:
			stats.PoorMatches++
		}
	}
	stats.AverageScore = round1(sum / float64(len(matches)))

	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
