// internal/matching/preferences_test.go

package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPreferences(p *Profile, prefs Preferences) *Profile {
	if p.Tenant == nil {
		p.Tenant = &TenantProfile{}
	}
	p.Tenant.Preferences = &prefs
	return p
}

func TestScorePreferences(t *testing.T) {
	t.Run("no preference data is neutral", func(t *testing.T) {
		score, explanations := scorePreferences(baseProfile("a", "a"), baseProfile("b", "b"))
		assert.Equal(t, 60.0, score)
		require.Len(t, explanations, 1)
		assert.Equal(t, "Preference information incomplete", explanations[0].Reason)
	})

	t.Run("age within preferred range", func(t *testing.T) {
		seeker := withPreferences(baseProfile("a", "a"), Preferences{AgeRange: []int{20, 30}})
		candidate := baseProfile("b", "b")
		candidate.Age = intPtr(25)

		score, explanations := scorePreferences(seeker, candidate)
		assert.Equal(t, 100.0, score)
		require.Len(t, explanations, 1)
		assert.Equal(t, "Candidate age 25 within your preferred range", explanations[0].Reason)
	})

	t.Run("age outside range decays by distance", func(t *testing.T) {
		seeker := withPreferences(baseProfile("a", "a"), Preferences{AgeRange: []int{20, 30}})
		candidate := baseProfile("b", "b")
		candidate.Age = intPtr(33)

		score, explanations := scorePreferences(seeker, candidate)
		assert.Equal(t, 70.0, score)
		assert.Empty(t, explanations) // no explanation until score drops below 60
	})

	t.Run("age far outside range floors at 20 and explains", func(t *testing.T) {
		seeker := withPreferences(baseProfile("a", "a"), Preferences{AgeRange: []int{20, 30}})
		candidate := baseProfile("b", "b")
		candidate.Age = intPtr(45)

		score, explanations := scorePreferences(seeker, candidate)
		assert.Equal(t, 20.0, score)
		require.Len(t, explanations, 1)
		assert.Equal(t, "Candidate age 45 outside your preferred 20-30 range", explanations[0].Reason)
		assert.Equal(t, ImpactNegative, explanations[0].Impact)
	})

	t.Run("single-element age range has open upper bound", func(t *testing.T) {
		seeker := withPreferences(baseProfile("a", "a"), Preferences{AgeRange: []int{25}})
		candidate := baseProfile("b", "b")
		candidate.Age = intPtr(60)

		score, _ := scorePreferences(seeker, candidate)
		assert.Equal(t, 100.0, score)
	})

	t.Run("gender preference matched and mismatched", func(t *testing.T) {
		seeker := withPreferences(baseProfile("a", "a"), Preferences{Gender: genderPtr(GenderFemale)})

		match := baseProfile("b", "b")
		match.Gender = genderPtr(GenderFemale)
		score, _ := scorePreferences(seeker, match)
		assert.Equal(t, 100.0, score)

		mismatch := baseProfile("c", "c")
		mismatch.Gender = genderPtr(GenderMale)
		score, _ = scorePreferences(seeker, mismatch)
		assert.Equal(t, 50.0, score)
	})

	t.Run("lease duration tiers", func(t *testing.T) {
		tests := []struct {
			name          string
			candidateLease int
			want          float64
		}{
			{"same duration", 12, 100},
			{"within three months", 10, 80},
			{"within six months", 6, 60},
			{"far apart", 3, 40},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				seeker := withPreferences(baseProfile("a", "a"), Preferences{LeaseDurationMonths: intPtr(12)})
				candidate := withPreferences(baseProfile("b", "b"), Preferences{LeaseDurationMonths: intPtr(tt.candidateLease)})

				score, _ := scorePreferences(seeker, candidate)
				assert.Equal(t, tt.want, score)
			})
		}
	})

	t.Run("unset lease durations fall back to twelve months", func(t *testing.T) {
		// Lease duration defaults to the standard 12-month term, so two
		// profiles with preference data but no stated duration still agree.
		seeker := withPreferences(baseProfile("a", "a"), Preferences{})
		candidate := withPreferences(baseProfile("b", "b"), Preferences{})

		score, explanations := scorePreferences(seeker, candidate)
		assert.Equal(t, 100.0, score)
		require.Len(t, explanations, 1)
		assert.Equal(t, "Same lease duration preference (12 months)", explanations[0].Reason)

		short := withPreferences(baseProfile("c", "c"), Preferences{LeaseDurationMonths: intPtr(3)})
		score, _ = scorePreferences(seeker, short)
		assert.Equal(t, 40.0, score)
	})

	t.Run("shared languages boost with explanation at two or more", func(t *testing.T) {
		seeker := baseProfile("a", "a")
		seeker.Languages = []string{"Polish", "English"}
		candidate := baseProfile("b", "b")
		candidate.Languages = []string{"english", "polish", "german"}

		score, explanations := scorePreferences(seeker, candidate)
		assert.Equal(t, 100.0, score)
		require.Len(t, explanations, 1)
		assert.Equal(t, "Share 2 languages: polish, english", explanations[0].Reason)
		assert.Equal(t, ImpactPositive, explanations[0].Impact)
	})

	t.Run("single shared language scores without explanation", func(t *testing.T) {
		seeker := baseProfile("a", "a")
		seeker.Languages = []string{"Polish"}
		candidate := baseProfile("b", "b")
		candidate.Languages = []string{"polish", "german"}

		score, explanations := scorePreferences(seeker, candidate)
		assert.Equal(t, 80.0, score)
		assert.Empty(t, explanations)
	})

	t.Run("no common language scores exactly 30", func(t *testing.T) {
		// Regression guard: the language weight must pair with the language
		// score, so a mismatch on languages alone averages to 30, not higher.
		seeker := baseProfile("a", "a")
		seeker.Languages = []string{"Polish"}
		candidate := baseProfile("b", "b")
		candidate.Languages = []string{"German"}

		score, explanations := scorePreferences(seeker, candidate)
		assert.Equal(t, 30.0, score)
		require.Len(t, explanations, 1)
		assert.Equal(t, "No common languages - communication may be difficult", explanations[0].Reason)
	})

	t.Run("sub-factors combine by weight", func(t *testing.T) {
		seeker := withPreferences(baseProfile("a", "a"), Preferences{
			AgeRange:            []int{20, 30},
			LeaseDurationMonths: intPtr(12),
		})
		candidate := withPreferences(baseProfile("b", "b"), Preferences{
			LeaseDurationMonths: intPtr(12),
		})
		candidate.Age = intPtr(25)

		score, _ := scorePreferences(seeker, candidate)
		// age 100*30 + lease 100*25, gender and languages absent.
		assert.Equal(t, 100.0, score)
	})
}
