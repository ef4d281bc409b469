// internal/matching/lifestyle_test.go

package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokingCompatibility(t *testing.T) {
	tests := []struct {
		name      string
		seeker    *LifestylePreferences
		candidate *LifestylePreferences
		want      float64
	}{
		{"both non-smokers", nil, nil, 100},
		{"both smokers", &LifestylePreferences{Smokes: boolPtr(true)}, &LifestylePreferences{Smokes: boolPtr(true)}, 95},
		{
			"candidate smokes, seeker tolerant by default",
			nil,
			&LifestylePreferences{Smokes: boolPtr(true)},
			70,
		},
		{
			"candidate smokes, seeker intolerant",
			&LifestylePreferences{OkWithSmoking: boolPtr(false)},
			&LifestylePreferences{Smokes: boolPtr(true)},
			15,
		},
		{
			"seeker smokes, candidate intolerant",
			&LifestylePreferences{Smokes: boolPtr(true)},
			&LifestylePreferences{OkWithSmoking: boolPtr(false)},
			15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, smokingCompatibility(tt.seeker, tt.candidate))
		})
	}
}

func TestPetsCompatibility(t *testing.T) {
	tests := []struct {
		name      string
		seeker    *LifestylePreferences
		candidate *LifestylePreferences
		want      float64
	}{
		{"neither has pets", nil, nil, 100},
		{"both have pets", &LifestylePreferences{HasPets: boolPtr(true)}, &LifestylePreferences{HasPets: boolPtr(true)}, 90},
		{
			"candidate has pets, seeker tolerant by default",
			nil,
			&LifestylePreferences{HasPets: boolPtr(true)},
			85,
		},
		{
			"candidate has pets, seeker intolerant",
			&LifestylePreferences{OkWithPets: boolPtr(false)},
			&LifestylePreferences{HasPets: boolPtr(true)},
			20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, petsCompatibility(tt.seeker, tt.candidate))
		})
	}
}

func TestOrdinalDistanceScore(t *testing.T) {
	assert.Equal(t, 50.0, ordinalDistanceScore(nil, intPtr(2)))
	assert.Equal(t, 50.0, ordinalDistanceScore(intPtr(2), nil))
	assert.Equal(t, 100.0, ordinalDistanceScore(intPtr(1), intPtr(1)))
	assert.Equal(t, 80.0, ordinalDistanceScore(intPtr(1), intPtr(2)))
	assert.Equal(t, 50.0, ordinalDistanceScore(intPtr(0), intPtr(2)))
	assert.Equal(t, 25.0, ordinalDistanceScore(intPtr(0), intPtr(3)))
	assert.Equal(t, 20.0, ordinalDistanceScore(intPtr(0), intPtr(4)))
}

func TestScoreLifestyle(t *testing.T) {
	t.Run("empty profiles still score smoking and pets", func(t *testing.T) {
		score, explanations := scoreLifestyle(baseProfile("a", "a"), baseProfile("b", "b"))
		// Defaults: both non-smokers (100) and pet-free (100), no trait data.
		assert.InDelta(t, 100.0, score, 1e-9)
		require.Len(t, explanations, 1)
		assert.Equal(t, "Both non-smokers - clean air environment", explanations[0].Reason)
	})

	t.Run("intolerant non-smoker vs smoker drags the score down", func(t *testing.T) {
		seeker := withLifestyle(baseProfile("a", "a"), LifestylePreferences{OkWithSmoking: boolPtr(false)})
		candidate := withLifestyle(baseProfile("b", "b"), LifestylePreferences{Smokes: boolPtr(true)})

		score, explanations := scoreLifestyle(seeker, candidate)
		// (15*20 + 100*15) / 35
		assert.InDelta(t, 51.43, score, 0.01)
		require.Len(t, explanations, 1)
		assert.Equal(t, "Smoking preference conflict", explanations[0].Reason)
		assert.Equal(t, ImpactNegative, explanations[0].Impact)
	})

	t.Run("ordinal traits join only when declared", func(t *testing.T) {
		seeker := withTraits(baseProfile("a", "a"), FlatmateTraits{Cleanliness: cleanlinessPtr(CleanlinessClean)})
		candidate := withTraits(baseProfile("b", "b"), FlatmateTraits{Cleanliness: cleanlinessPtr(CleanlinessClean)})

		score, explanations := scoreLifestyle(seeker, candidate)
		// smoking 100*20, pets 100*15, cleanliness 100*25; no other traits.
		assert.InDelta(t, 100.0, score, 1e-9)

		var found bool
		for _, e := range explanations {
			if e.Reason == "Similar cleanliness standards (clean)" {
				found = true
				assert.Equal(t, ImpactPositive, e.Impact)
			}
		}
		assert.True(t, found, "expected cleanliness explanation")
	})

	t.Run("one-sided trait data counts at the neutral 50", func(t *testing.T) {
		seeker := withTraits(baseProfile("a", "a"), FlatmateTraits{NoiseTolerance: noisePtr(NoiseVerySensitive)})
		candidate := baseProfile("b", "b")

		score, _ := scoreLifestyle(seeker, candidate)
		// smoking 100*20, pets 100*15, noise 50*10.
		assert.InDelta(t, (100*20.0+100*15.0+50*10.0)/45.0, score, 1e-9)
	})

	t.Run("opposite cleanliness produces friction explanation", func(t *testing.T) {
		seeker := withTraits(baseProfile("a", "a"), FlatmateTraits{Cleanliness: cleanlinessPtr(CleanlinessVeryClean)})
		candidate := withTraits(baseProfile("b", "b"), FlatmateTraits{Cleanliness: cleanlinessPtr(CleanlinessMessy)})

		_, explanations := scoreLifestyle(seeker, candidate)
		var found bool
		for _, e := range explanations {
			if e.Reason == "Different cleanliness expectations - potential friction" {
				found = true
				assert.Equal(t, ImpactNegative, e.Impact)
			}
		}
		assert.True(t, found)
	})
}
