// internal/matching/profile_test.go

package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantProfileScanValue(t *testing.T) {
	original := TenantProfile{
		Interests:   []string{"hiking", "cooking"},
		Personality: []Personality{PersonalityIntrovert, PersonalityNeat},
		Preferences: &Preferences{
			Location: strPtr("Warsaw"),
			AgeRange: []int{20, 35},
			Budget:   &Budget{Currency: "PLN", Min: floatPtr(1500), Max: floatPtr(3000)},
		},
		DealBreakers: &DealBreakers{NoSmokers: true, MinAge: intPtr(21)},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var restored TenantProfile
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)
}

func TestTenantProfileScanInputs(t *testing.T) {
	t.Run("nil leaves the zero value", func(t *testing.T) {
		var tp TenantProfile
		require.NoError(t, tp.Scan(nil))
		assert.Empty(t, tp.Interests)
	})

	t.Run("string payload accepted", func(t *testing.T) {
		var tp TenantProfile
		require.NoError(t, tp.Scan(`{"interests":["yoga"]}`))
		assert.Equal(t, []string{"yoga"}, tp.Interests)
	})

	t.Run("malformed JSON reported", func(t *testing.T) {
		var tp TenantProfile
		assert.Error(t, tp.Scan([]byte(`{not json`)))
	})
}

func TestSharedInterests(t *testing.T) {
	seeker := withInterests(baseProfile("a", "a"), "Hiking", " cooking ", "hiking", "reading")
	candidate := withInterests(baseProfile("b", "b"), "COOKING", "hiking", "gaming")

	shared := sharedInterests(seeker, candidate)
	// Lowercased, trimmed, deduplicated, in the seeker's order.
	assert.Equal(t, []string{"hiking", "cooking"}, shared)
}

func TestSharedLanguages(t *testing.T) {
	seeker := baseProfile("a", "a")
	seeker.Languages = []string{"Polish", "English", "polish"}
	candidate := baseProfile("b", "b")
	candidate.Languages = []string{"ENGLISH", " Polish "}

	shared := sharedLanguages(seeker, candidate)
	assert.Equal(t, []string{"polish", "english"}, shared)

	assert.Empty(t, sharedLanguages(baseProfile("c", "c"), candidate))
}

func TestLifestylePreferenceDefaults(t *testing.T) {
	var lp *LifestylePreferences
	assert.False(t, lp.smokesOrDefault())
	assert.False(t, lp.hasPetsOrDefault())
	assert.True(t, lp.okWithSmokingOrDefault())
	assert.True(t, lp.okWithPetsOrDefault())

	strict := &LifestylePreferences{OkWithSmoking: boolPtr(false), OkWithPets: boolPtr(false)}
	assert.False(t, strict.okWithSmokingOrDefault())
	assert.False(t, strict.okWithPetsOrDefault())
}

func TestProfileAccessorsNilSafe(t *testing.T) {
	p := baseProfile("a", "a")
	assert.Nil(t, p.budget())
	assert.Nil(t, p.preferences())
	assert.Nil(t, p.lifestylePrefs())
	assert.Nil(t, p.flatmateTraits())
	assert.Nil(t, p.dealBreakers())
	assert.Nil(t, p.dailyRoutine())
	assert.Empty(t, p.interests())
	assert.False(t, p.hasPersonality(PersonalityIntrovert))
}
