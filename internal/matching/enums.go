// internal/matching/enums.go
// Ordinal trait enumerations with explicit index functions.
// Scorers compare traits by scale position, never by raw string lookup,
// so an unrecognized value degrades to a neutral comparison instead of
// silently matching nothing.

package matching

import "log"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Personality string

const (
	PersonalityIntrovert Personality = "introvert"
	PersonalityExtrovert Personality = "extrovert"
	PersonalityNightOwl  Personality = "night_owl"
	PersonalityEarlyBird Personality = "early_bird"
	PersonalityNeat      Personality = "neat"
	PersonalityMessy     Personality = "messy"
	PersonalityQuiet     Personality = "quiet"
	PersonalityTalkative Personality = "talkative"
)

// Cleanliness is ordered from most to least clean: a greater index means
// less clean.
type Cleanliness string

const (
	CleanlinessVeryClean Cleanliness = "very_clean"
	CleanlinessClean     Cleanliness = "clean"
	CleanlinessModerate  Cleanliness = "moderate"
	CleanlinessRelaxed   Cleanliness = "relaxed"
	CleanlinessMessy     Cleanliness = "messy"
)

var cleanlinessScale = []Cleanliness{
	CleanlinessVeryClean,
	CleanlinessClean,
	CleanlinessModerate,
	CleanlinessRelaxed,
	CleanlinessMessy,
}

type SocialLevel string

const (
	SocialLevelVerySocial SocialLevel = "very_social"
	SocialLevelSocial     SocialLevel = "social"
	SocialLevelModerate   SocialLevel = "moderate"
	SocialLevelQuiet      SocialLevel = "quiet"
	SocialLevelVeryQuiet  SocialLevel = "very_quiet"
)

var socialLevelScale = []SocialLevel{
	SocialLevelVerySocial,
	SocialLevelSocial,
	SocialLevelModerate,
	SocialLevelQuiet,
	SocialLevelVeryQuiet,
}

type GuestsFrequency string

const (
	GuestsOften     GuestsFrequency = "often"
	GuestsSometimes GuestsFrequency = "sometimes"
	GuestsRarely    GuestsFrequency = "rarely"
	GuestsNever     GuestsFrequency = "never"
)

var guestsFrequencyScale = []GuestsFrequency{
	GuestsOften,
	GuestsSometimes,
	GuestsRarely,
	GuestsNever,
}

type NoiseTolerance string

const (
	NoiseVeryTolerant  NoiseTolerance = "very_tolerant"
	NoiseTolerant      NoiseTolerance = "tolerant"
	NoiseModerate      NoiseTolerance = "moderate"
	NoiseSensitive     NoiseTolerance = "sensitive"
	NoiseVerySensitive NoiseTolerance = "very_sensitive"
)

var noiseToleranceScale = []NoiseTolerance{
	NoiseVeryTolerant,
	NoiseTolerant,
	NoiseModerate,
	NoiseSensitive,
	NoiseVerySensitive,
}

type CookingFrequency string

const (
	CookingDaily     CookingFrequency = "daily"
	CookingOften     CookingFrequency = "often"
	CookingSometimes CookingFrequency = "sometimes"
	CookingRarely    CookingFrequency = "rarely"
	CookingNever     CookingFrequency = "never"
)

var cookingFrequencyScale = []CookingFrequency{
	CookingDaily,
	CookingOften,
	CookingSometimes,
	CookingRarely,
	CookingNever,
}

// scaleIndex returns the position of a value on its ordered scale, or -1
// for an unrecognized value. Callers treat -1 as "unknown" and fall back
// to a neutral comparison.
func scaleIndex[T comparable](scale []T, value T) int {
	for i, v := range scale {
		if v == value {
			return i
		}
	}
	return -1
}

func cleanlinessIndex(c Cleanliness) int {
	return loggedIndex("cleanliness", scaleIndex(cleanlinessScale, c), string(c))
}

func socialLevelIndex(s SocialLevel) int {
	return loggedIndex("social level", scaleIndex(socialLevelScale, s), string(s))
}

func guestsFrequencyIndex(g GuestsFrequency) int {
	return loggedIndex("guests frequency", scaleIndex(guestsFrequencyScale, g), string(g))
}

func noiseToleranceIndex(n NoiseTolerance) int {
	return loggedIndex("noise tolerance", scaleIndex(noiseToleranceScale, n), string(n))
}

func cookingFrequencyIndex(c CookingFrequency) int {
	return loggedIndex("cooking frequency", scaleIndex(cookingFrequencyScale, c), string(c))
}

// loggedIndex surfaces unrecognized enum values in the logs; the caller
// still receives -1 and degrades to a neutral comparison.
func loggedIndex(trait string, idx int, raw string) int {
	if idx < 0 {
		log.Printf("matching: unknown %s value %q, treating as unknown", trait, raw)
	}
	return idx
}
