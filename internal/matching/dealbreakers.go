// internal/matching/dealbreakers.go
// Hard-constraint filter applied before any scoring. Directional: the rule
// owner's deal-breakers are checked against the other profile's attributes.
// The engine calls it twice per pair, so a hit on either side excludes the
// pair and no result object is ever built for it.

package matching

import "fmt"

// checkDealBreakers returns a reason string if any of the rule owner's
// deal-breakers fires against the other profile, or "" if none do.
// Checks run in a fixed order and short-circuit on the first hit.
func checkDealBreakers(ruleOwner, other *Profile) string {
	db := ruleOwner.dealBreakers()
	if db == nil {
		return ""
	}

	otherPrefs := other.lifestylePrefs()
	otherTraits := other.flatmateTraits()

	if db.NoSmokers && otherPrefs.smokesOrDefault() {
		return "Candidate smokes (deal-breaker)"
	}

	if db.NoPets && otherPrefs.hasPetsOrDefault() {
		return "Candidate has pets (deal-breaker)"
	}

	if db.SameGenderOnly && ruleOwner.Gender != nil && other.Gender != nil {
		if *ruleOwner.Gender != *other.Gender {
			return "Gender mismatch (same gender required)"
		}
	}

	if other.Age != nil {
		if db.MinAge != nil && *other.Age < *db.MinAge {
			return fmt.Sprintf("Candidate age %d below minimum %d", *other.Age, *db.MinAge)
		}
		if db.MaxAge != nil && *other.Age > *db.MaxAge {
			return fmt.Sprintf("Candidate age %d above maximum %d", *other.Age, *db.MaxAge)
		}
	}

	if db.MinCleanliness != nil && otherTraits != nil && otherTraits.Cleanliness != nil {
		minIdx := cleanlinessIndex(*db.MinCleanliness)
		otherIdx := cleanlinessIndex(*otherTraits.Cleanliness)
		// A greater index means less clean; unknown values (-1) never exclude.
		if minIdx >= 0 && otherIdx >= 0 && otherIdx > minIdx {
			return fmt.Sprintf("Cleanliness %s below minimum %s", *otherTraits.Cleanliness, *db.MinCleanliness)
		}
	}

	if db.MaxBudget != nil {
		if otherBudget := other.budget(); otherBudget != nil && otherBudget.Min != nil {
			if *otherBudget.Min > *db.MaxBudget {
				return fmt.Sprintf("Budget incompatible (candidate min %.0f > your max %.0f)", *otherBudget.Min, *db.MaxBudget)
			}
		}
	}

	if db.QuietHoursRequired && likelyIgnoresQuietHours(other) {
		return "Candidate may not respect quiet hours (night owl, noise tolerant)"
	}

	if db.NoParties && likelyHostsParties(other) {
		return "Candidate likely hosts parties (very social, frequent guests)"
	}

	return ""
}

// likelyIgnoresQuietHours is a heuristic: a night owl who is also tolerant
// of noise is assumed to keep late, loud hours. This infers intent from
// loosely related fields and deliberately keeps the original product
// behavior; do not strengthen or weaken it without a product decision.
func likelyIgnoresQuietHours(p *Profile) bool {
	if !p.hasPersonality(PersonalityNightOwl) {
		return false
	}
	traits := p.flatmateTraits()
	if traits == nil || traits.NoiseTolerance == nil {
		return false
	}
	return *traits.NoiseTolerance == NoiseVeryTolerant || *traits.NoiseTolerance == NoiseTolerant
}

// likelyHostsParties is a heuristic: frequent guests plus a high social
// level is read as party tendencies. Same caveat as above.
func likelyHostsParties(p *Profile) bool {
	traits := p.flatmateTraits()
	if traits == nil || traits.GuestsFrequency == nil || traits.SocialLevel == nil {
		return false
	}
	if *traits.GuestsFrequency != GuestsOften {
		return false
	}
	return *traits.SocialLevel == SocialLevelVerySocial || *traits.SocialLevel == SocialLevelSocial
}
