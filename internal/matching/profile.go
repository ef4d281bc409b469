// internal/matching/profile.go
// Profile data structures consumed by the compatibility engine.
// Every optional field is an explicit pointer so that a missing value
// can never be confused with a zero value.

package matching

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// Profile is a read-only snapshot of a user supplied by the caller.
// The engine never mutates it and holds no reference after a call returns.
type Profile struct {
	ID        string         `json:"id"`
	Username  string         `json:"username"`
	Firstname *string        `json:"firstname,omitempty"`
	Lastname  *string        `json:"lastname,omitempty"`
	Photo     *string        `json:"photo,omitempty"`
	Age       *int           `json:"age,omitempty"`
	Gender    *Gender        `json:"gender,omitempty"`
	Bio       *string        `json:"bio,omitempty"`
	Location  *string        `json:"location,omitempty"`
	Languages []string       `json:"languages,omitempty"`
	Tenant    *TenantProfile `json:"tenantProfile,omitempty"`
}

// TenantProfile holds the flatmate-seeking half of a profile.
type TenantProfile struct {
	Interests      []string        `json:"interests,omitempty"`
	Personality    []Personality   `json:"personality,omitempty"`
	DailyRoutine   *DailyRoutine   `json:"dailyRoutine,omitempty"`
	Preferences    *Preferences    `json:"preferences,omitempty"`
	FlatmateTraits *FlatmateTraits `json:"flatmateTraits,omitempty"`
	DealBreakers   *DealBreakers   `json:"dealBreakers,omitempty"`
}

// Scan implements sql.Scanner so a TenantProfile can be read from a JSONB column.
func (t *TenantProfile) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return nil
	}
}

// Value implements driver.Valuer so a TenantProfile can be written to a JSONB column.
func (t TenantProfile) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// DailyRoutine holds times in "HH:MM" format.
type DailyRoutine struct {
	WakeUp    *string    `json:"wakeUp,omitempty"`
	SleepTime *string    `json:"sleepTime,omitempty"`
	WorkHours *WorkHours `json:"workHours,omitempty"`
}

type WorkHours struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
}

type Preferences struct {
	Location             *string               `json:"location,omitempty"`
	Gender               *Gender               `json:"gender,omitempty"`
	AgeRange             []int                 `json:"ageRange,omitempty"`
	Country              *string               `json:"country,omitempty"`
	LifestylePreferences *LifestylePreferences `json:"lifestylePreferences,omitempty"`
	Budget               *Budget               `json:"budget,omitempty"`
	LeaseDurationMonths  *int                  `json:"leaseDurationMonths,omitempty"`
}

// LifestylePreferences defaults: smokes/hasPets false, okWith* true when unset.
type LifestylePreferences struct {
	Smokes        *bool `json:"smokes,omitempty"`
	HasPets       *bool `json:"hasPets,omitempty"`
	OkWithSmoking *bool `json:"okWithSmoking,omitempty"`
	OkWithPets    *bool `json:"okWithPets,omitempty"`
}

type Budget struct {
	Currency string   `json:"currency"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
}

type FlatmateTraits struct {
	Cleanliness      *Cleanliness      `json:"cleanliness,omitempty"`
	SocialLevel      *SocialLevel      `json:"socialLevel,omitempty"`
	GuestsFrequency  *GuestsFrequency  `json:"guestsFrequency,omitempty"`
	NoiseTolerance   *NoiseTolerance   `json:"noiseTolerance,omitempty"`
	CookingFrequency *CookingFrequency `json:"cookingFrequency,omitempty"`
	SharedSpaces     []string          `json:"sharedSpaces,omitempty"`
}

// DealBreakers are hard constraints that exclude a pair before scoring.
type DealBreakers struct {
	NoSmokers          bool         `json:"noSmokers"`
	NoPets             bool         `json:"noPets"`
	NoParties          bool         `json:"noParties"`
	SameGenderOnly     bool         `json:"sameGenderOnly"`
	QuietHoursRequired bool         `json:"quietHoursRequired"`
	MinAge             *int         `json:"minAge,omitempty"`
	MaxAge             *int         `json:"maxAge,omitempty"`
	MinCleanliness     *Cleanliness `json:"minCleanliness,omitempty"`
	MaxBudget          *float64     `json:"maxBudget,omitempty"`
}

// ---- accessors ----
// The nested sections are all optional; these helpers flatten the nil checks
// so the scorers read cleanly.

func (p *Profile) budget() *Budget {
	if p.Tenant != nil && p.Tenant.Preferences != nil {
		return p.Tenant.Preferences.Budget
	}
	return nil
}

func (p *Profile) preferences() *Preferences {
	if p.Tenant != nil {
		return p.Tenant.Preferences
	}
	return nil
}

func (p *Profile) lifestylePrefs() *LifestylePreferences {
	if prefs := p.preferences(); prefs != nil {
		return prefs.LifestylePreferences
	}
	return nil
}

func (p *Profile) flatmateTraits() *FlatmateTraits {
	if p.Tenant != nil {
		return p.Tenant.FlatmateTraits
	}
	return nil
}

func (p *Profile) dealBreakers() *DealBreakers {
	if p.Tenant != nil {
		return p.Tenant.DealBreakers
	}
	return nil
}

func (p *Profile) dailyRoutine() *DailyRoutine {
	if p.Tenant != nil {
		return p.Tenant.DailyRoutine
	}
	return nil
}

func (p *Profile) interests() []string {
	if p.Tenant != nil {
		return p.Tenant.Interests
	}
	return nil
}

func (p *Profile) personality() []Personality {
	if p.Tenant != nil {
		return p.Tenant.Personality
	}
	return nil
}

func (p *Profile) hasPersonality(tag Personality) bool {
	for _, t := range p.personality() {
		if t == tag {
			return true
		}
	}
	return false
}

// smokes / hasPets default to false, okWithSmoking / okWithPets to true.
func (lp *LifestylePreferences) smokesOrDefault() bool {
	return lp != nil && lp.Smokes != nil && *lp.Smokes
}

func (lp *LifestylePreferences) hasPetsOrDefault() bool {
	return lp != nil && lp.HasPets != nil && *lp.HasPets
}

func (lp *LifestylePreferences) okWithSmokingOrDefault() bool {
	if lp == nil || lp.OkWithSmoking == nil {
		return true
	}
	return *lp.OkWithSmoking
}

func (lp *LifestylePreferences) okWithPetsOrDefault() bool {
	if lp == nil || lp.OkWithPets == nil {
		return true
	}
	return *lp.OkWithPets
}

// sharedInterests returns interests present on both sides, compared
// case-insensitively. Order follows the seeker's list so output is stable.
func sharedInterests(seeker, candidate *Profile) []string {
	candidateSet := make(map[string]struct{}, len(candidate.interests()))
	for _, interest := range candidate.interests() {
		candidateSet[strings.ToLower(strings.TrimSpace(interest))] = struct{}{}
	}

	var shared []string
	seen := make(map[string]struct{})
	for _, interest := range seeker.interests() {
		key := strings.ToLower(strings.TrimSpace(interest))
		if _, ok := candidateSet[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		shared = append(shared, key)
	}
	return shared
}

// sharedLanguages returns languages both profiles list, lowercased,
// in the seeker's order.
func sharedLanguages(seeker, candidate *Profile) []string {
	candidateSet := make(map[string]struct{}, len(candidate.Languages))
	for _, lang := range candidate.Languages {
		candidateSet[strings.ToLower(strings.TrimSpace(lang))] = struct{}{}
	}

	var shared []string
	seen := make(map[string]struct{})
	for _, lang := range seeker.Languages {
		key := strings.ToLower(strings.TrimSpace(lang))
		if _, ok := candidateSet[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		shared = append(shared, key)
	}
	return shared
}
