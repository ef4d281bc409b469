// internal/matching/testhelpers_test.go

package matching

func strPtr(s string) *string                    { return &s }
func intPtr(i int) *int                          { return &i }
func floatPtr(f float64) *float64                { return &f }
func boolPtr(b bool) *bool                       { return &b }
func genderPtr(g Gender) *Gender                 { return &g }
func cleanlinessPtr(c Cleanliness) *Cleanliness  { return &c }
func socialPtr(s SocialLevel) *SocialLevel       { return &s }
func guestsPtr(g GuestsFrequency) *GuestsFrequency {
	return &g
}
func noisePtr(n NoiseTolerance) *NoiseTolerance { return &n }
func cookingPtr(c CookingFrequency) *CookingFrequency {
	return &c
}

func baseProfile(id, username string) *Profile {
	return &Profile{ID: id, Username: username}
}

func budgetProfile(id string, currency string, min, max float64) *Profile {
	p := baseProfile(id, id)
	p.Tenant = &TenantProfile{
		Preferences: &Preferences{
			Budget: &Budget{Currency: currency, Min: floatPtr(min), Max: floatPtr(max)},
		},
	}
	return p
}

// fullProfile builds a rich, internally consistent profile; two copies of
// it with different IDs score very high against each other.
func fullProfile(id string) *Profile {
	return &Profile{
		ID:        id,
		Username:  id,
		Firstname: strPtr("Anna"),
		Lastname:  strPtr("Kowalska"),
		Age:       intPtr(27),
		Gender:    genderPtr(GenderFemale),
		Location:  strPtr("Warsaw"),
		Languages: []string{"Polish", "English"},
		Tenant: &TenantProfile{
			Interests:   []string{"hiking", "cooking", "reading"},
			Personality: []Personality{PersonalityIntrovert, PersonalityEarlyBird, PersonalityNeat, PersonalityQuiet},
			DailyRoutine: &DailyRoutine{
				WakeUp:    strPtr("07:00"),
				SleepTime: strPtr("23:00"),
				WorkHours: &WorkHours{From: strPtr("09:00"), To: strPtr("17:00")},
			},
			Preferences: &Preferences{
				Location:            strPtr("Warsaw"),
				Gender:              genderPtr(GenderFemale),
				AgeRange:            []int{20, 35},
				Country:             strPtr("Poland"),
				LeaseDurationMonths: intPtr(12),
				LifestylePreferences: &LifestylePreferences{
					Smokes:        boolPtr(false),
					HasPets:       boolPtr(false),
					OkWithSmoking: boolPtr(false),
					OkWithPets:    boolPtr(true),
				},
				Budget: &Budget{Currency: "PLN", Min: floatPtr(1500), Max: floatPtr(3000)},
			},
			FlatmateTraits: &FlatmateTraits{
				Cleanliness:      cleanlinessPtr(CleanlinessClean),
				SocialLevel:      socialPtr(SocialLevelModerate),
				GuestsFrequency:  guestsPtr(GuestsSometimes),
				NoiseTolerance:   noisePtr(NoiseModerate),
				CookingFrequency: cookingPtr(CookingOften),
			},
		},
	}
}
