// internal/matching/location.go
// Location category. Two independent city branches exist by design:
// preference-vs-actual when the seeker declared a preferred location, and
// actual-vs-actual otherwise. Which branch fires is data-dependent; they
// are deliberately not unified. A country comparison, when both sides
// declare one, is averaged in on top.

package matching

import (
	"fmt"
	"strings"
)

// Polish regions with their major cities, used for the "same broader
// region" middle tier. Both ASCII and diacritic spellings are listed.
// The slice fixes the lookup order: a location mentioning cities of
// several regions always resolves to the same one (the last listed),
// keeping identical inputs at identical scores.
var locationRegions = []struct {
	name   string
	cities []string
}{
	{"mazowieckie", []string{"warsaw", "warszawa", "radom", "płock"}},
	{"malopolskie", []string{"krakow", "kraków", "tarnow", "tarnów"}},
	{"wielkopolskie", []string{"poznan", "poznań", "kalisz", "konin"}},
	{"pomorskie", []string{"gdansk", "gdańsk", "gdynia", "sopot"}},
	{"dolnoslaskie", []string{"wroclaw", "wrocław", "legnica", "wałbrzych"}},
	{"slaskie", []string{"katowice", "gliwice", "zabrze", "bielsko-biała"}},
}

func scoreLocation(seeker, candidate *Profile) (float64, []Explanation) {
	var (
		scores       []float64
		explanations []Explanation
	)

	seekerLocation := normalizeLocation(seeker.Location)
	candidateLocation := normalizeLocation(candidate.Location)

	var seekerPrefLocation, seekerCountry, candidateCountry string
	if prefs := seeker.preferences(); prefs != nil {
		seekerPrefLocation = normalizeLocation(prefs.Location)
		seekerCountry = derefString(prefs.Country, "")
	}
	if prefs := candidate.preferences(); prefs != nil {
		candidateCountry = derefString(prefs.Country, "")
	}

	switch {
	case seekerPrefLocation != "" && candidateLocation != "":
		// Preference-vs-actual branch.
		if strings.Contains(candidateLocation, seekerPrefLocation) || strings.Contains(seekerPrefLocation, candidateLocation) {
			scores = append(scores, 100)
			explanations = append(explanations, Explanation{
				Category: "Location",
				Reason:   fmt.Sprintf("Both interested in %s", titleWords(candidateLocation)),
				Impact:   ImpactPositive,
				Score:    100,
			})
		} else if locationsInSameRegion(seekerPrefLocation, candidateLocation) {
			scores = append(scores, 75)
			explanations = append(explanations, Explanation{
				Category: "Location",
				Reason:   "Looking in similar regions",
				Impact:   ImpactNeutral,
				Score:    75,
			})
		} else {
			scores = append(scores, 40)
			explanations = append(explanations, Explanation{
				Category: "Location",
				Reason:   fmt.Sprintf("Different locations (%s vs %s)", seekerPrefLocation, candidateLocation),
				Impact:   ImpactNegative,
				Score:    40,
			})
		}
	case seekerLocation != "" && candidateLocation != "":
		// Actual-vs-actual branch.
		if seekerLocation == candidateLocation {
			scores = append(scores, 95)
		} else if locationsInSameRegion(seekerLocation, candidateLocation) {
			scores = append(scores, 70)
		} else {
			scores = append(scores, 50)
		}
	}

	if seekerCountry != "" && candidateCountry != "" {
		if strings.EqualFold(seekerCountry, candidateCountry) {
			scores = append(scores, 100)
		} else {
			scores = append(scores, 30)
			explanations = append(explanations, Explanation{
				Category: "Location",
				Reason:   fmt.Sprintf("Different country preferences (%s vs %s)", seekerCountry, candidateCountry),
				Impact:   ImpactNegative,
				Score:    30,
			})
		}
	}

	if len(scores) == 0 {
		return neutralLocationScore, []Explanation{{
			Category: "Location",
			Reason:   "Location preferences not specified",
			Impact:   ImpactNeutral,
			Score:    neutralLocationScore,
		}}
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)), explanations
}

func normalizeLocation(location *string) string {
	if location == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*location))
}

func locationsInSameRegion(loc1, loc2 string) bool {
	region1 := regionOf(loc1)
	region2 := regionOf(loc2)
	return region1 != "" && region2 != "" && region1 == region2
}

func regionOf(location string) string {
	var region string
	for _, entry := range locationRegions {
		for _, city := range entry.cities {
			if strings.Contains(location, city) {
				region = entry.name
				break
			}
		}
	}
	return region
}
