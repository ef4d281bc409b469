// internal/matching/schedule.go
// Schedule category: wake-up and sleep times (weight 40 each) and work
// start time (weight 20). Clock comparisons wrap around midnight. The
// wake and sleep ladders have slightly different breakpoints - keep them
// separate.

package matching

import "fmt"

func scoreSchedule(seeker, candidate *Profile) (float64, []Explanation) {
	seekerRoutine := seeker.dailyRoutine()
	candidateRoutine := candidate.dailyRoutine()

	if seekerRoutine == nil && candidateRoutine == nil {
		return neutralScheduleScore, []Explanation{{
			Category: "Schedule",
			Reason:   "Schedule information not available",
			Impact:   ImpactNeutral,
			Score:    neutralScheduleScore,
		}}
	}

	var (
		scores       []float64
		weights      []float64
		explanations []Explanation
	)

	// 1. Wake-up times (weight 40).
	if seekerRoutine != nil && candidateRoutine != nil &&
		seekerRoutine.WakeUp != nil && candidateRoutine.WakeUp != nil {
		if diff, ok := timeDifferenceHours(*seekerRoutine.WakeUp, *candidateRoutine.WakeUp); ok {
			var score float64
			switch {
			case diff <= 0.5:
				score = 100
				explanations = append(explanations, Explanation{
					Category: "Schedule",
					Reason:   fmt.Sprintf("Wake up times nearly identical (%s)", *seekerRoutine.WakeUp),
					Impact:   ImpactPositive,
					Score:    100,
				})
			case diff <= 1:
				score = 90
			case diff <= 1.5:
				score = 80
			case diff <= 2:
				score = 65
			case diff <= 3:
				score = 50
			default:
				score = 30
				explanations = append(explanations, Explanation{
					Category: "Schedule",
					Reason:   fmt.Sprintf("Very different wake times (%s vs %s)", *seekerRoutine.WakeUp, *candidateRoutine.WakeUp),
					Impact:   ImpactNegative,
					Score:    30,
				})
			}
			scores = append(scores, score)
			weights = append(weights, 40)
		}
	}

	// 2. Sleep times (weight 40).
	if seekerRoutine != nil && candidateRoutine != nil &&
		seekerRoutine.SleepTime != nil && candidateRoutine.SleepTime != nil {
		if diff, ok := timeDifferenceHours(*seekerRoutine.SleepTime, *candidateRoutine.SleepTime); ok {
			var score float64
			switch {
			case diff <= 0.5:
				score = 100
				explanations = append(explanations, Explanation{
					Category: "Schedule",
					Reason:   "Sleep times align perfectly",
					Impact:   ImpactPositive,
					Score:    100,
				})
			case diff <= 1:
				score = 90
			case diff <= 1.5:
				score = 75
			case diff <= 2:
				score = 60
			case diff <= 3:
				score = 45
			default:
				score = 25
				explanations = append(explanations, Explanation{
					Category: "Schedule",
					Reason:   "Very different sleep times - noise consideration needed",
					Impact:   ImpactNegative,
					Score:    25,
				})
			}
			scores = append(scores, score)
			weights = append(weights, 40)
		}
	}

	// 3. Work start times (weight 20). Staggered starts beat identical
	// ones: less contention for the bathroom and kitchen in the morning.
	var seekerWorkFrom, candidateWorkFrom *string
	if seekerRoutine != nil && seekerRoutine.WorkHours != nil {
		seekerWorkFrom = seekerRoutine.WorkHours.From
	}
	if candidateRoutine != nil && candidateRoutine.WorkHours != nil {
		candidateWorkFrom = candidateRoutine.WorkHours.From
	}
	if seekerWorkFrom != nil && candidateWorkFrom != nil {
		if diff, ok := timeDifferenceHours(*seekerWorkFrom, *candidateWorkFrom); ok {
			var score float64
			switch {
			case diff <= 1:
				score = 70 // morning rush together
			case diff >= 2:
				score = 90
				explanations = append(explanations, Explanation{
					Category: "Schedule",
					Reason:   "Staggered work times - less morning rush",
					Impact:   ImpactPositive,
					Score:    90,
				})
			default:
				score = 80
			}
			scores = append(scores, score)
			weights = append(weights, 20)
		}
	}

	return weightedAverage(scores, weights, neutralScheduleScore), explanations
}
