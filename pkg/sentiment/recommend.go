package sentiment

import "math"

// Summary is the aggregate analysis over a user's whole chat history:
// per-axis mean severity rescaled to 0..100 plus the recommendation list.
type Summary struct {
	DepressionScore int
	AnxietyScore    int
	StressScore     int
	Recommendations []string
}

// Aggregate recomputes the rolling analysis from every user-authored message.
// An empty slice yields all-zero scores and the single "not enough data"
// recommendation.
func Aggregate(texts []string) Summary {
	if len(texts) == 0 {
		return Summary{Recommendations: []string{RecommendationNoData}}
	}

	var dep, anx, str float64
	for _, text := range texts {
		s := ScoreMessage(text)
		dep += s.Depression
		anx += s.Anxiety
		str += s.Stress
	}

	count := float64(len(texts))
	summary := Summary{
		DepressionScore: meanPercent(dep, count),
		AnxietyScore:    meanPercent(anx, count),
		StressScore:     meanPercent(str, count),
	}
	summary.Recommendations = Recommendations(
		summary.DepressionScore, summary.AnxietyScore, summary.StressScore)

	return summary
}

func meanPercent(sum, count float64) int {
	return int(math.Min(100, math.Round(sum/count*100)))
}

// MeanPercent rescales a summed per-message severity to the 0..100 scale
// used by Summary. Callers keeping running sums (the snapshot worker) use it
// to stay consistent with Aggregate.
func MeanPercent(sum float64, count int) int {
	if count == 0 {
		return 0
	}
	return meanPercent(sum, float64(count))
}

// Recommendations builds the tip list for the given percentage scores.
// Bands are strict: a score of exactly 40 falls into the >20 tier.
// The generic mood-tracking tip always comes first.
func Recommendations(depressionScore, anxietyScore, stressScore int) []string {
	recs := []string{
		"Consider tracking your mood daily to identify patterns and triggers.",
	}

	if depressionScore > 70 {
		recs = append(recs,
			"Your messages indicate severe depression symptoms. Please consider seeking professional help immediately.",
			"Establish a daily routine with small achievable goals to build momentum.")
	} else if depressionScore > 40 {
		recs = append(recs,
			"Your messages show moderate depression indicators. Consider speaking with a mental health professional.",
			"Try to engage in activities you used to enjoy, even if you don't feel like it initially.")
	} else if depressionScore > 20 {
		recs = append(recs,
			"Some mild depression indicators detected. Regular exercise and social connection can help improve your mood.")
	}

	if anxietyScore > 70 {
		recs = append(recs,
			"Your messages indicate severe anxiety symptoms. Professional support could be beneficial.",
			"Practice deep breathing exercises: inhale for 4 counts, hold for 4, exhale for 6 counts.")
	} else if anxietyScore > 40 {
		recs = append(recs,
			"Moderate anxiety indicators detected. Consider mindfulness meditation to help manage anxious thoughts.")
	} else if anxietyScore > 20 {
		recs = append(recs,
			"Some mild anxiety indicators detected. Regular physical activity can help reduce anxiety levels.")
	}

	if stressScore > 70 {
		recs = append(recs,
			"High stress levels detected. Consider prioritizing tasks and learning to delegate when possible.",
			"Schedule regular breaks throughout your day to reset and recharge.")
	} else if stressScore > 40 {
		recs = append(recs,
			"Moderate stress indicators present. Try progressive muscle relaxation techniques to release physical tension.")
	} else if stressScore > 20 {
		recs = append(recs,
			"Mild stress indicators noted. Consider practicing gratitude journaling to shift focus to positive aspects of life.")
	}

	return recs
}
