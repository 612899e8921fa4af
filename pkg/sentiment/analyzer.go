// Package sentiment implements the keyword-matching mood heuristic behind
// the MindMate chatbot: per-message severity scores for depression, anxiety
// and stress, a canned supportive reply chosen by a fixed priority cascade,
// and the recommendation catalog used by the aggregate analysis.
//
// Everything here is a pure function of the input text. Persistence and
// transport are the caller's concern.
package sentiment

import (
	"math"
	"strings"
)

// Scores holds the raw per-axis severity values for a single message.
// Each value is a saturating count of distinct keyword hits rescaled to
// [0,1] in exact 0.2 steps (five hits saturate the axis), not a calibrated
// probability.
type Scores struct {
	Depression float64
	Anxiety    float64
	Stress     float64
}

// Result is the outcome of classifying one user message.
// DepressionScore is the depression value rescaled to 0..100; the other two
// axes feed reply selection but are not reported per message.
type Result struct {
	Reply           string
	DepressionScore int
}

// ScoreMessage computes the three severity values for a message.
func ScoreMessage(text string) Scores {
	lower := strings.ToLower(text)

	return Scores{
		Depression: hitValue(countHits(lower, depressionKeywords)),
		Anxiety:    hitValue(countHits(lower, anxietyKeywords)),
		Stress:     hitValue(countHits(lower, stressKeywords)),
	}
}

func countHits(lower string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	if hits > maxHits {
		hits = maxHits
	}
	return hits
}

// hitValue converts a capped hit count to the reported axis value. Dividing
// by maxHits instead of accumulating 0.2 per hit keeps three hits at exactly
// 0.6, so strict comparisons against the band constants cannot trip on
// float drift.
func hitValue(hits int) float64 {
	return float64(hits) / maxHits
}

// valueHits recovers the hit count from an axis value.
func valueHits(value float64) int {
	return int(math.Round(value * maxHits))
}

// Classify scores a message and selects the reply.
//
// The cascade is ordered: greetings win over everything, then depression,
// anxiety and stress in severe-before-moderate order, then topical replies,
// then the generic fallback. Thresholds are strict and decided on the
// distinct-hit count: severe needs four hits (value > 0.6), moderate two
// (value > 0.3); exactly three hits (0.6) stays moderate. Callers must
// reject empty input before calling.
func Classify(text string) Result {
	lower := strings.ToLower(text)

	depHits := countHits(lower, depressionKeywords)
	anxHits := countHits(lower, anxietyKeywords)
	strHits := countHits(lower, stressKeywords)

	res := Result{DepressionScore: toPercent(hitValue(depHits))}

	switch {
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi"):
		res.Reply = ReplyGreeting
	case depHits >= severeHits:
		res.Reply = ReplyDepressionSevere
	case depHits >= moderateHits:
		res.Reply = ReplyDepressionModerate
	case anxHits >= severeHits:
		res.Reply = ReplyAnxietySevere
	case anxHits >= moderateHits:
		res.Reply = ReplyAnxietyModerate
	case strHits >= severeHits:
		res.Reply = ReplyStressSevere
	case strHits >= moderateHits:
		res.Reply = ReplyStressModerate
	case containsAny(lower, "sleep", "tired", "insomnia"):
		res.Reply = ReplySleep
	case containsAny(lower, "exercise", "workout", "physical activity"):
		res.Reply = ReplyExercise
	case containsAny(lower, "meditation", "mindful", "breathing"):
		res.Reply = ReplyMindfulness
	case strings.Contains(lower, "thank"):
		res.Reply = ReplyThanks
	default:
		res.Reply = ReplyFallback
	}

	return res
}

// Severe reports whether any axis of a scored message crossed the severe
// reply threshold. The check recovers the hit count from the value so it
// uses the same boundary as the reply cascade. Used by the chat service to
// raise crisis alerts.
func (s Scores) Severe() bool {
	return valueHits(s.Depression) >= severeHits ||
		valueHits(s.Anxiety) >= severeHits ||
		valueHits(s.Stress) >= severeHits
}

func containsAny(lower string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

func toPercent(value float64) int {
	return int(math.Round(value * 100))
}
