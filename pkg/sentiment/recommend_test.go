package sentiment

import (
	"strings"
	"testing"
)

func TestAggregateEmptyHistory(t *testing.T) {
	got := Aggregate(nil)

	if got.DepressionScore != 0 || got.AnxietyScore != 0 || got.StressScore != 0 {
		t.Errorf("scores = %d/%d/%d, want 0/0/0",
			got.DepressionScore, got.AnxietyScore, got.StressScore)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0] != RecommendationNoData {
		t.Errorf("Recommendations = %v, want exactly [%q]", got.Recommendations, RecommendationNoData)
	}
}

func TestAggregateSingleMessageMildBand(t *testing.T) {
	// "hopeless" + "tired" -> 0.4 -> 40%. The moderate band is a strict
	// >40 check, so a score of exactly 40 gets the mild tip only.
	got := Aggregate([]string{"I feel so hopeless and tired"})

	if got.DepressionScore != 40 {
		t.Fatalf("DepressionScore = %d, want 40", got.DepressionScore)
	}

	var mild, severe bool
	for _, r := range got.Recommendations {
		if strings.Contains(r, "mild depression indicators") {
			mild = true
		}
		if strings.Contains(r, "seeking professional help") {
			severe = true
		}
	}
	if !mild {
		t.Errorf("missing mild-tier depression tip in %v", got.Recommendations)
	}
	if severe {
		t.Errorf("severe-tier tip must not appear at score 40: %v", got.Recommendations)
	}
}

func TestAggregateAveragesAcrossMessages(t *testing.T) {
	// 0.4 and 0.0 average to 0.2 -> 20%.
	got := Aggregate([]string{
		"I feel so hopeless and tired",
		"today was fine",
	})

	if got.DepressionScore != 20 {
		t.Errorf("DepressionScore = %d, want 20", got.DepressionScore)
	}
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	texts := []string{
		"hopeless and tired",
		"anxious and worried",
		"too much pressure at work",
	}
	reversed := []string{texts[2], texts[1], texts[0]}

	a := Aggregate(texts)
	b := Aggregate(reversed)

	if a.DepressionScore != b.DepressionScore ||
		a.AnxietyScore != b.AnxietyScore ||
		a.StressScore != b.StressScore {
		t.Errorf("aggregate depends on order: %+v vs %+v", a, b)
	}
}

func TestRecommendationsBands(t *testing.T) {
	tests := []struct {
		name      string
		dep       int
		anx       int
		str       int
		wantCount int
	}{
		{"all zero keeps only the generic tip", 0, 0, 0, 1},
		{"boundary 20 is below the mild band", 20, 20, 20, 1},
		{"mild on every axis", 21, 21, 21, 4},
		{"severe depression adds two tips", 71, 0, 0, 3},
		{"severe everywhere", 80, 80, 80, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommendations(tt.dep, tt.anx, tt.str)
			if len(got) != tt.wantCount {
				t.Errorf("len = %d, want %d: %v", len(got), tt.wantCount, got)
			}
			if got[0] != "Consider tracking your mood daily to identify patterns and triggers." {
				t.Errorf("generic tip must come first, got %q", got[0])
			}
		})
	}
}
