package sentiment

import (
	"testing"
)

func TestClassifyReplyCascade(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantReply string
		wantScore int
	}{
		{
			name:      "neutral text falls through to fallback",
			text:      "the weather was okay today",
			wantReply: ReplyFallback,
			wantScore: 0,
		},
		{
			name:      "hello greeting",
			text:      "hello",
			wantReply: ReplyGreeting,
			wantScore: 0,
		},
		{
			name:      "hi greeting with other content",
			text:      "hi there",
			wantReply: ReplyGreeting,
			wantScore: 0,
		},
		{
			name:      "greeting wins over depression keywords",
			text:      "hello, I feel sad and hopeless and worthless and empty",
			wantReply: ReplyGreeting,
			wantScore: 80,
		},
		{
			name:      "two depression hits is moderate",
			text:      "I feel so hopeless and tired",
			wantReply: ReplyDepressionModerate,
			wantScore: 40,
		},
		{
			name:      "four depression hits is severe",
			text:      "sad, hopeless, worthless and empty",
			wantReply: ReplyDepressionSevere,
			wantScore: 80,
		},
		{
			name:      "three stress hits is exactly 0.6 and stays moderate",
			text:      "I'm stressed about my deadline and feel overwhelmed",
			wantReply: ReplyStressModerate,
			wantScore: 0,
		},
		{
			name:      "depression outranks anxiety",
			text:      "I'm depressed, hopeless and also anxious, worried, scared, afraid",
			wantReply: ReplyDepressionModerate,
			wantScore: 40,
		},
		{
			name:      "sleep topic",
			text:      "my insomnia is back",
			wantReply: ReplySleep,
			wantScore: 0,
		},
		{
			name:      "exercise topic",
			text:      "should I try a workout routine?",
			wantReply: ReplyExercise,
			wantScore: 0,
		},
		{
			name:      "meditation topic",
			text:      "does meditation actually work",
			wantReply: ReplyMindfulness,
			wantScore: 0,
		},
		{
			name:      "thanks",
			text:      "thank you for listening",
			wantReply: ReplyThanks,
			wantScore: 0,
		},
		{
			name:      "substring matching means this triggers the greeting",
			text:      "this is fine",
			wantReply: ReplyGreeting,
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Reply != tt.wantReply {
				t.Errorf("Reply = %q, want %q", got.Reply, tt.wantReply)
			}
			if got.DepressionScore != tt.wantScore {
				t.Errorf("DepressionScore = %d, want %d", got.DepressionScore, tt.wantScore)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	const text = "I feel anxious and worried about everything"

	first := Classify(text)
	second := Classify(text)

	if first != second {
		t.Errorf("Classify not idempotent: %+v vs %+v", first, second)
	}
}

func TestScoreMessageSaturation(t *testing.T) {
	// Six distinct depression keywords; the axis must clamp at 1.0 exactly.
	got := ScoreMessage("sad hopeless worthless empty lonely miserable")

	if got.Depression != 1.0 {
		t.Errorf("Depression = %v, want exactly 1.0", got.Depression)
	}
}

func TestScoreMessageAxisIndependence(t *testing.T) {
	// "stress" sits in both the anxiety and stress keyword tables.
	got := ScoreMessage("too much stress")

	if got.Anxiety != 0.2 {
		t.Errorf("Anxiety = %v, want 0.2", got.Anxiety)
	}
	// "stress" and "too much" both hit the stress table.
	if got.Stress < 0.39 || got.Stress > 0.41 {
		t.Errorf("Stress = %v, want 0.4", got.Stress)
	}
	if got.Depression != 0 {
		t.Errorf("Depression = %v, want 0", got.Depression)
	}
}

func TestScoreMessageExactSteps(t *testing.T) {
	// Three distinct stress hits must land on 0.6 exactly. Accumulating
	// 0.2 per hit would give 0.6000000000000001 and push the message over
	// the strict severe boundary.
	got := ScoreMessage("I'm stressed about my deadline and feel overwhelmed")

	if got.Stress != 0.6 {
		t.Errorf("Stress = %v, want exactly 0.6", got.Stress)
	}
	if got.Severe() {
		t.Errorf("Severe() = true for three hits, want false")
	}
}

func TestSevere(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"neutral", "nice day outside", false},
		{"moderate depression", "hopeless and tired", false},
		{"three depression hits stays below severe", "sad hopeless worthless", false},
		{"severe depression", "sad hopeless worthless empty", true},
		{"severe anxiety", "anxious worried nervous panic", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreMessage(tt.text).Severe(); got != tt.want {
				t.Errorf("Severe() = %v, want %v", got, tt.want)
			}
		})
	}
}
