package dto

import "time"

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// SendMessageResponse mirrors the chat widget's contract: the bot reply plus
// the depression score of the message that produced it.
type SendMessageResponse struct {
	Response        string `json:"response"`
	DepressionScore int    `json:"depression_score"`
}

// ChatTurnScoredMessage is the internal bus payload published after every
// stored chat exchange; the snapshot worker consumes it.
type ChatTurnScoredMessage struct {
	UserId     string  `json:"user_id"`
	Depression float64 `json:"depression"`
	Anxiety    float64 `json:"anxiety"`
	Stress     float64 `json:"stress"`
}

type ChatTurnResponse struct {
	Id              string    `json:"id"`
	Text            string    `json:"text"`
	IsFromUser      bool      `json:"is_from_user"`
	DepressionScore *int      `json:"depression_score,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	Turns []ChatTurnResponse `json:"turns"`
}

type AnalysisResponse struct {
	DepressionScore int      `json:"depression_score"`
	AnxietyScore    int      `json:"anxiety_score"`
	StressScore     int      `json:"stress_score"`
	Recommendations []string `json:"recommendations"`
}

// SnapshotResponse is the cheap cached view of the running averages kept by
// the snapshot worker. Scores match AnalysisResponse once the worker has
// caught up with the log.
type SnapshotResponse struct {
	DepressionScore int       `json:"depression_score"`
	AnxietyScore    int       `json:"anxiety_score"`
	StressScore     int       `json:"stress_score"`
	MessageCount    int       `json:"message_count"`
	UpdatedAt       time.Time `json:"updated_at"`
}
