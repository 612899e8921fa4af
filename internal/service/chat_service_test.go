package service

import (
	"context"
	"testing"

	"mindmate-be/internal/dto"
	"mindmate-be/internal/repository/memory"
	"mindmate-be/pkg/sentiment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	payloads []interface{}
}

func (p *capturePublisher) Publish(ctx context.Context, payload interface{}) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func newChatServiceForTest() (IChatService, *capturePublisher) {
	pub := &capturePublisher{}
	return NewChatService(memory.NewConversationStore(), pub, nil), pub
}

func TestChatService_SendMessageStoresBothTurns(t *testing.T) {
	svc, _ := newChatServiceForTest()
	userId := uuid.New()

	res, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, sentiment.ReplyGreeting, res.Response)
	assert.Equal(t, 0, res.DepressionScore)

	history, err := svc.History(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, history.Turns, 2)

	assert.True(t, history.Turns[0].IsFromUser)
	assert.Equal(t, "hello", history.Turns[0].Text)
	assert.Nil(t, history.Turns[0].DepressionScore)

	assert.False(t, history.Turns[1].IsFromUser)
	assert.Equal(t, sentiment.ReplyGreeting, history.Turns[1].Text)
	require.NotNil(t, history.Turns[1].DepressionScore)
	assert.Equal(t, 0, *history.Turns[1].DepressionScore)
}

func TestChatService_SendMessageRejectsBlankInput(t *testing.T) {
	svc, pub := newChatServiceForTest()

	_, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{Message: "   "})
	require.Error(t, err)
	assert.Empty(t, pub.payloads)
}

func TestChatService_SendMessageReportsDepressionScore(t *testing.T) {
	svc, _ := newChatServiceForTest()
	userId := uuid.New()

	res, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Message: "I feel so depressed and hopeless and worthless and empty"})
	require.NoError(t, err)
	assert.Equal(t, 80, res.DepressionScore)
	assert.Equal(t, sentiment.ReplyDepressionSevere, res.Response)
}

func TestChatService_SendMessagePublishesScoredTurn(t *testing.T) {
	svc, pub := newChatServiceForTest()
	userId := uuid.New()

	_, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Message: "i feel sad and tired"})
	require.NoError(t, err)

	require.Len(t, pub.payloads, 1)
	msg, ok := pub.payloads[0].(dto.ChatTurnScoredMessage)
	require.True(t, ok)
	assert.Equal(t, userId.String(), msg.UserId)
	assert.InDelta(t, 0.4, msg.Depression, 1e-9) // "sad" + "tired"
}

func TestChatService_HistoryEmptyForNewUser(t *testing.T) {
	svc, _ := newChatServiceForTest()

	history, err := svc.History(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, history.Turns)
}

func TestChatService_AnalysisEmptyHistory(t *testing.T) {
	svc, _ := newChatServiceForTest()

	res, err := svc.Analysis(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, res.DepressionScore)
	assert.Zero(t, res.AnxietyScore)
	assert.Zero(t, res.StressScore)
	assert.Equal(t, []string{sentiment.RecommendationNoData}, res.Recommendations)
}

func TestChatService_AnalysisAveragesUserTurnsOnly(t *testing.T) {
	svc, _ := newChatServiceForTest()
	userId := uuid.New()

	// Two user messages: 0.4 and 0.0 depression -> mean 0.2 -> score 20
	_, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Message: "I feel so hopeless and tired"})
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Message: "the weather is nice"})
	require.NoError(t, err)

	res, err := svc.Analysis(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 20, res.DepressionScore)

	// Bot replies must not contribute to the aggregate even though they
	// contain axis keywords.
	assert.Equal(t, 0, res.AnxietyScore)
}
