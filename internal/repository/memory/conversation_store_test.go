package memory

import (
	"context"
	"sync"
	"testing"

	"mindmate-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair(userId uuid.UUID, userText, botText string) (*entity.ChatTurn, *entity.ChatTurn) {
	score := 0
	return &entity.ChatTurn{UserId: userId, Text: userText, IsFromUser: true},
		&entity.ChatTurn{UserId: userId, Text: botText, IsFromUser: false, DepressionScore: &score}
}

func TestConversationStore_UnknownUserIsEmpty(t *testing.T) {
	store := NewConversationStore()

	turns, err := store.History(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, turns)

	count, err := store.Count(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConversationStore_AppendPairKeepsOrder(t *testing.T) {
	store := NewConversationStore()
	userId := uuid.New()

	u1, b1 := pair(userId, "hello", "greeting reply")
	require.NoError(t, store.AppendPair(context.Background(), u1, b1))
	u2, b2 := pair(userId, "i feel sad", "support reply")
	require.NoError(t, store.AppendPair(context.Background(), u2, b2))

	turns, err := store.History(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, turns, 4)

	assert.Equal(t, []string{"hello", "greeting reply", "i feel sad", "support reply"},
		[]string{turns[0].Text, turns[1].Text, turns[2].Text, turns[3].Text})
	for i := 1; i < len(turns); i++ {
		assert.Greater(t, turns[i].Seq, turns[i-1].Seq)
	}
	assert.NotEqual(t, uuid.Nil, turns[0].Id)
}

func TestConversationStore_UserTextsSkipBotTurns(t *testing.T) {
	store := NewConversationStore()
	userId := uuid.New()

	u, b := pair(userId, "i feel anxious", "calm down reply")
	require.NoError(t, store.AppendPair(context.Background(), u, b))

	texts, err := store.UserTexts(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, []string{"i feel anxious"}, texts)
}

func TestConversationStore_IsolatesUsers(t *testing.T) {
	store := NewConversationStore()
	alice := uuid.New()
	bob := uuid.New()

	u, b := pair(alice, "hi", "hello there")
	require.NoError(t, store.AppendPair(context.Background(), u, b))

	turns, err := store.History(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestConversationStore_ConcurrentAppends(t *testing.T) {
	store := NewConversationStore()
	userId := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, b := pair(userId, "message", "reply")
			assert.NoError(t, store.AppendPair(context.Background(), u, b))
		}()
	}
	wg.Wait()

	turns, err := store.History(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, turns, 40)

	// Each pair lands adjacently: a user turn is always followed by a bot turn.
	for i := 0; i < len(turns); i += 2 {
		assert.True(t, turns[i].IsFromUser)
		assert.False(t, turns[i+1].IsFromUser)
	}
	for i := 1; i < len(turns); i++ {
		assert.Greater(t, turns[i].Seq, turns[i-1].Seq)
	}
}
