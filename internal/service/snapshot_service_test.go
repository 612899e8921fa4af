package service

import (
	"context"
	"testing"
	"time"

	"mindmate-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotFixture(t *testing.T) (ISnapshotService, IPublisherService) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	snap := NewSnapshotService(pubSub, "CHAT_TURN_SCORED")
	require.NoError(t, snap.Consume(context.Background()))
	return snap, NewPublisherService("CHAT_TURN_SCORED", pubSub)
}

func TestSnapshotService_EmptyUser(t *testing.T) {
	snap, _ := newSnapshotFixture(t)

	res, err := snap.Snapshot(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, res.DepressionScore)
	assert.Zero(t, res.MessageCount)
}

func TestSnapshotService_AccumulatesRunningMeans(t *testing.T) {
	snap, pub := newSnapshotFixture(t)
	userId := uuid.New()

	msgs := []dto.ChatTurnScoredMessage{
		{UserId: userId.String(), Depression: 0.4, Anxiety: 0.2},
		{UserId: userId.String(), Depression: 0.0, Anxiety: 0.0},
	}
	for _, m := range msgs {
		require.NoError(t, pub.Publish(context.Background(), m))
	}

	require.Eventually(t, func() bool {
		res, err := snap.Snapshot(context.Background(), userId)
		return err == nil && res.MessageCount == 2
	}, 2*time.Second, 10*time.Millisecond)

	res, err := snap.Snapshot(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 20, res.DepressionScore)
	assert.Equal(t, 10, res.AnxietyScore)
	assert.Equal(t, 0, res.StressScore)
	assert.False(t, res.UpdatedAt.IsZero())
}

func TestSnapshotService_IsolatesUsers(t *testing.T) {
	snap, pub := newSnapshotFixture(t)
	alice := uuid.New()

	require.NoError(t, pub.Publish(context.Background(), dto.ChatTurnScoredMessage{
		UserId: alice.String(), Depression: 1.0,
	}))

	require.Eventually(t, func() bool {
		res, err := snap.Snapshot(context.Background(), alice)
		return err == nil && res.MessageCount == 1
	}, 2*time.Second, 10*time.Millisecond)

	other, err := snap.Snapshot(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, other.MessageCount)
}
