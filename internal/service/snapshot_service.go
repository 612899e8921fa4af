package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"mindmate-be/internal/dto"
	"mindmate-be/pkg/sentiment"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ISnapshotService interface {
	Consume(ctx context.Context) error
	Snapshot(ctx context.Context, userId uuid.UUID) (*dto.SnapshotResponse, error)
}

type axisSums struct {
	Count      int
	Depression float64
	Anxiety    float64
	Stress     float64
	UpdatedAt  time.Time
}

// snapshotService keeps per-user running sentiment sums, fed by the internal
// bus. It answers the cheap snapshot endpoint without rescanning the log;
// state is process-local and rebuilt from fresh traffic after a restart.
type snapshotService struct {
	pubSub    *gochannel.GoChannel
	topicName string

	mu    sync.Mutex
	stats *cache.Cache
}

func NewSnapshotService(pubSub *gochannel.GoChannel, topicName string) ISnapshotService {
	return &snapshotService{
		pubSub:    pubSub,
		topicName: topicName,
		stats:     cache.New(cache.NoExpiration, 0),
	}
}

func (s *snapshotService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *snapshotService) processMessage(msg *message.Message) {
	var payload dto.ChatTurnScoredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal scored turn message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	s.mu.Lock()
	var sums axisSums
	if x, found := s.stats.Get(payload.UserId); found {
		sums = x.(axisSums)
	}
	sums.Count++
	sums.Depression += payload.Depression
	sums.Anxiety += payload.Anxiety
	sums.Stress += payload.Stress
	sums.UpdatedAt = time.Now()
	s.stats.Set(payload.UserId, sums, cache.NoExpiration)
	s.mu.Unlock()

	msg.Ack()
}

func (s *snapshotService) Snapshot(ctx context.Context, userId uuid.UUID) (*dto.SnapshotResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sums axisSums
	if x, found := s.stats.Get(userId.String()); found {
		sums = x.(axisSums)
	}

	return &dto.SnapshotResponse{
		DepressionScore: sentiment.MeanPercent(sums.Depression, sums.Count),
		AnxietyScore:    sentiment.MeanPercent(sums.Anxiety, sums.Count),
		StressScore:     sentiment.MeanPercent(sums.Stress, sums.Count),
		MessageCount:    sums.Count,
		UpdatedAt:       sums.UpdatedAt,
	}, nil
}
