package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mindmate-be/internal/dto"
	"mindmate-be/internal/entity"
	"mindmate-be/internal/repository/contract"
	"mindmate-be/pkg/events"
	pktNats "mindmate-be/pkg/nats"
	"mindmate-be/pkg/sentiment"

	"github.com/google/uuid"
)

type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	History(ctx context.Context, userId uuid.UUID) (*dto.ChatHistoryResponse, error)
	Analysis(ctx context.Context, userId uuid.UUID) (*dto.AnalysisResponse, error)
}

type chatService struct {
	conversations    contract.ConversationRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewChatService(
	conversations contract.ConversationRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IChatService {
	return &chatService{
		conversations:    conversations,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, errors.New("message must not be empty")
	}

	scores := sentiment.ScoreMessage(text)
	result := sentiment.Classify(text)

	now := time.Now()
	userTurn := &entity.ChatTurn{
		Id:         uuid.New(),
		UserId:     userId,
		Text:       text,
		IsFromUser: true,
		CreatedAt:  now,
	}
	score := result.DepressionScore
	botTurn := &entity.ChatTurn{
		Id:              uuid.New(),
		UserId:          userId,
		Text:            result.Reply,
		IsFromUser:      false,
		DepressionScore: &score,
		CreatedAt:       now,
	}

	if err := s.conversations.AppendPair(ctx, userTurn, botTurn); err != nil {
		return nil, err
	}

	// Feed the snapshot worker. Best effort; the analysis endpoint never
	// depends on this.
	if s.publisherService != nil {
		msg := dto.ChatTurnScoredMessage{
			UserId:     userId.String(),
			Depression: scores.Depression,
			Anxiety:    scores.Anxiety,
			Stress:     scores.Stress,
		}
		if err := s.publisherService.Publish(ctx, msg); err != nil {
			fmt.Printf("[WARN] Failed to publish chat turn scored message: %v\n", err)
		}
	}

	if scores.Severe() && s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeChatSevereSentiment,
			Data: map[string]interface{}{
				"user_id":    userId.String(),
				"depression": scores.Depression,
				"anxiety":    scores.Anxiety,
				"stress":     scores.Stress,
				"time":       now.Format(time.RFC3339),
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish CHAT_SEVERE_SENTIMENT event: %v\n", err)
		}
	}

	return &dto.SendMessageResponse{
		Response:        result.Reply,
		DepressionScore: result.DepressionScore,
	}, nil
}

func (s *chatService) History(ctx context.Context, userId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	turns, err := s.conversations.History(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := &dto.ChatHistoryResponse{Turns: make([]dto.ChatTurnResponse, 0, len(turns))}
	for _, t := range turns {
		res.Turns = append(res.Turns, dto.ChatTurnResponse{
			Id:              t.Id.String(),
			Text:            t.Text,
			IsFromUser:      t.IsFromUser,
			DepressionScore: t.DepressionScore,
			CreatedAt:       t.CreatedAt,
		})
	}
	return res, nil
}

// Analysis always recomputes from the full log so it reflects every stored
// message, regardless of snapshot worker lag.
func (s *chatService) Analysis(ctx context.Context, userId uuid.UUID) (*dto.AnalysisResponse, error) {
	texts, err := s.conversations.UserTexts(ctx, userId)
	if err != nil {
		return nil, err
	}

	summary := sentiment.Aggregate(texts)
	return &dto.AnalysisResponse{
		DepressionScore: summary.DepressionScore,
		AnxietyScore:    summary.AnxietyScore,
		StressScore:     summary.StressScore,
		Recommendations: summary.Recommendations,
	}, nil
}
