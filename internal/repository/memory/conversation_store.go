package memory

import (
	"context"
	"sync"
	"time"

	"mindmate-be/internal/entity"
	"mindmate-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type conversation struct {
	turns []entity.ChatTurn
}

// ConversationStore is the in-memory contract.ConversationRepository. Logs
// never expire; the process owns the data for its lifetime. A single mutex
// guards both the cache and the sequence counter so a pair append is atomic
// with respect to concurrent readers.
type ConversationStore struct {
	mu      sync.Mutex
	cache   *cache.Cache
	nextSeq int64
}

func NewConversationStore() contract.ConversationRepository {
	return &ConversationStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *ConversationStore) AppendPair(ctx context.Context, userTurn, botTurn *entity.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, t := range []*entity.ChatTurn{userTurn, botTurn} {
		if t.Id == uuid.Nil {
			t.Id = uuid.New()
		}
		s.nextSeq++
		t.Seq = s.nextSeq
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
	}

	conv := s.getLocked(userTurn.UserId)
	conv.turns = append(conv.turns, *userTurn, *botTurn)
	s.cache.Set(userTurn.UserId.String(), conv, cache.NoExpiration)
	return nil
}

func (s *ConversationStore) History(ctx context.Context, userId uuid.UUID) ([]entity.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.getLocked(userId)
	out := make([]entity.ChatTurn, len(conv.turns))
	copy(out, conv.turns)
	return out, nil
}

func (s *ConversationStore) UserTexts(ctx context.Context, userId uuid.UUID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.getLocked(userId)
	texts := make([]string, 0, len(conv.turns)/2)
	for _, t := range conv.turns {
		if t.IsFromUser {
			texts = append(texts, t.Text)
		}
	}
	return texts, nil
}

func (s *ConversationStore) Count(ctx context.Context, userId uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.getLocked(userId).turns)), nil
}

func (s *ConversationStore) getLocked(userId uuid.UUID) *conversation {
	if x, found := s.cache.Get(userId.String()); found {
		return x.(*conversation)
	}
	return &conversation{}
}
