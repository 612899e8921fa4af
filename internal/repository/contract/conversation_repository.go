package contract

import (
	"context"

	"mindmate-be/internal/entity"

	"github.com/google/uuid"
)

// ConversationRepository is the append-only store behind the chatbot. The
// GORM implementation backs it with Postgres; the in-memory implementation
// keeps per-user slices and is used in tests and single-node deployments.
type ConversationRepository interface {
	// AppendPair stores a user turn and the bot turn it produced as one
	// atomic unit, so a crash can never leave the log with a dangling
	// user message.
	AppendPair(ctx context.Context, userTurn, botTurn *entity.ChatTurn) error

	// History returns every turn owned by userId in ascending Seq order.
	// Unknown users get an empty slice, not an error.
	History(ctx context.Context, userId uuid.UUID) ([]entity.ChatTurn, error)

	// UserTexts returns only the text of user-authored turns, in order.
	// This is the input to the aggregate analysis.
	UserTexts(ctx context.Context, userId uuid.UUID) ([]string, error)

	Count(ctx context.Context, userId uuid.UUID) (int64, error)
}
