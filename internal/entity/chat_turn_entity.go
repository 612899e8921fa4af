package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one message in a user's conversation log: either the user's
// own text or the bot reply it triggered. Turns are immutable once appended.
type ChatTurn struct {
	Id     uuid.UUID
	UserId uuid.UUID

	// Seq is the store-assigned position in the owner's log; history is
	// always returned in ascending Seq order.
	Seq int64

	Text       string
	IsFromUser bool

	// DepressionScore is set on bot turns only (0..100), recording the
	// score reported alongside the reply.
	DepressionScore *int

	CreatedAt time.Time
}
