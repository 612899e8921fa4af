package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn rows are append-only; there is no soft delete because the
// conversation log is never edited after the fact. Seq is a global
// autoincrement, which is monotonically increasing within any single
// user's log.
type ChatTurn struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Seq             int64     `gorm:"autoIncrement;uniqueIndex"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_turns_user_seq,priority:1"`
	Text            string    `gorm:"type:text;not null"`
	IsFromUser      bool      `gorm:"not null"`
	DepressionScore *int
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}
