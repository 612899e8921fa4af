package mapper

import (
	"mindmate-be/internal/entity"
	"mindmate-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatTurnToEntity(t *model.ChatTurn) *entity.ChatTurn {
	if t == nil {
		return nil
	}
	return &entity.ChatTurn{
		Id:              t.Id,
		UserId:          t.UserId,
		Seq:             t.Seq,
		Text:            t.Text,
		IsFromUser:      t.IsFromUser,
		DepressionScore: t.DepressionScore,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *ChatMapper) ChatTurnToModel(t *entity.ChatTurn) *model.ChatTurn {
	if t == nil {
		return nil
	}
	return &model.ChatTurn{
		Id:              t.Id,
		UserId:          t.UserId,
		Seq:             t.Seq,
		Text:            t.Text,
		IsFromUser:      t.IsFromUser,
		DepressionScore: t.DepressionScore,
		CreatedAt:       t.CreatedAt,
	}
}
