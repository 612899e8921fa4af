package implementation

import (
	"context"

	"mindmate-be/internal/entity"
	"mindmate-be/internal/mapper"
	"mindmate-be/internal/model"
	"mindmate-be/internal/repository/contract"
	"mindmate-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ConversationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationRepositoryImpl) AppendPair(ctx context.Context, userTurn, botTurn *entity.ChatTurn) error {
	userModel := r.mapper.ChatTurnToModel(userTurn)
	botModel := r.mapper.ChatTurnToModel(botTurn)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}
		return tx.Create(botModel).Error
	})
	if err != nil {
		return err
	}

	*userTurn = *r.mapper.ChatTurnToEntity(userModel)
	*botTurn = *r.mapper.ChatTurnToEntity(botModel)
	return nil
}

func (r *ConversationRepositoryImpl) History(ctx context.Context, userId uuid.UUID) ([]entity.ChatTurn, error) {
	var models []model.ChatTurn
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBySeq{},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	turns := make([]entity.ChatTurn, 0, len(models))
	for i := range models {
		turns = append(turns, *r.mapper.ChatTurnToEntity(&models[i]))
	}
	return turns, nil
}

func (r *ConversationRepositoryImpl) UserTexts(ctx context.Context, userId uuid.UUID) ([]string, error) {
	var texts []string
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatTurn{}),
		specification.UserOwnedBy{UserID: userId},
		specification.UserAuthoredOnly{},
		specification.OrderBySeq{},
	)
	if err := query.Pluck("text", &texts).Error; err != nil {
		return nil, err
	}
	return texts, nil
}

func (r *ConversationRepositoryImpl) Count(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatTurn{}),
		specification.UserOwnedBy{UserID: userId},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
