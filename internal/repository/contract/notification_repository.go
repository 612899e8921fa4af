package contract

import (
	"context"

	"mindmate-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository works directly on models; notifications carry no
// domain behavior beyond persistence so the entity layer is skipped here.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]model.Notification, error)
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) error

	FindTypeByCode(ctx context.Context, code string) (*model.NotificationType, error)
	SaveType(ctx context.Context, t *model.NotificationType) error
}
