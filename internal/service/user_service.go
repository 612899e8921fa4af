package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mindmate-be/internal/dto"
	"mindmate-be/internal/entity"
	"mindmate-be/internal/repository/specification"
	"mindmate-be/internal/repository/unitofwork"

	"mindmate-be/pkg/events"
	pktNats "mindmate-be/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func toUserResponse(user *entity.User) dto.UserResponse {
	conditions := user.PreExistingConditions
	if conditions == nil {
		conditions = []string{}
	}
	return dto.UserResponse{
		Id:                    user.Id.String(),
		Username:              user.Username,
		Email:                 user.Email,
		FullName:              user.FullName,
		Gender:                user.Gender,
		DateOfBirth:           user.DateOfBirth,
		Role:                  string(user.Role),
		Status:                string(user.Status),
		EmailVerified:         user.EmailVerified,
		AvatarURL:             user.AvatarURL,
		PreExistingConditions: conditions,
		CreatedAt:             user.CreatedAt,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// Partial update: only fields present in the request change
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := parseDateOfBirth(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		user.DateOfBirth = dob
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.PreExistingConditions != nil {
		user.PreExistingConditions = req.PreExistingConditions
	}
	user.UpdatedAt = time.Now()

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}
	if user.PasswordHash == nil {
		return errors.New("account has no password; it was registered via OAuth")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return repo.UpdatePassword(ctx, userId, string(hash))
}

func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeUserDeleted,
			Data: map[string]interface{}{
				"user_id": userId.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_DELETED event: %v\n", err)
		}
	}

	return uow.UserRepository().Delete(ctx, userId)
}
