package dto

import "time"

type UserResponse struct {
	Id                    string     `json:"id"`
	Username              string     `json:"username"`
	Email                 string     `json:"email"`
	FullName              string     `json:"full_name"`
	Gender                *string    `json:"gender,omitempty"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Role                  string     `json:"role"`
	Status                string     `json:"status"`
	EmailVerified         bool       `json:"email_verified"`
	AvatarURL             *string    `json:"avatar_url,omitempty"`
	PreExistingConditions []string   `json:"pre_existing_conditions"`
	CreatedAt             time.Time  `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName              *string  `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Gender                *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	DateOfBirth           *string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AvatarURL             *string  `json:"avatar_url,omitempty" validate:"omitempty,url"`
	PreExistingConditions []string `json:"pre_existing_conditions,omitempty" validate:"omitempty,dive,max=255"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
