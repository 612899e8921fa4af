package dto

import "time"

type RegisterRequest struct {
	Username              string   `json:"username" validate:"required,min=3,max=100"`
	Email                 string   `json:"email" validate:"required,email"`
	Password              string   `json:"password" validate:"required,min=8"`
	FullName              string   `json:"full_name" validate:"required,max=255"`
	Gender                *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	DateOfBirth           *string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PreExistingConditions []string `json:"pre_existing_conditions,omitempty" validate:"omitempty,dive,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

type ResendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterResponse struct {
	Id    string `json:"id"`
	Email string `json:"email"`
}

type AuthTokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}
