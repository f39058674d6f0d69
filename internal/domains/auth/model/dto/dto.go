package dto

import (
	"strings"
	"time"

	"conectapro/infras/jwt"
	userModel "conectapro/internal/domains/user/model"
	userDto "conectapro/internal/domains/user/model/dto"
	"conectapro/shared/constant"
	gModel "conectapro/shared/model"
	"conectapro/shared/timezone"

	"github.com/google/uuid"
)

const maskedDigits = "*** ***"

type RegisterRequest struct {
	FullName    string `json:"full_name"    validate:"required,min=2,max=100"`
	Email       string `json:"email"        validate:"omitempty,email,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	Password    string `json:"password"     validate:"required,min=6,max=72"`
	AccountType string `json:"account_type" validate:"omitempty,oneof=CLIENTE CONECTA_PRO"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	accountType := r.AccountType
	if accountType == "" {
		accountType = constant.RoleClient
	}

	var email *string
	if r.Email != "" {
		lowered := strings.ToLower(strings.TrimSpace(r.Email))
		email = &lowered
	}

	return userModel.User{
		ID:          uuid.NewString(),
		FullName:    strings.TrimSpace(r.FullName),
		Email:       email,
		PhoneNumber: r.PhoneNumber,
		Password:    hashedPassword,
		AccountType: accountType,
		Status:      userModel.StatusUnverified,
		Metadata:    gModel.NewMetadata(constant.ContextGuest, timezone.Now()),
	}
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password"     validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *Tokens) FromTokenPair(tokenPair *jwt.TokenPair) {
	t.AccessToken = tokenPair.AccessToken
	t.RefreshToken = tokenPair.RefreshToken
	t.ExpiresIn = tokenPair.ExpiresIn
}

type AuthResponse struct {
	User   userDto.UserResponse `json:"user"`
	Tokens Tokens               `json:"tokens"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6,max=72"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required"`
}

type PhoneVerificationRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type PhoneVerificationResponse struct {
	MaskedPhone  string `json:"masked_phone"`
	ExpiresIn    int    `json:"expires_in"`
	AttemptsLeft int    `json:"attempts_left"`
}

// MaskPhone keeps the first four and last three characters of long numbers.
func MaskPhone(phone string) string {
	if len(phone) <= 7 {
		return phone
	}

	return phone[:4] + " " + maskedDigits + " " + phone[len(phone)-3:]
}

type ConfirmPhoneRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Code        string `json:"code"         validate:"required,numeric"`
}

type ConfirmPhoneResponse struct {
	UserID        string `json:"user_id"`
	PhoneVerified bool   `json:"phone_verified"`
}

type VerifyPhoneFields struct {
	PhoneVerified bool   `db:"phone_verified"`
	Status        string `db:"status"`
}
