package service

import (
	"context"
	"errors"
	"fmt"

	"conectapro/config"
	"conectapro/infras/jwt"
	"conectapro/infras/otel"
	"conectapro/internal/domains/auth/model/dto"
	userModel "conectapro/internal/domains/user/model"
	userRepo "conectapro/internal/domains/user/repository"
	"conectapro/shared"
	"conectapro/shared/constant"
	"conectapro/shared/failure"
	"conectapro/shared/password"
	"conectapro/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	phoneVerificationTTL      = 300
	phoneVerificationAttempts = 3

	msgInvalidCredentials = "Credenciales inválidas"
	msgPhoneTaken         = "Ya existe un usuario con este número de teléfono"
	msgUserNotFound       = "Usuario no encontrado"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.Tokens, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	RequestPhoneVerification(ctx context.Context, req dto.PhoneVerificationRequest) (dto.PhoneVerificationResponse, error)
	ConfirmPhoneVerification(ctx context.Context, req dto.ConfirmPhoneRequest) (dto.ConfirmPhoneResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.PhoneTaken(ctx, req.PhoneNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(msgPhoneTaken) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(msgPhoneTaken) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issue(user)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.GetByPhone(ctx, req.PhoneNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("phone_number", dto.MaskPhone(req.PhoneNumber)).Msg("login attempt with unknown phone number")

		return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("user_id", user.ID).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	if user.IsSuspended() {
		return res, failure.Forbidden("La cuenta está suspendida") // nolint:wrapcheck
	}

	res, err = s.issue(user)
	if err != nil {
		return res, err
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	filter := shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)
	if err := s.userRepo.Update(ctx, shared.TransformFields(lastLogin, user.ID), filter); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	return res, nil
}

func (s *serviceImpl) issue(user userModel.User) (res dto.AuthResponse, err error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.PhoneNumber, user.AccountType)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.User.FromModel(user)
	res.Tokens.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.Tokens, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("Token de actualización inválido") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID := shared.UserFromContext(ctx)
	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound(msgUserNotFound) // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("Contraseña actual incorrecta") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	if err = s.userRepo.Update(ctx, shared.TransformFields(updatePassword, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// RequestPhoneVerification is simulated: no message is sent and the code is fixed by configuration.
func (s *serviceImpl) RequestPhoneVerification(ctx context.Context, req dto.PhoneVerificationRequest) (res dto.PhoneVerificationResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestPhoneVerification")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return dto.PhoneVerificationResponse{
		MaskedPhone:  dto.MaskPhone(req.PhoneNumber),
		ExpiresIn:    phoneVerificationTTL,
		AttemptsLeft: phoneVerificationAttempts,
	}, nil
}

func (s *serviceImpl) ConfirmPhoneVerification(ctx context.Context, req dto.ConfirmPhoneRequest) (res dto.ConfirmPhoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPhoneVerification")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Code != s.cfg.App.PhoneVerificationCode {
		return res, failure.BadRequestFromString("Código de verificación inválido") // nolint:wrapcheck
	}

	user, err := s.userRepo.GetByPhone(ctx, req.PhoneNumber, userModel.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound(msgUserNotFound) // nolint:wrapcheck
	}

	fields := shared.TransformFields(dto.VerifyPhoneFields{PhoneVerified: true, Status: userModel.StatusActive}, user.ID)
	filter := shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)

	if err = s.userRepo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to verify phone")

		return res, fmt.Errorf("failed to verify phone: %w", err)
	}

	return dto.ConfirmPhoneResponse{UserID: user.ID, PhoneVerified: true}, nil
}
