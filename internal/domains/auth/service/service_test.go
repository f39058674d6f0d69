package service_test

import (
	"context"
	"errors"
	"testing"

	"conectapro/config"
	"conectapro/infras/jwt"
	jwtMocks "conectapro/infras/jwt/mocks"
	"conectapro/infras/otel/mocks"
	"conectapro/internal/domains/auth/model/dto"
	"conectapro/internal/domains/auth/service"
	userMocks "conectapro/internal/domains/user/mocks"
	userModel "conectapro/internal/domains/user/model"
	"conectapro/shared/constant"
	"conectapro/shared/failure"
	"conectapro/shared/password"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const phone = "+51987654321"

type fixture struct {
	svc  service.Auth
	repo *userMocks.MockUser
	jwt  *jwtMocks.MockJWT
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.PhoneVerificationCode = "3333"

	f := fixture{
		repo: userMocks.NewMockUser(ctrl),
		jwt:  jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.repo, cfg, mocks.NewOtel(), f.jwt)

	return f
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresIn: 3600}
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{FullName: "Ana", PhoneNumber: phone, Password: "secret1", AccountType: constant.RoleProvider}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "registers and issues tokens",
			setupMock: func(f fixture) {
				f.repo.EXPECT().PhoneTaken(gomock.Any(), phone).Return(false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.NoError(t, password.Verify("secret1", user.Password))
						assert.Equal(t, constant.RoleProvider, user.AccountType)

						return nil
					})
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), phone, constant.RoleProvider).Return(tokenPair(), nil)
			},
		},
		{
			name: "phone already registered",
			setupMock: func(f fixture) {
				f.repo.EXPECT().PhoneTaken(gomock.Any(), phone).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "concurrent registration hits the unique index",
			setupMock: func(f fixture) {
				f.repo.EXPECT().PhoneTaken(gomock.Any(), phone).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().PhoneTaken(gomock.Any(), phone).Return(false, errors.New("database error"))
			},
			wantErr:  true,
			wantKind: failure.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Register(context.Background(), req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.Tokens.AccessToken)
			assert.Equal(t, phone, res.User.PhoneNumber)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("secret1")
	require.NoError(t, err)

	user := userModel.User{
		ID:          "user-1",
		FullName:    "Ana",
		PhoneNumber: phone,
		Password:    hashed,
		AccountType: constant.RoleClient,
		Status:      userModel.StatusActive,
	}

	tests := []struct {
		name      string
		password  string
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name:     "successful login",
			password: "secret1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetByPhone(gomock.Any(), phone).Return(user, nil)
				f.jwt.EXPECT().GenerateTokenPair("user-1", phone, constant.RoleClient).Return(tokenPair(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "last login failure does not block the login",
			password: "secret1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetByPhone(gomock.Any(), phone).Return(user, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
		},
		{
			name:     "unknown phone",
			password: "secret1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetByPhone(gomock.Any(), phone).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetByPhone(gomock.Any(), phone).Return(user, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name:     "suspended account",
			password: "secret1",
			setupMock: func(f fixture) {
				suspended := user
				suspended.Status = userModel.StatusSuspended

				f.repo.EXPECT().GetByPhone(gomock.Any(), phone).Return(suspended, nil)
			},
			wantErr:  true,
			wantKind: failure.KindForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Login(context.Background(), dto.LoginRequest{PhoneNumber: phone, Password: tt.password})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "refresh-token", res.Tokens.RefreshToken)
			assert.Equal(t, "user-1", res.User.ID)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates the pair", func(t *testing.T) {
		f := newFixture(t)
		f.jwt.EXPECT().RefreshTokens("refresh-token").Return(tokenPair(), nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newFixture(t)
		f.jwt.EXPECT().RefreshTokens(gomock.Any()).Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

		assert.True(t, failure.Is(err, failure.KindUnauthorized))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, err := password.Hash("secret1")
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

	t.Run("updates the hash", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "user-1", Password: hashed}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				newHash, ok := fields[userModel.FieldPassword].(string)
				require.True(t, ok)
				assert.NoError(t, password.Verify("secret2", newHash))

				return nil
			})

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"})

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "user-1", Password: hashed}, nil)

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "secret2"})

		assert.True(t, failure.Is(err, failure.KindValidation))
	})
}

func TestAuthService_PhoneVerification(t *testing.T) {
	t.Run("request masks the phone", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.RequestPhoneVerification(context.Background(), dto.PhoneVerificationRequest{PhoneNumber: phone})

		require.NoError(t, err)
		assert.Equal(t, "+519 *** *** 321", res.MaskedPhone)
		assert.Equal(t, 3, res.AttemptsLeft)
	})

	t.Run("confirm activates the account", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByPhone(gomock.Any(), phone, userModel.FieldID).Return(userModel.User{ID: "user-1"}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[userModel.FieldPhoneVerified])
				assert.Equal(t, userModel.StatusActive, fields[userModel.FieldStatus])

				return nil
			})

		res, err := f.svc.ConfirmPhoneVerification(context.Background(), dto.ConfirmPhoneRequest{PhoneNumber: phone, Code: "3333"})

		require.NoError(t, err)
		assert.True(t, res.PhoneVerified)
	})

	t.Run("wrong code", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ConfirmPhoneVerification(context.Background(), dto.ConfirmPhoneRequest{PhoneNumber: phone, Code: "0000"})

		assert.True(t, failure.Is(err, failure.KindValidation))
	})
}
