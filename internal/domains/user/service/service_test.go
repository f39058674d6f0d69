package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"conectapro/config"
	"conectapro/infras/otel/mocks"
	userMocks "conectapro/internal/domains/user/mocks"
	"conectapro/internal/domains/user/model"
	"conectapro/internal/domains/user/model/dto"
	"conectapro/internal/domains/user/service"
	cacheMocks "conectapro/shared/cache/mocks"
	"conectapro/shared/constant"
	"conectapro/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func TestUserService_GetMe(t *testing.T) {
	email := "ana@example.com"
	user := model.User{
		ID:            "user-1",
		FullName:      "Ana Torres",
		Email:         &email,
		PhoneNumber:   "+51987654321",
		AccountType:   constant.RoleClient,
		Status:        model.StatusActive,
		PhoneVerified: true,
	}

	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "cache miss reads the directory",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "user:get:user-1", gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "unknown user",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "repository error",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("database error"))
			},
			wantErr:  true,
			wantKind: failure.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.GetMe(userContext())

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Ana Torres", res.FullName)
			assert.Equal(t, constant.RoleClient, res.AccountType)
			assert.True(t, res.Status.PhoneVerified)
			assert.False(t, res.Status.IdentityVerified)
		})
	}
}

func TestUserService_UpdatePersonalInfo(t *testing.T) {
	t.Run("completes the profile", func(t *testing.T) {
		svc, repo, cache := newService(t)

		birth := time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC)
		gender := "FEMALE"

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Ana María", fields[model.FieldFullName])
				assert.Equal(t, true, fields[model.FieldProfileCompleted])
				assert.Equal(t, "FEMALE", fields[model.FieldGender])
				assert.Equal(t, "user-1", fields[constant.FieldModifiedBy])

				return nil
			})
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{
			ID:               "user-1",
			FullName:         "Ana María",
			Gender:           &gender,
			BirthDate:        &birth,
			ProfileCompleted: true,
		}, nil)
		cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.UpdatePersonalInfo(userContext(), dto.UpdatePersonalInfoRequest{
			FullName:  "Ana María",
			Gender:    "FEMALE",
			BirthDate: "1990-05-04",
		})

		require.NoError(t, err)
		assert.True(t, res.ProfileCompleted)
		require.NotNil(t, res.BirthDate)
		assert.Equal(t, "1990-05-04", *res.BirthDate)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.UpdatePersonalInfo(userContext(), dto.UpdatePersonalInfoRequest{FullName: "Ana"})

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("malformed birth date never reaches the database", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.UpdatePersonalInfo(userContext(), dto.UpdatePersonalInfoRequest{FullName: "Ana", BirthDate: "04/05/1990"})

		assert.True(t, failure.Is(err, failure.KindValidation))
	})
}
