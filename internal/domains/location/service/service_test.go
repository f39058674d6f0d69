package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"conectapro/infras/otel/mocks"
	locationMocks "conectapro/internal/domains/location/mocks"
	"conectapro/internal/domains/location/model"
	"conectapro/internal/domains/location/model/dto"
	"conectapro/internal/domains/location/repository"
	"conectapro/internal/domains/location/service"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"
	gRepo "conectapro/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr(v float64) *float64 {
	return &v
}

func userContext(user string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, user)
}

func TestLocationService_Create(t *testing.T) {
	tests := []struct {
		name        string
		isDefault   bool
		repoErr     error
		wantErr     bool
		wantDefault bool
	}{
		{name: "default location demotes siblings", isDefault: true, wantDefault: true},
		{name: "plain location", isDefault: false},
		{name: "repository error", isDefault: true, repoErr: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := locationMocks.NewMockLocation(ctrl)
			svc := service.New(repo, mocks.NewOtel())

			repo.EXPECT().
				InsertWithDefault(gomock.Any(), gomock.Any(), repository.Scope("user-1"), tt.isDefault).
				DoAndReturn(func(_ context.Context, loc model.Location, _ gRepo.DefaultScope, _ bool) error {
					assert.Equal(t, "user-1", loc.UserID)
					assert.Equal(t, "user-1", loc.CreatedBy)

					return tt.repoErr
				})

			res, err := svc.Create(userContext("user-1"), dto.CreateLocationRequest{
				Label:       "Casa",
				FullAddress: "Av. Arequipa 123, Lima",
				Latitude:    ptr(-12.06),
				Longitude:   ptr(-77.03),
				IsDefault:   tt.isDefault,
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.wantDefault, res.IsDefault)
			assert.InDelta(t, -12.06, res.Latitude, 0.0001)
		})
	}
}

func TestLocationService_SetDefault(t *testing.T) {
	t.Run("owned location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := locationMocks.NewMockLocation(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().SetDefault(gomock.Any(), "loc-1", repository.Scope("user-1")).Return(true, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Location{ID: "loc-1", UserID: "user-1", IsDefault: true}, nil)

		res, err := svc.SetDefault(userContext("user-1"), "loc-1")

		require.NoError(t, err)
		assert.True(t, res.IsDefault)
	})

	t.Run("location of another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := locationMocks.NewMockLocation(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().SetDefault(gomock.Any(), "loc-2", gomock.Any()).Return(false, nil)

		_, err := svc.SetDefault(userContext("user-1"), "loc-2")

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestLocationService_GetAllOrdersDefaultFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := locationMocks.NewMockLocation(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Location, error) {
			assert.Equal(t, model.OrderDefaultFirst, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			assert.Zero(t, params.Limit)

			return []model.Location{{ID: "loc-1", IsDefault: true}, {ID: "loc-2"}}, nil
		})

	res, err := svc.GetAll(userContext("user-1"))

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.True(t, res[0].IsDefault)
}

// memoryLocations applies the same lock, demote and write steps as the SQL repository.
type memoryLocations struct {
	repository.Location
	mu   sync.Mutex
	rows map[string]model.Location
}

func (m *memoryLocations) InsertWithDefault(_ context.Context, loc model.Location, scope gRepo.DefaultScope, makeDefault bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if makeDefault {
		m.demote(scope.OwnerID, "")
	}

	m.rows[loc.ID] = loc

	return nil
}

func (m *memoryLocations) SetDefault(_ context.Context, id string, scope gRepo.DefaultScope) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok || row.UserID != scope.OwnerID {
		return false, nil
	}

	m.demote(scope.OwnerID, id)

	row.IsDefault = true
	m.rows[id] = row

	return true, nil
}

func (m *memoryLocations) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, args := filter.GetWhereClause()
	id, _ := args[model.FieldID].(string)

	return m.rows[id], nil
}

func (m *memoryLocations) demote(owner, keep string) {
	for id, row := range m.rows {
		if row.UserID == owner && id != keep {
			row.IsDefault = false
			m.rows[id] = row
		}
	}
}

func (m *memoryLocations) defaults(owner string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0

	for _, row := range m.rows {
		if row.UserID == owner && row.IsDefault {
			count++
		}
	}

	return count
}

func TestLocationService_ConcurrentDefaultsKeepOneDefault(t *testing.T) {
	repo := &memoryLocations{rows: map[string]model.Location{}}
	svc := service.New(repo, mocks.NewOtel())
	ctx := userContext("user-1")

	seeded, err := svc.Create(ctx, dto.CreateLocationRequest{Label: "Casa", FullAddress: "Lima", Latitude: ptr(0), Longitude: ptr(0)})
	require.NoError(t, err)

	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if i%2 == 0 {
				_, _ = svc.SetDefault(ctx, seeded.ID)

				return
			}

			_, _ = svc.Create(ctx, dto.CreateLocationRequest{
				Label:       fmt.Sprintf("Ubicación %d", i),
				FullAddress: "Lima",
				Latitude:    ptr(0),
				Longitude:   ptr(0),
				IsDefault:   true,
			})
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, repo.defaults("user-1"))
}

func TestLocationService_LastDefaultWins(t *testing.T) {
	repo := &memoryLocations{rows: map[string]model.Location{}}
	svc := service.New(repo, mocks.NewOtel())
	ctx := userContext("user-1")

	first, err := svc.Create(ctx, dto.CreateLocationRequest{Label: "A", FullAddress: "Lima", Latitude: ptr(0), Longitude: ptr(0), IsDefault: true})
	require.NoError(t, err)

	second, err := svc.Create(ctx, dto.CreateLocationRequest{Label: "B", FullAddress: "Lima", Latitude: ptr(0), Longitude: ptr(0), IsDefault: true})
	require.NoError(t, err)

	assert.False(t, repo.rows[first.ID].IsDefault)
	assert.True(t, repo.rows[second.ID].IsDefault)
}
