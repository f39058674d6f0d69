package service_test

import (
	"context"
	"errors"
	"testing"

	"conectapro/infras/otel/mocks"
	catalogMocks "conectapro/internal/domains/catalog/mocks"
	catalogDto "conectapro/internal/domains/catalog/model/dto"
	"conectapro/internal/domains/home/service"
	locationMocks "conectapro/internal/domains/location/mocks"
	locationModel "conectapro/internal/domains/location/model"
	userMocks "conectapro/internal/domains/user/mocks"
	userModel "conectapro/internal/domains/user/model"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func userContext(user string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, user)
}

type deps struct {
	users     *userMocks.MockUser
	locations *locationMocks.MockLocation
	catalog   *catalogMocks.MockCatalog
}

func newService(t *testing.T) (service.Home, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		users:     userMocks.NewMockUser(ctrl),
		locations: locationMocks.NewMockLocation(ctrl),
		catalog:   catalogMocks.NewMockCatalog(ctrl),
	}

	return service.New(d.users, d.locations, d.catalog, mocks.NewOtel()), d
}

func TestHome_GetHome(t *testing.T) {
	t.Run("assembles the landing payload", func(t *testing.T) {
		svc, d := newService(t)

		d.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "client-1", FullName: "Ana Torres"}, nil)
		d.locations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]locationModel.Location, error) {
				assert.Equal(t, locationModel.OrderDefaultFirst, params.SortBy)
				assert.Equal(t, 1, params.Limit)

				return []locationModel.Location{{ID: "loc-1", Label: "Casa", IsDefault: true}}, nil
			})
		d.catalog.EXPECT().GetCategories(gomock.Any()).Return([]catalogDto.CategoryResponse{{ID: "cat-1", Name: "Hogar"}}, nil)
		d.catalog.EXPECT().GetTopServices(gomock.Any(), 5).Return([]catalogDto.ServiceItem{{ID: "svc-1"}}, nil)
		d.users.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]userModel.User, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, constant.RoleProvider, args[userModel.FieldAccountType])

				return []userModel.User{{ID: "prov-1", FullName: "Luis", Rating: 4.9, ReviewsCount: 30}}, nil
			})

		res, err := svc.GetHome(userContext("client-1"))

		require.NoError(t, err)
		assert.Equal(t, "Ana Torres", res.User.FullName)
		require.NotNil(t, res.DeliveryAddress)
		assert.Equal(t, "Casa", res.DeliveryAddress.Label)
		assert.Len(t, res.Categories, 1)
		assert.Len(t, res.TopServices, 1)
		require.Len(t, res.FeaturedWorkers, 1)
		assert.InDelta(t, 4.9, res.FeaturedWorkers[0].Rating, 0.001)
	})

	t.Run("no locations yet", func(t *testing.T) {
		svc, d := newService(t)

		d.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "client-1"}, nil)
		d.locations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		d.catalog.EXPECT().GetCategories(gomock.Any()).Return(nil, nil)
		d.catalog.EXPECT().GetTopServices(gomock.Any(), gomock.Any()).Return(nil, nil)
		d.users.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := svc.GetHome(userContext("client-1"))

		require.NoError(t, err)
		assert.Nil(t, res.DeliveryAddress)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, d := newService(t)

		d.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := svc.GetHome(userContext("ghost"))

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("catalog failure", func(t *testing.T) {
		svc, d := newService(t)

		d.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "client-1"}, nil)
		d.locations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		d.catalog.EXPECT().GetCategories(gomock.Any()).Return(nil, errors.New("redis down"))

		_, err := svc.GetHome(userContext("client-1"))

		assert.Error(t, err)
	})
}
