package service_test

import (
	"context"
	"testing"
	"time"

	"conectapro/config"
	"conectapro/infras/otel/mocks"
	catalogMocks "conectapro/internal/domains/catalog/mocks"
	"conectapro/internal/domains/catalog/model"
	"conectapro/internal/domains/catalog/model/dto"
	"conectapro/internal/domains/catalog/service"
	reviewMocks "conectapro/internal/domains/review/mocks"
	reviewModel "conectapro/internal/domains/review/model"
	"conectapro/shared/cache"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"

	"github.com/alicebob/miniredis/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type catalogDeps struct {
	categories *catalogMocks.MockCategory
	services   *catalogMocks.MockService
	reviews    *reviewMocks.MockReview
	redis      *miniredis.Miniredis
}

func newCatalog(t *testing.T) (service.Catalog, catalogDeps) {
	t.Helper()

	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctrl := gomock.NewController(t)
	d := catalogDeps{
		categories: catalogMocks.NewMockCategory(ctrl),
		services:   catalogMocks.NewMockService(ctrl),
		reviews:    reviewMocks.NewMockReview(ctrl),
		redis:      server,
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.NewCatalog(d.categories, d.services, d.reviews, cfg, cache.NewRedisCache(client, mocks.NewOtel()), mocks.NewOtel())

	return svc, d
}

func userContext(user string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, user)
}

func topView() model.ServiceView {
	return model.ServiceView{
		Service:      model.Service{ID: "svc-1", Title: "Electricista", ProviderID: "prov-1", Rating: 4.8, ReviewsCount: 12},
		CategoryName: "Hogar",
		ProviderName: "Luis",
	}
}

func TestCatalog_GetTopServicesIsCached(t *testing.T) {
	svc, d := newCatalog(t)

	d.services.EXPECT().GetViews(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.ServiceView, error) {
			assert.Equal(t, model.OrderTop, params.SortBy)
			assert.Equal(t, 5, params.Limit)

			return []model.ServiceView{topView()}, nil
		}).
		Times(1)

	first, err := svc.GetTopServices(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Luis", first[0].Provider.Name)

	assert.Eventually(t, func() bool {
		return d.redis.Exists("catalog:service:top:5")
	}, time.Second, 10*time.Millisecond)

	second, err := svc.GetTopServices(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCatalog_CreateCategory(t *testing.T) {
	req := dto.CreateCategoryRequest{Name: " Hogar ", IconURL: "https://cdn.example.com/hogar.png"}

	t.Run("created and list cache dropped", func(t *testing.T) {
		svc, d := newCatalog(t)
		require.NoError(t, d.redis.Set("catalog:category:all", "[]"))

		d.categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		d.categories.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, category model.Category) error {
			assert.Equal(t, "Hogar", category.Name)
			assert.Equal(t, constant.ContextSystem, category.CreatedBy)

			return nil
		})

		res, err := svc.CreateCategory(context.Background(), req)

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Eventually(t, func() bool {
			return !d.redis.Exists("catalog:category:all")
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("name taken", func(t *testing.T) {
		svc, d := newCatalog(t)

		d.categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.CreateCategory(context.Background(), req)

		assert.True(t, failure.Is(err, failure.KindConflict))
	})

	t.Run("name taken concurrently", func(t *testing.T) {
		svc, d := newCatalog(t)

		d.categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		d.categories.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})

		_, err := svc.CreateCategory(context.Background(), req)

		assert.True(t, failure.Is(err, failure.KindConflict))
	})
}

func TestCatalog_GetServicesByCategory(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		svc, d := newCatalog(t)

		d.categories.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Category{}, nil)

		_, err := svc.GetServicesByCategory(context.Background(), "cat-x", "", gDto.QueryParams{Page: 1, Limit: 10})

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("search inside a category", func(t *testing.T) {
		svc, d := newCatalog(t)

		d.categories.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Category{ID: "cat-1", Name: "Hogar"}, nil)
		d.services.EXPECT().GetViews(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.ServiceView, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "services.category_id = :category_id")
				assert.Contains(t, where, "LOWER(services.title) LIKE LOWER(:q_title)")
				assert.Equal(t, "%gasfit%", args["q_title"])

				return []model.ServiceView{topView()}, nil
			})
		d.services.EXPECT().CountViews(gomock.Any(), gomock.Any()).Return(1, nil)

		res, err := svc.GetServicesByCategory(context.Background(), "cat-1", " gasfit ", gDto.QueryParams{Page: 1, Limit: 10})

		require.NoError(t, err)
		require.NotNil(t, res.Category)
		assert.Equal(t, "Hogar", res.Category.Name)
		assert.Equal(t, "gasfit", res.Query)
		assert.Equal(t, 1, res.Pagination.TotalItems)
	})
}

func TestCatalog_SearchServicesRequiresQuery(t *testing.T) {
	svc, _ := newCatalog(t)

	_, err := svc.SearchServices(context.Background(), "  ", gDto.QueryParams{Page: 1, Limit: 10})

	assert.True(t, failure.Is(err, failure.KindValidation))
}

func TestCatalog_GetServiceDetails(t *testing.T) {
	t.Run("with latest reviews", func(t *testing.T) {
		svc, d := newCatalog(t)

		d.services.EXPECT().GetView(gomock.Any(), gomock.Any()).Return(topView(), nil)
		d.reviews.EXPECT().GetViews(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]reviewModel.View, error) {
				assert.Equal(t, 5, params.Limit)

				return []reviewModel.View{
					{Review: reviewModel.Review{ID: "rev-1", ServiceRating: 5, Comment: "Excelente"}, AuthorName: "Ana"},
				}, nil
			})

		res, err := svc.GetServiceDetails(context.Background(), "svc-1")

		require.NoError(t, err)
		assert.Equal(t, "Hogar", res.Category.Name)
		require.Len(t, res.Comments, 1)
		assert.Equal(t, "Ana", res.Comments[0].AuthorName)
		assert.Equal(t, 5, res.Comments[0].Rating)
	})

	t.Run("unknown service", func(t *testing.T) {
		svc, d := newCatalog(t)

		d.services.EXPECT().GetView(gomock.Any(), gomock.Any()).Return(model.ServiceView{}, nil)

		_, err := svc.GetServiceDetails(context.Background(), "svc-x")

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}
