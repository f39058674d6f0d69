package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"conectapro/infras/otel/mocks"
	paymentMocks "conectapro/internal/domains/paymentmethod/mocks"
	"conectapro/internal/domains/paymentmethod/model"
	"conectapro/internal/domains/paymentmethod/model/dto"
	"conectapro/internal/domains/paymentmethod/repository"
	"conectapro/internal/domains/paymentmethod/service"
	"conectapro/shared/constant"
	"conectapro/shared/failure"
	gRepo "conectapro/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func userContext(user string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, user)
}

func TestPaymentMethodService_Create(t *testing.T) {
	t.Run("card keeps the last digits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := paymentMocks.NewMockPaymentMethod(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().
			InsertWithDefault(gomock.Any(), gomock.Any(), repository.Scope("user-1"), true).
			Return(nil)

		res, err := svc.Create(userContext("user-1"), dto.CreatePaymentMethodRequest{
			Type:      model.TypeCardSimulated,
			Label:     "Visa",
			Last4:     "4242",
			IsDefault: true,
		})

		require.NoError(t, err)
		require.NotNil(t, res.Last4)
		assert.Equal(t, "4242", *res.Last4)
		assert.True(t, res.IsDefault)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := paymentMocks.NewMockPaymentMethod(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().InsertWithDefault(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(errors.New("database error"))

		_, err := svc.Create(userContext("user-1"), dto.CreatePaymentMethodRequest{Type: model.TypeCash, Label: "Efectivo"})

		require.Error(t, err)
		assert.False(t, failure.IsFailure(err))
	})
}

func TestPaymentMethodService_SetDefaultNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := paymentMocks.NewMockPaymentMethod(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().SetDefault(gomock.Any(), "pm-9", repository.Scope("user-1")).Return(false, nil)

	_, err := svc.SetDefault(userContext("user-1"), "pm-9")

	assert.True(t, failure.Is(err, failure.KindNotFound))
}

type memoryMethods struct {
	repository.PaymentMethod
	mu   sync.Mutex
	rows map[string]model.PaymentMethod
}

func (m *memoryMethods) InsertWithDefault(_ context.Context, method model.PaymentMethod, scope gRepo.DefaultScope, makeDefault bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if makeDefault {
		for id, row := range m.rows {
			if row.UserID == scope.OwnerID {
				row.IsDefault = false
				m.rows[id] = row
			}
		}
	}

	m.rows[method.ID] = method

	return nil
}

func TestPaymentMethodService_ConcurrentDefaultsPerUser(t *testing.T) {
	repo := &memoryMethods{rows: map[string]model.PaymentMethod{}}
	svc := service.New(repo, mocks.NewOtel())

	var wg sync.WaitGroup

	for _, user := range []string{"user-1", "user-2"} {
		for range 10 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, err := svc.Create(userContext(user), dto.CreatePaymentMethodRequest{Type: model.TypeCash, Label: "Efectivo", IsDefault: true})
				assert.NoError(t, err)
			}()
		}
	}

	wg.Wait()

	defaults := map[string]int{}

	for _, row := range repo.rows {
		if row.IsDefault {
			defaults[row.UserID]++
		}
	}

	assert.Equal(t, map[string]int{"user-1": 1, "user-2": 1}, defaults)
	assert.Len(t, repo.rows, 20)
}
