package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"conectapro/infras/otel"
	"conectapro/infras/otel/mocks"
	catalogMocks "conectapro/internal/domains/catalog/mocks"
	catalogModel "conectapro/internal/domains/catalog/model"
	locationMocks "conectapro/internal/domains/location/mocks"
	pmMocks "conectapro/internal/domains/paymentmethod/mocks"
	srMocks "conectapro/internal/domains/servicerequest/mocks"
	"conectapro/internal/domains/servicerequest/model"
	"conectapro/internal/domains/servicerequest/model/dto"
	"conectapro/internal/domains/servicerequest/repository"
	"conectapro/internal/domains/servicerequest/service"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/event"
	eventMocks "conectapro/shared/event/mocks"
	"conectapro/shared/failure"
	"conectapro/shared/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

type deps struct {
	repo      *srMocks.MockServiceRequest
	services  *catalogMocks.MockService
	locations *locationMocks.MockLocation
	payments  *pmMocks.MockPaymentMethod
	publisher *eventMocks.MockPublisher
}

func newService(t *testing.T) (service.ServiceRequest, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:      srMocks.NewMockServiceRequest(ctrl),
		services:  catalogMocks.NewMockService(ctrl),
		locations: locationMocks.NewMockLocation(ctrl),
		payments:  pmMocks.NewMockPaymentMethod(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	d.publisher.EXPECT().Publish(gomock.Any(), event.TopicServiceRequestLifecycle, gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(d.repo, d.services, d.locations, d.payments, d.publisher, metrics.NewWithNamespace("test"), mocks.NewOtel())

	return svc, d
}

func userContext(user string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, user)
}

func amount(v float64) *float64 {
	return &v
}

func createRequest(payment string) dto.CreateServiceRequestRequest {
	return dto.CreateServiceRequestRequest{
		ServiceID:          "svc-1",
		LocationID:         "loc-1",
		ScheduledDate:      "2026-03-10",
		ScheduledTimeRange: dto.TimeRange{Start: "09:00", End: "11:00"},
		PaymentMethodID:    payment,
		PriceSummary:       dto.PriceSummary{Currency: "PEN", Subtotal: amount(120), Discount: amount(20), Total: amount(100)},
		Notes:              "Tocar el timbre",
	}
}

func TestServiceRequestService_Create(t *testing.T) {
	t.Run("snapshots price and payment in the initial status", func(t *testing.T) {
		svc, d := newService(t)

		d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(catalogModel.Service{ID: "svc-1", ProviderID: "prov-1"}, nil)
		d.locations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req model.ServiceRequest) error {
			assert.Equal(t, "client-1", req.ClientID)
			assert.Equal(t, "prov-1", req.ProviderID)
			assert.Equal(t, model.StatusPending, req.Status)
			assert.Equal(t, model.PaymentModeSimulated, req.PaymentMode)
			assert.Equal(t, model.PaymentStatusSimulated, req.PaymentStatus)
			assert.InDelta(t, 100.0, req.Total, 0.001)
			assert.Equal(t, "2026-03-10", req.ScheduledDate.Format(constant.DateOnlyFormat))

			return nil
		})
		d.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ gDto.FilterGroup) (model.Detail, error) {
			return model.Detail{
				ServiceRequest: model.ServiceRequest{ID: "req-1", Status: model.StatusPending, ServiceID: "svc-1", TimeStart: "09:00", TimeEnd: "11:00"},
				ServiceTitle:   "Gasfitería",
				ProviderName:   "Luis",
			}, nil
		})

		res, err := svc.Create(userContext("client-1"), createRequest("pm_cash"))

		require.NoError(t, err)
		assert.Equal(t, "req-1", res.ID)
		assert.Equal(t, "PENDING_PROVIDER_CONFIRMATION", res.Status)
		assert.Equal(t, "Gasfitería", res.Service.Title)
		assert.Equal(t, "09:00", res.ScheduledTimeRange.Start)
	})

	t.Run("unknown service", func(t *testing.T) {
		svc, d := newService(t)

		d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(catalogModel.Service{}, nil)

		_, err := svc.Create(userContext("client-1"), createRequest("pm_cash"))

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("location of another client", func(t *testing.T) {
		svc, d := newService(t)

		d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(catalogModel.Service{ID: "svc-1", ProviderID: "prov-1"}, nil)
		d.locations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(userContext("client-1"), createRequest("pm_cash"))

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("payment method not owned", func(t *testing.T) {
		svc, d := newService(t)

		d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(catalogModel.Service{ID: "svc-1", ProviderID: "prov-1"}, nil)
		d.locations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.payments.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(userContext("client-1"), createRequest("pm-other"))

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("insert error is not a domain failure", func(t *testing.T) {
		svc, d := newService(t)

		d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(catalogModel.Service{ID: "svc-1", ProviderID: "prov-1"}, nil)
		d.locations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.payments.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := svc.Create(userContext("client-1"), createRequest("pm-1"))

		require.Error(t, err)
		assert.False(t, failure.IsFailure(err))
	})
}

func TestServiceRequestService_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		call      func(svc service.ServiceRequest) (dto.TransitionResponse, error)
		event     model.Event
		owner     string
		moved     bool
		exists    bool
		wantKind  failure.Kind
		wantState string
	}{
		{
			name:      "accept",
			call:      func(svc service.ServiceRequest) (dto.TransitionResponse, error) { return svc.Accept(userContext("prov-1"), "req-1", dto.AcceptRequest{}) },
			event:     model.EventAccept,
			owner:     model.FieldProviderID,
			moved:     true,
			wantState: "ACCEPTED",
		},
		{
			name: "reject",
			call: func(svc service.ServiceRequest) (dto.TransitionResponse, error) {
				return svc.Reject(userContext("prov-1"), "req-1", dto.ReasonRequest{Reason: "ocupado"})
			},
			event:     model.EventReject,
			owner:     model.FieldProviderID,
			moved:     true,
			wantState: "REJECTED",
		},
		{
			name:      "start",
			call:      func(svc service.ServiceRequest) (dto.TransitionResponse, error) { return svc.Start(userContext("prov-1"), "req-1") },
			event:     model.EventStart,
			owner:     model.FieldProviderID,
			moved:     true,
			wantState: "IN_PROGRESS",
		},
		{
			name: "provider cancel",
			call: func(svc service.ServiceRequest) (dto.TransitionResponse, error) {
				return svc.CancelByProvider(userContext("prov-1"), "req-1", dto.ReasonRequest{Reason: "emergencia"})
			},
			event:     model.EventCancelByProvider,
			owner:     model.FieldProviderID,
			moved:     true,
			wantState: "CANCELLED_BY_PROVIDER",
		},
		{
			name: "client cancel",
			call: func(svc service.ServiceRequest) (dto.TransitionResponse, error) {
				return svc.CancelByClient(userContext("client-1"), "req-1", dto.ReasonRequest{Reason: "cambio de planes"})
			},
			event:     model.EventCancelByClient,
			owner:     model.FieldClientID,
			moved:     true,
			wantState: "CANCELLED",
		},
		{
			name:      "mark completed",
			call:      func(svc service.ServiceRequest) (dto.TransitionResponse, error) { return svc.MarkCompleted(context.Background(), "req-1") },
			event:     model.EventComplete,
			moved:     true,
			wantState: "COMPLETED",
		},
		{
			name:     "accept from a later status",
			call:     func(svc service.ServiceRequest) (dto.TransitionResponse, error) { return svc.Accept(userContext("prov-1"), "req-1", dto.AcceptRequest{}) },
			event:    model.EventAccept,
			owner:    model.FieldProviderID,
			exists:   true,
			wantKind: failure.KindInvalidTransition,
		},
		{
			name:     "accept request of another provider",
			call:     func(svc service.ServiceRequest) (dto.TransitionResponse, error) { return svc.Accept(userContext("prov-2"), "req-1", dto.AcceptRequest{}) },
			event:    model.EventAccept,
			owner:    model.FieldProviderID,
			wantKind: failure.KindNotFound,
		},
		{
			name:     "complete missing request",
			call:     func(svc service.ServiceRequest) (dto.TransitionResponse, error) { return svc.MarkCompleted(context.Background(), "req-1") },
			event:    model.EventComplete,
			wantKind: failure.KindNotFound,
		},
		{
			name:     "complete pending request",
			call:     func(svc service.ServiceRequest) (dto.TransitionResponse, error) { return svc.MarkCompleted(context.Background(), "req-1") },
			event:    model.EventComplete,
			exists:   true,
			wantKind: failure.KindInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			d.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change model.Change) (bool, error) {
				assert.Equal(t, tt.event, change.Event)
				assert.Equal(t, tt.owner, change.OwnerColumn)
				assert.Equal(t, "req-1", change.ID)

				return tt.moved, nil
			})

			if !tt.moved {
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exists, nil)
			}

			res, err := tt.call(svc)

			if tt.wantKind != failure.KindUnknown {
				assert.True(t, failure.Is(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "req-1", res.RequestID)
			assert.Equal(t, tt.wantState, res.Status)
		})
	}
}

func TestServiceRequestService_AcceptAppendsProviderNote(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change model.Change) (bool, error) {
		assert.Equal(t, "Provider Note: llevo mis herramientas", change.Note)
		assert.Equal(t, "prov-1", change.OwnerID)
		assert.Equal(t, "prov-1", change.Actor)

		return true, nil
	})

	_, err := svc.Accept(userContext("prov-1"), "req-1", dto.AcceptRequest{Notes: "llevo mis herramientas"})

	require.NoError(t, err)
}

func TestServiceRequestService_TransitionStorageError(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(false, errors.New("timeout"))

	_, err := svc.Start(userContext("prov-1"), "req-1")

	require.Error(t, err)
	assert.False(t, failure.IsFailure(err))
}

func TestServiceRequestService_GetClientRequests(t *testing.T) {
	t.Run("upcoming expands to the open statuses", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "service_requests.client_id = :client_id")
				assert.Contains(t, where, "service_requests.status IN (:status_0, :status_1, :status_2)")
				assert.Equal(t, "client-1", args["client_id"])
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return []model.Detail{{ServiceRequest: model.ServiceRequest{ID: "req-1", Status: model.StatusAccepted, Total: 80, Currency: "PEN"}}}, nil
			})
		d.repo.EXPECT().CountDetails(gomock.Any(), gomock.Any()).Return(11, nil)

		res, err := svc.GetClientRequests(userContext("client-1"), "UPCOMING", gDto.QueryParams{Page: 1, Limit: 10})

		require.NoError(t, err)
		require.Len(t, res.Requests, 1)
		assert.Equal(t, "req-1", res.Requests[0].RequestID)
		assert.Equal(t, "ACCEPTED", res.Requests[0].Status)
		assert.Equal(t, 2, res.Pagination.TotalPages)
	})

	t.Run("all applies no status filter", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
				where, _ := filter.GetWhereClause()
				assert.NotContains(t, where, "status")

				return nil, nil
			})
		d.repo.EXPECT().CountDetails(gomock.Any(), gomock.Any()).Return(0, nil)

		res, err := svc.GetClientRequests(userContext("client-1"), "ALL", gDto.QueryParams{Page: 1, Limit: 10})

		require.NoError(t, err)
		assert.Empty(t, res.Requests)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.GetClientRequests(userContext("client-1"), "FINISHED", gDto.QueryParams{Page: 1, Limit: 10})

		assert.True(t, failure.Is(err, failure.KindValidation))
	})
}

func TestServiceRequestService_GetProviderRequest(t *testing.T) {
	t.Run("owned", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).
			Return(model.Detail{ServiceRequest: model.ServiceRequest{ID: "req-1", ProviderID: "prov-1", Status: model.StatusPending}, ClientName: "Ana"}, nil)

		res, err := svc.GetProviderRequest(userContext("prov-1"), "req-1")

		require.NoError(t, err)
		assert.Equal(t, "Ana", res.Client.Name)
	})

	t.Run("not owned", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.Detail{}, nil)

		_, err := svc.GetProviderRequest(userContext("prov-2"), "req-1")

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestServiceRequestService_ListDue(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldID).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.ServiceRequest, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "service_requests.status IN (:status_0, :status_1)")
			assert.Equal(t, "ACCEPTED", args["status_0"])
			assert.Equal(t, "IN_PROGRESS", args["status_1"])
			assert.Contains(t, where, "service_requests.scheduled_date < :scheduled_date")
			assert.Equal(t, "2026-03-10", args["scheduled_date"])
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, 50, params.Limit)

			return []model.ServiceRequest{{ID: "req-1"}, {ID: "req-2"}}, nil
		})

	ids, err := svc.ListDue(context.Background(), time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), 50)

	require.NoError(t, err)
	assert.Equal(t, []string{"req-1", "req-2"}, ids)
}

// memoryRequests applies transitions under a mutex, the way a conditional UPDATE serializes on the row.
type memoryRequests struct {
	repository.ServiceRequest

	mu       sync.Mutex
	requests map[string]model.ServiceRequest
}

func (m *memoryRequests) Transition(_ context.Context, change model.Change) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, ok := m.requests[change.ID]
	if !ok || (change.OwnerColumn == model.FieldProviderID && req.ProviderID != change.OwnerID) {
		return false, nil
	}

	next, ok := model.Next(req.Status, change.Event)
	if !ok {
		return false, nil
	}

	req.Status = next
	m.requests[change.ID] = req

	return true, nil
}

func (m *memoryRequests) Exist(_ context.Context, _ gDto.FilterGroup) (bool, error) {
	return true, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, ...event.Event) error {
	return nil
}

func TestServiceRequestService_ConcurrentAcceptSucceedsOnce(t *testing.T) {
	repo := &memoryRequests{requests: map[string]model.ServiceRequest{
		"req-1": {ID: "req-1", ProviderID: "prov-1", Status: model.StatusPending},
	}}
	svc := service.New(repo, nil, nil, nil, nopPublisher{}, metrics.NewWithNamespace("test"), mocks.NewOtel())

	const callers = 20

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := range callers {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			var err error
			if i%2 == 0 {
				_, err = svc.Accept(userContext("prov-1"), "req-1", dto.AcceptRequest{})
			} else {
				_, err = svc.Reject(userContext("prov-1"), "req-1", dto.ReasonRequest{Reason: "ocupado"})
			}

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				succeeded++
			case failure.Is(err, failure.KindInvalidTransition):
				rejected++
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, rejected)
	assert.NotEqual(t, model.StatusPending, repo.requests["req-1"].Status)
}

func TestServiceRequestService_TransitionSpanRecordsFailure(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := otel.NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	ctrl := gomock.NewController(t)
	repo := srMocks.NewMockServiceRequest(ctrl)
	svc := service.New(repo, catalogMocks.NewMockService(ctrl), locationMocks.NewMockLocation(ctrl),
		pmMocks.NewMockPaymentMethod(ctrl), eventMocks.NewMockPublisher(ctrl), metrics.NewWithNamespace("test"), tracer)

	repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := svc.Accept(userContext("prov-2"), "req-1", dto.AcceptRequest{})
	require.True(t, failure.Is(err, failure.KindNotFound))

	var span sdktrace.ReadOnlySpan

	for _, s := range recorder.Ended() {
		if s.Name() == constant.OtelServiceScopeName+".Transition" {
			span = s
		}
	}

	require.NotNil(t, span)
	assert.Equal(t, codes.Error, span.Status().Code)
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "exception", span.Events()[0].Name)
}
