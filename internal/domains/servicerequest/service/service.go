package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=ServiceRequest=MockServiceRequestService

import (
	"context"
	"fmt"
	"time"

	"conectapro/infras/otel"
	catalogModel "conectapro/internal/domains/catalog/model"
	catalogRepo "conectapro/internal/domains/catalog/repository"
	locationModel "conectapro/internal/domains/location/model"
	locationRepo "conectapro/internal/domains/location/repository"
	pmModel "conectapro/internal/domains/paymentmethod/model"
	pmRepo "conectapro/internal/domains/paymentmethod/repository"
	"conectapro/internal/domains/servicerequest/model"
	"conectapro/internal/domains/servicerequest/model/dto"
	"conectapro/internal/domains/servicerequest/repository"
	"conectapro/shared"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/event"
	"conectapro/shared/failure"
	"conectapro/shared/metrics"
	"conectapro/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgRequestNotFound       = "Solicitud de servicio no encontrada"
	msgServiceNotFound       = "Servicio no encontrado"
	msgLocationNotFound      = "Ubicación no encontrada"
	msgPaymentMethodNotFound = "Método de pago no encontrado"
	msgInvalidStatusFilter   = "Filtro de estado inválido"

	eventCreate = "create"
)

var invalidTransitionMessages = map[model.Event]string{
	model.EventAccept:           "La solicitud no puede ser aceptada en su estado actual",
	model.EventReject:           "La solicitud no puede ser rechazada en su estado actual",
	model.EventStart:            "La solicitud no puede ser iniciada en su estado actual",
	model.EventCancelByProvider: "La solicitud no puede ser cancelada en su estado actual",
	model.EventCancelByClient:   "La solicitud no puede ser cancelada en su estado actual",
	model.EventComplete:         "La solicitud no puede ser completada en su estado actual",
}

type ServiceRequest interface {
	Create(ctx context.Context, req dto.CreateServiceRequestRequest) (dto.ServiceRequestResponse, error)
	Accept(ctx context.Context, id string, req dto.AcceptRequest) (dto.TransitionResponse, error)
	Reject(ctx context.Context, id string, req dto.ReasonRequest) (dto.TransitionResponse, error)
	Start(ctx context.Context, id string) (dto.TransitionResponse, error)
	CancelByProvider(ctx context.Context, id string, req dto.ReasonRequest) (dto.TransitionResponse, error)
	CancelByClient(ctx context.Context, id string, req dto.ReasonRequest) (dto.TransitionResponse, error)
	MarkCompleted(ctx context.Context, id string) (dto.TransitionResponse, error)
	GetClientRequests(ctx context.Context, status string, params gDto.QueryParams) (dto.ClientRequestsResponse, error)
	GetProviderRequests(ctx context.Context, status string, params gDto.QueryParams) (dto.ProviderRequestsResponse, error)
	GetProviderRequest(ctx context.Context, id string) (dto.ServiceRequestResponse, error)
	ListDue(ctx context.Context, today time.Time, limit int) ([]string, error)
}

type serviceImpl struct {
	repo      repository.ServiceRequest
	services  catalogRepo.Service
	locations locationRepo.Location
	payments  pmRepo.PaymentMethod
	publisher event.Publisher
	metrics   *metrics.Metrics
	otel      otel.Otel
}

func New(
	repo repository.ServiceRequest,
	services catalogRepo.Service,
	locations locationRepo.Location,
	payments pmRepo.PaymentMethod,
	publisher event.Publisher,
	metrics *metrics.Metrics,
	otel otel.Otel,
) ServiceRequest {
	return &serviceImpl{
		repo:      repo,
		services:  services,
		locations: locations,
		payments:  payments,
		publisher: publisher,
		metrics:   metrics,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequestRequest) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.metrics.IncTransition(eventCreate, metrics.Result(err, failure.IsFailure)) }()

	client := shared.UserFromContext(ctx)

	service, err := s.services.Get(ctx, shared.FilterByID(req.ServiceID, catalogModel.FieldID, catalogModel.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == "" {
		return res, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
	}

	if err = s.checkLocation(ctx, client, req.LocationID); err != nil {
		return res, err
	}

	if err = s.checkPaymentMethod(ctx, client, req.PaymentMethodID); err != nil {
		return res, err
	}

	request, err := req.ToModel(client, service.ProviderID)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create service request")

		return res, fmt.Errorf("failed to create service request: %w", err)
	}

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(request.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service request")

		return res, fmt.Errorf("failed to get service request: %w", err)
	}

	s.publish(ctx, event.New(model.EventCreated, request.ID, client, request.CreatedAt, model.LifecyclePayload{
		Status:   request.Status.String(),
		Client:   request.ClientID,
		Provider: request.ProviderID,
	}))

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) checkLocation(ctx context.Context, client, id string) error {
	exist, err := s.locations.Exist(ctx, shared.FilterByOwner(id, locationModel.FieldID, client, locationModel.FieldUserID, locationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check location")

		return fmt.Errorf("failed to check location: %w", err)
	}

	if !exist {
		return failure.NotFound(msgLocationNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) checkPaymentMethod(ctx context.Context, client, id string) error {
	if id == pmModel.CashID {
		return nil
	}

	exist, err := s.payments.Exist(ctx, shared.FilterByOwner(id, pmModel.FieldID, client, pmModel.FieldUserID, pmModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check payment method")

		return fmt.Errorf("failed to check payment method: %w", err)
	}

	if !exist {
		return failure.NotFound(msgPaymentMethodNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Accept(ctx context.Context, id string, req dto.AcceptRequest) (dto.TransitionResponse, error) {
	change := s.providerChange(ctx, id, model.EventAccept)
	if req.Notes != "" {
		change.Note = model.ProviderNotePrefix + req.Notes
	}

	return s.transition(ctx, change)
}

func (s *serviceImpl) Reject(ctx context.Context, id string, req dto.ReasonRequest) (dto.TransitionResponse, error) {
	change := s.providerChange(ctx, id, model.EventReject)
	change.Reason = req.Reason

	return s.transition(ctx, change)
}

func (s *serviceImpl) Start(ctx context.Context, id string) (dto.TransitionResponse, error) {
	return s.transition(ctx, s.providerChange(ctx, id, model.EventStart))
}

func (s *serviceImpl) CancelByProvider(ctx context.Context, id string, req dto.ReasonRequest) (dto.TransitionResponse, error) {
	change := s.providerChange(ctx, id, model.EventCancelByProvider)
	change.Reason = req.Reason

	return s.transition(ctx, change)
}

func (s *serviceImpl) CancelByClient(ctx context.Context, id string, req dto.ReasonRequest) (dto.TransitionResponse, error) {
	client := shared.UserFromContext(ctx)

	return s.transition(ctx, model.Change{
		ID:          id,
		Event:       model.EventCancelByClient,
		OwnerColumn: model.FieldClientID,
		OwnerID:     client,
		Reason:      req.Reason,
		Actor:       client,
		At:          timezone.Now(),
	})
}

// MarkCompleted is driven by the scheduler or the internal API, never by a participant.
func (s *serviceImpl) MarkCompleted(ctx context.Context, id string) (dto.TransitionResponse, error) {
	actor := shared.UserFromContext(ctx)
	if actor == "" {
		actor = constant.ContextSystem
	}

	return s.transition(ctx, model.Change{
		ID:    id,
		Event: model.EventComplete,
		Actor: actor,
		At:    timezone.Now(),
	})
}

func (s *serviceImpl) providerChange(ctx context.Context, id string, evt model.Event) model.Change {
	provider := shared.UserFromContext(ctx)

	return model.Change{
		ID:          id,
		Event:       evt,
		OwnerColumn: model.FieldProviderID,
		OwnerID:     provider,
		Actor:       provider,
		At:          timezone.Now(),
	}
}

// transition applies change atomically. A change that moves no row is reported as
// NotFound when the caller owns no such request, InvalidTransition otherwise.
func (s *serviceImpl) transition(ctx context.Context, change model.Change) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.metrics.IncTransition(string(change.Event), metrics.Result(err, failure.IsFailure)) }()

	scope.SetAttribute("event", string(change.Event))

	moved, err := s.repo.Transition(ctx, change)
	if err != nil {
		log.Error().Err(err).Str("event", string(change.Event)).Msg("failed to transition service request")

		return res, fmt.Errorf("failed to transition service request: %w", err)
	}

	if !moved {
		return res, s.classify(ctx, change)
	}

	transition, _ := model.TransitionFor(change.Event)

	s.publish(ctx, event.New(model.EventType(change.Event), change.ID, change.Actor, change.At, model.LifecyclePayload{
		Event:  string(change.Event),
		Status: transition.To.String(),
		Reason: change.Reason,
	}))

	return dto.TransitionResponse{RequestID: change.ID, Status: transition.To.String()}, nil
}

func (s *serviceImpl) classify(ctx context.Context, change model.Change) error {
	filter := shared.FilterByID(change.ID, model.FieldID, model.TableName)
	if change.OwnerColumn != "" {
		filter = shared.FilterByOwner(change.ID, model.FieldID, change.OwnerID, change.OwnerColumn, model.TableName)
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check service request")

		return fmt.Errorf("failed to check service request: %w", err)
	}

	if !exist {
		return failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
	}

	return failure.InvalidTransition(invalidTransitionMessages[change.Event]) // nolint:wrapcheck
}

func (s *serviceImpl) publish(ctx context.Context, evt event.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, event.TopicServiceRequestLifecycle, evt); err != nil {
			log.Error().Err(err).Str("type", evt.Type).Str("aggregate_id", evt.AggregateID).Msg("failed to publish lifecycle event")
		}
	}()
}

func (s *serviceImpl) GetClientRequests(ctx context.Context, status string, params gDto.QueryParams) (res dto.ClientRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetClientRequests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := listFilter(model.FieldClientID, shared.UserFromContext(ctx), status)
	if err != nil {
		return res, err
	}

	details, total, err := s.list(ctx, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(details, params, total)

	return res, nil
}

func (s *serviceImpl) GetProviderRequests(ctx context.Context, status string, params gDto.QueryParams) (res dto.ProviderRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProviderRequests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := listFilter(model.FieldProviderID, shared.UserFromContext(ctx), status)
	if err != nil {
		return res, err
	}

	details, total, err := s.list(ctx, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(details, params, total)

	return res, nil
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, int, error) {
	params.SortBy = model.TableName + "." + constant.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc

	details, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service requests")

		return nil, 0, fmt.Errorf("failed to get service requests: %w", err)
	}

	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service requests")

		return nil, 0, fmt.Errorf("failed to count service requests: %w", err)
	}

	return details, total, nil
}

// listFilter scopes a listing to owner and expands the status filter.
func listFilter(ownerColumn, owner, status string) (gDto.FilterGroup, error) {
	statuses, ok := model.ExpandFilter(status)
	if !ok {
		return gDto.FilterGroup{}, failure.BadRequestFromString(msgInvalidStatusFilter) // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: ownerColumn, Value: owner, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if statuses != nil {
		values := make([]string, len(statuses))
		for i, st := range statuses {
			values[i] = st.String()
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    values,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	}

	return filter, nil
}

func (s *serviceImpl) GetProviderRequest(ctx context.Context, id string) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProviderRequest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	provider := shared.UserFromContext(ctx)

	detail, err := s.repo.GetDetail(ctx, shared.FilterByOwner(id, model.FieldID, provider, model.FieldProviderID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service request")

		return res, fmt.Errorf("failed to get service request: %w", err)
	}

	if detail.ID == "" {
		return res, failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

// ListDue returns the ids of accepted or in-progress requests scheduled before today,
// oldest first. A zero limit returns all of them.
func (s *serviceImpl) ListDue(ctx context.Context, today time.Time, limit int) (ids []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListDue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	transition, _ := model.TransitionFor(model.EventComplete)

	from := make([]string, len(transition.From))
	for i, st := range transition.From {
		from[i] = st.String()
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: from, Operator: gDto.FilterOperatorIn, Table: model.TableName},
			gDto.Filter{
				Field:    model.FieldScheduledDate,
				Value:    today.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldScheduledDate, SortDir: gDto.SortDirAsc}
	if limit > 0 {
		params.Page = constant.DefaultValuePage
		params.Limit = limit
	}

	requests, err := s.repo.GetAll(ctx, params, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list due service requests")

		return nil, fmt.Errorf("failed to list due service requests: %w", err)
	}

	ids = make([]string, len(requests))
	for i, request := range requests {
		ids[i] = request.ID
	}

	return ids, nil
}
