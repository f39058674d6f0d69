package service

import (
	"context"
	"fmt"

	"conectapro/infras/otel"
	"conectapro/internal/domains/paymentmethod/model"
	"conectapro/internal/domains/paymentmethod/model/dto"
	"conectapro/internal/domains/paymentmethod/repository"
	"conectapro/shared"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgPaymentMethodNotFound = "Método de pago no encontrado"

type PaymentMethod interface {
	GetAll(ctx context.Context) ([]dto.PaymentMethodResponse, error)
	Create(ctx context.Context, req dto.CreatePaymentMethodRequest) (dto.PaymentMethodResponse, error)
	SetDefault(ctx context.Context, id string) (dto.PaymentMethodResponse, error)
}

type serviceImpl struct {
	repo repository.PaymentMethod
	otel otel.Otel
}

func New(repo repository.PaymentMethod, otel otel.Otel) PaymentMethod {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.PaymentMethodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)
	params := gDto.QueryParams{SortBy: model.OrderDefaultFirst, SortDir: gDto.SortDirDesc}

	models, err := s.repo.GetAll(ctx, params, shared.FilterByID(user, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment methods")

		return nil, fmt.Errorf("failed to get payment methods: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentMethodRequest) (res dto.PaymentMethodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)
	method := req.ToModel(user)

	if err = s.repo.InsertWithDefault(ctx, method, repository.Scope(user), method.IsDefault); err != nil {
		log.Error().Err(err).Msg("failed to create payment method")

		return res, fmt.Errorf("failed to create payment method: %w", err)
	}

	res.FromModel(method)

	return res, nil
}

func (s *serviceImpl) SetDefault(ctx context.Context, id string) (res dto.PaymentMethodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetDefault")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)

	found, err := s.repo.SetDefault(ctx, id, repository.Scope(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to set default payment method")

		return res, fmt.Errorf("failed to set default payment method: %w", err)
	}

	if !found {
		return res, failure.NotFound(msgPaymentMethodNotFound) // nolint:wrapcheck
	}

	method, err := s.repo.Get(ctx, shared.FilterByOwner(id, model.FieldID, user, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment method")

		return res, fmt.Errorf("failed to get payment method: %w", err)
	}

	res.FromModel(method)

	return res, nil
}
