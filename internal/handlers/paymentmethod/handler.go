package paymentmethod

import (
	"net/http"

	"conectapro/infras/otel"
	"conectapro/internal/domains/paymentmethod/model/dto"
	"conectapro/internal/domains/paymentmethod/service"
	"conectapro/shared/constant"
	"conectapro/shared/validator"
	"conectapro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PaymentMethod
	otel    otel.Otel
}

func New(service service.PaymentMethod, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/clients/payment-methods", handler.GetPaymentMethods)
	r.Post("/clients/payment-methods", handler.CreatePaymentMethod)
	r.Patch("/clients/payment-methods/{"+constant.RequestParamPaymentMethodID+"}/default", handler.SetDefault)
}

// GetPaymentMethods lists the client's payment methods, default first.
// @Summary List my payment methods
// @Tags Client
// @Produce json
// @Success 200 {object} response.Data[[]dto.PaymentMethodResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/payment-methods [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentMethods")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment methods")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreatePaymentMethod adds a payment method; is_default demotes the previous default.
// @Summary Create a payment method
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentMethodRequest true "Payment method"
// @Success 201 {object} response.Data[dto.PaymentMethodResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/payment-methods [post]
// @Security BearerAuth
func (handler *Handler) CreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePaymentMethod")
	defer scope.End()

	req := dto.CreatePaymentMethodRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment method")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment method created")

	response.WithData(w, http.StatusCreated, "Método de pago agregado exitosamente", res)
}

// SetDefault makes a payment method the client's only default.
// @Summary Set default payment method
// @Tags Client
// @Produce json
// @Param paymentMethodId path string true "Payment method ID"
// @Success 200 {object} response.Data[dto.PaymentMethodResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/payment-methods/{paymentMethodId}/default [patch]
// @Security BearerAuth
func (handler *Handler) SetDefault(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetDefaultPaymentMethod")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamPaymentMethodID)

	res, err := handler.service.SetDefault(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set default payment method")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Método de pago predeterminado actualizado", res)
}
