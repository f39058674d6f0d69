package dto

import (
	"fmt"
	"strings"
	"time"

	"conectapro/internal/domains/servicerequest/model"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	gModel "conectapro/shared/model"
	"conectapro/shared/timezone"

	"github.com/google/uuid"
)

type TimeRange struct {
	Start string `json:"start" validate:"required,timeofday"`
	End   string `json:"end"   validate:"required,timeofday"`
}

type PriceSummary struct {
	Currency string   `json:"currency" validate:"omitempty,oneof=PEN USD"`
	Subtotal *float64 `json:"subtotal" validate:"required,gte=0"`
	Discount *float64 `json:"discount" validate:"omitempty,gte=0"`
	Total    *float64 `json:"total"    validate:"required,gte=0"`
}

type CreateServiceRequestRequest struct {
	ServiceID          string       `json:"service_id"           validate:"required"`
	LocationID         string       `json:"location_id"          validate:"required"`
	ScheduledDate      string       `json:"scheduled_date"       validate:"required,date"`
	ScheduledTimeRange TimeRange    `json:"scheduled_time_range" validate:"required"`
	PaymentMethodID    string       `json:"payment_method_id"    validate:"required"`
	PriceSummary       PriceSummary `json:"price_summary"        validate:"required"`
	Notes              string       `json:"notes"                validate:"omitempty,max=500"`
}

// ToModel snapshots price and payment; provider comes from the resolved service.
func (c *CreateServiceRequestRequest) ToModel(client, provider string) (model.ServiceRequest, error) {
	date, err := time.Parse(constant.DateOnlyFormat, c.ScheduledDate)
	if err != nil {
		return model.ServiceRequest{}, fmt.Errorf("failed to parse scheduled date: %w", err)
	}

	currency := c.PriceSummary.Currency
	if currency == constant.Empty {
		currency = model.DefaultCurrency
	}

	request := model.ServiceRequest{
		ID:              uuid.NewString(),
		ClientID:        client,
		ProviderID:      provider,
		ServiceID:       c.ServiceID,
		LocationID:      c.LocationID,
		Status:          model.StatusPending,
		ScheduledDate:   date,
		TimeStart:       c.ScheduledTimeRange.Start,
		TimeEnd:         c.ScheduledTimeRange.End,
		Currency:        currency,
		PaymentMethodID: c.PaymentMethodID,
		PaymentMode:     model.PaymentModeSimulated,
		PaymentStatus:   model.PaymentStatusSimulated,
		Notes:           strings.TrimSpace(c.Notes),
		Metadata:        gModel.NewMetadata(client, timezone.Now()),
	}

	if c.PriceSummary.Subtotal != nil {
		request.Subtotal = *c.PriceSummary.Subtotal
	}

	if c.PriceSummary.Discount != nil {
		request.Discount = *c.PriceSummary.Discount
	}

	if c.PriceSummary.Total != nil {
		request.Total = *c.PriceSummary.Total
	}

	return request, nil
}

type AcceptRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type ReasonRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type TransitionResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

type Ref struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

type LocationRef struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	FullAddress string `json:"full_address"`
}

type PriceResponse struct {
	Currency string  `json:"currency"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type PaymentResponse struct {
	PaymentMethodID string `json:"payment_method_id"`
	Mode            string `json:"mode"`
	Status          string `json:"status"`
}

type ServiceRequestResponse struct {
	ID                 string          `json:"id"`
	Status             string          `json:"status"`
	Client             Ref             `json:"client"`
	Provider           Ref             `json:"provider"`
	Service            Ref             `json:"service"`
	Location           LocationRef     `json:"location"`
	ScheduledDate      string          `json:"scheduled_date"`
	ScheduledTimeRange TimeRangeView   `json:"scheduled_time_range"`
	PriceSummary       PriceResponse   `json:"price_summary"`
	Payment            PaymentResponse `json:"payment"`
	Notes              string          `json:"notes"`
	RejectionReason    string          `json:"rejection_reason,omitempty"`
	gDto.Metadata
}

type TimeRangeView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r *ServiceRequestResponse) FromModel(detail model.Detail) {
	r.ID = detail.ID
	r.Status = detail.Status.String()
	r.Client = Ref{ID: detail.ClientID, Name: detail.ClientName}
	r.Provider = Ref{ID: detail.ProviderID, Name: detail.ProviderName}
	r.Service = Ref{ID: detail.ServiceID, Title: detail.ServiceTitle}
	r.Location = LocationRef{ID: detail.LocationID, Label: detail.LocationLabel, FullAddress: detail.LocationAddress}
	r.ScheduledDate = detail.ScheduledDate.Format(constant.DateOnlyFormat)
	r.ScheduledTimeRange = TimeRangeView{Start: detail.TimeStart, End: detail.TimeEnd}
	r.PriceSummary = PriceResponse{
		Currency: detail.Currency,
		Subtotal: detail.Subtotal,
		Discount: detail.Discount,
		Total:    detail.Total,
	}
	r.Payment = PaymentResponse{
		PaymentMethodID: detail.PaymentMethodID,
		Mode:            detail.PaymentMode,
		Status:          detail.PaymentStatus,
	}
	r.Notes = detail.Notes
	r.RejectionReason = detail.RejectionReason
	r.Metadata.FromModel(detail.Metadata)
}

type ClientRequestItem struct {
	RequestID     string        `json:"request_id"`
	ServiceTitle  string        `json:"service_title"`
	ServiceID     string        `json:"service_id"`
	ProviderName  string        `json:"provider_name"`
	Status        string        `json:"status"`
	ScheduledDate string        `json:"scheduled_date"`
	TimeRange     TimeRangeView `json:"time_range"`
	Total         float64       `json:"total"`
	Currency      string        `json:"currency"`
}

func (i *ClientRequestItem) FromModel(detail model.Detail) {
	i.RequestID = detail.ID
	i.ServiceTitle = detail.ServiceTitle
	i.ServiceID = detail.ServiceID
	i.ProviderName = detail.ProviderName
	i.Status = detail.Status.String()
	i.ScheduledDate = detail.ScheduledDate.Format(constant.DateOnlyFormat)
	i.TimeRange = TimeRangeView{Start: detail.TimeStart, End: detail.TimeEnd}
	i.Total = detail.Total
	i.Currency = detail.Currency
}

type ClientRequestsResponse struct {
	Pagination gDto.Pagination     `json:"pagination"`
	Requests   []ClientRequestItem `json:"requests"`
}

func (r *ClientRequestsResponse) FromModels(details []model.Detail, params gDto.QueryParams, total int) {
	r.Pagination = gDto.NewPagination(params, total)
	r.Requests = make([]ClientRequestItem, len(details))

	for i, detail := range details {
		r.Requests[i].FromModel(detail)
	}
}

type ProviderPrice struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
}

type ProviderRequestItem struct {
	RequestID          string        `json:"request_id"`
	Client             Ref           `json:"client"`
	Service            Ref           `json:"service"`
	ScheduledDate      string        `json:"scheduled_date"`
	ScheduledTimeRange TimeRangeView `json:"scheduled_time_range"`
	PriceSummary       ProviderPrice `json:"price_summary"`
	Status             string        `json:"status"`
}

func (i *ProviderRequestItem) FromModel(detail model.Detail) {
	i.RequestID = detail.ID
	i.Client = Ref{ID: detail.ClientID, Name: detail.ClientName}
	i.Service = Ref{ID: detail.ServiceID, Title: detail.ServiceTitle}
	i.ScheduledDate = detail.ScheduledDate.Format(constant.DateOnlyFormat)
	i.ScheduledTimeRange = TimeRangeView{Start: detail.TimeStart, End: detail.TimeEnd}
	i.PriceSummary = ProviderPrice{Currency: detail.Currency, Total: detail.Total}
	i.Status = detail.Status.String()
}

type ProviderRequestsResponse struct {
	Pagination gDto.Pagination       `json:"pagination"`
	Requests   []ProviderRequestItem `json:"requests"`
}

func (r *ProviderRequestsResponse) FromModels(details []model.Detail, params gDto.QueryParams, total int) {
	r.Pagination = gDto.NewPagination(params, total)
	r.Requests = make([]ProviderRequestItem, len(details))

	for i, detail := range details {
		r.Requests[i].FromModel(detail)
	}
}
