package dto

import (
	"strings"

	"conectapro/internal/domains/paymentmethod/model"
	gDto "conectapro/shared/dto"
	gModel "conectapro/shared/model"
	"conectapro/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentMethodRequest struct {
	Type      string `json:"type"       validate:"required,oneof=CASH CARD_SIMULATED PAYPAL_SIMULATED GOOGLE_PAY_SIMULATED APPLE_PAY_SIMULATED"`
	Label     string `json:"label"      validate:"required,max=50"`
	Last4     string `json:"last4"      validate:"omitempty,len=4,numeric"`
	IsDefault bool   `json:"is_default"`
}

func (c *CreatePaymentMethodRequest) ToModel(user string) model.PaymentMethod {
	method := model.PaymentMethod{
		ID:        uuid.NewString(),
		UserID:    user,
		Type:      c.Type,
		Label:     strings.TrimSpace(c.Label),
		IsDefault: c.IsDefault,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}

	if c.Last4 != "" {
		last4 := c.Last4
		method.Last4 = &last4
	}

	return method
}

type PaymentMethodResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Label     string  `json:"label"`
	Last4     *string `json:"last4,omitempty"`
	IsDefault bool    `json:"is_default"`
	gDto.Metadata
}

func (r *PaymentMethodResponse) FromModel(model model.PaymentMethod) {
	r.ID = model.ID
	r.Type = model.Type
	r.Label = model.Label
	r.Last4 = model.Last4
	r.IsDefault = model.IsDefault
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.PaymentMethod) []PaymentMethodResponse {
	res := make([]PaymentMethodResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
