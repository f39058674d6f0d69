package dto

import (
	"strings"

	"conectapro/internal/domains/location/model"
	gDto "conectapro/shared/dto"
	gModel "conectapro/shared/model"
	"conectapro/shared/timezone"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	Label       string   `json:"label"        validate:"required,max=50"`
	FullAddress string   `json:"full_address" validate:"required,max=255"`
	Latitude    *float64 `json:"latitude"     validate:"required,latitude"`
	Longitude   *float64 `json:"longitude"    validate:"required,longitude"`
	IsDefault   bool     `json:"is_default"`
}

func (c *CreateLocationRequest) ToModel(user string) model.Location {
	location := model.Location{
		ID:          uuid.NewString(),
		UserID:      user,
		Label:       strings.TrimSpace(c.Label),
		FullAddress: strings.TrimSpace(c.FullAddress),
		IsDefault:   c.IsDefault,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}

	if c.Latitude != nil {
		location.Latitude = *c.Latitude
	}

	if c.Longitude != nil {
		location.Longitude = *c.Longitude
	}

	return location
}

type LocationResponse struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	FullAddress string  `json:"full_address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsDefault   bool    `json:"is_default"`
	gDto.Metadata
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.ID = model.ID
	r.Label = model.Label
	r.FullAddress = model.FullAddress
	r.Latitude = model.Latitude
	r.Longitude = model.Longitude
	r.IsDefault = model.IsDefault
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Location) []LocationResponse {
	res := make([]LocationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
