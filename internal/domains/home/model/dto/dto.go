package dto

import (
	catalogDto "conectapro/internal/domains/catalog/model/dto"
	locationDto "conectapro/internal/domains/location/model/dto"
	userDto "conectapro/internal/domains/user/model/dto"
)

// HomeResponse is the landing payload of a client. DeliveryAddress is null until a location exists.
type HomeResponse struct {
	User            userDto.Summary               `json:"user"`
	DeliveryAddress *locationDto.LocationResponse `json:"delivery_address"`
	Categories      []catalogDto.CategoryResponse `json:"categories"`
	TopServices     []catalogDto.ServiceItem      `json:"top_services"`
	FeaturedWorkers []userDto.Worker              `json:"featured_workers"`
}
