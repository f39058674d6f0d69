package dto

import (
	"mime/multipart"
	"strings"

	"conectapro/internal/domains/catalog/model"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	gModel "conectapro/shared/model"
	"conectapro/shared/timezone"

	"github.com/google/uuid"
)

type ProviderRef struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

type ServiceItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	CategoryID   string      `json:"category_id"`
	Price        float64     `json:"price"`
	Currency     string      `json:"currency"`
	Rating       float64     `json:"rating"`
	ReviewsCount int         `json:"reviews_count"`
	ImageURL     string      `json:"image_url"`
	Provider     ProviderRef `json:"provider"`
}

func (r *ServiceItem) FromModel(view model.ServiceView) {
	r.ID = view.ID
	r.Title = view.Title
	r.CategoryID = view.CategoryID
	r.Price = view.Price
	r.Currency = view.Currency
	r.Rating = view.Rating
	r.ReviewsCount = view.ReviewsCount
	r.ImageURL = view.ImageURL
	r.Provider = ProviderRef{ID: view.ProviderID, Name: view.ProviderName, Rating: view.ProviderRating}
}

func ItemsFromModels(views []model.ServiceView) []ServiceItem {
	res := make([]ServiceItem, len(views))
	for i, view := range views {
		res[i].FromModel(view)
	}

	return res
}

type ServicesResponse struct {
	Category   *CategoryRef    `json:"category,omitempty"`
	Query      string          `json:"query,omitempty"`
	Pagination gDto.Pagination `json:"pagination"`
	Services   []ServiceItem   `json:"services"`
}

func (r *ServicesResponse) FromModels(views []model.ServiceView, params gDto.QueryParams, total int) {
	r.Pagination = gDto.NewPagination(params, total)
	r.Services = ItemsFromModels(views)
}

type Comment struct {
	ID         string `json:"id"`
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
}

type ServiceDetailResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     CategoryRef `json:"category"`
	Price        float64     `json:"price"`
	Currency     string      `json:"currency"`
	Rating       float64     `json:"rating"`
	ReviewsCount int         `json:"reviews_count"`
	ImageURL     string      `json:"image_url"`
	Provider     ProviderRef `json:"provider"`
	Comments     []Comment   `json:"comments"`
	gDto.Metadata
}

func (r *ServiceDetailResponse) FromModel(view model.ServiceView) {
	r.ID = view.ID
	r.Title = view.Title
	r.Description = view.Description
	r.Category = CategoryRef{ID: view.CategoryID, Name: view.CategoryName}
	r.Price = view.Price
	r.Currency = view.Currency
	r.Rating = view.Rating
	r.ReviewsCount = view.ReviewsCount
	r.ImageURL = view.ImageURL
	r.Provider = ProviderRef{ID: view.ProviderID, Name: view.ProviderName, Rating: view.ProviderRating}
	r.Comments = []Comment{}
	r.Metadata.FromModel(view.Metadata)
}

type CreateServiceRequest struct {
	Title       string   `json:"title"       validate:"required,max=150"`
	CategoryID  string   `json:"category_id" validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Currency    string   `json:"currency"    validate:"omitempty,oneof=PEN USD"`
	ImageURL    string   `json:"image_url"   validate:"omitempty,url,max=500"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
}

func (c *CreateServiceRequest) ToModel(provider string) model.Service {
	currency := c.Currency
	if currency == constant.Empty {
		currency = model.CurrencyPEN
	}

	service := model.Service{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(c.Title),
		CategoryID:  c.CategoryID,
		ProviderID:  provider,
		Currency:    currency,
		ImageURL:    c.ImageURL,
		Description: strings.TrimSpace(c.Description),
		Metadata:    gModel.NewMetadata(provider, timezone.Now()),
	}

	if c.Price != nil {
		service.Price = *c.Price
	}

	return service
}

// UpdateServiceRequest only touches the fields that are set.
type UpdateServiceRequest struct {
	Title       *string  `db:"title"       json:"title"       validate:"omitempty,max=150"`
	CategoryID  *string  `db:"category_id" json:"category_id" validate:"omitempty"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Currency    *string  `db:"currency"    json:"currency"    validate:"omitempty,oneof=PEN USD"`
	ImageURL    *string  `db:"image_url"   json:"image_url"   validate:"omitempty,url,max=500"`
	Description *string  `db:"description" json:"description" validate:"omitempty,max=2000"`
}

func (u UpdateServiceRequest) IsEmpty() bool {
	return u == UpdateServiceRequest{}
}

type UploadImageRequest struct {
	Image *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}

type ImageResponse struct {
	ServiceID string `json:"service_id"`
	ImageURL  string `json:"image_url"`
}
