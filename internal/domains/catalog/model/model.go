package model

import (
	"conectapro/shared/model"
)

const (
	CategoryTableName  = "categories"
	CategoryEntityName = "category"

	FieldCategoryID      = "id"
	FieldCategoryName    = "name"
	FieldCategoryIconURL = "icon_url"
)

const (
	ServiceTableName  = "services"
	ServiceEntityName = "service"

	FieldID           = "id"
	FieldTitle        = "title"
	FieldCategory     = "category_id"
	FieldProvider     = "provider_id"
	FieldPrice        = "price"
	FieldCurrency     = "currency"
	FieldRating       = "rating"
	FieldReviewsCount = "reviews_count"
	FieldImageURL     = "image_url"
	FieldDescription  = "description"
)

const (
	CurrencyPEN = "PEN"
	CurrencyUSD = "USD"
)

// Cache key prefixes. Everything under CacheServices is dropped when a review moves a rating.
const (
	CacheCategories = "catalog:category"
	CacheServices   = "catalog:service"
)

// OrderTop ranks services by rating, then by number of reviews.
const OrderTop = ServiceTableName + "." + FieldRating + " DESC, " + ServiceTableName + "." + FieldReviewsCount

type Category struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	IconURL string `db:"icon_url"`
	model.Metadata
}

type Service struct {
	ID           string  `db:"id"`
	Title        string  `db:"title"`
	CategoryID   string  `db:"category_id"`
	ProviderID   string  `db:"provider_id"`
	Price        float64 `db:"price"`
	Currency     string  `db:"currency"`
	Rating       float64 `db:"rating"`
	ReviewsCount int     `db:"reviews_count"`
	ImageURL     string  `db:"image_url"`
	Description  string  `db:"description"`
	model.Metadata
}

// ServiceView is a service joined with its category and provider.
type ServiceView struct {
	Service
	CategoryName   string  `db:"category_name"   table:"categories" column:"name"`
	ProviderName   string  `db:"provider_name"   table:"providers"  column:"full_name"`
	ProviderRating float64 `db:"provider_rating" table:"providers"  column:"rating"`
}

func (ServiceView) GetJoinQuery() string {
	return "JOIN categories ON categories.id = services.category_id " +
		"JOIN users AS providers ON providers.id = services.provider_id"
}
