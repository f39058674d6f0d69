package model

import (
	"conectapro/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID               = "id"
	FieldServiceRequestID = "service_request_id"
	FieldServiceID        = "service_id"
	FieldProviderID       = "provider_id"
	FieldAuthorID         = "author_id"
	FieldServiceRating    = "service_rating"
	FieldProviderRating   = "provider_rating"
	FieldHighlights       = "highlights"
	FieldComment          = "comment"
)

const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

const EventCreated = EntityName + ".created"

type Review struct {
	ID               string         `db:"id"`
	ServiceRequestID string         `db:"service_request_id"`
	ServiceID        string         `db:"service_id"`
	ProviderID       string         `db:"provider_id"`
	AuthorID         string         `db:"author_id"`
	ServiceRating    int            `db:"service_rating"`
	ProviderRating   int            `db:"provider_rating"`
	Highlights       pq.StringArray `db:"highlights"`
	Comment          string         `db:"comment"`
	model.Metadata
}

// View adds the author and service names shown in listings.
type View struct {
	Review
	AuthorName   string `db:"author_name"   table:"authors"  column:"full_name"`
	ServiceTitle string `db:"service_title" table:"services" column:"title"`
}

func (View) GetJoinQuery() string {
	return "JOIN users AS authors ON authors.id = reviews.author_id " +
		"JOIN services ON services.id = reviews.service_id"
}

// CreatedPayload is published once a review has been stored and the ratings moved.
type CreatedPayload struct {
	ServiceRequestID string `json:"service_request_id"`
	ServiceID        string `json:"service_id"`
	ProviderID       string `json:"provider_id"`
	ServiceRating    int    `json:"service_rating"`
	ProviderRating   int    `json:"provider_rating"`
}
