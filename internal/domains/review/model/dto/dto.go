package dto

import (
	"strings"

	"conectapro/internal/domains/review/model"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	gModel "conectapro/shared/model"
	"conectapro/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ServiceRating  int      `json:"service_rating"  validate:"required,min=1,max=5"`
	ProviderRating int      `json:"provider_rating" validate:"required,min=1,max=5"`
	Highlights     []string `json:"highlights"      validate:"omitempty,max=10,dive,required,max=40"`
	Comment        string   `json:"comment"         validate:"omitempty,max=1000"`
}

// ToModel builds the review; service and provider are copied from the request inside the write.
func (c *CreateReviewRequest) ToModel(requestID, author string) model.Review {
	highlights := make([]string, 0, len(c.Highlights))
	for _, h := range c.Highlights {
		highlights = append(highlights, strings.TrimSpace(h))
	}

	return model.Review{
		ID:               uuid.NewString(),
		ServiceRequestID: requestID,
		AuthorID:         author,
		ServiceRating:    c.ServiceRating,
		ProviderRating:   c.ProviderRating,
		Highlights:       highlights,
		Comment:          strings.TrimSpace(c.Comment),
		Metadata:         gModel.NewMetadata(author, timezone.Now()),
	}
}

type ReviewResponse struct {
	ID               string   `json:"id"`
	ServiceRequestID string   `json:"service_request_id"`
	ServiceID        string   `json:"service_id"`
	ProviderID       string   `json:"provider_id"`
	ServiceRating    int      `json:"service_rating"`
	ProviderRating   int      `json:"provider_rating"`
	Highlights       []string `json:"highlights"`
	Comment          string   `json:"comment"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(review model.Review) {
	r.ID = review.ID
	r.ServiceRequestID = review.ServiceRequestID
	r.ServiceID = review.ServiceID
	r.ProviderID = review.ProviderID
	r.ServiceRating = review.ServiceRating
	r.ProviderRating = review.ProviderRating
	r.Highlights = []string(review.Highlights)
	r.Comment = review.Comment
	r.Metadata.FromModel(review.Metadata)

	if r.Highlights == nil {
		r.Highlights = []string{}
	}
}

type ReviewItem struct {
	ID             string   `json:"id"`
	Author         string   `json:"author"`
	ServiceID      string   `json:"service_id"`
	ServiceTitle   string   `json:"service_title"`
	ServiceRating  int      `json:"service_rating"`
	ProviderRating int      `json:"provider_rating"`
	Highlights     []string `json:"highlights"`
	Comment        string   `json:"comment"`
	CreatedAt      string   `json:"created_at"`
}

func (i *ReviewItem) FromModel(view model.View) {
	i.ID = view.ID
	i.Author = view.AuthorName
	i.ServiceID = view.ServiceID
	i.ServiceTitle = view.ServiceTitle
	i.ServiceRating = view.ServiceRating
	i.ProviderRating = view.ProviderRating
	i.Highlights = []string(view.Highlights)
	i.Comment = view.Comment
	i.CreatedAt = timezone.Format(view.CreatedAt, constant.DateFormat)

	if i.Highlights == nil {
		i.Highlights = []string{}
	}
}

type ProviderReviewsResponse struct {
	Pagination gDto.Pagination `json:"pagination"`
	Reviews    []ReviewItem    `json:"reviews"`
}

func (r *ProviderReviewsResponse) FromModels(views []model.View, params gDto.QueryParams, total int) {
	r.Pagination = gDto.NewPagination(params, total)
	r.Reviews = make([]ReviewItem, len(views))

	for i, view := range views {
		r.Reviews[i].FromModel(view)
	}
}

// ListRequest filters a provider's reviews. RatingFilter is zero when unset.
type ListRequest struct {
	RatingFilter int    `validate:"omitempty,min=1,max=5"`
	Sort         string `validate:"omitempty,oneof=newest oldest highest lowest"`
	gDto.QueryParams
}
