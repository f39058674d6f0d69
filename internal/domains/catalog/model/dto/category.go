package dto

import (
	"strings"

	"conectapro/internal/domains/catalog/model"
	gModel "conectapro/shared/model"
	"conectapro/shared/timezone"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name    string `json:"name"     validate:"required,max=100"`
	IconURL string `json:"icon_url" validate:"required,url,max=255"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	return model.Category{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(c.Name),
		IconURL:  c.IconURL,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type CategoryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Name = model.Name
	r.IconURL = model.IconURL
}

func CategoriesFromModels(models []model.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
