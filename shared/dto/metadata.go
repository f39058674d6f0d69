package dto

import (
	"time"

	"conectapro/shared/constant"
	"conectapro/shared/model"
	"conectapro/shared/timezone"
)

// Metadata is the audit trail returned with stored resources. Instants are rendered
// in the application timezone; an unset instant renders empty.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func NewMetadata(src model.Metadata) Metadata {
	return Metadata{
		CreatedAt:  instant(src.CreatedAt),
		ModifiedAt: instant(src.ModifiedAt),
		CreatedBy:  src.CreatedBy,
		ModifiedBy: src.ModifiedBy,
	}
}

func (m *Metadata) FromModel(src model.Metadata) {
	*m = NewMetadata(src)
}

func instant(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}
