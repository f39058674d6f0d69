package model

import (
	"conectapro/shared/constant"
	"conectapro/shared/model"
)

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldLabel       = "label"
	FieldFullAddress = "full_address"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
	FieldIsDefault   = "is_default"
)

// OrderDefaultFirst lists the default location first, then the newest ones.
const OrderDefaultFirst = TableName + "." + FieldIsDefault + " DESC, " + TableName + "." + constant.FieldCreatedAt

type Location struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	Label       string  `db:"label"`
	FullAddress string  `db:"full_address"`
	Latitude    float64 `db:"latitude"`
	Longitude   float64 `db:"longitude"`
	IsDefault   bool    `db:"is_default"`
	model.Metadata
}
