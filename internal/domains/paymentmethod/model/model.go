package model

import (
	"conectapro/shared/constant"
	"conectapro/shared/model"
)

const (
	TableName  = "payment_methods"
	EntityName = "payment_method"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldType      = "type"
	FieldLabel     = "label"
	FieldLast4     = "last4"
	FieldIsDefault = "is_default"
)

// CashID is accepted as a payment method by every client without being stored.
const CashID = "pm_cash"

const (
	TypeCash               = "CASH"
	TypeCardSimulated      = "CARD_SIMULATED"
	TypePaypalSimulated    = "PAYPAL_SIMULATED"
	TypeGooglePaySimulated = "GOOGLE_PAY_SIMULATED"
	TypeApplePaySimulated  = "APPLE_PAY_SIMULATED"
)

const OrderDefaultFirst = TableName + "." + FieldIsDefault + " DESC, " + TableName + "." + constant.FieldCreatedAt

type PaymentMethod struct {
	ID        string  `db:"id"`
	UserID    string  `db:"user_id"`
	Type      string  `db:"type"`
	Label     string  `db:"label"`
	Last4     *string `db:"last4"`
	IsDefault bool    `db:"is_default"`
	model.Metadata
}
