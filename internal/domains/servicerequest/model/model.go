package model

import (
	"time"

	"conectapro/shared/model"
)

const (
	TableName  = "service_requests"
	EntityName = "service_request"

	FieldID              = "id"
	FieldClientID        = "client_id"
	FieldProviderID      = "provider_id"
	FieldServiceID       = "service_id"
	FieldLocationID      = "location_id"
	FieldStatus          = "status"
	FieldScheduledDate   = "scheduled_date"
	FieldTimeStart       = "time_start"
	FieldTimeEnd         = "time_end"
	FieldCurrency        = "currency"
	FieldSubtotal        = "subtotal"
	FieldDiscount        = "discount"
	FieldTotal           = "total"
	FieldPaymentMethodID = "payment_method_id"
	FieldPaymentMode     = "payment_mode"
	FieldPaymentStatus   = "payment_status"
	FieldNotes           = "notes"
	FieldRejectionReason = "rejection_reason"
)

const (
	PaymentModeSimulated   = "SIMULATED"
	PaymentStatusSimulated = "SIMULATED_PAID"
	DefaultCurrency        = "PEN"
)

// ProviderNotePrefix marks notes appended by the provider on acceptance.
const ProviderNotePrefix = "Provider Note: "

type ServiceRequest struct {
	ID              string    `db:"id"`
	ClientID        string    `db:"client_id"`
	ProviderID      string    `db:"provider_id"`
	ServiceID       string    `db:"service_id"`
	LocationID      string    `db:"location_id"`
	Status          Status    `db:"status"`
	ScheduledDate   time.Time `db:"scheduled_date"`
	TimeStart       string    `db:"time_start"`
	TimeEnd         string    `db:"time_end"`
	Currency        string    `db:"currency"`
	Subtotal        float64   `db:"subtotal"`
	Discount        float64   `db:"discount"`
	Total           float64   `db:"total"`
	PaymentMethodID string    `db:"payment_method_id"`
	PaymentMode     string    `db:"payment_mode"`
	PaymentStatus   string    `db:"payment_status"`
	Notes           string    `db:"notes"`
	RejectionReason string    `db:"rejection_reason"`
	model.Metadata
}

// Detail is a request joined with the names shown to clients and providers.
type Detail struct {
	ServiceRequest
	ServiceTitle    string `db:"service_title"    table:"services"  column:"title"`
	ProviderName    string `db:"provider_name"    table:"providers" column:"full_name"`
	ClientName      string `db:"client_name"      table:"clients"   column:"full_name"`
	LocationLabel   string `db:"location_label"   table:"locations" column:"label"`
	LocationAddress string `db:"location_address" table:"locations" column:"full_address"`
}

func (Detail) GetJoinQuery() string {
	return "JOIN services ON services.id = service_requests.service_id " +
		"JOIN users AS providers ON providers.id = service_requests.provider_id " +
		"JOIN users AS clients ON clients.id = service_requests.client_id " +
		"JOIN locations ON locations.id = service_requests.location_id"
}

// Change describes one lifecycle event applied to a request owned by OwnerColumn = OwnerID.
// An empty OwnerColumn applies the event without an ownership guard.
type Change struct {
	ID          string
	Event       Event
	OwnerColumn string
	OwnerID     string
	Reason      string
	Note        string
	Actor       string
	At          time.Time
}

// EventType names the lifecycle event published for a change.
func EventType(event Event) string {
	return EntityName + "." + string(event)
}

const EventCreated = EntityName + ".created"

// LifecyclePayload is the body of every published lifecycle event.
type LifecyclePayload struct {
	Event    string `json:"event"`
	Status   string `json:"status"`
	Client   string `json:"client_id,omitempty"`
	Provider string `json:"provider_id,omitempty"`
	Reason   string `json:"reason,omitempty"`
}
