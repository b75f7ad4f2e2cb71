package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProviderType string

const (
	ProviderSNEL     ProviderType = "SNEL"
	ProviderRegideso ProviderType = "REGIDESO"
	ProviderOther    ProviderType = "OTHER"
)

type InvoiceStatusType string

const (
	InvoiceStatusPending InvoiceStatusType = "PENDING"
	InvoiceStatusPaid    InvoiceStatusType = "PAID"
)

// SupplierInvoice records a utility or supplier bill against a gallery or a
// specific apartment. It lives outside the rent lifecycle; status moves
// manually between PENDING and PAID.
type SupplierInvoice struct {
	ID          uuid.UUID         `json:"id"`
	GalleryID   *uuid.UUID        `json:"gallery_id,omitempty"`
	ApartmentID *uuid.UUID        `json:"apartment_id,omitempty"`
	Provider    ProviderType      `json:"provider"`
	Reference   string            `json:"reference"`
	Amount      decimal.Decimal   `json:"amount"`
	IssueDate   time.Time         `json:"issue_date"`
	DueDate     *time.Time        `json:"due_date,omitempty"`
	Status      InvoiceStatusType `json:"status"`
	Description *string           `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
