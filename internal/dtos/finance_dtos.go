package dtos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
)

// GenerateMonthlyRentsRequest drives the explicit per-month generation
// endpoint. Both fields are mandatory; a zero value is a validation error.
type GenerateMonthlyRentsRequest struct {
	Year  int `json:"year" validate:"required,gte=2000,lte=2100"`
	Month int `json:"month" validate:"required,gte=1,lte=12"`
}

type GenerateMonthlyRentsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type CreateRentRequest struct {
	ContractID  uuid.UUID        `json:"contract" validate:"required"`
	PeriodStart string           `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   *string          `json:"period_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate     string           `json:"due_date" validate:"required,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	// A status field in the payload is deliberately ignored: new rents are
	// always UNPAID and only reconciliation moves them.
}

type RentResponse struct {
	*models.Rent
	TotalPaid decimal.Decimal `json:"total_paid"`
	Balance   decimal.Decimal `json:"balance"`
}

type CreatePaymentRequest struct {
	RentID    uuid.UUID       `json:"rent" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Method    string          `json:"method" validate:"required,oneof=CASH BANK_TRANSFER MOBILE_MONEY CHECK"`
	Reference *string         `json:"reference,omitempty"`
	Note      *string         `json:"note,omitempty"`
}

type UpdatePaymentRequest struct {
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Date      *string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Method    *string          `json:"method,omitempty" validate:"omitempty,oneof=CASH BANK_TRANSFER MOBILE_MONEY CHECK"`
	Reference *string          `json:"reference,omitempty"`
	Note      *string          `json:"note,omitempty"`
}

type CreateInvoiceRequest struct {
	GalleryID   *uuid.UUID      `json:"gallery,omitempty"`
	ApartmentID *uuid.UUID      `json:"apartment,omitempty"`
	Provider    string          `json:"provider" validate:"required,oneof=SNEL REGIDESO OTHER"`
	Reference   string          `json:"reference" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	IssueDate   string          `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate     *string         `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      string          `json:"status,omitempty" validate:"omitempty,oneof=PENDING PAID"`
	Description *string         `json:"description,omitempty"`
}
