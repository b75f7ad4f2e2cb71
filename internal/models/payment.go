package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethodType string

const (
	PaymentMethodCash         PaymentMethodType = "CASH"
	PaymentMethodBankTransfer PaymentMethodType = "BANK_TRANSFER"
	PaymentMethodMobileMoney  PaymentMethodType = "MOBILE_MONEY"
	PaymentMethodCheck        PaymentMethodType = "CHECK"
)

// Payment is a monetary application against a Rent's balance. Payments are
// append-only: once recorded they may never be deleted.
type Payment struct {
	ID        uuid.UUID         `json:"id"`
	RentID    uuid.UUID         `json:"rent_id"`
	Amount    decimal.Decimal   `json:"amount"`
	Date      time.Time         `json:"date"`
	Method    PaymentMethodType `json:"method"`
	Reference *string           `json:"reference,omitempty"`
	Note      *string           `json:"note,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
