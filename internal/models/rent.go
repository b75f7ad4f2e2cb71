package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RentStatusType string

const (
	RentStatusUnpaid  RentStatusType = "UNPAID"
	RentStatusPartial RentStatusType = "PARTIAL"
	RentStatusPaid    RentStatusType = "PAID"
	RentStatusLate    RentStatusType = "LATE"
)

// Rent is one billing period's due amount under a Contract. At most one rent
// may exist per (contract, period_start); the table carries a unique
// constraint on that pair.
type Rent struct {
	ID          uuid.UUID       `json:"id"`
	ContractID  uuid.UUID       `json:"contract_id"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   *time.Time      `json:"period_end,omitempty"` // nil = unbounded, never rolls forward
	DueDate     time.Time       `json:"due_date"`
	Amount      decimal.Decimal `json:"amount"`
	Status      RentStatusType  `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ComputeRentStatus derives the cached status from the rent amount and the
// accumulated payments. It is the single source of truth used by every
// payment-mutating path. LATE is never produced here; it is assigned only by
// an external time-based process, and any payment change resolves it back
// through these rules.
func ComputeRentStatus(amount, totalPaid decimal.Decimal) RentStatusType {
	balance := amount.Sub(totalPaid)
	switch {
	case balance.Sign() <= 0:
		return RentStatusPaid
	case totalPaid.Sign() > 0:
		return RentStatusPartial
	default:
		return RentStatusUnpaid
	}
}
