package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contract binds a tenant to an apartment under an owner. Once created it is
// immutable through the API; it can only be archived (soft-disabled) and
// replaced by a new contract. Contracts are never hard-deleted once rents
// reference them.
type Contract struct {
	ID              uuid.UUID       `json:"id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	ApartmentID     uuid.UUID       `json:"apartment_id"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         *time.Time      `json:"end_date,omitempty"` // nil = open-ended
	RentAmount      decimal.Decimal `json:"rent_amount"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	IsActive        bool            `json:"is_active"`
	ArchivedAt      *time.Time      `json:"archived_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
