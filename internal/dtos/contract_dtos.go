package dtos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateContractRequest struct {
	TenantID        uuid.UUID       `json:"tenant" validate:"required"`
	ApartmentID     uuid.UUID       `json:"apartment" validate:"required"`
	StartDate       string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         *string         `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RentAmount      decimal.Decimal `json:"rent_amount" validate:"required"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
}
