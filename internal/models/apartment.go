package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ApartmentStatusType string

const (
	ApartmentStatusFree        ApartmentStatusType = "FREE"
	ApartmentStatusOccupied    ApartmentStatusType = "OCCUPIED"
	ApartmentStatusMaintenance ApartmentStatusType = "MAINTENANCE"
)

type Apartment struct {
	ID           uuid.UUID           `json:"id"`
	GalleryID    uuid.UUID           `json:"gallery_id"`
	Number       string              `json:"number"`
	Type         string              `json:"type"` // Studio, F1, F2, ...
	Floor        *string             `json:"floor,omitempty"`
	Surface      *decimal.Decimal    `json:"surface,omitempty"` // m2
	StandardRent decimal.Decimal     `json:"standard_rent"`
	Status       ApartmentStatusType `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
