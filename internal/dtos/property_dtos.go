package dtos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GalleryRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Address     string  `json:"address" validate:"required,min=1"`
	ManagerName *string `json:"manager_name,omitempty"`
	ContactInfo *string `json:"contact_info,omitempty"`
}

type ApartmentRequest struct {
	GalleryID    uuid.UUID        `json:"gallery" validate:"required"`
	Number       string           `json:"number" validate:"required,min=1"`
	Type         string           `json:"type" validate:"required,min=1"` // Studio, F1, F2, ...
	Floor        *string          `json:"floor,omitempty"`
	Surface      *decimal.Decimal `json:"surface,omitempty"`
	StandardRent decimal.Decimal  `json:"standard_rent" validate:"required"`
	Status       string           `json:"status,omitempty" validate:"omitempty,oneof=FREE OCCUPIED MAINTENANCE"`
}

// AssignManagerRequest names the user to assign; the gallery comes from
// the URL path.
type AssignManagerRequest struct {
	UserID uuid.UUID `json:"user" validate:"required"`
}
