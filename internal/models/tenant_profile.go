package models

import (
	"time"

	"github.com/google/uuid"
)

// TenantProfile is the directory record for a tenant (contact details,
// ID card, emergency contact). It is distinct from the User account with
// the TENANT role that signs contracts.
type TenantProfile struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email,omitempty"`
	IDCardNumber     *string   `json:"id_card_number,omitempty"`
	EmergencyContact *string   `json:"emergency_contact,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
