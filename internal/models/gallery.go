package models

import (
	"time"

	"github.com/google/uuid"
)

// Gallery is a building containing multiple apartments, owned by a User.
type Gallery struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	ManagerName *string   `json:"manager_name,omitempty"`
	ContactInfo *string   `json:"contact_info,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GalleryManager assigns a user as manager of a gallery. Only the gallery's
// owner may create, read, update or delete these assignments.
type GalleryManager struct {
	ID        uuid.UUID `json:"id"`
	GalleryID uuid.UUID `json:"gallery_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
