// Package policy resolves whether an actor may perform an action on a
// resource. Rules live in one explicit capability table instead of role
// string comparisons scattered through the handlers.
package policy

import (
	"github.com/google/uuid"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

type Action int

const (
	ActionCreate Action = iota
	ActionRead
	ActionList
	ActionUpdate
	ActionDelete
	ActionArchive
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionRead:
		return "read"
	case ActionList:
		return "list"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionArchive:
		return "archive"
	default:
		return "unknown"
	}
}

type Resource int

const (
	ResourceUser Resource = iota
	ResourceGallery
	ResourceGalleryManager
	ResourceApartment
	ResourceTenantProfile
	ResourceContract
	ResourceRent
	ResourcePayment
	ResourceInvoice
)

// Actor is the authenticated caller as extracted from the JWT claims.
// A zero-ID actor is anonymous.
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

func (a Actor) authenticated() bool {
	return a.ID != uuid.Nil
}

func (a Actor) admin() bool {
	return a.Role == models.RoleSuperAdmin || a.Role == models.RoleManager
}

// Ref carries the ownership context of the concrete resource instance.
// Fields are filled only where the resource kind has them: OwnerID for
// contracts and galleries (including the gallery that an apartment or
// manager assignment hangs off), TenantID for contracts, SubjectID for
// user records.
type Ref struct {
	OwnerID   uuid.UUID
	TenantID  uuid.UUID
	SubjectID uuid.UUID
}

type capability func(actor Actor, ref Ref) error

func anyone(Actor, Ref) error { return nil }

func authenticated(actor Actor, _ Ref) error {
	if !actor.authenticated() {
		return utils.ErrPermissionDenied
	}
	return nil
}

func selfOnly(actor Actor, ref Ref) error {
	if !actor.authenticated() || actor.ID != ref.SubjectID {
		return utils.ErrPermissionDenied
	}
	return nil
}

func selfOrAdmin(actor Actor, ref Ref) error {
	if actor.admin() {
		return nil
	}
	return selfOnly(actor, ref)
}

func adminOnly(actor Actor, _ Ref) error {
	if !actor.admin() {
		return utils.ErrPermissionDenied
	}
	return nil
}

func galleryOwner(actor Actor, ref Ref) error {
	if !actor.authenticated() || actor.ID != ref.OwnerID {
		return utils.ErrPermissionDenied
	}
	return nil
}

func never(Actor, Ref) error { return utils.ErrMethodNotAllowed }

func ownerOrAdmin(actor Actor, ref Ref) error {
	if actor.admin() {
		return nil
	}
	return galleryOwner(actor, ref)
}

// capabilities is the single authority for role/ownership access. An absent
// (resource, action) pair denies.
var capabilities = map[Resource]map[Action]capability{
	ResourceUser: {
		ActionCreate: anyone, // self-registration
		ActionRead:   selfOrAdmin,
		ActionList:   adminOnly,
		ActionUpdate: selfOnly,
		ActionDelete: selfOnly,
	},
	ResourceGallery: {
		ActionCreate: authenticated,
		ActionRead:   authenticated,
		ActionList:   authenticated,
		ActionUpdate: galleryOwner,
		ActionDelete: galleryOwner,
	},
	ResourceGalleryManager: {
		ActionCreate: galleryOwner,
		ActionRead:   galleryOwner,
		ActionList:   galleryOwner,
		ActionUpdate: galleryOwner,
		ActionDelete: galleryOwner,
	},
	ResourceApartment: {
		ActionCreate: galleryOwner, // target gallery must belong to the actor
		ActionRead:   authenticated,
		ActionList:   authenticated,
		ActionUpdate: authenticated,
		ActionDelete: authenticated,
	},
	ResourceTenantProfile: {
		ActionCreate: authenticated,
		ActionRead:   authenticated,
		ActionList:   authenticated,
		ActionUpdate: authenticated,
		ActionDelete: authenticated,
	},
	ResourceContract: {
		ActionCreate: authenticated,
		ActionRead:   authenticated,
		ActionList:   authenticated,
		// Contracts are immutable except by replacement: PUT/PATCH/DELETE
		// are rejected for everyone, including the owner.
		ActionUpdate: never,
		ActionDelete: never,
		// Archival is the only sanctioned end-of-life transition.
		ActionArchive: ownerOrAdmin,
	},
	// Deliberately coarse: any authenticated user may act on rents,
	// payments and supplier invoices.
	ResourceRent: {
		ActionCreate: authenticated,
		ActionRead:   authenticated,
		ActionList:   authenticated,
		ActionUpdate: authenticated,
		ActionDelete: authenticated,
	},
	ResourcePayment: {
		ActionCreate: authenticated,
		ActionRead:   authenticated,
		ActionList:   authenticated,
		ActionUpdate: authenticated,
		// Payments are permanent financial audit records.
		ActionDelete: never,
	},
	ResourceInvoice: {
		ActionCreate: authenticated,
		ActionRead:   authenticated,
		ActionList:   authenticated,
		ActionUpdate: authenticated,
		ActionDelete: authenticated,
	},
}

type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// CanPerform returns nil when the actor may perform the action, or one of
// utils.ErrPermissionDenied / utils.ErrMethodNotAllowed.
func (e *Evaluator) CanPerform(actor Actor, action Action, resource Resource, ref Ref) error {
	actions, ok := capabilities[resource]
	if !ok {
		return utils.ErrPermissionDenied
	}
	cap, ok := actions[action]
	if !ok {
		return utils.ErrPermissionDenied
	}
	return cap(actor, ref)
}
