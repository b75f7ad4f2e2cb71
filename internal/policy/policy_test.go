package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

func TestContractMutationAlwaysMethodNotAllowed(t *testing.T) {
	e := NewEvaluator()
	owner := Actor{ID: uuid.New(), Role: models.RoleManager}
	admin := Actor{ID: uuid.New(), Role: models.RoleSuperAdmin}
	ref := Ref{OwnerID: owner.ID}

	for _, actor := range []Actor{owner, admin} {
		require.ErrorIs(t, e.CanPerform(actor, ActionUpdate, ResourceContract, ref), utils.ErrMethodNotAllowed)
		require.ErrorIs(t, e.CanPerform(actor, ActionDelete, ResourceContract, ref), utils.ErrMethodNotAllowed)
	}
}

func TestContractArchiveOwnerOrAdmin(t *testing.T) {
	e := NewEvaluator()
	ownerID := uuid.New()
	ref := Ref{OwnerID: ownerID}

	require.NoError(t, e.CanPerform(Actor{ID: ownerID, Role: models.RoleTenant}, ActionArchive, ResourceContract, ref))
	require.NoError(t, e.CanPerform(Actor{ID: uuid.New(), Role: models.RoleSuperAdmin}, ActionArchive, ResourceContract, ref))
	require.ErrorIs(t,
		e.CanPerform(Actor{ID: uuid.New(), Role: models.RoleTenant}, ActionArchive, ResourceContract, ref),
		utils.ErrPermissionDenied)
}

func TestPaymentDeleteForbiddenForEveryone(t *testing.T) {
	e := NewEvaluator()
	for _, role := range []models.Role{models.RoleTenant, models.RoleConcierge, models.RoleAccountant, models.RoleManager, models.RoleSuperAdmin} {
		actor := Actor{ID: uuid.New(), Role: role}
		require.ErrorIs(t, e.CanPerform(actor, ActionDelete, ResourcePayment, Ref{}), utils.ErrMethodNotAllowed)
	}
}

func TestUserVisibilityRules(t *testing.T) {
	e := NewEvaluator()
	subject := uuid.New()
	ref := Ref{SubjectID: subject}

	// Registration is open.
	require.NoError(t, e.CanPerform(Actor{}, ActionCreate, ResourceUser, Ref{}))

	// Read: self, MANAGER and SUPER_ADMIN only.
	require.NoError(t, e.CanPerform(Actor{ID: subject, Role: models.RoleTenant}, ActionRead, ResourceUser, ref))
	require.NoError(t, e.CanPerform(Actor{ID: uuid.New(), Role: models.RoleManager}, ActionRead, ResourceUser, ref))
	require.ErrorIs(t,
		e.CanPerform(Actor{ID: uuid.New(), Role: models.RoleAccountant}, ActionRead, ResourceUser, ref),
		utils.ErrPermissionDenied)

	// List: admins only.
	require.NoError(t, e.CanPerform(Actor{ID: uuid.New(), Role: models.RoleSuperAdmin}, ActionList, ResourceUser, Ref{}))
	require.ErrorIs(t,
		e.CanPerform(Actor{ID: subject, Role: models.RoleTenant}, ActionList, ResourceUser, Ref{}),
		utils.ErrPermissionDenied)

	// Update and delete are strictly self, admin role does not override.
	require.NoError(t, e.CanPerform(Actor{ID: subject, Role: models.RoleTenant}, ActionUpdate, ResourceUser, ref))
	require.ErrorIs(t,
		e.CanPerform(Actor{ID: uuid.New(), Role: models.RoleSuperAdmin}, ActionDelete, ResourceUser, ref),
		utils.ErrPermissionDenied)
}

func TestGalleryManagerAssignmentsOwnerOnly(t *testing.T) {
	e := NewEvaluator()
	ownerID := uuid.New()
	ref := Ref{OwnerID: ownerID}

	owner := Actor{ID: ownerID, Role: models.RoleTenant}
	stranger := Actor{ID: uuid.New(), Role: models.RoleSuperAdmin}

	for _, action := range []Action{ActionCreate, ActionRead, ActionList, ActionUpdate, ActionDelete} {
		require.NoError(t, e.CanPerform(owner, action, ResourceGalleryManager, ref))
		require.ErrorIs(t, e.CanPerform(stranger, action, ResourceGalleryManager, ref), utils.ErrPermissionDenied)
	}
}

func TestAnonymousActorDeniedOnAuthenticatedResources(t *testing.T) {
	e := NewEvaluator()
	anon := Actor{}

	require.ErrorIs(t, e.CanPerform(anon, ActionList, ResourceRent, Ref{}), utils.ErrPermissionDenied)
	require.ErrorIs(t, e.CanPerform(anon, ActionCreate, ResourceGallery, Ref{}), utils.ErrPermissionDenied)
}

func TestUnknownPairDenies(t *testing.T) {
	e := NewEvaluator()
	actor := Actor{ID: uuid.New(), Role: models.RoleSuperAdmin}

	// Archive is only defined for contracts.
	require.ErrorIs(t, e.CanPerform(actor, ActionArchive, ResourceRent, Ref{}), utils.ErrPermissionDenied)
}
