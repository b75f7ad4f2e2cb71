package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/policy"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/repositories"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

// AccountService handles self-registration and profile access. Token
// issuance lives in a separate auth service; this one only manages the
// records.
type AccountService struct {
	userRepo  repositories.UserRepository
	evaluator *policy.Evaluator
}

func NewAccountService(userRepo repositories.UserRepository, evaluator *policy.Evaluator) *AccountService {
	return &AccountService{userRepo: userRepo, evaluator: evaluator}
}

type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      *models.Role
}

// Register creates a new user account. Registration is open; new accounts
// default to the TENANT role.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := models.RoleTenant
	if in.Role != nil {
		role = *in.Role
	}

	u := &models.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser applies the self-or-admin rule.
func (s *AccountService) GetUser(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.User, error) {
	if err := s.evaluator.CanPerform(actor, policy.ActionRead, policy.ResourceUser, policy.Ref{SubjectID: id}); err != nil {
		return nil, err
	}
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrUserNotFound
	}
	return u, nil
}

// ListUsers is reserved for SUPER_ADMIN and MANAGER.
func (s *AccountService) ListUsers(ctx context.Context, actor policy.Actor) ([]*models.User, error) {
	if err := s.evaluator.CanPerform(actor, policy.ActionList, policy.ResourceUser, policy.Ref{}); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

type UpdateProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
}

// UpdateProfile lets a user edit their own record.
func (s *AccountService) UpdateProfile(ctx context.Context, actor policy.Actor, in UpdateProfileInput) (*models.User, error) {
	if err := s.evaluator.CanPerform(actor, policy.ActionUpdate, policy.ResourceUser, policy.Ref{SubjectID: actor.ID}); err != nil {
		return nil, err
	}
	u, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrUserNotFound
	}

	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Password != nil {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeactivateAccount is the logical delete of the caller's own account.
func (s *AccountService) DeactivateAccount(ctx context.Context, actor policy.Actor) error {
	if err := s.evaluator.CanPerform(actor, policy.ActionDelete, policy.ResourceUser, policy.Ref{SubjectID: actor.ID}); err != nil {
		return err
	}
	return s.userRepo.Deactivate(ctx, actor.ID)
}
