package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/repositories"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

// TenantService manages the tenant directory records.
type TenantService struct {
	tenantRepo repositories.TenantProfileRepository
}

func NewTenantService(tenantRepo repositories.TenantProfileRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

type TenantProfileInput struct {
	FirstName        string
	LastName         string
	Phone            string
	Email            *string
	IDCardNumber     *string
	EmergencyContact *string
}

func (s *TenantService) CreateTenant(ctx context.Context, in TenantProfileInput) (*models.TenantProfile, error) {
	t := &models.TenantProfile{
		ID:               uuid.New(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Phone:            in.Phone,
		Email:            in.Email,
		IDCardNumber:     in.IDCardNumber,
		EmergencyContact: in.EmergencyContact,
	}
	if err := s.tenantRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TenantService) GetTenant(ctx context.Context, id uuid.UUID) (*models.TenantProfile, error) {
	t, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, utils.ErrTenantNotFound
	}
	return t, nil
}

func (s *TenantService) ListTenants(ctx context.Context) ([]*models.TenantProfile, error) {
	return s.tenantRepo.List(ctx)
}

func (s *TenantService) UpdateTenant(ctx context.Context, id uuid.UUID, in TenantProfileInput) (*models.TenantProfile, error) {
	t, err := s.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}
	t.FirstName = in.FirstName
	t.LastName = in.LastName
	t.Phone = in.Phone
	t.Email = in.Email
	t.IDCardNumber = in.IDCardNumber
	t.EmergencyContact = in.EmergencyContact
	if err := s.tenantRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TenantService) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	t, err := s.GetTenant(ctx, id)
	if err != nil {
		return err
	}
	return s.tenantRepo.Delete(ctx, t.ID)
}
