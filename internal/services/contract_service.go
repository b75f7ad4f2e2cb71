package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/repositories"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

// ContractService creates and archives lease contracts. Contracts are
// immutable once created: there is no update path at all, only archive and
// replacement by a new contract.
type ContractService struct {
	contractRepo  repositories.ContractRepository
	apartmentRepo repositories.ApartmentRepository
	userRepo      repositories.UserRepository
}

func NewContractService(
	contractRepo repositories.ContractRepository,
	apartmentRepo repositories.ApartmentRepository,
	userRepo repositories.UserRepository,
) *ContractService {
	return &ContractService{
		contractRepo:  contractRepo,
		apartmentRepo: apartmentRepo,
		userRepo:      userRepo,
	}
}

type CreateContractInput struct {
	TenantID        uuid.UUID
	ApartmentID     uuid.UUID
	StartDate       time.Time
	EndDate         *time.Time
	RentAmount      decimal.Decimal
	SecurityDeposit decimal.Decimal
}

// CreateContract creates a contract owned by the acting user.
func (s *ContractService) CreateContract(ctx context.Context, ownerID uuid.UUID, in CreateContractInput) (*models.Contract, error) {
	if ownerID == in.TenantID {
		return nil, utils.ErrSameOwnerAndTenant
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, utils.ErrInvalidPeriod
	}
	if in.RentAmount.Sign() <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	apartment, err := s.apartmentRepo.GetByID(ctx, in.ApartmentID)
	if err != nil {
		return nil, err
	}
	if apartment == nil {
		return nil, utils.ErrApartmentNotFound
	}

	tenant, err := s.userRepo.GetByID(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, utils.ErrUserNotFound
	}

	c := &models.Contract{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		TenantID:        in.TenantID,
		ApartmentID:     in.ApartmentID,
		StartDate:       utils.DateOnly(in.StartDate),
		RentAmount:      in.RentAmount,
		SecurityDeposit: in.SecurityDeposit,
		IsActive:        true,
	}
	if in.EndDate != nil {
		end := utils.DateOnly(*in.EndDate)
		c.EndDate = &end
	}

	if err := s.contractRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContractService) GetContract(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.ErrContractNotFound
	}
	return c, nil
}

func (s *ContractService) ListContracts(ctx context.Context, f repositories.ContractFilter) ([]*models.Contract, error) {
	return s.contractRepo.List(ctx, f)
}

// ArchiveContract soft-disables a contract; existing rents keep referencing
// it.
func (s *ContractService) ArchiveContract(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.ErrContractNotFound
	}
	if err := s.contractRepo.Archive(ctx, id); err != nil {
		return nil, err
	}
	return s.contractRepo.GetByID(ctx, id)
}
