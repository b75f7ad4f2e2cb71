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

// InvoiceService manages supplier invoices (SNEL, REGIDESO, ...). These sit
// outside the rent lifecycle; status moves manually.
type InvoiceService struct {
	invoiceRepo   repositories.SupplierInvoiceRepository
	galleryRepo   repositories.GalleryRepository
	apartmentRepo repositories.ApartmentRepository
}

func NewInvoiceService(
	invoiceRepo repositories.SupplierInvoiceRepository,
	galleryRepo repositories.GalleryRepository,
	apartmentRepo repositories.ApartmentRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:   invoiceRepo,
		galleryRepo:   galleryRepo,
		apartmentRepo: apartmentRepo,
	}
}

type InvoiceInput struct {
	GalleryID   *uuid.UUID
	ApartmentID *uuid.UUID
	Provider    models.ProviderType
	Reference   string
	Amount      decimal.Decimal
	IssueDate   time.Time
	DueDate     *time.Time
	Status      models.InvoiceStatusType
	Description *string
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, in InvoiceInput) (*models.SupplierInvoice, error) {
	if in.Amount.Sign() <= 0 {
		return nil, utils.ErrInvalidAmount
	}
	if in.GalleryID != nil {
		g, err := s.galleryRepo.GetByID(ctx, *in.GalleryID)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, utils.ErrGalleryNotFound
		}
	}
	if in.ApartmentID != nil {
		a, err := s.apartmentRepo.GetByID(ctx, *in.ApartmentID)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, utils.ErrApartmentNotFound
		}
	}

	status := in.Status
	if status == "" {
		status = models.InvoiceStatusPending
	}
	inv := &models.SupplierInvoice{
		ID:          uuid.New(),
		GalleryID:   in.GalleryID,
		ApartmentID: in.ApartmentID,
		Provider:    in.Provider,
		Reference:   in.Reference,
		Amount:      in.Amount,
		IssueDate:   utils.DateOnly(in.IssueDate),
		Status:      status,
		Description: in.Description,
	}
	if in.DueDate != nil {
		due := utils.DateOnly(*in.DueDate)
		inv.DueDate = &due
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*models.SupplierInvoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, utils.ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, f repositories.SupplierInvoiceFilter) ([]*models.SupplierInvoice, error) {
	return s.invoiceRepo.List(ctx, f)
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, in InvoiceInput) (*models.SupplierInvoice, error) {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Amount.Sign() <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	inv.GalleryID = in.GalleryID
	inv.ApartmentID = in.ApartmentID
	inv.Provider = in.Provider
	inv.Reference = in.Reference
	inv.Amount = in.Amount
	inv.IssueDate = utils.DateOnly(in.IssueDate)
	inv.Description = in.Description
	if in.DueDate != nil {
		due := utils.DateOnly(*in.DueDate)
		inv.DueDate = &due
	} else {
		inv.DueDate = nil
	}
	if in.Status != "" {
		inv.Status = in.Status
	}

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, inv.ID)
}
