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

// PaymentService records payments against rents and keeps each rent's
// cached status consistent with its accumulated payments. The stored status
// is a denormalization of the derived balance: readers needing authority
// should recompute from SumByRent rather than trust it blindly.
type PaymentService struct {
	rentRepo    repositories.RentRepository
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(
	rentRepo repositories.RentRepository,
	paymentRepo repositories.PaymentRepository,
) *PaymentService {
	return &PaymentService{
		rentRepo:    rentRepo,
		paymentRepo: paymentRepo,
	}
}

type RecordPaymentInput struct {
	RentID    uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Method    models.PaymentMethodType
	Reference *string
	Note      *string
}

// RecordPayment persists a payment and reconciles the parent rent.
func (s *PaymentService) RecordPayment(ctx context.Context, in RecordPaymentInput) (*models.Payment, error) {
	if in.Amount.Sign() <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	rent, err := s.rentRepo.GetByID(ctx, in.RentID)
	if err != nil {
		return nil, err
	}
	if rent == nil {
		return nil, utils.ErrRentNotFound
	}

	p := &models.Payment{
		ID:        uuid.New(),
		RentID:    in.RentID,
		Amount:    in.Amount,
		Date:      utils.DateOnly(in.Date),
		Method:    in.Method,
		Reference: in.Reference,
		Note:      in.Note,
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.reconcile(ctx, rent); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdatePaymentInput struct {
	Amount    *decimal.Decimal
	Date      *time.Time
	Method    *models.PaymentMethodType
	Reference *string
	Note      *string
}

// UpdatePayment corrects a payment's mutable fields and re-reconciles its
// rent. The rent reference itself never moves.
func (s *PaymentService) UpdatePayment(ctx context.Context, id uuid.UUID, in UpdatePaymentInput) (*models.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrPaymentNotFound
	}

	if in.Amount != nil {
		if in.Amount.Sign() <= 0 {
			return nil, utils.ErrInvalidAmount
		}
		p.Amount = *in.Amount
	}
	if in.Date != nil {
		p.Date = utils.DateOnly(*in.Date)
	}
	if in.Method != nil {
		p.Method = *in.Method
	}
	if in.Reference != nil {
		p.Reference = in.Reference
	}
	if in.Note != nil {
		p.Note = in.Note
	}

	if err := s.paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	rent, err := s.rentRepo.GetByID(ctx, p.RentID)
	if err != nil {
		return nil, err
	}
	if rent == nil {
		return nil, utils.ErrRentNotFound
	}
	if err := s.reconcile(ctx, rent); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePayment always fails: payments are permanent financial audit
// records.
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return utils.ErrPaymentImmutable
}

// RentBalance returns the derived total_paid and balance for a rent.
func (s *PaymentService) RentBalance(ctx context.Context, rentID uuid.UUID) (totalPaid, balance decimal.Decimal, err error) {
	rent, err := s.rentRepo.GetByID(ctx, rentID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if rent == nil {
		return decimal.Zero, decimal.Zero, utils.ErrRentNotFound
	}
	totalPaid, err = s.paymentRepo.SumByRent(ctx, rentID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return totalPaid, rent.Amount.Sub(totalPaid), nil
}

// reconcile is the single reconciliation path invoked after every
// payment-mutating operation: it recomputes total_paid and rewrites the
// rent's cached status when it changed.
func (s *PaymentService) reconcile(ctx context.Context, rent *models.Rent) error {
	totalPaid, err := s.paymentRepo.SumByRent(ctx, rent.ID)
	if err != nil {
		return err
	}

	newStatus := models.ComputeRentStatus(rent.Amount, totalPaid)
	if newStatus == rent.Status {
		return nil
	}
	if err := s.rentRepo.UpdateStatus(ctx, rent.ID, newStatus); err != nil {
		return err
	}
	utils.Logger.Debugf("Rent %s reconciled: %s -> %s (paid %s of %s)",
		rent.ID, rent.Status, newStatus, totalPaid, rent.Amount)
	rent.Status = newStatus
	return nil
}
