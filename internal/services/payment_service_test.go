package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

func newPaymentFixture(t *testing.T, amount string) (*PaymentService, *fakeRentRepo, *models.Rent) {
	t.Helper()
	rentRepo := newFakeRentRepo()
	svc := NewPaymentService(rentRepo, newFakePaymentRepo())
	rent := seedRent(t, rentRepo, uuid.New(), day(2024, time.March, 1), day(2024, time.March, 31), amount)
	return svc, rentRepo, rent
}

func TestRecordPaymentMovesStatusThroughLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, rentRepo, rent := newPaymentFixture(t, "500.00")

	// First payment: partial.
	_, err := svc.RecordPayment(ctx, RecordPaymentInput{
		RentID: rent.ID,
		Amount: dec(t, "200.00"),
		Date:   day(2024, time.March, 3),
		Method: models.PaymentMethodCash,
	})
	require.NoError(t, err)

	stored, err := rentRepo.GetByID(ctx, rent.ID)
	require.NoError(t, err)
	require.Equal(t, models.RentStatusPartial, stored.Status)

	// Second payment settles it exactly.
	_, err = svc.RecordPayment(ctx, RecordPaymentInput{
		RentID: rent.ID,
		Amount: dec(t, "300.00"),
		Date:   day(2024, time.March, 10),
		Method: models.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)

	stored, err = rentRepo.GetByID(ctx, rent.ID)
	require.NoError(t, err)
	require.Equal(t, models.RentStatusPaid, stored.Status)

	totalPaid, balance, err := svc.RentBalance(ctx, rent.ID)
	require.NoError(t, err)
	require.True(t, totalPaid.Equal(dec(t, "500.00")))
	require.True(t, balance.IsZero())
}

func TestRecordPaymentOverpaymentIsPaid(t *testing.T) {
	ctx := context.Background()
	svc, rentRepo, rent := newPaymentFixture(t, "500.00")

	_, err := svc.RecordPayment(ctx, RecordPaymentInput{
		RentID: rent.ID,
		Amount: dec(t, "650.00"),
		Date:   day(2024, time.March, 3),
		Method: models.PaymentMethodMobileMoney,
	})
	require.NoError(t, err)

	stored, err := rentRepo.GetByID(ctx, rent.ID)
	require.NoError(t, err)
	require.Equal(t, models.RentStatusPaid, stored.Status)

	_, balance, err := svc.RentBalance(ctx, rent.ID)
	require.NoError(t, err)
	require.True(t, balance.Equal(dec(t, "-150.00")))
}

func TestRecordPaymentRejectsNonPositiveAmounts(t *testing.T) {
	ctx := context.Background()
	svc, _, rent := newPaymentFixture(t, "500.00")

	for _, amount := range []string{"0", "-10.00"} {
		_, err := svc.RecordPayment(ctx, RecordPaymentInput{
			RentID: rent.ID,
			Amount: dec(t, amount),
			Date:   day(2024, time.March, 3),
			Method: models.PaymentMethodCash,
		})
		require.ErrorIs(t, err, utils.ErrInvalidAmount)
	}
}

func TestRecordPaymentUnknownRent(t *testing.T) {
	svc, _, _ := newPaymentFixture(t, "500.00")

	_, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
		RentID: uuid.New(),
		Amount: dec(t, "100.00"),
		Date:   day(2024, time.March, 3),
		Method: models.PaymentMethodCash,
	})
	require.ErrorIs(t, err, utils.ErrRentNotFound)
}

func TestPaymentResolvesExternallyAssignedLate(t *testing.T) {
	ctx := context.Background()
	svc, rentRepo, rent := newPaymentFixture(t, "500.00")

	// Some external process flagged the rent LATE.
	require.NoError(t, rentRepo.UpdateStatus(ctx, rent.ID, models.RentStatusLate))

	_, err := svc.RecordPayment(ctx, RecordPaymentInput{
		RentID: rent.ID,
		Amount: dec(t, "100.00"),
		Date:   day(2024, time.April, 2),
		Method: models.PaymentMethodCash,
	})
	require.NoError(t, err)

	stored, err := rentRepo.GetByID(ctx, rent.ID)
	require.NoError(t, err)
	require.Equal(t, models.RentStatusPartial, stored.Status)
}

func TestUpdatePaymentReReconciles(t *testing.T) {
	ctx := context.Background()
	svc, rentRepo, rent := newPaymentFixture(t, "500.00")

	p, err := svc.RecordPayment(ctx, RecordPaymentInput{
		RentID: rent.ID,
		Amount: dec(t, "500.00"),
		Date:   day(2024, time.March, 3),
		Method: models.PaymentMethodCash,
	})
	require.NoError(t, err)

	stored, err := rentRepo.GetByID(ctx, rent.ID)
	require.NoError(t, err)
	require.Equal(t, models.RentStatusPaid, stored.Status)

	// Correcting the amount downward drops the rent back to PARTIAL.
	_, err = svc.UpdatePayment(ctx, p.ID, UpdatePaymentInput{Amount: utils.Ptr(dec(t, "300.00"))})
	require.NoError(t, err)

	stored, err = rentRepo.GetByID(ctx, rent.ID)
	require.NoError(t, err)
	require.Equal(t, models.RentStatusPartial, stored.Status)
}

func TestDeletePaymentAlwaysFails(t *testing.T) {
	ctx := context.Background()
	svc, _, rent := newPaymentFixture(t, "500.00")

	p, err := svc.RecordPayment(ctx, RecordPaymentInput{
		RentID: rent.ID,
		Amount: dec(t, "100.00"),
		Date:   day(2024, time.March, 3),
		Method: models.PaymentMethodCash,
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeletePayment(ctx, p.ID), utils.ErrPaymentImmutable)
	// Even for ids that do not exist: the operation itself is disallowed.
	require.ErrorIs(t, svc.DeletePayment(ctx, uuid.New()), utils.ErrPaymentImmutable)
}
