package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedRent(t *testing.T, repo *fakeRentRepo, contractID uuid.UUID, start, end time.Time, amount string) *models.Rent {
	t.Helper()
	rent := &models.Rent{
		ID:          uuid.New(),
		ContractID:  contractID,
		PeriodStart: start,
		PeriodEnd:   &end,
		DueDate:     start,
		Amount:      dec(t, amount),
		Status:      models.RentStatusUnpaid,
	}
	require.NoError(t, repo.Create(context.Background(), rent))
	return rent
}

func TestAdvancePeriodsRollsElapsedPeriodForward(t *testing.T) {
	ctx := context.Background()
	rentRepo := newFakeRentRepo()
	svc := NewRentSchedulerService(newFakeContractRepo(), rentRepo)

	contractID := uuid.New()
	seedRent(t, rentRepo, contractID, day(2024, time.January, 1), day(2024, time.January, 31), "500.00")

	created, err := svc.AdvancePeriods(ctx, day(2024, time.February, 1))
	require.NoError(t, err)
	require.Equal(t, 1, created)

	rents := rentRepo.byContract(contractID)
	require.Len(t, rents, 2)

	var next *models.Rent
	for _, rent := range rents {
		if rent.PeriodStart.Equal(day(2024, time.February, 1)) {
			next = rent
		}
	}
	require.NotNil(t, next)
	require.NotNil(t, next.PeriodEnd)
	require.Equal(t, day(2024, time.February, 29), *next.PeriodEnd)
	require.Equal(t, day(2024, time.February, 1), next.DueDate)
	require.True(t, next.Amount.Equal(dec(t, "500.00")))
	require.Equal(t, models.RentStatusUnpaid, next.Status)
}

func TestAdvancePeriodsSkipsUnelapsedPeriods(t *testing.T) {
	ctx := context.Background()
	rentRepo := newFakeRentRepo()
	svc := NewRentSchedulerService(newFakeContractRepo(), rentRepo)

	contractID := uuid.New()
	seedRent(t, rentRepo, contractID, day(2024, time.January, 1), day(2024, time.January, 31), "500.00")

	// Still inside the period.
	created, err := svc.AdvancePeriods(ctx, day(2024, time.January, 20))
	require.NoError(t, err)
	require.Equal(t, 0, created)

	// The boundary day itself does not qualify; reference must be after it.
	created, err = svc.AdvancePeriods(ctx, day(2024, time.January, 31))
	require.NoError(t, err)
	require.Equal(t, 0, created)
	require.Len(t, rentRepo.byContract(contractID), 1)
}

func TestAdvancePeriodsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	rentRepo := newFakeRentRepo()
	svc := NewRentSchedulerService(newFakeContractRepo(), rentRepo)

	contractID := uuid.New()
	seedRent(t, rentRepo, contractID, day(2024, time.January, 1), day(2024, time.January, 31), "500.00")

	created, err := svc.AdvancePeriods(ctx, day(2024, time.February, 1))
	require.NoError(t, err)
	require.Equal(t, 1, created)

	// Same reference date again: the successor already exists.
	created, err = svc.AdvancePeriods(ctx, day(2024, time.February, 1))
	require.NoError(t, err)
	require.Equal(t, 0, created)
	require.Len(t, rentRepo.byContract(contractID), 2)
}

func TestAdvancePeriodsIgnoresUnboundedRents(t *testing.T) {
	ctx := context.Background()
	rentRepo := newFakeRentRepo()
	svc := NewRentSchedulerService(newFakeContractRepo(), rentRepo)

	contractID := uuid.New()
	rent := &models.Rent{
		ID:          uuid.New(),
		ContractID:  contractID,
		PeriodStart: day(2024, time.January, 1),
		PeriodEnd:   nil,
		DueDate:     day(2024, time.January, 1),
		Amount:      dec(t, "500.00"),
		Status:      models.RentStatusUnpaid,
	}
	require.NoError(t, rentRepo.Create(ctx, rent))

	created, err := svc.AdvancePeriods(ctx, day(2030, time.January, 1))
	require.NoError(t, err)
	require.Equal(t, 0, created)
}

func TestAdvancePeriodsClampsMonthEndStarts(t *testing.T) {
	ctx := context.Background()
	rentRepo := newFakeRentRepo()
	svc := NewRentSchedulerService(newFakeContractRepo(), rentRepo)

	contractID := uuid.New()
	// A period anchored on the 31st must land on Feb 29 in a leap year
	// instead of spilling into March.
	seedRent(t, rentRepo, contractID, day(2024, time.January, 31), day(2024, time.February, 29), "750.00")

	created, err := svc.AdvancePeriods(ctx, day(2024, time.March, 1))
	require.NoError(t, err)
	require.Equal(t, 1, created)

	var next *models.Rent
	for _, rent := range rentRepo.byContract(contractID) {
		if rent.PeriodStart.Equal(day(2024, time.February, 29)) {
			next = rent
		}
	}
	require.NotNil(t, next)
	require.Equal(t, day(2024, time.March, 28), *next.PeriodEnd)
}

func TestAdvancePeriodsCarriesAmountNotLiveRate(t *testing.T) {
	ctx := context.Background()
	rentRepo := newFakeRentRepo()
	contractRepo := newFakeContractRepo()
	svc := NewRentSchedulerService(contractRepo, rentRepo)

	contract := &models.Contract{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		TenantID:   uuid.New(),
		RentAmount: dec(t, "900.00"), // live rate since raised
		IsActive:   true,
	}
	require.NoError(t, contractRepo.Create(ctx, contract))
	seedRent(t, rentRepo, contract.ID, day(2024, time.January, 1), day(2024, time.January, 31), "500.00")

	created, err := svc.AdvancePeriods(ctx, day(2024, time.February, 1))
	require.NoError(t, err)
	require.Equal(t, 1, created)

	for _, rent := range rentRepo.byContract(contract.ID) {
		if rent.PeriodStart.Equal(day(2024, time.February, 1)) {
			require.True(t, rent.Amount.Equal(dec(t, "500.00")))
		}
	}
}

func TestGenerateForMonthUsesCalendarBoundsAndLiveRate(t *testing.T) {
	ctx := context.Background()
	rentRepo := newFakeRentRepo()
	contractRepo := newFakeContractRepo()
	svc := NewRentSchedulerService(contractRepo, rentRepo)

	contract := &models.Contract{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		TenantID:   uuid.New(),
		RentAmount: dec(t, "650.00"),
		IsActive:   true,
	}
	require.NoError(t, contractRepo.Create(ctx, contract))

	archived := &models.Contract{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		TenantID:   uuid.New(),
		RentAmount: dec(t, "400.00"),
		IsActive:   false,
	}
	require.NoError(t, contractRepo.Create(ctx, archived))

	created, err := svc.GenerateForMonth(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Equal(t, 1, created)

	rents := rentRepo.byContract(contract.ID)
	require.Len(t, rents, 1)
	rent := rents[0]
	require.Equal(t, day(2024, time.March, 1), rent.PeriodStart)
	require.Equal(t, day(2024, time.March, 31), *rent.PeriodEnd)
	require.Equal(t, day(2024, time.March, 5), rent.DueDate)
	require.True(t, rent.Amount.Equal(dec(t, "650.00")))
	require.Equal(t, models.RentStatusUnpaid, rent.Status)

	require.Empty(t, rentRepo.byContract(archived.ID))
}

func TestGenerateForMonthSkipsExistingPeriods(t *testing.T) {
	ctx := context.Background()
	rentRepo := newFakeRentRepo()
	contractRepo := newFakeContractRepo()
	svc := NewRentSchedulerService(contractRepo, rentRepo)

	contract := &models.Contract{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		TenantID:   uuid.New(),
		RentAmount: dec(t, "650.00"),
		IsActive:   true,
	}
	require.NoError(t, contractRepo.Create(ctx, contract))

	created, err := svc.GenerateForMonth(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Equal(t, 1, created)

	created, err = svc.GenerateForMonth(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Equal(t, 0, created)
	require.Len(t, rentRepo.byContract(contract.ID), 1)
}

func TestCreateRentManualPath(t *testing.T) {
	ctx := context.Background()
	rentRepo := newFakeRentRepo()
	contractRepo := newFakeContractRepo()
	svc := NewRentSchedulerService(contractRepo, rentRepo)

	contract := &models.Contract{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		TenantID:   uuid.New(),
		RentAmount: dec(t, "650.00"),
		IsActive:   true,
	}
	require.NoError(t, contractRepo.Create(ctx, contract))

	// Defaults to the live contract rate when no amount is given.
	rent, err := svc.CreateRent(ctx, contract.ID, day(2024, time.April, 1), utils.Ptr(day(2024, time.April, 30)), day(2024, time.April, 5), nil)
	require.NoError(t, err)
	require.True(t, rent.Amount.Equal(dec(t, "650.00")))
	require.Equal(t, models.RentStatusUnpaid, rent.Status)

	// Second rent for the same period is rejected.
	_, err = svc.CreateRent(ctx, contract.ID, day(2024, time.April, 1), utils.Ptr(day(2024, time.April, 30)), day(2024, time.April, 5), nil)
	require.ErrorIs(t, err, utils.ErrDuplicateRentPeriod)

	// Inverted period.
	_, err = svc.CreateRent(ctx, contract.ID, day(2024, time.May, 10), utils.Ptr(day(2024, time.May, 1)), day(2024, time.May, 5), nil)
	require.ErrorIs(t, err, utils.ErrInvalidPeriod)

	// Unknown contract.
	_, err = svc.CreateRent(ctx, uuid.New(), day(2024, time.June, 1), nil, day(2024, time.June, 5), nil)
	require.ErrorIs(t, err, utils.ErrContractNotFound)
}
