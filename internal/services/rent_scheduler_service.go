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

// RentSchedulerService owns rent-period generation: the automatic monthly
// roll-forward driven by cron or the cron HTTP trigger, the explicit
// per-month generation endpoint, and manual rent creation. All three paths
// share the same duplicate-period guard: the unique constraint on
// (contract_id, period_start) behind RentRepository.CreateIfNotExists.
type RentSchedulerService struct {
	contractRepo repositories.ContractRepository
	rentRepo     repositories.RentRepository
}

func NewRentSchedulerService(
	contractRepo repositories.ContractRepository,
	rentRepo repositories.RentRepository,
) *RentSchedulerService {
	return &RentSchedulerService{
		contractRepo: contractRepo,
		rentRepo:     rentRepo,
	}
}

// AdvancePeriods rolls every fully elapsed rent period forward by one
// calendar month and returns how many rents were created.
//
// A rent qualifies when its period_end is set and lies strictly before
// referenceDate. The successor carries the source rent's amount unchanged
// (it does not re-read the live contract rate), starts one calendar month
// after the source period, is due on its first day, and is always UNPAID.
// Rents with a nil period_end never advance.
//
// The call is idempotent: re-running on the same date finds the successor
// already present and skips it. Failures on one rent are logged and the
// batch continues.
func (s *RentSchedulerService) AdvancePeriods(ctx context.Context, referenceDate time.Time) (int, error) {
	refDate := utils.DateOnly(referenceDate)

	rents, err := s.rentRepo.ListBounded(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, rent := range rents {
		if rent.PeriodEnd == nil {
			continue
		}
		// Current period must have fully elapsed.
		if !refDate.After(utils.DateOnly(*rent.PeriodEnd)) {
			continue
		}

		nextStart := utils.AddCalendarMonths(utils.DateOnly(rent.PeriodStart), 1)
		nextEnd := utils.AddCalendarMonths(nextStart, 1).AddDate(0, 0, -1)

		exists, err := s.rentRepo.ExistsByContractAndPeriod(ctx, rent.ContractID, nextStart)
		if err != nil {
			utils.Logger.WithError(err).Errorf("Failed duplicate check for contract=%s period=%s", rent.ContractID, nextStart.Format("2006-01-02"))
			continue
		}
		if exists {
			continue
		}

		next := &models.Rent{
			ID:          uuid.New(),
			ContractID:  rent.ContractID,
			PeriodStart: nextStart,
			PeriodEnd:   &nextEnd,
			DueDate:     nextStart,
			Amount:      rent.Amount,
			Status:      models.RentStatusUnpaid,
		}
		inserted, err := s.rentRepo.CreateIfNotExists(ctx, next)
		if err != nil {
			utils.Logger.WithError(err).Errorf("Failed to roll rent forward for contract=%s", rent.ContractID)
			continue
		}
		// A lost insert means a concurrent run won the unique-constraint
		// race for this period; skipping is the intended recovery.
		if inserted {
			created++
		}
	}

	utils.Logger.Infof("Rent roll-forward done: %d period(s) created for reference date %s", created, refDate.Format("2006-01-02"))
	return created, nil
}

// GenerateForMonth creates one rent per active contract for the requested
// month: period from the 1st to the last day, due on the 5th, amount read
// from the live contract rate. Contracts that already have a rent for that
// period are skipped.
func (s *RentSchedulerService) GenerateForMonth(ctx context.Context, year int, month time.Month) (int, error) {
	if month < time.January || month > time.December {
		return 0, utils.ErrInvalidPeriod
	}

	contracts, err := s.contractRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	periodStart, periodEnd := utils.MonthBounds(year, month)
	dueDate := time.Date(year, month, 5, 0, 0, 0, 0, time.UTC)

	created := 0
	for _, c := range contracts {
		rent := &models.Rent{
			ID:          uuid.New(),
			ContractID:  c.ID,
			PeriodStart: periodStart,
			PeriodEnd:   &periodEnd,
			DueDate:     dueDate,
			Amount:      c.RentAmount,
			Status:      models.RentStatusUnpaid,
		}
		inserted, err := s.rentRepo.CreateIfNotExists(ctx, rent)
		if err != nil {
			utils.Logger.WithError(err).Errorf("Failed to generate %d-%02d rent for contract=%s", year, month, c.ID)
			continue
		}
		if inserted {
			created++
		}
	}

	utils.Logger.Infof("Generated %d rent(s) for %d-%02d", created, year, month)
	return created, nil
}

// CreateRent is the manual creation path. The client never sets the status:
// a new rent is always UNPAID. When no amount is given the live contract
// rate applies.
func (s *RentSchedulerService) CreateRent(
	ctx context.Context,
	contractID uuid.UUID,
	periodStart time.Time,
	periodEnd *time.Time,
	dueDate time.Time,
	amount *decimal.Decimal,
) (*models.Rent, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, utils.ErrContractNotFound
	}
	if periodEnd != nil && periodEnd.Before(periodStart) {
		return nil, utils.ErrInvalidPeriod
	}

	rentAmount := contract.RentAmount
	if amount != nil {
		rentAmount = *amount
	}

	rent := &models.Rent{
		ID:          uuid.New(),
		ContractID:  contractID,
		PeriodStart: utils.DateOnly(periodStart),
		DueDate:     utils.DateOnly(dueDate),
		Amount:      rentAmount,
		Status:      models.RentStatusUnpaid,
	}
	if periodEnd != nil {
		end := utils.DateOnly(*periodEnd)
		rent.PeriodEnd = &end
	}

	inserted, err := s.rentRepo.CreateIfNotExists(ctx, rent)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, utils.ErrDuplicateRentPeriod
	}
	return rent, nil
}
