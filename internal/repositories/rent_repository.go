package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
)

type RentFilter struct {
	Status     *models.RentStatusType
	ContractID *uuid.UUID
}

type RentRepository interface {
	Create(ctx context.Context, rent *models.Rent) error
	// CreateIfNotExists inserts the rent unless one already exists for the
	// same (contract, period_start). Reports whether a row was inserted.
	CreateIfNotExists(ctx context.Context, rent *models.Rent) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rent, error)
	List(ctx context.Context, f RentFilter) ([]*models.Rent, error)
	// ListBounded returns all rents with a non-null period_end, the only
	// rents the roll-forward generator considers.
	ListBounded(ctx context.Context) ([]*models.Rent, error)
	ExistsByContractAndPeriod(ctx context.Context, contractID uuid.UUID, periodStart time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.RentStatusType) error
}

type rentRepo struct {
	db DB
}

func NewRentRepository(db DB) RentRepository {
	return &rentRepo{db: db}
}

func baseSelectRent() string {
	return `
        SELECT id, contract_id, period_start, period_end, due_date, amount,
               status, created_at
        FROM rents
    `
}

func scanRent(row pgx.Row) (*models.Rent, error) {
	var rent models.Rent
	err := row.Scan(
		&rent.ID,
		&rent.ContractID,
		&rent.PeriodStart,
		&rent.PeriodEnd,
		&rent.DueDate,
		&rent.Amount,
		&rent.Status,
		&rent.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rent, nil
}

func (r *rentRepo) Create(ctx context.Context, rent *models.Rent) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO rents (
            id, contract_id, period_start, period_end, due_date, amount,
            status, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
    `,
		rent.ID, rent.ContractID, rent.PeriodStart, rent.PeriodEnd,
		rent.DueDate, rent.Amount, rent.Status,
	)
	return err
}

// CreateIfNotExists relies on the unique constraint on
// (contract_id, period_start): the single INSERT ... ON CONFLICT DO NOTHING
// statement is the race-proof duplicate-period guard, safe under concurrent
// generator invocations.
func (r *rentRepo) CreateIfNotExists(ctx context.Context, rent *models.Rent) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO rents (
            id, contract_id, period_start, period_end, due_date, amount,
            status, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
        ON CONFLICT (contract_id, period_start) DO NOTHING
    `,
		rent.ID, rent.ContractID, rent.PeriodStart, rent.PeriodEnd,
		rent.DueDate, rent.Amount, rent.Status,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *rentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Rent, error) {
	row := r.db.QueryRow(ctx, baseSelectRent()+" WHERE id=$1", id)
	return scanRent(row)
}

func (r *rentRepo) List(ctx context.Context, f RentFilter) ([]*models.Rent, error) {
	q := baseSelectRent() + " WHERE 1=1"
	args := []interface{}{}
	if f.Status != nil {
		args = append(args, *f.Status)
		q += fmt.Sprintf(" AND status=$%d", len(args))
	}
	if f.ContractID != nil {
		args = append(args, *f.ContractID)
		q += fmt.Sprintf(" AND contract_id=$%d", len(args))
	}
	q += " ORDER BY period_start"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Rent
	for rows.Next() {
		rent, err := scanRent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rent)
	}
	return out, rows.Err()
}

func (r *rentRepo) ListBounded(ctx context.Context) ([]*models.Rent, error) {
	rows, err := r.db.Query(ctx, baseSelectRent()+" WHERE period_end IS NOT NULL ORDER BY contract_id, period_start")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Rent
	for rows.Next() {
		rent, err := scanRent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rent)
	}
	return out, rows.Err()
}

func (r *rentRepo) ExistsByContractAndPeriod(ctx context.Context, contractID uuid.UUID, periodStart time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM rents WHERE contract_id=$1 AND period_start=$2)
    `, contractID, periodStart).Scan(&exists)
	return exists, err
}

func (r *rentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.RentStatusType) error {
	_, err := r.db.Exec(ctx, `UPDATE rents SET status=$1 WHERE id=$2`, status, id)
	return err
}
