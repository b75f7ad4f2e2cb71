package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
)

type ContractFilter struct {
	IsActive    *bool
	ApartmentID *uuid.UUID
}

type ContractRepository interface {
	Create(ctx context.Context, c *models.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	List(ctx context.Context, f ContractFilter) ([]*models.Contract, error)
	ListActive(ctx context.Context) ([]*models.Contract, error)
	Archive(ctx context.Context, id uuid.UUID) error
}

type contractRepo struct {
	db DB
}

func NewContractRepository(db DB) ContractRepository {
	return &contractRepo{db: db}
}

func baseSelectContract() string {
	return `
        SELECT id, owner_id, tenant_id, apartment_id, start_date, end_date,
               rent_amount, security_deposit, is_active, archived_at, created_at
        FROM contracts
    `
}

func scanContract(row pgx.Row) (*models.Contract, error) {
	var c models.Contract
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.TenantID,
		&c.ApartmentID,
		&c.StartDate,
		&c.EndDate,
		&c.RentAmount,
		&c.SecurityDeposit,
		&c.IsActive,
		&c.ArchivedAt,
		&c.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contractRepo) Create(ctx context.Context, c *models.Contract) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO contracts (
            id, owner_id, tenant_id, apartment_id, start_date, end_date,
            rent_amount, security_deposit, is_active, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
    `,
		c.ID, c.OwnerID, c.TenantID, c.ApartmentID, c.StartDate, c.EndDate,
		c.RentAmount, c.SecurityDeposit, c.IsActive,
	)
	return err
}

func (r *contractRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	row := r.db.QueryRow(ctx, baseSelectContract()+" WHERE id=$1", id)
	return scanContract(row)
}

func (r *contractRepo) List(ctx context.Context, f ContractFilter) ([]*models.Contract, error) {
	q := baseSelectContract() + " WHERE 1=1"
	args := []interface{}{}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		q += fmt.Sprintf(" AND is_active=$%d", len(args))
	}
	if f.ApartmentID != nil {
		args = append(args, *f.ApartmentID)
		q += fmt.Sprintf(" AND apartment_id=$%d", len(args))
	}
	q += " ORDER BY created_at"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *contractRepo) ListActive(ctx context.Context) ([]*models.Contract, error) {
	rows, err := r.db.Query(ctx, baseSelectContract()+" WHERE is_active=TRUE ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Archive soft-disables a contract. There is deliberately no Delete:
// contracts are never hard-deleted once rents reference them.
func (r *contractRepo) Archive(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        UPDATE contracts SET is_active=FALSE, archived_at=NOW()
        WHERE id=$1 AND archived_at IS NULL
    `, id)
	return err
}
