package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
)

type PaymentFilter struct {
	RentID *uuid.UUID
	Method *models.PaymentMethodType
}

// PaymentRepository is append-only: there is no Delete. Payments are
// permanent financial audit records.
type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context, f PaymentFilter) ([]*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
	SumByRent(ctx context.Context, rentID uuid.UUID) (decimal.Decimal, error)
}

type paymentRepo struct {
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func baseSelectPayment() string {
	return `
        SELECT id, rent_id, amount, date, method, reference, note, created_at
        FROM payments
    `
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID,
		&p.RentID,
		&p.Amount,
		&p.Date,
		&p.Method,
		&p.Reference,
		&p.Note,
		&p.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO payments (id, rent_id, amount, date, method, reference, note, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
    `, p.ID, p.RentID, p.Amount, p.Date, p.Method, p.Reference, p.Note)
	return err
}

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	row := r.db.QueryRow(ctx, baseSelectPayment()+" WHERE id=$1", id)
	return scanPayment(row)
}

func (r *paymentRepo) List(ctx context.Context, f PaymentFilter) ([]*models.Payment, error) {
	q := baseSelectPayment() + " WHERE 1=1"
	args := []interface{}{}
	if f.RentID != nil {
		args = append(args, *f.RentID)
		q += fmt.Sprintf(" AND rent_id=$%d", len(args))
	}
	if f.Method != nil {
		args = append(args, *f.Method)
		q += fmt.Sprintf(" AND method=$%d", len(args))
	}
	q += " ORDER BY date, created_at"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *paymentRepo) Update(ctx context.Context, p *models.Payment) error {
	_, err := r.db.Exec(ctx, `
        UPDATE payments SET amount=$1, date=$2, method=$3, reference=$4, note=$5
        WHERE id=$6
    `, p.Amount, p.Date, p.Method, p.Reference, p.Note, p.ID)
	return err
}

// SumByRent computes total_paid for a rent. COALESCE keeps a rent with no
// payments at 0 instead of NULL.
func (r *paymentRepo) SumByRent(ctx context.Context, rentID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, `
        SELECT COALESCE(SUM(amount), 0) FROM payments WHERE rent_id=$1
    `, rentID).Scan(&sum)
	return sum, err
}
