package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
)

// ApartmentFilter narrows List the way the API exposes it
// (?gallery=&status=).
type ApartmentFilter struct {
	GalleryID *uuid.UUID
	Status    *models.ApartmentStatusType
}

type ApartmentRepository interface {
	Create(ctx context.Context, a *models.Apartment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Apartment, error)
	List(ctx context.Context, f ApartmentFilter) ([]*models.Apartment, error)
	Update(ctx context.Context, a *models.Apartment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type apartmentRepo struct {
	db DB
}

func NewApartmentRepository(db DB) ApartmentRepository {
	return &apartmentRepo{db: db}
}

func baseSelectApartment() string {
	return `
        SELECT id, gallery_id, number, type, floor, surface, standard_rent,
               status, created_at, updated_at
        FROM apartments
    `
}

func scanApartment(row pgx.Row) (*models.Apartment, error) {
	var a models.Apartment
	var surface decimal.NullDecimal
	err := row.Scan(
		&a.ID,
		&a.GalleryID,
		&a.Number,
		&a.Type,
		&a.Floor,
		&surface,
		&a.StandardRent,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if surface.Valid {
		a.Surface = &surface.Decimal
	}
	return &a, nil
}

func (r *apartmentRepo) Create(ctx context.Context, a *models.Apartment) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO apartments (
            id, gallery_id, number, type, floor, surface, standard_rent,
            status, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW(),NOW())
    `,
		a.ID, a.GalleryID, a.Number, a.Type, a.Floor, a.Surface,
		a.StandardRent, a.Status,
	)
	return err
}

func (r *apartmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Apartment, error) {
	row := r.db.QueryRow(ctx, baseSelectApartment()+" WHERE id=$1", id)
	return scanApartment(row)
}

func (r *apartmentRepo) List(ctx context.Context, f ApartmentFilter) ([]*models.Apartment, error) {
	q := baseSelectApartment() + " WHERE 1=1"
	args := []interface{}{}
	if f.GalleryID != nil {
		args = append(args, *f.GalleryID)
		q += fmt.Sprintf(" AND gallery_id=$%d", len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		q += fmt.Sprintf(" AND status=$%d", len(args))
	}
	q += " ORDER BY created_at"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *apartmentRepo) Update(ctx context.Context, a *models.Apartment) error {
	_, err := r.db.Exec(ctx, `
        UPDATE apartments SET
            number=$1, type=$2, floor=$3, surface=$4, standard_rent=$5,
            status=$6, updated_at=NOW()
        WHERE id=$7
    `, a.Number, a.Type, a.Floor, a.Surface, a.StandardRent, a.Status, a.ID)
	return err
}

func (r *apartmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM apartments WHERE id=$1`, id)
	return err
}
