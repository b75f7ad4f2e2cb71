package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
)

type TenantProfileRepository interface {
	Create(ctx context.Context, t *models.TenantProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TenantProfile, error)
	List(ctx context.Context) ([]*models.TenantProfile, error)
	Update(ctx context.Context, t *models.TenantProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tenantProfileRepo struct {
	db DB
}

func NewTenantProfileRepository(db DB) TenantProfileRepository {
	return &tenantProfileRepo{db: db}
}

func baseSelectTenantProfile() string {
	return `
        SELECT id, first_name, last_name, phone, email, id_card_number,
               emergency_contact, created_at
        FROM tenant_profiles
    `
}

func scanTenantProfile(row pgx.Row) (*models.TenantProfile, error) {
	var t models.TenantProfile
	err := row.Scan(
		&t.ID,
		&t.FirstName,
		&t.LastName,
		&t.Phone,
		&t.Email,
		&t.IDCardNumber,
		&t.EmergencyContact,
		&t.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tenantProfileRepo) Create(ctx context.Context, t *models.TenantProfile) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO tenant_profiles (
            id, first_name, last_name, phone, email, id_card_number,
            emergency_contact, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
    `, t.ID, t.FirstName, t.LastName, t.Phone, t.Email, t.IDCardNumber, t.EmergencyContact)
	return err
}

func (r *tenantProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.TenantProfile, error) {
	row := r.db.QueryRow(ctx, baseSelectTenantProfile()+" WHERE id=$1", id)
	return scanTenantProfile(row)
}

func (r *tenantProfileRepo) List(ctx context.Context) ([]*models.TenantProfile, error) {
	rows, err := r.db.Query(ctx, baseSelectTenantProfile()+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.TenantProfile
	for rows.Next() {
		t, err := scanTenantProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tenantProfileRepo) Update(ctx context.Context, t *models.TenantProfile) error {
	_, err := r.db.Exec(ctx, `
        UPDATE tenant_profiles SET
            first_name=$1, last_name=$2, phone=$3, email=$4,
            id_card_number=$5, emergency_contact=$6
        WHERE id=$7
    `, t.FirstName, t.LastName, t.Phone, t.Email, t.IDCardNumber, t.EmergencyContact, t.ID)
	return err
}

func (r *tenantProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tenant_profiles WHERE id=$1`, id)
	return err
}
