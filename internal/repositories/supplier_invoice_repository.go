package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
)

type SupplierInvoiceFilter struct {
	Provider  *models.ProviderType
	Status    *models.InvoiceStatusType
	GalleryID *uuid.UUID
}

type SupplierInvoiceRepository interface {
	Create(ctx context.Context, inv *models.SupplierInvoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SupplierInvoice, error)
	List(ctx context.Context, f SupplierInvoiceFilter) ([]*models.SupplierInvoice, error)
	Update(ctx context.Context, inv *models.SupplierInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierInvoiceRepo struct {
	db DB
}

func NewSupplierInvoiceRepository(db DB) SupplierInvoiceRepository {
	return &supplierInvoiceRepo{db: db}
}

func baseSelectInvoice() string {
	return `
        SELECT id, gallery_id, apartment_id, provider, reference, amount,
               issue_date, due_date, status, description, created_at
        FROM supplier_invoices
    `
}

func scanInvoice(row pgx.Row) (*models.SupplierInvoice, error) {
	var inv models.SupplierInvoice
	err := row.Scan(
		&inv.ID,
		&inv.GalleryID,
		&inv.ApartmentID,
		&inv.Provider,
		&inv.Reference,
		&inv.Amount,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.Status,
		&inv.Description,
		&inv.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *supplierInvoiceRepo) Create(ctx context.Context, inv *models.SupplierInvoice) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO supplier_invoices (
            id, gallery_id, apartment_id, provider, reference, amount,
            issue_date, due_date, status, description, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW())
    `,
		inv.ID, inv.GalleryID, inv.ApartmentID, inv.Provider, inv.Reference,
		inv.Amount, inv.IssueDate, inv.DueDate, inv.Status, inv.Description,
	)
	return err
}

func (r *supplierInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SupplierInvoice, error) {
	row := r.db.QueryRow(ctx, baseSelectInvoice()+" WHERE id=$1", id)
	return scanInvoice(row)
}

func (r *supplierInvoiceRepo) List(ctx context.Context, f SupplierInvoiceFilter) ([]*models.SupplierInvoice, error) {
	q := baseSelectInvoice() + " WHERE 1=1"
	args := []interface{}{}
	if f.Provider != nil {
		args = append(args, *f.Provider)
		q += fmt.Sprintf(" AND provider=$%d", len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		q += fmt.Sprintf(" AND status=$%d", len(args))
	}
	if f.GalleryID != nil {
		args = append(args, *f.GalleryID)
		q += fmt.Sprintf(" AND gallery_id=$%d", len(args))
	}
	q += " ORDER BY issue_date"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.SupplierInvoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *supplierInvoiceRepo) Update(ctx context.Context, inv *models.SupplierInvoice) error {
	_, err := r.db.Exec(ctx, `
        UPDATE supplier_invoices SET
            gallery_id=$1, apartment_id=$2, provider=$3, reference=$4,
            amount=$5, issue_date=$6, due_date=$7, status=$8, description=$9
        WHERE id=$10
    `,
		inv.GalleryID, inv.ApartmentID, inv.Provider, inv.Reference,
		inv.Amount, inv.IssueDate, inv.DueDate, inv.Status, inv.Description,
		inv.ID,
	)
	return err
}

func (r *supplierInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM supplier_invoices WHERE id=$1`, id)
	return err
}
