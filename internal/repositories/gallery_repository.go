package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
)

type GalleryRepository interface {
	Create(ctx context.Context, g *models.Gallery) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Gallery, error)
	List(ctx context.Context) ([]*models.Gallery, error)
	Update(ctx context.Context, g *models.Gallery) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepo struct {
	db DB
}

func NewGalleryRepository(db DB) GalleryRepository {
	return &galleryRepo{db: db}
}

func baseSelectGallery() string {
	return `
        SELECT id, owner_id, name, address, manager_name, contact_info, created_at
        FROM galleries
    `
}

func scanGallery(row pgx.Row) (*models.Gallery, error) {
	var g models.Gallery
	err := row.Scan(
		&g.ID,
		&g.OwnerID,
		&g.Name,
		&g.Address,
		&g.ManagerName,
		&g.ContactInfo,
		&g.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *galleryRepo) Create(ctx context.Context, g *models.Gallery) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO galleries (id, owner_id, name, address, manager_name, contact_info, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,NOW())
    `, g.ID, g.OwnerID, g.Name, g.Address, g.ManagerName, g.ContactInfo)
	return err
}

func (r *galleryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Gallery, error) {
	row := r.db.QueryRow(ctx, baseSelectGallery()+" WHERE id=$1", id)
	return scanGallery(row)
}

func (r *galleryRepo) List(ctx context.Context) ([]*models.Gallery, error) {
	rows, err := r.db.Query(ctx, baseSelectGallery()+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Gallery
	for rows.Next() {
		g, err := scanGallery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *galleryRepo) Update(ctx context.Context, g *models.Gallery) error {
	_, err := r.db.Exec(ctx, `
        UPDATE galleries SET name=$1, address=$2, manager_name=$3, contact_info=$4
        WHERE id=$5
    `, g.Name, g.Address, g.ManagerName, g.ContactInfo, g.ID)
	return err
}

func (r *galleryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM galleries WHERE id=$1`, id)
	return err
}
