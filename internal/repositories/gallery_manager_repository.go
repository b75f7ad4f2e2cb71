package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
)

type GalleryManagerRepository interface {
	Create(ctx context.Context, m *models.GalleryManager) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GalleryManager, error)
	ListByGallery(ctx context.Context, galleryID uuid.UUID) ([]*models.GalleryManager, error)
	Update(ctx context.Context, m *models.GalleryManager) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryManagerRepo struct {
	db DB
}

func NewGalleryManagerRepository(db DB) GalleryManagerRepository {
	return &galleryManagerRepo{db: db}
}

func baseSelectGalleryManager() string {
	return `SELECT id, gallery_id, user_id, created_at FROM gallery_managers`
}

func scanGalleryManager(row pgx.Row) (*models.GalleryManager, error) {
	var m models.GalleryManager
	err := row.Scan(&m.ID, &m.GalleryID, &m.UserID, &m.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *galleryManagerRepo) Create(ctx context.Context, m *models.GalleryManager) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO gallery_managers (id, gallery_id, user_id, created_at)
        VALUES ($1,$2,$3,NOW())
    `, m.ID, m.GalleryID, m.UserID)
	return err
}

func (r *galleryManagerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.GalleryManager, error) {
	row := r.db.QueryRow(ctx, baseSelectGalleryManager()+" WHERE id=$1", id)
	return scanGalleryManager(row)
}

func (r *galleryManagerRepo) ListByGallery(ctx context.Context, galleryID uuid.UUID) ([]*models.GalleryManager, error) {
	rows, err := r.db.Query(ctx, baseSelectGalleryManager()+" WHERE gallery_id=$1 ORDER BY created_at", galleryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.GalleryManager
	for rows.Next() {
		m, err := scanGalleryManager(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *galleryManagerRepo) Update(ctx context.Context, m *models.GalleryManager) error {
	_, err := r.db.Exec(ctx, `UPDATE gallery_managers SET user_id=$1 WHERE id=$2`, m.UserID, m.ID)
	return err
}

func (r *galleryManagerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM gallery_managers WHERE id=$1`, id)
	return err
}
