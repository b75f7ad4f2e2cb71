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

// In-memory repository fakes. They reproduce the same contracts as the
// Postgres implementations, including the unique (contract, period_start)
// guard in fakeRentRepo.CreateIfNotExists.

type fakeRentRepo struct {
	rents map[uuid.UUID]*models.Rent
}

func newFakeRentRepo() *fakeRentRepo {
	return &fakeRentRepo{rents: map[uuid.UUID]*models.Rent{}}
}

func (r *fakeRentRepo) Create(_ context.Context, rent *models.Rent) error {
	cp := *rent
	r.rents[rent.ID] = &cp
	return nil
}

func (r *fakeRentRepo) CreateIfNotExists(ctx context.Context, rent *models.Rent) (bool, error) {
	for _, existing := range r.rents {
		if existing.ContractID == rent.ContractID && existing.PeriodStart.Equal(rent.PeriodStart) {
			return false, nil
		}
	}
	return true, r.Create(ctx, rent)
}

func (r *fakeRentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Rent, error) {
	rent, ok := r.rents[id]
	if !ok {
		return nil, nil
	}
	cp := *rent
	return &cp, nil
}

func (r *fakeRentRepo) List(_ context.Context, f repositories.RentFilter) ([]*models.Rent, error) {
	var out []*models.Rent
	for _, rent := range r.rents {
		if f.Status != nil && rent.Status != *f.Status {
			continue
		}
		if f.ContractID != nil && rent.ContractID != *f.ContractID {
			continue
		}
		cp := *rent
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRentRepo) ListBounded(_ context.Context) ([]*models.Rent, error) {
	var out []*models.Rent
	for _, rent := range r.rents {
		if rent.PeriodEnd == nil {
			continue
		}
		cp := *rent
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRentRepo) ExistsByContractAndPeriod(_ context.Context, contractID uuid.UUID, periodStart time.Time) (bool, error) {
	for _, rent := range r.rents {
		if rent.ContractID == contractID && rent.PeriodStart.Equal(periodStart) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.RentStatusType) error {
	rent, ok := r.rents[id]
	if !ok {
		return utils.ErrRentNotFound
	}
	rent.Status = status
	return nil
}

func (r *fakeRentRepo) byContract(contractID uuid.UUID) []*models.Rent {
	var out []*models.Rent
	for _, rent := range r.rents {
		if rent.ContractID == contractID {
			out = append(out, rent)
		}
	}
	return out
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID]*models.Payment{}}
}

func (r *fakePaymentRepo) Create(_ context.Context, p *models.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) List(_ context.Context, f repositories.PaymentFilter) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range r.payments {
		if f.RentID != nil && p.RentID != *f.RentID {
			continue
		}
		if f.Method != nil && p.Method != *f.Method {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, p *models.Payment) error {
	if _, ok := r.payments[p.ID]; !ok {
		return utils.ErrPaymentNotFound
	}
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) SumByRent(_ context.Context, rentID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.payments {
		if p.RentID == rentID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

type fakeContractRepo struct {
	contracts map[uuid.UUID]*models.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: map[uuid.UUID]*models.Contract{}}
}

func (r *fakeContractRepo) Create(_ context.Context, c *models.Contract) error {
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContractRepo) List(_ context.Context, f repositories.ContractFilter) ([]*models.Contract, error) {
	var out []*models.Contract
	for _, c := range r.contracts {
		if f.IsActive != nil && c.IsActive != *f.IsActive {
			continue
		}
		if f.ApartmentID != nil && c.ApartmentID != *f.ApartmentID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeContractRepo) ListActive(_ context.Context) ([]*models.Contract, error) {
	active := true
	return r.List(context.Background(), repositories.ContractFilter{IsActive: &active})
}

func (r *fakeContractRepo) Archive(_ context.Context, id uuid.UUID) error {
	c, ok := r.contracts[id]
	if !ok {
		return utils.ErrContractNotFound
	}
	if c.ArchivedAt == nil {
		now := time.Now().UTC()
		c.IsActive = false
		c.ArchivedAt = &now
	}
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return utils.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return utils.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

type fakeGalleryRepo struct {
	galleries map[uuid.UUID]*models.Gallery
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{galleries: map[uuid.UUID]*models.Gallery{}}
}

func (r *fakeGalleryRepo) Create(_ context.Context, g *models.Gallery) error {
	cp := *g
	r.galleries[g.ID] = &cp
	return nil
}

func (r *fakeGalleryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Gallery, error) {
	g, ok := r.galleries[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGalleryRepo) List(_ context.Context) ([]*models.Gallery, error) {
	var out []*models.Gallery
	for _, g := range r.galleries {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeGalleryRepo) Update(_ context.Context, g *models.Gallery) error {
	if _, ok := r.galleries[g.ID]; !ok {
		return utils.ErrGalleryNotFound
	}
	cp := *g
	r.galleries[g.ID] = &cp
	return nil
}

func (r *fakeGalleryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.galleries, id)
	return nil
}

type fakeGalleryManagerRepo struct {
	managers map[uuid.UUID]*models.GalleryManager
}

func newFakeGalleryManagerRepo() *fakeGalleryManagerRepo {
	return &fakeGalleryManagerRepo{managers: map[uuid.UUID]*models.GalleryManager{}}
}

func (r *fakeGalleryManagerRepo) Create(_ context.Context, m *models.GalleryManager) error {
	cp := *m
	r.managers[m.ID] = &cp
	return nil
}

func (r *fakeGalleryManagerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.GalleryManager, error) {
	m, ok := r.managers[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeGalleryManagerRepo) ListByGallery(_ context.Context, galleryID uuid.UUID) ([]*models.GalleryManager, error) {
	var out []*models.GalleryManager
	for _, m := range r.managers {
		if m.GalleryID == galleryID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeGalleryManagerRepo) Update(_ context.Context, m *models.GalleryManager) error {
	if _, ok := r.managers[m.ID]; !ok {
		return utils.ErrGalleryNotFound
	}
	cp := *m
	r.managers[m.ID] = &cp
	return nil
}

func (r *fakeGalleryManagerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.managers, id)
	return nil
}

type fakeApartmentRepo struct {
	apartments map[uuid.UUID]*models.Apartment
}

func newFakeApartmentRepo() *fakeApartmentRepo {
	return &fakeApartmentRepo{apartments: map[uuid.UUID]*models.Apartment{}}
}

func (r *fakeApartmentRepo) Create(_ context.Context, a *models.Apartment) error {
	cp := *a
	r.apartments[a.ID] = &cp
	return nil
}

func (r *fakeApartmentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Apartment, error) {
	a, ok := r.apartments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApartmentRepo) List(_ context.Context, f repositories.ApartmentFilter) ([]*models.Apartment, error) {
	var out []*models.Apartment
	for _, a := range r.apartments {
		if f.GalleryID != nil && a.GalleryID != *f.GalleryID {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeApartmentRepo) Update(_ context.Context, a *models.Apartment) error {
	if _, ok := r.apartments[a.ID]; !ok {
		return utils.ErrApartmentNotFound
	}
	cp := *a
	r.apartments[a.ID] = &cp
	return nil
}

func (r *fakeApartmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.apartments, id)
	return nil
}
