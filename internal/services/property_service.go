package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/policy"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/repositories"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

// PropertyService manages galleries, their apartments and manager
// assignments. Ownership-dependent rules (only a gallery's owner may touch
// its manager assignments or add apartments under it) are resolved through
// the policy evaluator after loading the gallery.
type PropertyService struct {
	galleryRepo repositories.GalleryRepository
	aptRepo     repositories.ApartmentRepository
	mgrRepo     repositories.GalleryManagerRepository
	evaluator   *policy.Evaluator
}

func NewPropertyService(
	galleryRepo repositories.GalleryRepository,
	aptRepo repositories.ApartmentRepository,
	mgrRepo repositories.GalleryManagerRepository,
	evaluator *policy.Evaluator,
) *PropertyService {
	return &PropertyService{
		galleryRepo: galleryRepo,
		aptRepo:     aptRepo,
		mgrRepo:     mgrRepo,
		evaluator:   evaluator,
	}
}

// ------------------------------------------------------------------
// Galleries
// ------------------------------------------------------------------

type GalleryInput struct {
	Name        string
	Address     string
	ManagerName *string
	ContactInfo *string
}

func (s *PropertyService) CreateGallery(ctx context.Context, actor policy.Actor, in GalleryInput) (*models.Gallery, error) {
	g := &models.Gallery{
		ID:          uuid.New(),
		OwnerID:     actor.ID,
		Name:        in.Name,
		Address:     in.Address,
		ManagerName: in.ManagerName,
		ContactInfo: in.ContactInfo,
	}
	if err := s.galleryRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *PropertyService) GetGallery(ctx context.Context, id uuid.UUID) (*models.Gallery, error) {
	g, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, utils.ErrGalleryNotFound
	}
	return g, nil
}

func (s *PropertyService) ListGalleries(ctx context.Context) ([]*models.Gallery, error) {
	return s.galleryRepo.List(ctx)
}

func (s *PropertyService) UpdateGallery(ctx context.Context, actor policy.Actor, id uuid.UUID, in GalleryInput) (*models.Gallery, error) {
	g, err := s.GetGallery(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.evaluator.CanPerform(actor, policy.ActionUpdate, policy.ResourceGallery, policy.Ref{OwnerID: g.OwnerID}); err != nil {
		return nil, err
	}
	g.Name = in.Name
	g.Address = in.Address
	g.ManagerName = in.ManagerName
	g.ContactInfo = in.ContactInfo
	if err := s.galleryRepo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *PropertyService) DeleteGallery(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	g, err := s.GetGallery(ctx, id)
	if err != nil {
		return err
	}
	if err := s.evaluator.CanPerform(actor, policy.ActionDelete, policy.ResourceGallery, policy.Ref{OwnerID: g.OwnerID}); err != nil {
		return err
	}
	return s.galleryRepo.Delete(ctx, id)
}

// ------------------------------------------------------------------
// Apartments
// ------------------------------------------------------------------

type ApartmentInput struct {
	GalleryID    uuid.UUID
	Number       string
	Type         string
	Floor        *string
	Surface      *decimal.Decimal
	StandardRent decimal.Decimal
	Status       models.ApartmentStatusType
}

// CreateApartment rejects the request when the target gallery does not
// belong to the acting owner.
func (s *PropertyService) CreateApartment(ctx context.Context, actor policy.Actor, in ApartmentInput) (*models.Apartment, error) {
	g, err := s.GetGallery(ctx, in.GalleryID)
	if err != nil {
		return nil, err
	}
	if err := s.evaluator.CanPerform(actor, policy.ActionCreate, policy.ResourceApartment, policy.Ref{OwnerID: g.OwnerID}); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.ApartmentStatusFree
	}
	a := &models.Apartment{
		ID:           uuid.New(),
		GalleryID:    in.GalleryID,
		Number:       in.Number,
		Type:         in.Type,
		Floor:        in.Floor,
		Surface:      in.Surface,
		StandardRent: in.StandardRent,
		Status:       status,
	}
	if err := s.aptRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *PropertyService) GetApartment(ctx context.Context, id uuid.UUID) (*models.Apartment, error) {
	a, err := s.aptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, utils.ErrApartmentNotFound
	}
	return a, nil
}

func (s *PropertyService) ListApartments(ctx context.Context, f repositories.ApartmentFilter) ([]*models.Apartment, error) {
	return s.aptRepo.List(ctx, f)
}

func (s *PropertyService) UpdateApartment(ctx context.Context, id uuid.UUID, in ApartmentInput) (*models.Apartment, error) {
	a, err := s.GetApartment(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Number = in.Number
	a.Type = in.Type
	a.Floor = in.Floor
	a.Surface = in.Surface
	a.StandardRent = in.StandardRent
	if in.Status != "" {
		a.Status = in.Status
	}
	if err := s.aptRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *PropertyService) DeleteApartment(ctx context.Context, id uuid.UUID) error {
	a, err := s.GetApartment(ctx, id)
	if err != nil {
		return err
	}
	return s.aptRepo.Delete(ctx, a.ID)
}

// ------------------------------------------------------------------
// Gallery manager assignments (gallery owner only, every action)
// ------------------------------------------------------------------

func (s *PropertyService) AssignManager(ctx context.Context, actor policy.Actor, galleryID, userID uuid.UUID) (*models.GalleryManager, error) {
	g, err := s.GetGallery(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	if err := s.evaluator.CanPerform(actor, policy.ActionCreate, policy.ResourceGalleryManager, policy.Ref{OwnerID: g.OwnerID}); err != nil {
		return nil, err
	}

	m := &models.GalleryManager{
		ID:        uuid.New(),
		GalleryID: galleryID,
		UserID:    userID,
	}
	if err := s.mgrRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *PropertyService) ListManagers(ctx context.Context, actor policy.Actor, galleryID uuid.UUID) ([]*models.GalleryManager, error) {
	g, err := s.GetGallery(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	if err := s.evaluator.CanPerform(actor, policy.ActionList, policy.ResourceGalleryManager, policy.Ref{OwnerID: g.OwnerID}); err != nil {
		return nil, err
	}
	return s.mgrRepo.ListByGallery(ctx, galleryID)
}

func (s *PropertyService) RemoveManager(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	m, err := s.mgrRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return utils.ErrGalleryNotFound
	}
	g, err := s.GetGallery(ctx, m.GalleryID)
	if err != nil {
		return err
	}
	if err := s.evaluator.CanPerform(actor, policy.ActionDelete, policy.ResourceGalleryManager, policy.Ref{OwnerID: g.OwnerID}); err != nil {
		return err
	}
	return s.mgrRepo.Delete(ctx, id)
}
