package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/dtos"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/repositories"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/services"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

type PropertiesController struct {
	propertyService *services.PropertyService
}

func NewPropertiesController(propertyService *services.PropertyService) *PropertiesController {
	return &PropertiesController{propertyService: propertyService}
}

// ------------------------------------------------------------------
// Galleries
// ------------------------------------------------------------------

// GET /api/v1/galleries
func (c *PropertiesController) ListGalleriesHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	galleries, err := c.propertyService.ListGalleries(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to list galleries")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, galleries)
}

// GET /api/v1/galleries/{id}
func (c *PropertiesController) GetGalleryHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid gallery id", nil, err)
		return
	}
	g, err := c.propertyService.GetGallery(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to get gallery")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, g)
}

// POST /api/v1/galleries
func (c *PropertiesController) CreateGalleryHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req dtos.GalleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	g, err := c.propertyService.CreateGallery(r.Context(), actor, services.GalleryInput{
		Name:        req.Name,
		Address:     req.Address,
		ManagerName: req.ManagerName,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to create gallery")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, g)
}

// PUT /api/v1/galleries/{id}
func (c *PropertiesController) UpdateGalleryHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid gallery id", nil, err)
		return
	}

	var req dtos.GalleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	g, err := c.propertyService.UpdateGallery(r.Context(), actor, id, services.GalleryInput{
		Name:        req.Name,
		Address:     req.Address,
		ManagerName: req.ManagerName,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to update gallery")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, g)
}

// DELETE /api/v1/galleries/{id}
func (c *PropertiesController) DeleteGalleryHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid gallery id", nil, err)
		return
	}
	if err := c.propertyService.DeleteGallery(r.Context(), actor, id); err != nil {
		respondServiceError(w, err, "Failed to delete gallery")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------------------------------------------
// Apartments
// ------------------------------------------------------------------

// GET /api/v1/apartments?gallery=&status=
func (c *PropertiesController) ListApartmentsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var f repositories.ApartmentFilter
	if s := r.URL.Query().Get("gallery"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid gallery filter", nil, err)
			return
		}
		f.GalleryID = &id
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := models.ApartmentStatusType(s)
		f.Status = &status
	}

	apartments, err := c.propertyService.ListApartments(r.Context(), f)
	if err != nil {
		respondServiceError(w, err, "Failed to list apartments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, apartments)
}

// GET /api/v1/apartments/{id}
func (c *PropertiesController) GetApartmentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid apartment id", nil, err)
		return
	}
	a, err := c.propertyService.GetApartment(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to get apartment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a)
}

// POST /api/v1/apartments
func (c *PropertiesController) CreateApartmentHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req dtos.ApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	a, err := c.propertyService.CreateApartment(r.Context(), actor, services.ApartmentInput{
		GalleryID:    req.GalleryID,
		Number:       req.Number,
		Type:         req.Type,
		Floor:        req.Floor,
		Surface:      req.Surface,
		StandardRent: req.StandardRent,
		Status:       models.ApartmentStatusType(req.Status),
	})
	if err != nil {
		respondServiceError(w, err, "Failed to create apartment")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, a)
}

// PUT /api/v1/apartments/{id}
func (c *PropertiesController) UpdateApartmentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid apartment id", nil, err)
		return
	}

	var req dtos.ApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	a, err := c.propertyService.UpdateApartment(r.Context(), id, services.ApartmentInput{
		GalleryID:    req.GalleryID,
		Number:       req.Number,
		Type:         req.Type,
		Floor:        req.Floor,
		Surface:      req.Surface,
		StandardRent: req.StandardRent,
		Status:       models.ApartmentStatusType(req.Status),
	})
	if err != nil {
		respondServiceError(w, err, "Failed to update apartment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a)
}

// DELETE /api/v1/apartments/{id}
func (c *PropertiesController) DeleteApartmentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid apartment id", nil, err)
		return
	}
	if err := c.propertyService.DeleteApartment(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete apartment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------------------------------------------
// Gallery manager assignments
// ------------------------------------------------------------------

// GET /api/v1/galleries/{id}/managers
func (c *PropertiesController) ListManagersHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	galleryID, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid gallery id", nil, err)
		return
	}
	managers, err := c.propertyService.ListManagers(r.Context(), actor, galleryID)
	if err != nil {
		respondServiceError(w, err, "Failed to list managers")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, managers)
}

// POST /api/v1/galleries/{id}/managers
func (c *PropertiesController) AssignManagerHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	galleryID, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid gallery id", nil, err)
		return
	}

	var req dtos.AssignManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	m, err := c.propertyService.AssignManager(r.Context(), actor, galleryID, req.UserID)
	if err != nil {
		respondServiceError(w, err, "Failed to assign manager")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, m)
}

// DELETE /api/v1/gallery-managers/{id}
func (c *PropertiesController) RemoveManagerHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	managerID, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid manager assignment id", nil, err)
		return
	}
	if err := c.propertyService.RemoveManager(r.Context(), actor, managerID); err != nil {
		respondServiceError(w, err, "Failed to remove manager")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
