package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/dtos"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/services"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

type TenantsController struct {
	tenantService *services.TenantService
}

func NewTenantsController(tenantService *services.TenantService) *TenantsController {
	return &TenantsController{tenantService: tenantService}
}

// GET /api/v1/tenants
func (c *TenantsController) ListTenantsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	tenants, err := c.tenantService.ListTenants(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to list tenants")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenants)
}

// GET /api/v1/tenants/{id}
func (c *TenantsController) GetTenantHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant id", nil, err)
		return
	}
	t, err := c.tenantService.GetTenant(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to get tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, t)
}

// POST /api/v1/tenants
func (c *TenantsController) CreateTenantHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var req dtos.TenantProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	t, err := c.tenantService.CreateTenant(r.Context(), services.TenantProfileInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Email:            req.Email,
		IDCardNumber:     req.IDCardNumber,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to create tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, t)
}

// PUT /api/v1/tenants/{id}
func (c *TenantsController) UpdateTenantHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant id", nil, err)
		return
	}

	var req dtos.TenantProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	t, err := c.tenantService.UpdateTenant(r.Context(), id, services.TenantProfileInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Email:            req.Email,
		IDCardNumber:     req.IDCardNumber,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to update tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, t)
}

// DELETE /api/v1/tenants/{id}
func (c *TenantsController) DeleteTenantHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant id", nil, err)
		return
	}
	if err := c.tenantService.DeleteTenant(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete tenant")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
