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

type InvoicesController struct {
	invoiceService *services.InvoiceService
}

func NewInvoicesController(invoiceService *services.InvoiceService) *InvoicesController {
	return &InvoicesController{invoiceService: invoiceService}
}

// GET /api/v1/invoices?provider=&status=&gallery=
func (c *InvoicesController) ListInvoicesHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var f repositories.SupplierInvoiceFilter
	if s := r.URL.Query().Get("provider"); s != "" {
		provider := models.ProviderType(s)
		f.Provider = &provider
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := models.InvoiceStatusType(s)
		f.Status = &status
	}
	if s := r.URL.Query().Get("gallery"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid gallery filter", nil, err)
			return
		}
		f.GalleryID = &id
	}

	invoices, err := c.invoiceService.ListInvoices(r.Context(), f)
	if err != nil {
		respondServiceError(w, err, "Failed to list invoices")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, invoices)
}

// GET /api/v1/invoices/{id}
func (c *InvoicesController) GetInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid invoice id", nil, err)
		return
	}
	inv, err := c.invoiceService.GetInvoice(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to get invoice")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inv)
}

// POST /api/v1/invoices
func (c *InvoicesController) CreateInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var req dtos.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	inv, err := c.invoiceService.CreateInvoice(r.Context(), invoiceInputFromRequest(req))
	if err != nil {
		respondServiceError(w, err, "Failed to create invoice")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, inv)
}

// PUT /api/v1/invoices/{id}
func (c *InvoicesController) UpdateInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid invoice id", nil, err)
		return
	}

	var req dtos.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	inv, err := c.invoiceService.UpdateInvoice(r.Context(), id, invoiceInputFromRequest(req))
	if err != nil {
		respondServiceError(w, err, "Failed to update invoice")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inv)
}

// DELETE /api/v1/invoices/{id}
func (c *InvoicesController) DeleteInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid invoice id", nil, err)
		return
	}
	if err := c.invoiceService.DeleteInvoice(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete invoice")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func invoiceInputFromRequest(req dtos.CreateInvoiceRequest) services.InvoiceInput {
	return services.InvoiceInput{
		GalleryID:   req.GalleryID,
		ApartmentID: req.ApartmentID,
		Provider:    models.ProviderType(req.Provider),
		Reference:   req.Reference,
		Amount:      req.Amount,
		IssueDate:   parseDate(req.IssueDate),
		DueDate:     parseDatePtr(req.DueDate),
		Status:      models.InvoiceStatusType(req.Status),
		Description: req.Description,
	}
}
