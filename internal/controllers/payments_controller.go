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

type PaymentsController struct {
	paymentService *services.PaymentService
	paymentRepo    repositories.PaymentRepository
}

func NewPaymentsController(
	paymentService *services.PaymentService,
	paymentRepo repositories.PaymentRepository,
) *PaymentsController {
	return &PaymentsController{
		paymentService: paymentService,
		paymentRepo:    paymentRepo,
	}
}

// GET /api/v1/payments?rent=&method=
func (c *PaymentsController) ListPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var f repositories.PaymentFilter
	if s := r.URL.Query().Get("rent"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid rent filter", nil, err)
			return
		}
		f.RentID = &id
	}
	if s := r.URL.Query().Get("method"); s != "" {
		method := models.PaymentMethodType(s)
		f.Method = &method
	}

	payments, err := c.paymentRepo.List(r.Context(), f)
	if err != nil {
		respondServiceError(w, err, "Failed to list payments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// POST /api/v1/payments
// Recording a payment reconciles the parent rent's status as a side
// effect.
func (c *PaymentsController) CreatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var req dtos.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	p, err := c.paymentService.RecordPayment(r.Context(), services.RecordPaymentInput{
		RentID:    req.RentID,
		Amount:    req.Amount,
		Date:      parseDate(req.Date),
		Method:    models.PaymentMethodType(req.Method),
		Reference: req.Reference,
		Note:      req.Note,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to record payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// PUT /api/v1/payments/{id}
func (c *PaymentsController) UpdatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payment id", nil, err)
		return
	}

	var req dtos.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	in := services.UpdatePaymentInput{
		Amount:    req.Amount,
		Date:      parseDatePtr(req.Date),
		Reference: req.Reference,
		Note:      req.Note,
	}
	if req.Method != nil {
		method := models.PaymentMethodType(*req.Method)
		in.Method = &method
	}

	p, err := c.paymentService.UpdatePayment(r.Context(), id, in)
	if err != nil {
		respondServiceError(w, err, "Failed to update payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// DELETE /api/v1/payments/{id}
// Always rejected: payments are permanent financial audit records.
func (c *PaymentsController) DeletePaymentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payment id", nil, err)
		return
	}
	respondServiceError(w, c.paymentService.DeletePayment(r.Context(), id), "")
}
