package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/dtos"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/repositories"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/services"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

type RentsController struct {
	scheduler      *services.RentSchedulerService
	paymentService *services.PaymentService
	rentRepo       repositories.RentRepository
}

func NewRentsController(
	scheduler *services.RentSchedulerService,
	paymentService *services.PaymentService,
	rentRepo repositories.RentRepository,
) *RentsController {
	return &RentsController{
		scheduler:      scheduler,
		paymentService: paymentService,
		rentRepo:       rentRepo,
	}
}

// GET /api/v1/rents?status=&contract=
func (c *RentsController) ListRentsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var f repositories.RentFilter
	if s := r.URL.Query().Get("status"); s != "" {
		status := models.RentStatusType(s)
		f.Status = &status
	}
	if s := r.URL.Query().Get("contract"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid contract filter", nil, err)
			return
		}
		f.ContractID = &id
	}

	rents, err := c.rentRepo.List(r.Context(), f)
	if err != nil {
		respondServiceError(w, err, "Failed to list rents")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rents)
}

// GET /api/v1/rents/{id}
// The response carries the derived total_paid and balance next to the
// cached status so callers can prefer the authoritative figures.
func (c *RentsController) GetRentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid rent id", nil, err)
		return
	}

	rent, err := c.rentRepo.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to load rent")
		return
	}
	if rent == nil {
		respondServiceError(w, utils.ErrRentNotFound, "")
		return
	}

	totalPaid, balance, err := c.paymentService.RentBalance(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to compute rent balance")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.RentResponse{
		Rent:      rent,
		TotalPaid: totalPaid,
		Balance:   balance,
	})
}

// POST /api/v1/rents
func (c *RentsController) CreateRentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var req dtos.CreateRentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	rent, err := c.scheduler.CreateRent(
		r.Context(),
		req.ContractID,
		parseDate(req.PeriodStart),
		parseDatePtr(req.PeriodEnd),
		parseDate(req.DueDate),
		req.Amount,
	)
	if err != nil {
		respondServiceError(w, err, "Failed to create rent")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, rent)
}

// POST /api/v1/rents/generate-monthly
func (c *RentsController) GenerateMonthlyRentsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var req dtos.GenerateMonthlyRentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	count, err := c.scheduler.GenerateForMonth(r.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		respondServiceError(w, err, "Failed to generate monthly rents")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.GenerateMonthlyRentsResponse{
		Message: fmt.Sprintf("%d rents generated", count),
		Count:   count,
	})
}
