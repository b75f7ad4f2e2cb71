package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/dtos"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/policy"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/repositories"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/services"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

type ContractsController struct {
	contractService *services.ContractService
	evaluator       *policy.Evaluator
}

func NewContractsController(
	contractService *services.ContractService,
	evaluator *policy.Evaluator,
) *ContractsController {
	return &ContractsController{
		contractService: contractService,
		evaluator:       evaluator,
	}
}

// GET /api/v1/contracts?active=&apartment=
func (c *ContractsController) ListContractsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	var f repositories.ContractFilter
	if s := r.URL.Query().Get("active"); s != "" {
		active, err := strconv.ParseBool(s)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid active filter", nil, err)
			return
		}
		f.IsActive = &active
	}
	if s := r.URL.Query().Get("apartment"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid apartment filter", nil, err)
			return
		}
		f.ApartmentID = &id
	}

	contracts, err := c.contractService.ListContracts(r.Context(), f)
	if err != nil {
		respondServiceError(w, err, "Failed to list contracts")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, contracts)
}

// GET /api/v1/contracts/{id}
func (c *ContractsController) GetContractHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid contract id", nil, err)
		return
	}

	contract, err := c.contractService.GetContract(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to get contract")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, contract)
}

// POST /api/v1/contracts
// The acting user becomes the contract's owner.
func (c *ContractsController) CreateContractHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req dtos.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	contract, err := c.contractService.CreateContract(r.Context(), actor.ID, services.CreateContractInput{
		TenantID:        req.TenantID,
		ApartmentID:     req.ApartmentID,
		StartDate:       parseDate(req.StartDate),
		EndDate:         parseDatePtr(req.EndDate),
		RentAmount:      req.RentAmount,
		SecurityDeposit: req.SecurityDeposit,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to create contract")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, contract)
}

// POST /api/v1/contracts/{id}/archive
func (c *ContractsController) ArchiveContractHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid contract id", nil, err)
		return
	}

	contract, err := c.contractService.GetContract(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to get contract")
		return
	}
	if err := c.evaluator.CanPerform(actor, policy.ActionArchive, policy.ResourceContract, policy.Ref{OwnerID: contract.OwnerID}); err != nil {
		respondServiceError(w, err, "")
		return
	}

	contract, err = c.contractService.ArchiveContract(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to archive contract")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, contract)
}

// PUT|PATCH|DELETE /api/v1/contracts/{id}
// Contracts are immutable after creation. Corrections go through archive
// plus a replacement contract.
func (c *ContractsController) ContractImmutableHandler(w http.ResponseWriter, r *http.Request) {
	respondServiceError(w, utils.ErrContractImmutable, "")
}
