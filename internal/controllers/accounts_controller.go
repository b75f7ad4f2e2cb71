package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/dtos"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/services"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

type AccountsController struct {
	accountService *services.AccountService
}

func NewAccountsController(accountService *services.AccountService) *AccountsController {
	return &AccountsController{accountService: accountService}
}

// POST /api/v1/users
// Registration is the only unauthenticated write endpoint.
func (c *AccountsController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	in := services.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}
	if req.Role != nil {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid role", nil, err)
			return
		}
		in.Role = &role
	}

	u, err := c.accountService.Register(r.Context(), in)
	if err != nil {
		respondServiceError(w, err, "Failed to register user")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, u)
}

// GET /api/v1/users
func (c *AccountsController) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	users, err := c.accountService.ListUsers(r.Context(), actor)
	if err != nil {
		respondServiceError(w, err, "Failed to list users")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// GET /api/v1/users/{id}
func (c *AccountsController) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid user id", nil, err)
		return
	}
	u, err := c.accountService.GetUser(r.Context(), actor, id)
	if err != nil {
		respondServiceError(w, err, "Failed to get user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, u)
}

// GET /api/v1/users/me
func (c *AccountsController) GetMeHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	u, err := c.accountService.GetUser(r.Context(), actor, actor.ID)
	if err != nil {
		respondServiceError(w, err, "Failed to get user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, u)
}

// PUT /api/v1/users/me
func (c *AccountsController) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req dtos.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	u, err := c.accountService.UpdateProfile(r.Context(), actor, services.UpdateProfileInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to update profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, u)
}

// DELETE /api/v1/users/me
func (c *AccountsController) DeactivateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondUnauthorized(w)
		return
	}
	if err := c.accountService.DeactivateAccount(r.Context(), actor); err != nil {
		respondServiceError(w, err, "Failed to deactivate account")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
