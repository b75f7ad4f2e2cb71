package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/middleware"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/policy"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

var validate = validator.New()

// actorFromContext rebuilds the policy actor from the claims the auth
// middleware stored on the request context.
func actorFromContext(r *http.Request) (policy.Actor, bool) {
	v := r.Context().Value(middleware.ContextKeyUserID)
	if v == nil {
		return policy.Actor{}, false
	}
	id, err := uuid.Parse(v.(string))
	if err != nil {
		return policy.Actor{}, false
	}
	role, ok := r.Context().Value(middleware.ContextKeyRole).(models.Role)
	if !ok {
		return policy.Actor{}, false
	}
	return policy.Actor{ID: id, Role: role}, true
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// parseDate assumes the validator already checked the 2006-01-02 layout.
func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseDate(*s)
	return &t
}

// respondServiceError maps domain sentinel errors onto the HTTP error
// taxonomy. Unrecognized errors become 500s.
func respondServiceError(w http.ResponseWriter, err error, publicMessage string) {
	switch {
	case errors.Is(err, utils.ErrContractNotFound),
		errors.Is(err, utils.ErrRentNotFound),
		errors.Is(err, utils.ErrPaymentNotFound),
		errors.Is(err, utils.ErrGalleryNotFound),
		errors.Is(err, utils.ErrApartmentNotFound),
		errors.Is(err, utils.ErrInvoiceNotFound),
		errors.Is(err, utils.ErrUserNotFound),
		errors.Is(err, utils.ErrTenantNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, err.Error(), nil, err)

	case errors.Is(err, utils.ErrPaymentImmutable),
		errors.Is(err, utils.ErrContractImmutable):
		utils.RespondErrorWithCode(w, http.StatusMethodNotAllowed, utils.ErrCodeImmutableRecord, err.Error(), nil, err)

	case errors.Is(err, utils.ErrMethodNotAllowed):
		utils.RespondErrorWithCode(w, http.StatusMethodNotAllowed, utils.ErrCodeMethodNotAllowed, err.Error(), nil, err)

	case errors.Is(err, utils.ErrPermissionDenied),
		errors.Is(err, utils.ErrGalleryNotOwned):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodePermissionDenied, err.Error(), nil, err)

	case errors.Is(err, utils.ErrDuplicateRentPeriod),
		errors.Is(err, utils.ErrUsernameTaken):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, err.Error(), nil, err)

	case errors.Is(err, utils.ErrInvalidAmount),
		errors.Is(err, utils.ErrInvalidPeriod),
		errors.Is(err, utils.ErrSameOwnerAndTenant),
		errors.Is(err, utils.ErrContractNotActive):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, err)

	default:
		utils.Logger.WithError(err).Error(publicMessage)
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, publicMessage, nil, err)
	}
}

// respondValidationError surfaces validator field errors as 400 details.
func respondValidationError(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationErrors.Error(), nil)
		return
	}
	utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request data", nil, err)
}

func respondUnauthorized(w http.ResponseWriter) {
	utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil)
}
