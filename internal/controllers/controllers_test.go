package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/middleware"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/models"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/routes"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/services"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

// authenticated attaches the context values the auth middleware would have
// set for a logged-in user.
func authenticated(r *http.Request, role models.Role) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUserID, uuid.NewString())
	ctx = context.WithValue(ctx, middleware.ContextKeyRole, role)
	return r.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestContractMutationVerbsRejected(t *testing.T) {
	contractsController := NewContractsController(nil, nil)

	router := mux.NewRouter()
	router.HandleFunc(routes.ContractByID, contractsController.ContractImmutableHandler).
		Methods(http.MethodPut, http.MethodPatch, http.MethodDelete)

	url := "/api/v1/contracts/" + uuid.NewString()
	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		req := httptest.NewRequest(method, url, strings.NewReader(`{}`))
		req = authenticated(req, models.RoleSuperAdmin)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		require.Equal(t, utils.ErrCodeImmutableRecord, decodeError(t, rec).Code, method)
	}
}

func TestPaymentDeleteRejected(t *testing.T) {
	// DeletePayment refuses before touching any repository.
	paymentService := services.NewPaymentService(nil, nil)
	paymentsController := NewPaymentsController(paymentService, nil)

	router := mux.NewRouter()
	router.HandleFunc(routes.PaymentByID, paymentsController.DeletePaymentHandler).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/payments/"+uuid.NewString(), nil)
	req = authenticated(req, models.RoleSuperAdmin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, utils.ErrCodeImmutableRecord, decodeError(t, rec).Code)
}

func TestGenerateMonthlyRentsValidation(t *testing.T) {
	rentsController := NewRentsController(services.NewRentSchedulerService(nil, nil), nil, nil)

	router := mux.NewRouter()
	router.HandleFunc(routes.RentsGenerateMonthly, rentsController.GenerateMonthlyRentsHandler).Methods(http.MethodPost)

	cases := []struct {
		name string
		body string
	}{
		{"missing year", `{"month": 3}`},
		{"missing month", `{"year": 2024}`},
		{"month out of range", `{"year": 2024, "month": 13}`},
		{"year out of range", `{"year": 1900, "month": 3}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/rents/generate-monthly", strings.NewReader(tc.body))
			req = authenticated(req, models.RoleManager)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, utils.ErrCodeValidation, decodeError(t, rec).Code)
		})
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	rentsController := NewRentsController(nil, nil, nil)

	router := mux.NewRouter()
	router.HandleFunc(routes.Rents, rentsController.ListRentsHandler).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, utils.ErrCodeUnauthorized, decodeError(t, rec).Code)
}

func TestRegisterValidation(t *testing.T) {
	accountsController := NewAccountsController(nil)

	router := mux.NewRouter()
	router.HandleFunc(routes.Users, accountsController.RegisterHandler).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users",
		strings.NewReader(`{"username": "ab", "email": "not-an-email", "password": "short"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, utils.ErrCodeValidation, decodeError(t, rec).Code)
}
