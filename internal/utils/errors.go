package utils

import "errors"

/*
   Sentinel errors for rental domain logic.
   Controllers do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrContractNotFound  = errors.New("contract_not_found")
	ErrRentNotFound      = errors.New("rent_not_found")
	ErrPaymentNotFound   = errors.New("payment_not_found")
	ErrGalleryNotFound   = errors.New("gallery_not_found")
	ErrApartmentNotFound = errors.New("apartment_not_found")
	ErrInvoiceNotFound   = errors.New("invoice_not_found")
	ErrUserNotFound      = errors.New("user_not_found")
	ErrUsernameTaken     = errors.New("username_taken")
	ErrTenantNotFound    = errors.New("tenant_not_found")

	// Payments are permanent financial audit records.
	ErrPaymentImmutable = errors.New("payment_immutable")
	// Contracts are replaced, never edited in place.
	ErrContractImmutable = errors.New("contract_immutable")

	// A rent already exists for the (contract, period_start) pair. The
	// generator paths recover from this silently; the manual creation
	// endpoint surfaces it as a conflict.
	ErrDuplicateRentPeriod = errors.New("duplicate_rent_period")

	ErrInvalidAmount       = errors.New("invalid_amount")
	ErrInvalidPeriod       = errors.New("invalid_period")
	ErrSameOwnerAndTenant  = errors.New("same_owner_and_tenant")
	ErrContractNotActive   = errors.New("contract_not_active")
	ErrGalleryNotOwned     = errors.New("gallery_not_owned")
	ErrPermissionDenied    = errors.New("permission_denied")
	ErrMethodNotAllowed    = errors.New("method_not_allowed")
)
