package routes

const (
	// Health
	Health = "/health"

	// Accounts
	Users    = "/api/v1/users"
	UserByID = "/api/v1/users/{id}"
	UserMe   = "/api/v1/users/me"

	// Properties
	Galleries        = "/api/v1/galleries"
	GalleryByID      = "/api/v1/galleries/{id}"
	GalleryManagers  = "/api/v1/galleries/{id}/managers"
	GalleryManagerID = "/api/v1/gallery-managers/{id}"
	Apartments       = "/api/v1/apartments"
	ApartmentByID    = "/api/v1/apartments/{id}"

	// Tenant directory
	Tenants    = "/api/v1/tenants"
	TenantByID = "/api/v1/tenants/{id}"

	// Contracts (immutable: PUT/PATCH/DELETE rejected, archive instead)
	Contracts       = "/api/v1/contracts"
	ContractByID    = "/api/v1/contracts/{id}"
	ContractArchive = "/api/v1/contracts/{id}/archive"

	// Finance
	Rents                = "/api/v1/rents"
	RentByID             = "/api/v1/rents/{id}"
	RentsGenerateMonthly = "/api/v1/rents/generate-monthly"
	Payments             = "/api/v1/payments"
	PaymentByID          = "/api/v1/payments/{id}"
	Invoices             = "/api/v1/supplier-invoices"
	InvoiceByID          = "/api/v1/supplier-invoices/{id}"

	// External scheduler trigger for the roll-forward generator
	CronProcessRents = "/api/v1/cron/process-rents"
)
