package main

import (
	"context"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/app"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/config"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/controllers"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/middleware"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/policy"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/repositories"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/routes"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/services"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize service:", err)
	}
	defer application.Close()

	userRepo := repositories.NewUserRepository(application.DB)
	galleryRepo := repositories.NewGalleryRepository(application.DB)
	mgrRepo := repositories.NewGalleryManagerRepository(application.DB)
	aptRepo := repositories.NewApartmentRepository(application.DB)
	tenantRepo := repositories.NewTenantProfileRepository(application.DB)
	contractRepo := repositories.NewContractRepository(application.DB)
	rentRepo := repositories.NewRentRepository(application.DB)
	paymentRepo := repositories.NewPaymentRepository(application.DB)
	invoiceRepo := repositories.NewSupplierInvoiceRepository(application.DB)

	evaluator := policy.NewEvaluator()

	accountService := services.NewAccountService(userRepo, evaluator)
	propertyService := services.NewPropertyService(galleryRepo, aptRepo, mgrRepo, evaluator)
	tenantService := services.NewTenantService(tenantRepo)
	contractService := services.NewContractService(contractRepo, aptRepo, userRepo)
	schedulerService := services.NewRentSchedulerService(contractRepo, rentRepo)
	paymentService := services.NewPaymentService(rentRepo, paymentRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, galleryRepo, aptRepo)

	healthController := controllers.NewHealthController(application)
	accountsController := controllers.NewAccountsController(accountService)
	propertiesController := controllers.NewPropertiesController(propertyService)
	tenantsController := controllers.NewTenantsController(tenantService)
	contractsController := controllers.NewContractsController(contractService, evaluator)
	rentsController := controllers.NewRentsController(schedulerService, paymentService, rentRepo)
	paymentsController := controllers.NewPaymentsController(paymentService, paymentRepo)
	invoicesController := controllers.NewInvoicesController(invoiceService)
	cronController := controllers.NewCronController(schedulerService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Users, accountsController.RegisterHandler).Methods(http.MethodPost)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))

	// Accounts
	secured.HandleFunc(routes.Users, accountsController.ListUsersHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UserMe, accountsController.GetMeHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UserMe, accountsController.UpdateProfileHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.UserMe, accountsController.DeactivateHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.UserByID, accountsController.GetUserHandler).Methods(http.MethodGet)

	// Properties
	secured.HandleFunc(routes.Galleries, propertiesController.ListGalleriesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Galleries, propertiesController.CreateGalleryHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.GalleryByID, propertiesController.GetGalleryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.GalleryByID, propertiesController.UpdateGalleryHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.GalleryByID, propertiesController.DeleteGalleryHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.GalleryManagers, propertiesController.ListManagersHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.GalleryManagers, propertiesController.AssignManagerHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.GalleryManagerID, propertiesController.RemoveManagerHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.Apartments, propertiesController.ListApartmentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Apartments, propertiesController.CreateApartmentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.ApartmentByID, propertiesController.GetApartmentHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ApartmentByID, propertiesController.UpdateApartmentHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.ApartmentByID, propertiesController.DeleteApartmentHandler).Methods(http.MethodDelete)

	// Tenant directory
	secured.HandleFunc(routes.Tenants, tenantsController.ListTenantsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Tenants, tenantsController.CreateTenantHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.TenantByID, tenantsController.GetTenantHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantByID, tenantsController.UpdateTenantHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.TenantByID, tenantsController.DeleteTenantHandler).Methods(http.MethodDelete)

	// Contracts. Mutation verbs are registered so the client gets an
	// explicit immutable-record response instead of a router 405.
	secured.HandleFunc(routes.Contracts, contractsController.ListContractsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Contracts, contractsController.CreateContractHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.ContractByID, contractsController.GetContractHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ContractByID, contractsController.ContractImmutableHandler).Methods(http.MethodPut, http.MethodPatch, http.MethodDelete)
	secured.HandleFunc(routes.ContractArchive, contractsController.ArchiveContractHandler).Methods(http.MethodPost)

	// Finance
	secured.HandleFunc(routes.Rents, rentsController.ListRentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Rents, rentsController.CreateRentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.RentsGenerateMonthly, rentsController.GenerateMonthlyRentsHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.RentByID, rentsController.GetRentHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Payments, paymentsController.ListPaymentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Payments, paymentsController.CreatePaymentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentByID, paymentsController.UpdatePaymentHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.PaymentByID, paymentsController.DeletePaymentHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.Invoices, invoicesController.ListInvoicesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Invoices, invoicesController.CreateInvoiceHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.InvoiceByID, invoicesController.GetInvoiceHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.InvoiceByID, invoicesController.UpdateInvoiceHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.InvoiceByID, invoicesController.DeleteInvoiceHandler).Methods(http.MethodDelete)

	// External trigger for the same roll-forward the cron runs
	secured.HandleFunc(routes.CronProcessRents, cronController.ProcessRentsHandler).Methods(http.MethodPost)

	c := cron.New()
	_, cronErr := c.AddFunc(cfg.RentCronSpec, func() {
		count, e := schedulerService.AdvancePeriods(context.Background(), time.Now().UTC())
		if e != nil {
			utils.Logger.WithError(e).Error("Scheduled rent roll-forward failed")
			return
		}
		utils.Logger.Infof("Scheduled rent roll-forward created %d rents", count)
	})
	if cronErr != nil {
		utils.Logger.WithError(cronErr).Fatal("Failed to schedule rent roll-forward cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Service failed to start:", err)
	}
}
