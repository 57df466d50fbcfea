// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/receber-inter/backend/config"
	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/application/usecase/client"
	"github.com/receber-inter/backend/internal/application/usecase/invoice"
	"github.com/receber-inter/backend/internal/application/usecase/reconciliation"
	"github.com/receber-inter/backend/internal/infra/server/router"
	"github.com/receber-inter/backend/internal/integration/adapters"
	"github.com/receber-inter/backend/internal/integration/entrypoint/controller"
	"github.com/receber-inter/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The bank service is pluggable so tests can run without Inter credentials.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	bankService adapter.BankChargeService,
	dbHealthChecker func() bool,
) *Injector {
	// Create repositories
	clientRepo := persistence.NewClientRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	reconciliationRepo := persistence.NewReconciliationRepository(db)

	// Create adapters/services
	messagingService := adapters.NewWhatsAppClient(adapters.WhatsAppConfig{
		MessageURL: cfg.WhatsApp.MessageURL,
		Timeout:    cfg.WhatsApp.Timeout,
	})

	// Create client use cases
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	getClientUseCase := client.NewGetClientUseCase(clientRepo)
	createClientUseCase := client.NewCreateClientUseCase(clientRepo)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

	// Create invoice use cases
	listInvoicesUseCase := invoice.NewListInvoicesUseCase(invoiceRepo, clientRepo)
	generateInvoicesUseCase := invoice.NewGenerateInvoicesUseCase(invoiceRepo, clientRepo, bankService)
	markPaidUseCase := invoice.NewMarkPaidUseCase(invoiceRepo)
	cancelInvoiceUseCase := invoice.NewCancelInvoiceUseCase(invoiceRepo, bankService)
	sendReminderUseCase := invoice.NewSendReminderUseCase(invoiceRepo, clientRepo, messagingService, cfg.WhatsApp.PixKey)
	fetchPDFUseCase := invoice.NewFetchPDFUseCase(invoiceRepo, bankService)

	// Create reconciliation use cases
	importStatementUseCase := reconciliation.NewImportStatementUseCase(reconciliationRepo, invoiceRepo)
	listEntriesUseCase := reconciliation.NewListEntriesUseCase(reconciliationRepo, invoiceRepo)
	manualLinkUseCase := reconciliation.NewManualLinkUseCase(reconciliationRepo, invoiceRepo)
	purgeUnlinkedUseCase := reconciliation.NewPurgeUnlinkedUseCase(reconciliationRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	clientController := controller.NewClientController(
		listClientsUseCase,
		getClientUseCase,
		createClientUseCase,
		updateClientUseCase,
		deleteClientUseCase,
	)
	invoiceController := controller.NewInvoiceController(
		listInvoicesUseCase,
		generateInvoicesUseCase,
		markPaidUseCase,
		cancelInvoiceUseCase,
		sendReminderUseCase,
		fetchPDFUseCase,
	)
	reconciliationController := controller.NewReconciliationController(
		importStatementUseCase,
		listEntriesUseCase,
		manualLinkUseCase,
		purgeUnlinkedUseCase,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: router.NewRouter(
			healthController,
			clientController,
			invoiceController,
			reconciliationController,
		),
	}
}
