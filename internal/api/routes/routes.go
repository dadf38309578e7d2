package routes

import (
	"gestman-backend/internal/api/handlers"
	"gestman-backend/internal/api/middleware"
	"gestman-backend/internal/config"
	"gestman-backend/internal/notify"
	"gestman-backend/internal/repository"
	"gestman-backend/internal/schedule"
	"gestman-backend/internal/service"
	"gestman-backend/internal/telegram"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// refDB holds locations, assets, asset types, users and contacts;
// opsDB holds the schedule, alerts, inventory, forms and messaging.
func SetupRoutes(refDB, opsDB *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()
	clock := schedule.SystemClock{Location: cfg.Location()}

	// Reference repositories
	locationRepo := repository.NewLocationRepository(refDB)
	assetRepo := repository.NewAssetRepository(refDB)
	assetTypeRepo := repository.NewAssetTypeRepository(refDB)
	userRepo := repository.NewUserRepository(refDB)
	userNoteRepo := repository.NewUserNoteRepository(refDB)
	contactRepo := repository.NewContactRepository(refDB)

	// Operational repositories
	scheduleStore := repository.NewScheduleStore(opsDB)
	occurrenceRepo := repository.NewOccurrenceRepository(opsDB)
	checklistRepo := repository.NewChecklistItemRepository(opsDB)
	maintenanceTypeRepo := repository.NewMaintenanceTypeRepository(opsDB)
	historyRepo := repository.NewExecutionHistoryRepository(opsDB)
	alertRepo := repository.NewAlertRepository(opsDB)
	inventoryRepo := repository.NewInventoryRepository(opsDB)
	notificationRepo := repository.NewNotificationRepository(opsDB)
	formRepo := repository.NewFormRepository(opsDB)

	// Messaging
	messenger := telegram.NewClient(cfg.TelegramAPIBaseURL, cfg.TelegramTimeout())
	notificationService := service.NewNotificationService(
		notificationRepo, messenger, notify.ItalianPluralMatcher{}, clock, validator, cfg.TelegramBotToken,
	)

	// Initialize services
	locationService := service.NewLocationService(locationRepo, validator)
	assetService := service.NewAssetService(assetRepo, locationRepo, validator)
	assetTypeService := service.NewAssetTypeService(assetTypeRepo, assetRepo, validator)
	userService := service.NewUserService(userRepo, userNoteRepo, validator)
	contactService := service.NewContactService(contactRepo, validator)
	catalogService := service.NewCatalogService(checklistRepo, maintenanceTypeRepo, occurrenceRepo, assetTypeRepo, assetRepo, validator)
	scheduleService := service.NewScheduleService(
		scheduleStore, checklistRepo, maintenanceTypeRepo, alertRepo, notificationService, clock, validator,
		service.ScheduleSettings{DefaultLeadDays: cfg.AlertDefaultLeadDays, UrgentDays: cfg.UpcomingUrgentDays},
	)
	scanService := service.NewAlertScanService(
		occurrenceRepo, checklistRepo, maintenanceTypeRepo, alertRepo, notificationService,
		schedule.NewDedupPolicy(clock, cfg.AlertDedupWindow),
	)
	alertService := service.NewAlertService(alertRepo, occurrenceRepo, assetRepo, notificationService, clock, validator, cfg.ClosedAlertVisibilityDays)
	inventoryService := service.NewInventoryService(inventoryRepo, assetRepo, validator)
	formService := service.NewFormService(formRepo, alertRepo, assetRepo, notificationService, clock, validator)
	reportService := service.NewReportService(service.ReportRepositories{
		Alerts:           alertRepo,
		Occurrences:      occurrenceRepo,
		History:          historyRepo,
		Inventory:        inventoryRepo,
		Forms:            formRepo,
		Checklist:        checklistRepo,
		MaintenanceTypes: maintenanceTypeRepo,
	}, clock, cfg.RetentionDefaultDays)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(refDB, opsDB)
	locationHandler := handlers.NewLocationHandler(locationService)
	assetHandler := handlers.NewAssetHandler(assetService, assetTypeService)
	userHandler := handlers.NewUserHandler(userService)
	contactHandler := handlers.NewContactHandler(contactService)
	maintenanceHandler := handlers.NewMaintenanceHandler(catalogService, scheduleService, scanService)
	alertHandler := handlers.NewAlertHandler(alertService)
	messagingHandler := handlers.NewMessagingHandler(notificationService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	formHandler := handlers.NewFormHandler(formService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		locations := v1.Group("/locations")
		{
			locations.GET("", locationHandler.ListLocations)
			locations.POST("", locationHandler.CreateLocation)
			locations.GET("/:number", locationHandler.GetLocation)
			locations.PUT("/:number", locationHandler.UpdateLocation)
			locations.DELETE("/:number", locationHandler.DeleteLocation)
		}

		assets := v1.Group("/assets")
		{
			assets.GET("", assetHandler.ListAssets)
			assets.POST("", assetHandler.CreateAsset)
			assets.DELETE("/orphans", assetHandler.DeleteOrphans)
			assets.GET("/:company_id", assetHandler.GetAsset)
			assets.PUT("/:company_id", assetHandler.UpdateAsset)
			assets.DELETE("/:company_id", assetHandler.DeleteAsset)
		}

		assetTypes := v1.Group("/asset-types")
		{
			assetTypes.GET("", assetHandler.ListAssetTypes)
			assetTypes.POST("", assetHandler.CreateAssetType)
			assetTypes.GET("/:id", assetHandler.GetAssetType)
			assetTypes.PUT("/:id", assetHandler.UpdateAssetType)
			assetTypes.DELETE("/:id", assetHandler.DeleteAssetType)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/notes", userHandler.GetUserNotes)
			users.PUT("/:id/notes", userHandler.SaveUserNotes)
		}

		contacts := v1.Group("/contacts")
		{
			contacts.GET("/categories", contactHandler.ListCategories)
			contacts.POST("/categories", contactHandler.CreateCategory)
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		maintenance := v1.Group("/maintenance")
		{
			maintenance.GET("/types", maintenanceHandler.ListMaintenanceTypes)
			maintenance.POST("/types", maintenanceHandler.CreateMaintenanceType)
			maintenance.DELETE("/types/:id", maintenanceHandler.DeleteMaintenanceType)

			maintenance.GET("/checklist-items", maintenanceHandler.ListChecklistItems)
			maintenance.POST("/checklist-items", maintenanceHandler.CreateChecklistItem)
			maintenance.PUT("/checklist-items/:id", maintenanceHandler.UpdateChecklistItem)
			maintenance.DELETE("/checklist-items/:id", maintenanceHandler.DeleteChecklistItem)

			occurrences := maintenance.Group("/occurrences")
			{
				occurrences.GET("", maintenanceHandler.ListOccurrences)
				occurrences.POST("", maintenanceHandler.ScheduleOccurrence)
				occurrences.GET("/groups", maintenanceHandler.ListGroups)
				occurrences.GET("/:id", maintenanceHandler.GetOccurrence)
				occurrences.GET("/:id/form", maintenanceHandler.OccurrenceForm)
				occurrences.POST("/:id/complete", maintenanceHandler.CompleteOccurrence)
				occurrences.DELETE("/:id", maintenanceHandler.DeleteOccurrence)
			}

			maintenance.GET("/groups/form", maintenanceHandler.GroupForm)
			maintenance.POST("/groups/complete", maintenanceHandler.CompleteGroup)
			maintenance.GET("/upcoming", maintenanceHandler.Upcoming)
			maintenance.GET("/history", maintenanceHandler.History)
			maintenance.POST("/alerts/scan", maintenanceHandler.ScanAlerts)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.GET("", alertHandler.ListAlerts)
			alerts.POST("", alertHandler.CreateAlert)
			alerts.GET("/:id", alertHandler.GetAlert)
			alerts.POST("/:id/take-charge", alertHandler.TakeCharge)
			alerts.POST("/:id/close", alertHandler.CloseAlert)
			alerts.DELETE("/:id", alertHandler.DeleteAlert)
		}

		messaging := v1.Group("/messaging")
		{
			messaging.GET("/settings", messagingHandler.GetSettings)
			messaging.PUT("/settings", messagingHandler.UpdateSettings)
			messaging.GET("/channels", messagingHandler.ListChannels)
			messaging.POST("/channels", messagingHandler.CreateChannel)
			messaging.PUT("/channels/:id", messagingHandler.UpdateChannel)
			messaging.DELETE("/channels/:id", messagingHandler.DeleteChannel)
			messaging.POST("/test", messagingHandler.SendTest)
			messaging.GET("/logs", messagingHandler.ListDeliveryLogs)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.ListItems)
			inventory.POST("", inventoryHandler.CreateItem)
			inventory.GET("/statistics", inventoryHandler.Statistics)
			inventory.GET("/part-codes", inventoryHandler.ListPartCodes)
			inventory.POST("/part-codes/validate", inventoryHandler.ValidatePartCodes)
			inventory.GET("/asset-types", inventoryHandler.AssetTypes)
			inventory.GET("/:id", inventoryHandler.GetItem)
			inventory.PUT("/:id", inventoryHandler.UpdateItem)
			inventory.DELETE("/:id", inventoryHandler.DeleteItem)
			inventory.POST("/:id/quantity", inventoryHandler.ChangeQuantity)
			inventory.GET("/:id/movements", inventoryHandler.ListMovements)
		}

		forms := v1.Group("/forms")
		{
			forms.GET("/templates", formHandler.ListTemplates)
			forms.POST("/templates", formHandler.CreateTemplate)
			forms.GET("/templates/:id", formHandler.GetTemplate)
			forms.PUT("/templates/:id", formHandler.UpdateTemplate)
			forms.DELETE("/templates/:id", formHandler.DeleteTemplate)
			forms.POST("/templates/:id/fields", formHandler.AddField)
			forms.PUT("/fields/:id", formHandler.UpdateField)
			forms.DELETE("/fields/:id", formHandler.DeleteField)
			forms.GET("/submissions", formHandler.ListSubmissions)
			forms.POST("/submissions", formHandler.Submit)
		}

		reports := v1.Group("/reports")
		reports.Use(gzip.Gzip(gzip.DefaultCompression))
		{
			reports.GET("/:section/export", reportHandler.Export)
			reports.POST("/:section/bulk-delete", reportHandler.BulkDelete)
			reports.POST("/:section/cleanup", reportHandler.Cleanup)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(refDB, opsDB *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(refDB, opsDB)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
