package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/poofware/tenancy-service/internal/app"
	"github.com/poofware/tenancy-service/internal/config"
	"github.com/poofware/tenancy-service/internal/controllers"
	"github.com/poofware/tenancy-service/internal/middleware"
	"github.com/poofware/tenancy-service/internal/routes"
	"github.com/poofware/tenancy-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found; relying on process environment")
	}

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (store, repositories, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize app: ", err)
	}
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application.Store)
	accountCtrl := controllers.NewAccountController(application.AccountService)
	propertyCtrl := controllers.NewPropertyController(application.PropertyService)
	joinCtrl := controllers.NewJoinController(application.JoinService)
	maintenanceCtrl := controllers.NewMaintenanceController(application.MaintenanceService)
	suggestionCtrl := controllers.NewSuggestionController(application.SuggestionService)
	notificationCtrl := controllers.NewNotificationController(application.NotificationService)

	// 4) Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	api := router.PathPrefix(routes.APIPrefix).Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))

	api.HandleFunc(routes.AccountRole, accountCtrl.SetRoleHandler).Methods(http.MethodPost)

	api.HandleFunc(routes.Properties, propertyCtrl.CreateHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.Properties, propertyCtrl.ListHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.PropertiesAvailable, propertyCtrl.ListAvailableHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.PropertiesJoined, propertyCtrl.ListJoinedHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.Property, propertyCtrl.DeleteHandler).Methods(http.MethodDelete)
	api.HandleFunc(routes.PropertyLeave, propertyCtrl.LeaveHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.PropertyTenant, propertyCtrl.RemoveTenantHandler).Methods(http.MethodDelete)

	api.HandleFunc(routes.PropertyJoinRequests, joinCtrl.SubmitHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.JoinRequests, joinCtrl.ListHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.JoinRequestAccept, joinCtrl.AcceptHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.JoinRequestReject, joinCtrl.RejectHandler).Methods(http.MethodPost)

	api.HandleFunc(routes.PropertyMaintenance, maintenanceCtrl.SubmitHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.Maintenance, maintenanceCtrl.ListHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.MaintenanceMine, maintenanceCtrl.ListMineHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.MaintenanceRequest, maintenanceCtrl.DeleteHandler).Methods(http.MethodDelete)

	api.HandleFunc(routes.Suggestions, suggestionCtrl.SubmitHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.Suggestions, suggestionCtrl.ListHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.SuggestionsMine, suggestionCtrl.ListMineHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.Suggestion, suggestionCtrl.DeleteHandler).Methods(http.MethodDelete)

	api.HandleFunc(routes.Notifications, notificationCtrl.CountsHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.NotificationCategoryView, notificationCtrl.ViewCategoryHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.NotificationOutcomes, notificationCtrl.OutcomesHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.NotificationOutcome, notificationCtrl.AckOutcomeHandler).Methods(http.MethodDelete)

	// 5) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
