package app

import (
	"fmt"
	"time"

	"github.com/poofware/tenancy-service/internal/config"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/services"
	"github.com/poofware/tenancy-service/internal/store"
	"github.com/poofware/tenancy-service/internal/utils"
)

const (
	maxRetries     = 5
	initialBackoff = 500 * time.Millisecond
)

type App struct {
	Config *config.Config
	Store  *store.RedisStore

	AccountService      *services.AccountService
	PropertyService     *services.PropertyService
	JoinService         *services.JoinService
	MaintenanceService  *services.MaintenanceService
	SuggestionService   *services.SuggestionService
	NotificationService *services.NotificationService
}

// NewApp connects to Redis and wires the repositories and services.
func NewApp(cfg *config.Config) (*App, error) {
	var (
		st      *store.RedisStore
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		st, err = store.NewRedisStore(cfg.RedisURL)
		if err == nil {
			utils.Logger.Infof("%s connected to Redis on attempt %d", cfg.AppName, i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed Redis connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	userRepo := repositories.NewUserRepository(st)
	propertyRepo := repositories.NewPropertyRepository(st)
	joinRequestRepo := repositories.NewJoinRequestRepository(st)
	maintenanceRepo := repositories.NewMaintenanceRepository(st)
	suggestionRepo := repositories.NewSuggestionRepository(st)
	counterRepo := repositories.NewCounterRepository(st)
	outcomeRepo := repositories.NewTenantNotificationRepository(st)

	counterSvc := services.NewCounterService(counterRepo)
	occupancySvc := services.NewOccupancyService(propertyRepo)
	emailSvc := services.NewEmailService(
		cfg.SendgridAPIKey,
		cfg.LDFlag_SendgridFromEmail,
		cfg.LDFlag_SendOutcomeEmails,
	)

	return &App{
		Config: cfg,
		Store:  st,

		AccountService: services.NewAccountService(userRepo, counterSvc),
		PropertyService: services.NewPropertyService(
			propertyRepo,
			joinRequestRepo,
			maintenanceRepo,
			occupancySvc,
			cfg.LDFlag_CascadeDeletePropertyRecords,
		),
		JoinService: services.NewJoinService(
			propertyRepo,
			joinRequestRepo,
			outcomeRepo,
			occupancySvc,
			counterSvc,
			emailSvc,
		),
		MaintenanceService:  services.NewMaintenanceService(propertyRepo, maintenanceRepo, counterSvc),
		SuggestionService:   services.NewSuggestionService(propertyRepo, suggestionRepo, counterSvc),
		NotificationService: services.NewNotificationService(counterSvc, outcomeRepo),
	}, nil
}

func (a *App) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			utils.Logger.WithError(err).Warn("Error closing Redis connection")
		} else {
			utils.Logger.Info("Redis connection closed.")
		}
	}
}
