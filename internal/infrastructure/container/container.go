package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/auramap/auramap-backend/internal/config"
	"github.com/auramap/auramap-backend/internal/delivery/http"
	"github.com/auramap/auramap-backend/internal/delivery/http/handler"
	"github.com/auramap/auramap-backend/internal/delivery/http/middleware"
	"github.com/auramap/auramap-backend/internal/infrastructure/database"
	placesclient "github.com/auramap/auramap-backend/internal/infrastructure/places"
	"github.com/auramap/auramap-backend/internal/infrastructure/server"
	"github.com/auramap/auramap-backend/internal/random"
	"github.com/auramap/auramap-backend/internal/repository/postgres"
	"github.com/auramap/auramap-backend/internal/repository/rediscache"
	"github.com/auramap/auramap-backend/internal/usecase/auth"
	"github.com/auramap/auramap-backend/internal/usecase/dicegame"
	"github.com/auramap/auramap-backend/internal/usecase/notification"
	"github.com/auramap/auramap-backend/internal/usecase/passport"
	"github.com/auramap/auramap-backend/internal/usecase/places"
	"github.com/auramap/auramap-backend/internal/usecase/social"
	"github.com/auramap/auramap-backend/internal/usecase/survey"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	stampRepo := postgres.NewStampRepository(db)
	memoryRepo := postgres.NewMemoryRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	goodDeedRepo := postgres.NewGoodDeedRepository(db)
	diceGameRepo := postgres.NewDiceGameRepository(db)
	routeCache := rediscache.NewRouteCache(redisClient)

	// Shared collaborators
	placesProvider := placesclient.NewClient(&cfg.Places)
	rng := random.New()
	emitter := notification.NewEmitter(notificationRepo)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(userRepo, &cfg.JWT)
	surveyUseCase := survey.NewSurveyUseCase(userRepo)
	placesUseCase := places.NewPlacesUseCase(placesProvider, routeCache, rng)
	passportUseCase := passport.NewPassportUseCase(stampRepo, userRepo, goodDeedRepo, emitter, rng)
	socialUseCase := social.NewSocialUseCase(userRepo, memoryRepo, emitter)
	diceGameUseCase := dicegame.NewDiceGameUseCase(diceGameRepo, userRepo, emitter, rng)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	surveyHandler := handler.NewSurveyHandler(surveyUseCase)
	placesHandler := handler.NewPlacesHandler(placesUseCase)
	passportHandler := handler.NewPassportHandler(passportUseCase)
	socialHandler := handler.NewSocialHandler(socialUseCase)
	notificationHandler := handler.NewNotificationHandler(emitter)
	diceHandler := handler.NewDiceHandler(diceGameUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		surveyHandler,
		placesHandler,
		passportHandler,
		socialHandler,
		notificationHandler,
		diceHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
