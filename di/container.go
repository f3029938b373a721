package di

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"roomshare-server/api"
	"roomshare-server/api/radar"
	"roomshare-server/config"
	daopg "roomshare-server/dao/postgres"
	daoredis "roomshare-server/dao/redis"
	"roomshare-server/db"
	"roomshare-server/logger"
	"roomshare-server/server"
	"roomshare-server/server/handlers"
	services "roomshare-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config      *config.Config
	Log         logger.Logger
	Postgres    *db.PostgresClient
	RedisClient db.RedisClient

	ListingDAO *daopg.ListingDAO
	UserDAO    *daopg.UserDAO
	MessageDAO *daopg.MessageDAO
	BookingDAO *daopg.BookingDAO
	SessionDAO *daoredis.SessionDAO
	MapCache   *daoredis.MapCacheDAO
	Limiter    *daoredis.RateLimiter

	PlacesAPI radar.PlacesAPI

	SearchService       *services.ListingSearchService
	ListingService      *services.ListingService
	MessageService      *services.MessageService
	BookingService      *services.BookingService
	NotificationService *services.NotificationService
	CacheRefresher      *services.MapCacheRefresherService

	MuxRouter  *mux.Router
	Router     *server.Router
	HttpServer *server.RoomshareHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("initializing container", map[string]interface{}{"env": cfg.App.Environment})

	ctx := context.Background()

	pg, err := db.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Database.Redis.Address,
		Password: cfg.Database.Redis.Password,
		DB:       cfg.Database.Redis.DB,
	})
	redisClient := db.NewCacheRedisClient(redisInternalClient)
	if err := redisClient.Ping(ctx); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	listingDao := daopg.NewListingDAO(pg.DB)
	userDao := daopg.NewUserDAO(pg.DB)
	messageDao := daopg.NewMessageDAO(pg.DB)
	bookingDao := daopg.NewBookingDAO(pg.DB)
	sessionDao := daoredis.NewSessionDAO(redisClient)
	mapCache := daoredis.NewMapCacheDAO(redisClient)
	limiter := daoredis.NewRateLimiter(redisClient, cfg.Server.RateLimitPerMin, time.Minute)

	// Without a Radar key the nearby feature degrades to 503; outside of
	// prod the canned mock answers instead.
	var placesAPI radar.PlacesAPI
	if cfg.App.Environment != "prod" {
		placesAPI = radar.NewRadarApiClientMock()
		log.Info("using mock places api", nil)
	} else {
		placesAPI = radar.NewRadarApiClient(api.NewHTTPClient(cfg.Radar.BaseURL))
		placesAPI.SetCredentials(cfg.Radar.SecretKey)
	}

	var sesClient services.SESService
	if cfg.Email.Sender != "" {
		sesClient, err = services.NewSESClient(ctx, cfg.Email)
		if err != nil {
			log.Warn("email disabled", map[string]interface{}{"error": err.Error()})
			sesClient = nil
		}
	}
	notifier := services.NewNotificationService(sesClient, cfg.Email.Sender, log)

	searchService := services.NewListingSearchService(listingDao, mapCache, cfg.Search, log)
	listingService := services.NewListingService(listingDao, userDao, bookingDao, mapCache, notifier, cfg.Search, log)
	messageService := services.NewMessageService(messageDao, userDao, notifier, log)
	bookingService := services.NewBookingService(bookingDao, listingDao, userDao, notifier, log)
	cacheRefresher := services.NewMapCacheRefresherService(searchService, log)

	listingHandler := handlers.NewListingHandler(searchService, listingService, cfg.Search, log)
	nearbyHandler := handlers.NewNearbyHandler(placesAPI, cfg.Radar, cfg.Search, log)
	messageHandler := handlers.NewMessageHandler(messageService, log)
	bookingHandler := handlers.NewBookingHandler(bookingService, log)
	debugHandler := handlers.NewDebugHandler(searchService, cfg.Search, log)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(
		listingHandler, nearbyHandler, messageHandler, bookingHandler, debugHandler,
		sessionDao, limiter, log, muxRouter,
		cfg.App.Environment != "prod",
	)
	httpServer := server.NewRoomshareHttpServer(router, muxRouter, cfg.Server.Addr, log)

	return &Container{
		Config:              cfg,
		Log:                 log,
		Postgres:            pg,
		RedisClient:         redisClient,
		ListingDAO:          listingDao,
		UserDAO:             userDao,
		MessageDAO:          messageDao,
		BookingDAO:          bookingDao,
		SessionDAO:          sessionDao,
		MapCache:            mapCache,
		Limiter:             limiter,
		PlacesAPI:           placesAPI,
		SearchService:       searchService,
		ListingService:      listingService,
		MessageService:      messageService,
		BookingService:      bookingService,
		NotificationService: notifier,
		CacheRefresher:      cacheRefresher,
		MuxRouter:           muxRouter,
		Router:              router,
		HttpServer:          httpServer,
	}, nil
}
