package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/config"
	"venue-content-backend/internal/domains/content/attachment"
	contentHandler "venue-content-backend/internal/domains/content/handler"
	contentRepo "venue-content-backend/internal/domains/content/repository"
	contentService "venue-content-backend/internal/domains/content/service"
	dashboardHandler "venue-content-backend/internal/domains/dashboard/handler"
	dashboardService "venue-content-backend/internal/domains/dashboard/service"
	igHandler "venue-content-backend/internal/domains/instagram/handler"
	igRepo "venue-content-backend/internal/domains/instagram/repository"
	igService "venue-content-backend/internal/domains/instagram/service"
	infraCache "venue-content-backend/internal/infrastructure/cache"
	"venue-content-backend/internal/infrastructure/database"
	"venue-content-backend/internal/infrastructure/instagram"
	"venue-content-backend/internal/infrastructure/storage"
	"venue-content-backend/pkg/cache"
	"venue-content-backend/pkg/jwt"
)

// Container holds every long-lived dependency of the API process.
// Build order: config, database, redis, storage, repositories, services, handlers.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache // nil when redis is unreachable
	Storage    *storage.MinIOStorage
	Queue      *asynq.Client
	JWTManager *jwt.Manager

	// Repositories
	PerformerRepo contentRepo.PerformerRepository
	EventRepo     contentRepo.EventRepository
	DealRepo      contentRepo.DealRepository
	GalleryRepo   contentRepo.GalleryImageRepository
	VideoRepo     contentRepo.VideoRepository
	PostRepo      contentRepo.PostRepository
	HoursRepo     contentRepo.OperatingHourRepository
	OfferingRepo  contentRepo.SpecialOfferingRepository
	ContentRepo   contentRepo.VenueContentRepository
	InstagramRepo igRepo.PostRepository

	// Services
	Images           *attachment.Resolver
	PerformerService contentService.PerformerService
	EventService     contentService.EventService
	DealService      contentService.DealService
	GalleryService   contentService.GalleryImageService
	VideoService     contentService.VideoService
	PostService      contentService.PostService
	HoursService     contentService.OperatingHourService
	OfferingService  contentService.SpecialOfferingService
	ContentService   contentService.VenueContentService
	InstagramPosts   igService.PostService
	Synchronizer     *igService.Synchronizer
	Aggregator       *dashboardService.Aggregator

	// Handlers
	PerformerHandler *contentHandler.PerformerHandler
	EventHandler     *contentHandler.EventHandler
	DealHandler      *contentHandler.DealHandler
	GalleryHandler   *contentHandler.GalleryImageHandler
	VideoHandler     *contentHandler.VideoHandler
	PostHandler      *contentHandler.PostHandler
	HoursHandler     *contentHandler.OperatingHourHandler
	OfferingHandler  *contentHandler.SpecialOfferingHandler
	ContentHandler   *contentHandler.VenueContentHandler
	InstagramHandler *igHandler.Handler
	DashboardHandler *dashboardHandler.Handler
}

// NewContainer connects to the database (required), redis and object storage (both
// optional) and wires every layer on top.
func NewContainer() (*Container, error) {
	c := &Container{}

	// STEP 1: CONFIG
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// STEP 2: DATABASE
	c.DB = database.NewPostgresDB(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// STEP 3: REDIS (cache + queue)
	c.initRedis(ctx)

	// STEP 4: OBJECT STORAGE
	c.initStorage(ctx)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

// initRedis degrades to running without a cache; public pages then always hit the store.
func (c *Container) initRedis(ctx context.Context) {
	cfg := c.Config.Redis
	c.Redis = infraCache.NewRedisClient(cfg.Host, cfg.Password, cfg.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
	} else {
		c.Cache = infraCache.NewRedisCache(c.Redis.Client)
	}

	c.Queue = asynq.NewClient(RedisConnOpt(c.Config))
}

// initStorage leaves Storage nil when MinIO is not configured or unreachable, so
// uploads fail with a missing configuration error while URL fields keep working.
func (c *Container) initStorage(ctx context.Context) {
	if c.Config.MinIO.Endpoint == "" {
		log.Warn().Msg("MINIO_ENDPOINT not set, image uploads disabled")
		return
	}
	st, err := storage.NewMinIOStorage(ctx, c.Config.MinIO)
	if err != nil {
		log.Warn().Err(err).Msg("object storage unavailable, image uploads disabled")
		return
	}
	c.Storage = st
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.PerformerRepo = contentRepo.NewPerformerRepository(pool)
	c.EventRepo = contentRepo.NewEventRepository(pool)
	c.DealRepo = contentRepo.NewDealRepository(pool)
	c.GalleryRepo = contentRepo.NewGalleryImageRepository(pool)
	c.VideoRepo = contentRepo.NewVideoRepository(pool)
	c.PostRepo = contentRepo.NewPostRepository(pool)
	c.HoursRepo = contentRepo.NewOperatingHourRepository(pool)
	c.OfferingRepo = contentRepo.NewSpecialOfferingRepository(pool)
	c.ContentRepo = contentRepo.NewVenueContentRepository(pool)
	c.InstagramRepo = igRepo.NewPostRepository(pool)
}

func (c *Container) initServices() {
	// A typed nil *MinIOStorage must not reach the resolver as a non-nil interface.
	var store attachment.Storage
	if c.Storage != nil {
		store = c.Storage
	}
	c.Images = attachment.NewResolver(store, storage.NewImageProcessor(c.Config.Upload.MaxDimension))

	c.PerformerService = contentService.NewPerformerService(c.PerformerRepo, c.Images)
	c.EventService = contentService.NewEventService(c.EventRepo, c.Images)
	c.DealService = contentService.NewDealService(c.DealRepo, c.Images)
	c.GalleryService = contentService.NewGalleryImageService(c.GalleryRepo, c.Images)
	c.VideoService = contentService.NewVideoService(c.VideoRepo, c.Images)
	c.PostService = contentService.NewPostService(c.PostRepo, c.Images)
	c.HoursService = contentService.NewOperatingHourService(c.HoursRepo)
	c.OfferingService = contentService.NewSpecialOfferingService(c.OfferingRepo, c.Images)
	c.ContentService = contentService.NewVenueContentService(c.ContentRepo)

	c.InstagramPosts = igService.NewPostService(c.InstagramRepo)
	c.Synchronizer = NewSynchronizer(c.Config, c.InstagramRepo)

	c.Aggregator = dashboardService.NewAggregator(dashboardService.Repositories{
		Performers: c.PerformerRepo,
		Events:     c.EventRepo,
		Deals:      c.DealRepo,
		Gallery:    c.GalleryRepo,
		Videos:     c.VideoRepo,
		Posts:      c.PostRepo,
		Hours:      c.HoursRepo,
		Offerings:  c.OfferingRepo,
		Content:    c.ContentRepo,
		Instagram:  c.InstagramRepo,
	})
}

func (c *Container) initHandlers() {
	maxUpload := c.Config.Upload.MaxBytes

	c.PerformerHandler = contentHandler.NewPerformerHandler(c.PerformerService, maxUpload)
	c.EventHandler = contentHandler.NewEventHandler(c.EventService, maxUpload)
	c.DealHandler = contentHandler.NewDealHandler(c.DealService, maxUpload)
	c.GalleryHandler = contentHandler.NewGalleryImageHandler(c.GalleryService, maxUpload)
	c.VideoHandler = contentHandler.NewVideoHandler(c.VideoService, maxUpload)
	c.PostHandler = contentHandler.NewPostHandler(c.PostService, maxUpload)
	c.HoursHandler = contentHandler.NewOperatingHourHandler(c.HoursService, maxUpload)
	c.OfferingHandler = contentHandler.NewSpecialOfferingHandler(c.OfferingService, maxUpload)
	c.ContentHandler = contentHandler.NewVenueContentHandler(c.ContentService, maxUpload)

	c.InstagramHandler = igHandler.NewHandler(c.InstagramPosts, c.Synchronizer, c.Queue)
	c.DashboardHandler = dashboardHandler.NewHandler(c.Aggregator, c.Cache, dashboardHandler.Config{
		PageTTL:  c.Config.Cache.PageTTL,
		StaleTTL: c.Config.Cache.StaleTTL,
	})
}

// NewSynchronizer builds the Instagram sync for both the API and the worker process.
func NewSynchronizer(cfg *config.Config, repo igRepo.PostRepository) *igService.Synchronizer {
	return igService.NewSynchronizer(instagram.NewClient(cfg.Instagram), repo)
}

// RedisConnOpt is the asynq connection shared by the client, worker and scheduler.
func RedisConnOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
}

// Cleanup releases connections; call during graceful shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("cleaning up container resources")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close task queue client")
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("container cleanup completed")
}
