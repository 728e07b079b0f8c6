package main // Entry point package

import (
	"context"   // context drives shutdown
	"errors"    // errors recognises http.ErrServerClosed
	"net"       // net joins host and port for log lines
	"net/http"  // http runs the server
	"os"        // os provides the interrupt signal
	"os/signal" // signal turns SIGINT/SIGTERM into context cancellation
	"syscall"   // syscall names SIGTERM
	"time"      // time sets timeouts

	"github.com/labstack/echo/v4"                   // echo is the web framework
	echomw "github.com/labstack/echo/v4/middleware" // echo middleware for recover and body limits
	"github.com/redis/go-redis/v9"                  // redis client for cache and limiter
	"go.uber.org/zap"                               // zap structured logging

	"github.com/iliyamo/musician-site/internal/config"     // config loads environment settings
	"github.com/iliyamo/musician-site/internal/content"    // content resolves the public site data
	"github.com/iliyamo/musician-site/internal/database"   // database opens MySQL and owns the schema
	"github.com/iliyamo/musician-site/internal/handler"    // handler implements the endpoints
	"github.com/iliyamo/musician-site/internal/limiter"    // limiter throttles login attempts
	"github.com/iliyamo/musician-site/internal/logging"    // logging builds the zap logger
	"github.com/iliyamo/musician-site/internal/mail"       // mail sends booking notifications
	"github.com/iliyamo/musician-site/internal/middleware" // middleware for auth, cache, limits and logging
	"github.com/iliyamo/musician-site/internal/queue"      // queue publishes and consumes booking events
	"github.com/iliyamo/musician-site/internal/repository" // repository provides ErrNotFound and the repos
	"github.com/iliyamo/musician-site/internal/router"     // router registers the routes
	"github.com/iliyamo/musician-site/internal/service"    // service runs the booking workflow
	"github.com/iliyamo/musician-site/internal/storage"    // storage validates and stores uploads
	"github.com/iliyamo/musician-site/internal/utils"      // utils holds token, password and video helpers
	"github.com/iliyamo/musician-site/internal/web"        // web renders the embedded templates
)

func main() {
	cfg, err := config.Load()
	logger := logging.New(cfg.IsDev())
	defer func() { _ = logger.Sync() }()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if cfg.UsingDefaultPassword() {
		logger.Warn("ADMIN_PASSWORD is not set, using the default password")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("invalid database settings", zap.Error(err))
	}
	defer db.Close()
	// an unreachable database degrades the site to its static content
	dbUp := true
	if err := database.Ping(ctx, db); err != nil {
		dbUp = false
		logger.Warn("database unreachable, serving defaults until it recovers",
			zap.String("addr", net.JoinHostPort(cfg.DBHost, cfg.DBPort)), zap.Error(err))
	}
	if cfg.DBAutoMigrate && !dbUp {
		logger.Warn("DB_AUTO_MIGRATE skipped, database unreachable; use POST /api/setup later")
	} else if cfg.DBAutoMigrate {
		mctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := database.Migrate(mctx, db)
		cancel()
		if err != nil {
			logger.Fatal("schema migration failed", zap.Error(err))
		}
		logger.Info("schema applied")
	}

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	} else if cfg.Redis.Enabled {
		logger.Warn("redis unreachable, cache and token bucket disabled", zap.String("addr", cfg.Redis.Addr))
	}

	repos := repository.NewRepos(db)
	cache := middleware.NewCacheInvalidator(rdb, cfg.Cache.Prefix, logger)

	resolver := content.NewResolver(repos, logger, content.Options{
		ReadTimeout:      cfg.Content.ReadTimeout,
		BreakerFailures:  cfg.Content.BreakerFailures,
		BreakerOpenFor:   cfg.Content.BreakerOpenFor,
		BreakerHalfOpens: cfg.Content.BreakerHalfOpens,
	})

	tokens := utils.NewAdminTokens(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL, nil)
	attempts := newAttemptLimiter(ctx, cfg.Auth, rdb, logger)

	bookings := &service.BookingService{
		Store: repos.Bookings,
		From:  cfg.Mail.From,
		To:    cfg.Mail.BookingTo,
		Log:   logger.Named("booking"),
	}
	if cfg.Queue.Enabled {
		bookings.Publisher = queue.NewPublisher(cfg.Queue.URL, cfg.Queue.BookingQueue, logger.Named("queue"))
	}
	if cfg.Mail.APIKey != "" {
		bookings.Mailer = mail.NewResendClient(cfg.Mail.APIKey, cfg.Mail.Endpoint)
	} else {
		logger.Info("RESEND_API_KEY not set, booking emails disabled")
	}
	if cfg.Queue.ConsumerEnabled {
		consumer := queue.NewConsumer(cfg.Queue.URL, cfg.Queue.BookingQueue, cfg.Queue.LogDir, logger.Named("booking-consumer"))
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("booking consumer stopped", zap.Error(err))
			}
		}()
	}

	if !cfg.Storage.Configured() {
		logger.Warn("object storage not configured, uploads will fail")
	}
	uploader := storage.NewUploader(storage.NewS3Store(cfg.Storage), cfg.Storage)

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger.Named("http")))

	adminAuth := middleware.AdminAuth(tokens)
	bucket := middleware.NewTokenBucket(cfg.RateLimit, rdb, logger.Named("ratelimit"))
	bookingHandler := handler.NewBookingHandler(bookings, repos.Bookings, logger)

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(resolver), middleware.NewContentCache(cfg.Cache, rdb))
	router.RegisterAuth(e, handler.NewAuthHandler(cfg.Auth.Password, attempts, tokens, logger.Named("auth")), bucket)
	router.RegisterBooking(e, bookingHandler, bucket, adminAuth)
	router.RegisterAdmin(e, router.Admin{
		Tracks:        handler.NewTracksHandler(repos.Tracks, cache, logger),
		Gallery:       handler.NewGalleryHandler(repos.Gallery, cache, logger),
		Services:      handler.NewServicesHandler(repos.Services, cache, logger),
		Socials:       handler.NewSocialsHandler(repos.Socials, cache, logger),
		NavLinks:      handler.NewNavLinksHandler(repos.NavLinks, cache, logger),
		Events:        handler.NewEventsHandler(repos.Events, cache, logger),
		Videos:        handler.NewVideosHandler(repos.Videos, cache, logger),
		ServicesOrder: handler.NewReorderHandler("services", repos.Services, cache, logger),
		SocialsOrder:  handler.NewReorderHandler("socials", repos.Socials, cache, logger),
		NavLinksOrder: handler.NewReorderHandler("navLinks", repos.NavLinks, cache, logger),
		Content:       handler.NewContentHandler(repos.Content, cache, logger),
		Bookings:      bookingHandler,
		Upload:        handler.NewUploadHandler(uploader, logger),
		Setup:         handler.NewSetupHandler(database.Schema{DB: db}, database.SchemaSQL(), logger),
	}, adminAuth)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}

// newAttemptLimiter picks the login attempt store.  The redis backend
// falls back to memory when no client is available.
func newAttemptLimiter(ctx context.Context, cfg config.AuthConfig, rdb *redis.Client, log *zap.Logger) *limiter.Limiter {
	if cfg.Backend == "redis" {
		if rdb != nil {
			return limiter.New(limiter.NewRedisStore(rdb, cfg.Prefix, cfg.Window), cfg.MaxAttempts, nil)
		}
		log.Warn("AUTH_LIMIT_BACKEND=redis but redis is unavailable, using memory")
	}
	store := limiter.NewMemoryStore(cfg.Window, cfg.MaxTracked)
	store.StartJanitor(ctx, time.Minute, log.Named("limiter"))
	return limiter.New(store, cfg.MaxAttempts, nil)
}
