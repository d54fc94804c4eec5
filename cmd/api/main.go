package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"real-estate-publications/docs"
	"real-estate-publications/internal/config"
	"real-estate-publications/internal/database"
	"real-estate-publications/internal/handlers"
	"real-estate-publications/internal/logging"
	"real-estate-publications/internal/publication"
	"real-estate-publications/internal/ratelimit"
	"real-estate-publications/internal/scheduler"
	"real-estate-publications/internal/search"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("failed to load .env", "err", err)
	}

	// Load configuration
	configPath := getEnv("CONFIG_PATH", "config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("failed to load config", "path", configPath, "err", err)
		os.Exit(1)
	}

	logger := logging.Init(appConfig.Logging.Level, appConfig.Logging.Format)
	logger.Info("configuration loaded", "path", configPath, "database", appConfig.Database.Type)

	debug := strings.EqualFold(appConfig.Logging.Level, "debug")
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database based on configuration
	gormDB, err := database.Open(appConfig.Database, debug)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer gormDB.Close()

	// Search mirror and its reindex scheduler are optional
	var (
		indexer   publication.Indexer
		reindexer handlers.Reindexer
	)
	if host := appConfig.Search.Meilisearch.Host; host != "" {
		searchClient := search.NewSearchClient(host, appConfig.Search.Meilisearch.APIKey, appConfig.Search.Meilisearch.Index)
		if err := searchClient.InitIndex(); err != nil {
			logger.Warn("failed to initialize search index", "err", err)
		}
		indexer = search.NewGuardedIndexer(searchClient, search.NewCircuitBreaker(3, time.Minute))

		appScheduler := scheduler.NewScheduler(searchClient, gormDB, appConfig.Search.ReindexCron)
		if err := appScheduler.Start(); err != nil {
			logger.Warn("failed to start scheduler", "err", err)
		}
		defer appScheduler.Stop()
		reindexer = appScheduler
	} else {
		logger.Info("search mirror disabled, no meilisearch host configured")
	}

	service := publication.NewService(gormDB, indexer, logger)

	// Initialize rate limiter
	rl := appConfig.RateLimit
	rateLimiter := ratelimit.NewRateLimiter(rl.RequestsPerMinute, rl.RequestsPerHour, rl.RequestsPerDay, rl.Enabled)
	logger.Info("rate limiter initialized",
		"per_minute", rl.RequestsPerMinute, "per_hour", rl.RequestsPerHour, "per_day", rl.RequestsPerDay, "enabled", rl.Enabled)

	r := newRouter(appConfig, logger, gormDB, service, reindexer, rateLimiter)

	srv := &http.Server{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", appConfig.Server.Port, "base_path", appConfig.Server.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.GetShutdownGrace())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

func newRouter(
	appConfig *config.Config,
	logger *slog.Logger,
	gormDB *database.GormDB,
	service *publication.Service,
	reindexer handlers.Reindexer,
	rateLimiter *ratelimit.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestID())
	if appConfig.Logging.LogRequests {
		r.Use(handlers.RequestLogger(logger))
	}

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
		ExposeHeaders:    []string{"Location", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.Health(gormDB))

	basePath := appConfig.Server.BasePath
	api := r.Group(basePath, handlers.Timeout(appConfig.Server.GetRequestTimeout()))

	handlers.NewPublicationHandler(service, basePath, logger).Register(api, rateLimiter.Middleware())
	handlers.NewAdminHandler(gormDB, reindexer, rateLimiter, logger).Register(api)

	// API documentation
	docs.SwaggerInfo.BasePath = basePath
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	if dir := appConfig.Frontend.DistDir; dir != "" {
		logger.Info("serving frontend", "dir", dir)
		r.NoRoute(spaHandler(dir, basePath))
	} else {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/swagger/index.html")
		})
	}

	return r
}

// spaHandler serves files from dir and falls back to index.html so client-side
// routes resolve. Unknown API paths still answer 404.
func spaHandler(dir, basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead ||
			basePath != "" && basePath != "/" && strings.HasPrefix(reqPath, basePath+"/") {
			c.JSON(http.StatusNotFound, handlers.Problem{
				Title:  "Not found",
				Detail: "no resource matches " + reqPath + ".",
				Status: http.StatusNotFound,
			})
			return
		}

		file := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+reqPath)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
