package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pentamorph/riskshape/internal/cache"
	"github.com/pentamorph/riskshape/internal/catalog"
	"github.com/pentamorph/riskshape/internal/compare"
	"github.com/pentamorph/riskshape/internal/contribution"
	"github.com/pentamorph/riskshape/internal/encoding"
	"github.com/pentamorph/riskshape/internal/errors"
	"github.com/pentamorph/riskshape/internal/explain"
	"github.com/pentamorph/riskshape/internal/frontend"
	"github.com/pentamorph/riskshape/internal/geometry"
	"github.com/pentamorph/riskshape/internal/middleware"
	"github.com/pentamorph/riskshape/internal/monitoring"
	"github.com/pentamorph/riskshape/internal/playback"
	"github.com/pentamorph/riskshape/internal/security"
	"github.com/pentamorph/riskshape/internal/types"
)

// application bundles the long-lived services the handlers close over.
type application struct {
	registry    *catalog.Registry
	geometryCfg geometry.Config
	playback    *playback.Manager
	metrics     *monitoring.Metrics
	logger      *monitoring.Logger
	cache       *cache.Cache
	compression *middleware.CompressionMiddleware
	security    *security.SecurityMiddleware
}

func newApplication(cacheTTL time.Duration, playbackBase time.Duration, seedOffset int64) *application {
	metrics := monitoring.NewMetrics()

	return &application{
		registry:    catalog.NewRegistryWithSeedOffset(seedOffset),
		geometryCfg: geometry.DefaultConfig(),
		playback:    playback.NewManager(playbackBase, metrics.IncrementPlaybackTick),
		metrics:     metrics,
		logger:      monitoring.NewLogger(),
		cache:       cache.NewCache(cacheTTL),
		compression: middleware.NewCompressionMiddleware(middleware.DefaultCompressionConfig()),
		security:    security.NewSecurityMiddleware(security.DefaultSecurityConfig(), metrics.IncrementRateLimitIPBlock),
	}
}

// abortWith logs the error and writes the structured error body.
func abortWith(c *gin.Context, appErr *errors.AppError) {
	errors.LogError(c, appErr)
	c.JSON(appErr.HTTPStatus, appErr)
}

// lookupSystem resolves the :id route param, writing the 404 itself on miss.
func (app *application) lookupSystem(c *gin.Context) (*types.SystemData, bool) {
	id := c.Param("id")
	sys, ok := app.registry.Get(id)
	if !ok {
		abortWith(c, errors.NewNotFoundError("system", id))
		return nil, false
	}
	return sys, true
}

// parseDay resolves a day value against the system's series length.
func parseDay(c *gin.Context, raw string, days int) (int, bool) {
	day, err := strconv.Atoi(raw)
	if err != nil {
		abortWith(c, errors.NewValidationError("day must be an integer", raw))
		return 0, false
	}
	if day < 0 || day >= days {
		abortWith(c, errors.NewValidationError("day out of range", raw))
		return 0, false
	}
	return day, true
}

func (app *application) setupRouter() *gin.Engine {
	r := gin.New()

	r.Use(app.compression.Handler())
	r.Use(monitoring.MonitoringMiddleware(app.metrics, app.logger))
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	r.Use(app.security.CORS())
	r.Use(app.security.SecurityHeaders)
	r.Use(app.security.RequestTimeout)
	r.Use(app.security.ValidateContentType)
	r.Use(app.security.RateLimitByIP)
	r.Use(security.CSPMiddleware())

	r.Use(app.cache.Middleware(app.metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
			"systems":   len(app.registry.List()),
			"metrics":   app.metrics.GetStats(),
		})
	})

	api := r.Group("/api")

	api.GET("/systems", func(c *gin.Context) {
		c.JSON(http.StatusOK, app.registry.List())
	})

	api.GET("/systems/:id", func(c *gin.Context) {
		sys, ok := app.lookupSystem(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sys)
	})

	api.GET("/systems/:id/series", func(c *gin.Context) {
		sys, ok := app.lookupSystem(c)
		if !ok {
			return
		}

		// Series payloads are the largest responses; marshal through the
		// pooled encoder and hand gin the raw bytes.
		data, err := encoding.Marshal(gin.H{
			"system_id":        sys.ID,
			"days":             sys.Days(),
			"pentadic_series":  sys.PentadicSeries,
			"invariant_series": sys.InvariantSeries,
			"subscores":        sys.Subscores,
		})
		if err != nil {
			abortWith(c, errors.NewInternalError("failed to encode series", err))
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	})

	api.GET("/systems/:id/day/:day", func(c *gin.Context) {
		sys, ok := app.lookupSystem(c)
		if !ok {
			return
		}
		day, ok := parseDay(c, c.Param("day"), sys.Days())
		if !ok {
			return
		}

		snap, _ := app.registry.Snapshot(sys.ID, day)
		render := geometry.MapProfile(snap.Pentadic, app.geometryCfg)
		shapeClass := geometry.Classify(snap.Pentadic)

		app.metrics.IncrementGeometryCompute()
		app.logger.GeometryLogger(sys.ID, day, string(shapeClass), render.ShouldPulse)

		c.JSON(http.StatusOK, gin.H{
			"snapshot":    snap,
			"render":      render,
			"shape_class": shapeClass,
			"area":        geometry.Area(snap.Pentadic),
		})
	})

	api.GET("/systems/:id/geometry/:day", func(c *gin.Context) {
		sys, ok := app.lookupSystem(c)
		if !ok {
			return
		}
		day, ok := parseDay(c, c.Param("day"), sys.Days())
		if !ok {
			return
		}

		app.metrics.IncrementGeometryCompute()
		c.JSON(http.StatusOK, geometry.MapProfile(sys.PentadicSeries[day], app.geometryCfg))
	})

	api.GET("/contributions", func(c *gin.Context) {
		full := make(map[types.Invariant]map[types.Dimension]float64, len(types.Invariants))
		for _, inv := range types.Invariants {
			full[inv] = contribution.ForInvariant(inv)
		}
		c.JSON(http.StatusOK, gin.H{
			"table":  full,
			"values": []float64{0.2, 0.5, 0.8},
		})
	})

	api.GET("/contributions/:invariant", func(c *gin.Context) {
		inv := types.Invariant(c.Param("invariant"))
		known := false
		for _, candidate := range types.Invariants {
			if candidate == inv {
				known = true
				break
			}
		}
		if !known {
			abortWith(c, errors.NewNotFoundError("invariant", string(inv)))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"invariant":     inv,
			"contributions": contribution.ForInvariant(inv),
		})
	})

	api.GET("/explain/:level", func(c *gin.Context) {
		entries, ok := explain.ForLevel(explain.Level(c.Param("level")))
		if !ok {
			abortWith(c, errors.NewNotFoundError("explanation level", c.Param("level")))
			return
		}
		c.JSON(http.StatusOK, entries)
	})

	api.GET("/compare", func(c *gin.Context) {
		idA := c.Query("a")
		idB := c.Query("b")
		sysA, okA := app.registry.Get(idA)
		if !okA {
			abortWith(c, errors.NewNotFoundError("system", idA))
			return
		}
		sysB, okB := app.registry.Get(idB)
		if !okB {
			abortWith(c, errors.NewNotFoundError("system", idB))
			return
		}

		dayA, ok := parseDay(c, c.DefaultQuery("dayA", "0"), sysA.Days())
		if !ok {
			return
		}
		dayB, ok := parseDay(c, c.DefaultQuery("dayB", "0"), sysB.Days())
		if !ok {
			return
		}

		snapA, _ := app.registry.Snapshot(idA, dayA)
		snapB, _ := app.registry.Snapshot(idB, dayB)

		app.metrics.IncrementComparison()
		c.JSON(http.StatusOK, compare.Snapshots(snapA, snapB, app.geometryCfg))
	})

	api.POST("/playback", func(c *gin.Context) {
		var req types.PlaybackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWith(c, errors.NewValidationError("invalid playback request", err.Error()))
			return
		}
		if req.Speed == 0 {
			req.Speed = 1
		}

		sys, ok := app.registry.Get(req.SystemID)
		if !ok {
			abortWith(c, errors.NewNotFoundError("system", req.SystemID))
			return
		}

		state, err := app.playback.Start(sys.ID, sys.Days(), 0, req.Speed)
		if err != nil {
			abortWith(c, errors.NewValidationError(err.Error()))
			return
		}

		app.metrics.IncrementPlaybackStart()
		app.logger.PlaybackLogger("started", state.ID, state.SystemID, state.Speed)
		c.JSON(http.StatusCreated, state)
	})

	api.GET("/playback/:id", func(c *gin.Context) {
		state, ok := app.playback.Get(c.Param("id"))
		if !ok {
			abortWith(c, errors.NewNotFoundError("playback session", c.Param("id")))
			return
		}
		c.JSON(http.StatusOK, state)
	})

	api.DELETE("/playback/:id", func(c *gin.Context) {
		id := c.Param("id")
		state, ok := app.playback.Get(id)
		if !ok || !app.playback.Stop(id) {
			abortWith(c, errors.NewNotFoundError("playback session", id))
			return
		}

		app.metrics.IncrementPlaybackStop()
		app.logger.PlaybackLogger("stopped", id, state.SystemID, state.Speed)
		c.JSON(http.StatusOK, gin.H{"stopped": id})
	})

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, app.metrics.GetStats())
	})

	r.GET("/cache/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, app.cache.Stats())
	})

	r.GET("/pools/compression", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"pool":  "compression",
			"stats": app.compression.GetStats(),
		})
	})

	// Embedded viewer with SPA fallback for everything unrouted
	distFS, err := frontend.GetDistFS()
	if err != nil {
		slog.Error("Failed to load embedded frontend", "error", err)
		os.Exit(1)
	}
	indexTemplate, err := frontend.LoadIndexTemplate(distFS)
	if err != nil {
		slog.Error("Failed to load index template", "error", err)
		os.Exit(1)
	}
	r.NoRoute(frontend.NewSPAHandler(distFS, indexTemplate))

	return r
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	port := getEnvOrDefault("PORT", "8080")
	cacheTTL := getEnvDuration("CACHE_TTL", 15*time.Minute)
	playbackBase := getEnvDuration("PLAYBACK_BASE_INTERVAL", playback.DefaultBaseInterval)
	seedOffset := getEnvInt64("DATASET_SEED_OFFSET", 0)

	app := newApplication(cacheTTL, playbackBase, seedOffset)
	r := app.setupRouter()

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port, "systems", len(app.registry.List()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app.playback.StopAll()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}
