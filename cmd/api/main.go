package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumeapi/docs"
	"resumeapi/internal/assist"
	"resumeapi/internal/auth"
	"resumeapi/internal/autosave"
	"resumeapi/internal/config"
	"resumeapi/internal/database"
	"resumeapi/internal/database/migration"
	"resumeapi/internal/editor"
	handlers "resumeapi/internal/http/handler"
	"resumeapi/internal/http/middleware"
	"resumeapi/internal/logging"
	"resumeapi/internal/metrics"
	"resumeapi/internal/otel"
	"resumeapi/internal/render"
	"resumeapi/internal/repository"
	"resumeapi/internal/repository/memory"
	"resumeapi/internal/repository/postgres"
	"resumeapi/internal/service"
	"resumeapi/internal/storage"
)

// @title Resume Builder API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Location(), cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server_exit", "error", err.Error())
		os.Exit(1)
	}
}

type stores struct {
	db        *sql.DB
	resumes   repository.ResumeRepository
	templates repository.TemplateRepository
	profiles  repository.ProfileRepository
}

func run(cfg *config.AppConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log, otel.SettingsFromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	if st.db != nil {
		defer st.db.Close()
	}

	// Object storage is optional; without it exports answer 503
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		minioStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
		objStore = minioStore
	} else {
		log.Warn("object_storage_disabled", "reason", "MINIO_ENDPOINT not set")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}
	collected, err := metrics.NewCollectors(reg)
	if err != nil {
		return err
	}

	// Services
	resumeSvc := service.NewResumeService(st.resumes, objStore)
	templateSvc := service.NewTemplateService(st.templates)
	profileSvc := service.NewProfileService(st.profiles)

	var printer service.PDFPrinter
	if objStore != nil {
		printer = render.NewChromePrinter(cfg.Export.ChromePath, time.Duration(cfg.Export.TimeoutSec)*time.Second)
	}
	exportSvc := service.NewExportService(resumeSvc, st.templates, render.NewHTMLRenderer(), printer, objStore,
		time.Duration(cfg.Export.URLExpirySec)*time.Second)

	// Seeding is a no-op once any template exists
	if n, err := templateSvc.Seed(ctx); err != nil {
		return err
	} else if n > 0 {
		log.Info("templates_seeded", "count", n)
	}

	completer, closeCompleter, err := assist.NewCompleter(ctx, cfg.Assist)
	if err != nil {
		return err
	}
	defer func() { _ = closeCompleter() }()
	bridge := assist.NewBridge(completer, collected, log)

	coalesce := autosave.CoalesceReplace
	if cfg.Autosave.MergePending {
		coalesce = autosave.CoalesceMerge
	}
	sessions := editor.NewManager(resumeSvc, profileSvc, editor.Options{
		Delay:            cfg.Autosave.Debounce(),
		Coalesce:         coalesce,
		RequeueOnFailure: cfg.Autosave.RequeueOnFailure,
		Observer:         collected,
		IdleTTL:          cfg.Autosave.SessionIdleTTL(),
		VoiceEnabled:     cfg.Voice.Enabled,
		Logger:           log,
	})
	if err := metrics.RegisterSessionGauge(reg, sessions.Len); err != nil {
		return err
	}
	go sessions.Run(ctx)

	jwtSvc, err := auth.NewJWTService(cfg.JWT)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:        st.db,
		Auth:      middleware.RequireAuth(jwtSvc),
		Resumes:   resumeSvc,
		Templates: templateSvc,
		Profiles:  profileSvc,
		Exports:   exportSvc,
		Assist:    bridge,
		Sessions:  sessions,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_listening", "addr", ":"+cfg.Port, "store", cfg.StoreDriver)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Stop taking requests, then flush every open edit session
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warn("http_shutdown_failed", "error", err.Error())
	}
	if err := sessions.CloseAll(shutdownCtx); err != nil {
		log.Warn("edit_session_flush_failed", "error", err.Error())
	}
	log.Info("server_stopped")
	return nil
}

func openStores(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (stores, error) {
	switch cfg.StoreDriver {
	case "memory":
		log.Warn("memory_store_enabled", "reason", "STORE_DRIVER=memory, data is lost on restart")
		return stores{
			resumes:   memory.NewResumeStore(),
			templates: memory.NewTemplateStore(),
			profiles:  memory.NewProfileStore(),
		}, nil
	case "postgres", "":
		// Initialize PostgreSQL connection (with pooling via database/sql)
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return stores{}, err
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			db.Close()
			return stores{}, err
		}
		return stores{
			db:        db,
			resumes:   postgres.NewResumePostgres(db),
			templates: postgres.NewTemplatePostgres(db),
			profiles:  postgres.NewProfilePostgres(db),
		}, nil
	default:
		return stores{}, errors.New("unknown STORE_DRIVER " + cfg.StoreDriver)
	}
}
