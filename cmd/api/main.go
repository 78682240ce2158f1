package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/bryanwahyu/authentiscan/internal/application"
	appchat "github.com/bryanwahyu/authentiscan/internal/application/chat"
	appverif "github.com/bryanwahyu/authentiscan/internal/application/verification"
	"github.com/bryanwahyu/authentiscan/internal/config"
	domai "github.com/bryanwahyu/authentiscan/internal/domain/ai"
	mysqlp "github.com/bryanwahyu/authentiscan/internal/infra/db/mysql"
	postgresp "github.com/bryanwahyu/authentiscan/internal/infra/db/postgres"
	"github.com/bryanwahyu/authentiscan/internal/infra/ai/gemini"
	"github.com/bryanwahyu/authentiscan/internal/infra/ai/openai"
	"github.com/bryanwahyu/authentiscan/internal/infra/capture"
	histinfra "github.com/bryanwahyu/authentiscan/internal/infra/history"
	"github.com/bryanwahyu/authentiscan/internal/infra/httpserver"
	"github.com/bryanwahyu/authentiscan/internal/infra/kv"
	"github.com/bryanwahyu/authentiscan/internal/infra/simulate"
	minioStore "github.com/bryanwahyu/authentiscan/internal/infra/storage"
	"github.com/bryanwahyu/authentiscan/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config (fails fast on missing API key)
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// history persistence backend
	checkers := map[string]middleware.HealthChecker{}
	var store kv.Store
	switch cfg.History.Backend {
	case config.BackendMySQL:
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		store, err = mysqlp.NewKVStore(ctx, db)
		if err != nil {
			log.Fatalf("mysql kv init error: %v", err)
		}
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case config.BackendPostgres:
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		store, err = postgresp.NewKVStore(ctx, db)
		if err != nil {
			log.Fatalf("postgres kv init error: %v", err)
		}
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	default:
		store = kv.NewFileStore(cfg.History.Path)
	}
	histStore := histinfra.NewStore(store)

	// AI provider
	var verifier domai.Verifier
	var assistant domai.Assistant
	switch cfg.AI.Provider {
	case config.ProviderOpenAI:
		cli, err := openai.NewClient(cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("openai init error: %v", err)
		}
		verifier, assistant = cli, cli
	default:
		cli, err := gemini.NewClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("gemini init error: %v", err)
		}
		verifier, assistant = cli, cli
	}

	// code verification is simulated; there is no decoding backend
	codeDelay := simulate.DefaultDelay
	if cfg.Scanner.CodeDelaySeconds > 0 {
		codeDelay = seconds(cfg.Scanner.CodeDelaySeconds)
	}
	codes := simulate.NewProvider(codeDelay)

	// orchestrator
	svc := appverif.New(verifier, codes, histStore, application.SystemClock{})
	svc.Timeout = time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	if err := svc.LoadHistory(ctx); err != nil {
		log.Fatalf("history load error: %v", err)
	}

	// optional preview offload to object storage
	if cfg.Minio.Enabled {
		previews, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		svc.Previews = previews
	}

	// camera capture session
	scanner := capture.NewScanner(capture.FileDevice{Path: cfg.Scanner.VideoDevice})
	if cfg.Scanner.ScanSeconds > 0 {
		scanner.ScanDelay = seconds(cfg.Scanner.ScanSeconds)
	}
	if cfg.Scanner.IndicatorSeconds > 0 {
		scanner.IndicatorDelay = seconds(cfg.Scanner.IndicatorSeconds)
	}

	chatSvc := appchat.New(assistant, application.SystemClock{})

	// init router
	mux := chi.NewRouter()
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(60, 2))
	if len(cfg.CORS.AllowedOrigins) > 0 {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	mux.Mount("/", httpserver.NewRouter(svc, chatSvc, scanner, checkers))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // scan endpoints block through capture delays
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
