package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/handlers"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/middleware"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/cache"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/cart"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/catalog"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/config"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/health"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/metrics"
	repository "github.com/zizo-ux/tm-auto-elite-shop/internal/repositories"
	service "github.com/zizo-ux/tm-auto-elite-shop/internal/services"
	"github.com/zizo-ux/tm-auto-elite-shop/pkg/notify"
	"github.com/zizo-ux/tm-auto-elite-shop/pkg/sendgrid"
	"github.com/zizo-ux/tm-auto-elite-shop/pkg/vpic"
)

func main() {

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	// Shared state
	catalogStore := catalog.NewStore()
	catalogCache := cache.NewRedisCache(redisClient, cfg.Catalog.CacheTTL)
	notifier := notify.NewLogNotifier()

	cartStore, err := cart.NewStore(startupCtx, repository.NewCartStorage(redisClient), cfg.Catalog.CartStorageKey, notifier)
	if err != nil {
		slog.Error("Error restoring the cart", "error", err.Error())
		os.Exit(1)
	}

	vpicClient := vpic.NewClient(cfg.Vpic.BaseURL, cfg.Vpic.Timeout)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	// Services and handlers
	productService := service.NewProductService(repos.Product, catalogStore, catalogCache, cfg.Catalog.PageSize)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartStore, productService)
	vinService := service.NewVinService(vpicClient, catalogStore)
	vinHandler := handlers.NewVinHandler(vinService)
	diagnoseService := service.NewDiagnoseService(repos.Diagnose, emailService, cfg.SendGrid.WorkshopEmail)
	diagnoseHandler := handlers.NewDiagnoseHandler(diagnoseService)
	userService := service.NewUserService(cfg.Security)
	userHandler := handlers.NewUserHandler(userService)
	statsService := service.NewStatsService(repos.Product, repos.Diagnose, cfg.Catalog.LowStockFloor)
	statsHandler := handlers.NewStatsHandler(statsService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	// Warm the snapshot; a failure here is survivable, browsing retries.
	if err := productService.RefreshCatalog(startupCtx); err != nil {
		slog.Warn("Initial catalog load failed", "error", err.Error())
	}

	browseSession := catalog.NewSession(catalogStore, cfg.Catalog.SearchSettle, cfg.Catalog.PageSize)
	defer browseSession.Close()

	sessionHandler := handlers.NewSessionHandler(browseSession)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:          repos.DB,
		RedisClient: redisClient,
		VpicClient:  vpicClient,
	})
	if err != nil {
		slog.Error("Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	routerMux := http.NewServeMux()

	// Storefront
	routerMux.HandleFunc("GET /api/v1/catalog", productHandler.BrowseCatalog())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/search", productHandler.SearchProducts())
	routerMux.HandleFunc("GET /api/v1/session/view", sessionHandler.View())
	routerMux.HandleFunc("PUT /api/v1/session/search", sessionHandler.Search())
	routerMux.HandleFunc("PUT /api/v1/session/category", sessionHandler.SelectCategory())
	routerMux.HandleFunc("PUT /api/v1/session/sort", sessionHandler.SelectSort())
	routerMux.HandleFunc("PUT /api/v1/session/page", sessionHandler.SelectPage())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("GET /api/v1/vin/{vin}", vinHandler.LookupVin())
	routerMux.HandleFunc("POST /api/v1/diagnose", diagnoseHandler.SubmitRequest())

	// Admin
	routerMux.HandleFunc("POST /api/v1/admin/login", userHandler.Login())
	routerMux.HandleFunc("POST /api/v1/admin/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/admin/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/admin/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("POST /api/v1/admin/catalog/refresh", authMiddleware.Authenticate(productHandler.RefreshCatalog()))
	routerMux.HandleFunc("GET /api/v1/admin/diagnose", authMiddleware.Authenticate(diagnoseHandler.ListRequests()))
	routerMux.HandleFunc("GET /api/v1/admin/diagnose/{id}", authMiddleware.Authenticate(diagnoseHandler.GetRequest()))
	routerMux.HandleFunc("PUT /api/v1/admin/diagnose/{id}", authMiddleware.Authenticate(diagnoseHandler.UpdateRequest()))
	routerMux.HandleFunc("GET /api/v1/admin/stats", authMiddleware.Authenticate(statsHandler.DashboardStats()))

	// Operational
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed")
	}
}
