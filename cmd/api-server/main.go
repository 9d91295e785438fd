package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"menuhub/internal/appearance"
	"menuhub/internal/auth"
	"menuhub/internal/bilingual"
	"menuhub/internal/catalog"
	"menuhub/internal/live"
	"menuhub/internal/translate"
	"menuhub/internal/upload"
	"menuhub/pkg/database"
	"menuhub/pkg/utils"
)

func main() {
	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	catalogRepo := catalog.NewRepo(db)
	if err := catalogRepo.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	srvCfg := utils.LoadServerConfig()
	trCfg := utils.LoadTranslateConfig()

	// Translation cache over the external provider
	memo := translate.NewMemoizer(translate.NewMyMemory(trCfg))
	engine := bilingual.NewEngine(memo, trCfg.PrimaryTag, trCfg.SecondaryTag)

	// Live menu updates
	hub := live.NewHub()
	router.GET("/ws/menu", live.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": hub.Count(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": hub.Count(),
			"cache_size": memo.Len(),
		})
	})

	// Auth
	authCfg := utils.LoadAuthConfig()
	admin, err := auth.NewAdmin(authCfg)
	if err != nil {
		log.Fatalf("admin setup failed: %v", err)
	}
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authHandler := auth.NewHandler(admin, tokenSvc)
	authHandler.RegisterRoutes(router.Group("/auth"))

	// Public surface
	public := router.Group("/")
	catalogHandler := catalog.NewHandler(catalogRepo, engine, hub)
	catalogHandler.RegisterPublicRoutes(public)

	translateHandler := translate.NewHandler(memo, trCfg.SecondaryTag)
	translateHandler.RegisterRoutes(public)

	bgStore := appearance.NewStore("background.json")
	bgHandler := appearance.NewHandler(bgStore, "/static/uploads")
	bgHandler.RegisterPublicRoutes(public)

	// Uploaded media
	router.Static("/static/uploads", srvCfg.UploadDir)

	// Admin surface
	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(tokenSvc))
	catalogHandler.RegisterProtectedRoutes(protected)
	bgHandler.RegisterProtectedRoutes(protected)

	saver, err := upload.NewSaver(srvCfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir setup failed: %v", err)
	}
	uploadHandler := upload.NewHandler(saver)
	uploadHandler.RegisterProtectedRoutes(protected)

	httpSrv := &http.Server{
		Addr:    srvCfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", srvCfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
