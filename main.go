package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wildhearts.link/configs"
	"wildhearts.link/configs/configsdatabase"
	"wildhearts.link/configs/configslog"
	"wildhearts.link/database"
	"wildhearts.link/repositories"
	"wildhearts.link/routes"
	"wildhearts.link/services"

	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configs.InitEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	appConfig := configs.LoadAppConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	if configs.GetEnvBool("DB_AUTO_MIGRATE", false) {
		if err := database.RunMigrationsInOrder(db); err != nil {
			configslog.Log.Fatal("Otomatik migrasyon başarısız oldu", zap.Error(err))
		}
	}

	contentService := services.NewContentService(repositories.NewContentRepository(db))
	submissionService := services.NewSubmissionService(
		repositories.NewRSVPRepository(db),
		repositories.NewGuestbookRepository(db),
		appConfig.RSVPMaxGuests,
	)
	authService := services.NewAuthService(repositories.NewUserRepository(db))

	provider := services.NewWeddingProvider(contentService, submissionService)
	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	rsvps, guestbook := provider.Init(initCtx)
	cancelInit()
	if !rsvps.OK() || !guestbook.OK() {
		configslog.SLog.Warn("Listelerden en az biri yüklenemedi; site boş listelerle açılıyor.")
	}

	engine := html.New("./views", ".html")
	engine.Reload(configs.GetEnv("APP_ENV", "development") == "development")

	app := routes.NewApp(engine, appConfig)
	app.Static("/static", "./public/static")

	routes.SetupRoutes(app, routes.Dependencies{
		Provider:       provider,
		AuthService:    authService,
		SessionStore:   configs.SetupSession(),
		Config:         appConfig,
		RequestLogging: true,
	})

	go func() {
		configslog.SLog.Infof("Sunucu :%s portunda başlatılıyor...", appConfig.Port)
		if err := app.Listen(":" + appConfig.Port); err != nil {
			configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Sunucu kapatılıyor...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
	}
	configslog.SLog.Info("Sunucu kapatıldı.")
}
