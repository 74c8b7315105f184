package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-calendar-manager/internal/api"
	"github.com/sanosuguru/go-calendar-manager/internal/api/handler"
	appmiddleware "github.com/sanosuguru/go-calendar-manager/internal/api/middleware"
	"github.com/sanosuguru/go-calendar-manager/internal/application"
	"github.com/sanosuguru/go-calendar-manager/internal/config"
	"github.com/sanosuguru/go-calendar-manager/internal/infrastructure/jsonfile"
	"github.com/sanosuguru/go-calendar-manager/internal/pkg/logger"
	"github.com/sanosuguru/go-calendar-manager/internal/pkg/metrics"
	"github.com/sanosuguru/go-calendar-manager/internal/worker"
)

func main() {
	// .env があれば読み込む（ローカル開発用）
	_ = godotenv.Load()

	cfg := config.Load()

	logger.Set(logger.NewLogger(cfg.Env))
	defer func() { _ = logger.Sync() }()

	m := metrics.Init()

	// ストアとサービスの初期化
	store := jsonfile.New(cfg.Storage.FilePath)
	calendarService := application.NewCalendarService(store)

	// Echo インスタンス作成
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler

	// ミドルウェア設定
	appmiddleware.SetupMiddleware(e)
	e.Use(appmiddleware.PrometheusMiddleware(m))

	// ルーティング
	eventHandler := handler.NewEventHandler(calendarService)
	healthHandler := handler.NewHealthHandler()

	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)
	v1.POST("/events", eventHandler.Create)
	v1.GET("/events", eventHandler.List)
	v1.GET("/events/search", eventHandler.Search)
	v1.GET("/events/:id", eventHandler.GetByID)
	v1.PUT("/events/:id", eventHandler.Update)
	v1.DELETE("/events/:id", eventHandler.Delete)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), appmiddleware.MetricsBasicAuth())

	// リマインダーワーカー起動
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	notifier := worker.NewReminderNotifier(calendarService, cfg.Worker.ReminderInterval, cfg.Worker.ReminderWindow)
	go notifier.Start(workerCtx)

	// サーバー起動
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := e.StartServer(srv); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	notifier.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
