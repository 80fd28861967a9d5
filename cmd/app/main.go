package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/suchimauz/engineer-availability-resolver/internal/adapters/in/http"
	"github.com/suchimauz/engineer-availability-resolver/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/engineer-availability-resolver/internal/adapters/out/cache"
	"github.com/suchimauz/engineer-availability-resolver/internal/adapters/out/logger"
	"github.com/suchimauz/engineer-availability-resolver/internal/adapters/out/sheets"
	"github.com/suchimauz/engineer-availability-resolver/internal/config"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/out"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/services/availability_service"
)

func main() {
	// Локально переменные окружения берем из .env, если он есть
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger := logger.NewConsoleLogger(cfg.App.Location)
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация адаптеров
	sheetsAdapter, err := sheets.NewSheetsAdapter(ctx, cfg, mainLogger.WithModule("SheetsAdapter"))
	if err != nil {
		log.Error("app.sheets.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		lruAdapter, err := cache.NewCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = lruAdapter
	}

	// Инициализация сервиса
	availabilityService := availability_service.NewAvailabilityService(
		sheetsAdapter,
		cacheAdapter,
		mainLogger,
		cfg,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := http.NewAvailabilityController(availabilityService, cfg)
	controller.RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMq.Enabled {
		listener, err := rabbitmq.NewStoreChangeListener(
			availabilityService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
