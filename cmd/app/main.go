package main

import (
	"fmt"
	"log/slog"
	"os"

	"shop/cmd"
	shophttp "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/rabbitmq"
	"shop/internal/core/ports"
	"shop/internal/jobs"
	"shop/internal/pkg/cache"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const serviceName = "order-service"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := cmd.LoadConfig()
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	db, err := cmd.NewGormDB(config)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err = cmd.MigrateDB(db); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	var publisher ports.OrderEventPublisher = cmd.NopOrderEventPublisher{}
	if config.AmqpURL != "" {
		conn, ch, amqpErr := rabbitmq.SetupConn(config.AmqpURL)
		if amqpErr != nil {
			logger.Error("RabbitMQ connection failed", "error", amqpErr)
			os.Exit(1)
		}
		defer conn.Close()
		defer ch.Close()
		publisher = rabbitmq.NewPublisher(ch)
	} else {
		logger.Warn("AMQP_URL not set, order events will not be published")
	}

	orderCache := cache.NewRedisCache(config.RedisAddr, serviceName)

	root := cmd.NewCompositionRoot(db, publisher, orderCache)

	backlogJob := jobs.NewOrderBacklogJob(db, logger)
	if err = backlogJob.Start(); err != nil {
		logger.Error("backlog job failed to start", "error", err)
		os.Exit(1)
	}
	defer backlogJob.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	shophttp.NewServer(root.CreateDispatcher()).Register(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
