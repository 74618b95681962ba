package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"laundry/cmd"
	inamqp "laundry/internal/adapters/in/amqp"
	inhttp "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/rabbitmq"
	"laundry/internal/core/application/eventcache"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultAuditRetentionDays = 180

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	brokerConn := mustConnectBroker(configs)
	defer func() { _ = brokerConn.Close() }()

	app := cmd.NewCompositionRoot(configs, gormDB, brokerConn, logger)

	cache := eventcache.NewOrderCache(logger)
	seedOrderCache(&app, cache, logger)
	startConsumers(&app, brokerConn, cache, logger)

	jobManager := app.CreateJobManager(cache)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL:        goDotEnvVariable("RABBITMQ_URL"),
		TwilioAccountSID:   goDotEnvVariable("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    goDotEnvVariable("TWILIO_AUTH_TOKEN"),
		TwilioSMSFrom:      goDotEnvVariable("TWILIO_SMS_FROM"),
		TwilioWhatsAppFrom: goDotEnvVariable("TWILIO_WHATSAPP_FROM"),
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		AuditRetentionDays: auditRetentionDays(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func auditRetentionDays() int {
	raw := goDotEnvVariable("AUDIT_RETENTION_DAYS")
	if raw == "" {
		return defaultAuditRetentionDays
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		log.Fatalf("Invalid AUDIT_RETENTION_DAYS: %q", raw)
	}
	return days
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustConnectBroker(configs cmd.Config) rabbitmq.Connection {
	conn, err := rabbitmq.Connect(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	return conn
}

// seedOrderCache fills the projection from the database once at startup;
// after that, broker events are its only mutation source. A failed seed is
// not fatal since the projection converges as events arrive.
func seedOrderCache(app *cmd.CompositionRoot, cache *eventcache.OrderCache, logger *slog.Logger) {
	ctx := context.Background()

	query, err := queries.NewListOrdersQuery("")
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build seed query", "error", err)
		return
	}

	records, err := app.CreateListOrdersQueryHandler().Handle(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to seed order projection", "error", err)
		return
	}

	cache.Replace(records)
}

// startConsumers launches the broker consumers: the order event observer
// feeding the in-memory cache and the notification dispatcher feeding Twilio.
func startConsumers(app *cmd.CompositionRoot, brokerConn rabbitmq.Connection, cache *eventcache.OrderCache, logger *slog.Logger) {
	ctx := context.Background()

	eventConsumer := inamqp.NewConsumer(brokerConn, 1, logger)
	eventHandler := inamqp.NewOrderEventHandler(cache, logger)
	go func() {
		if err := eventConsumer.ConsumeOrderEvents(ctx, eventHandler.HandleOrderEvent); err != nil {
			logger.ErrorContext(ctx, "Order event consumer stopped", "error", err)
		}
	}()

	notificationConsumer := inamqp.NewConsumer(brokerConn, 8, logger)
	notificationHandler := inamqp.NewNotificationHandler(app.CreateNotifier(), logger)
	go func() {
		if err := notificationConsumer.ConsumeNotifications(ctx, notificationHandler.HandleNotification); err != nil {
			logger.ErrorContext(ctx, "Notification consumer stopped", "error", err)
		}
	}()
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	rolesHandler := app.CreateGetUserRolesQueryHandler()
	authorizer, err := inhttp.NewAuthorizer([]byte(configs.JWTSecret), rolesHandler)
	if err != nil {
		log.Fatalf("Failed to build authorizer: %v", err)
	}
	e.Use(authorizer.Middleware())

	server := inhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateRemoveOrderCommandHandler(),
		app.CreateGrantRoleCommandHandler(),
		app.CreateRevokeRoleCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateTrackOrderQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
		app.CreateListAuditRecordsQueryHandler(),
		app.CreateListUsersQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
