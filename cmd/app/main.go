package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres/assignmentrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/perfrepo"
	"fooddelivery/internal/jobs"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateRefreshAgentPerformanceCommandHandler(),
		configs.RollupSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		RollupSchedule: goDotEnvVariable("PERFORMANCE_ROLLUP_SCHEDULE"),
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

// mustConnectDB opens the database, waiting for it to come up.
// The container may start before postgres accepts connections.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	open := func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{
			TranslateError: true,
		})
	}

	gormDB, err := backoff.RetryWithData(
		open,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 10),
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&assignmentrepo.AssignedOrderDTO{},
		&assignmentrepo.DeliveryDataDTO{},
		&perfrepo.AgentPerformanceDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateReportTransitStatusCommandHandler(),
		app.CreateGetBacklogQueryHandler(),
		app.CreateGetAgentQueueQueryHandler(),
		app.CreateGetAgentDeliveriesQueryHandler(),
		app.CreateGetCustomerHistoryQueryHandler(),
		app.CreateGetDeliveryKPIQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
