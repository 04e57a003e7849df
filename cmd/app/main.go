package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"profast/cmd"
	httpadapter "profast/internal/adapters/in/http"
	"profast/internal/adapters/out/identity"
	"profast/internal/adapters/out/postgres/parcelrepo"
	"profast/internal/adapters/out/postgres/paymentrepo"
	"profast/internal/adapters/out/postgres/riderrepo"
	"profast/internal/adapters/out/postgres/userrepo"
	"profast/internal/adapters/out/stripegw"
	"profast/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	root := cmd.NewCompositionRoot(configs, db)

	verifier, err := identity.NewJWTVerifier(configs.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}

	gateway, err := stripegw.NewGateway(configs.StripeAPIKey)
	if err != nil {
		log.Fatalf("Failed to create payment gateway: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreateReleaseRidersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, verifier, gateway, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		StripeAPIKey:      os.Getenv("STRIPE_API_KEY"),
		ParcelStatusRoles: os.Getenv("PARCEL_STATUS_ROLES"),
	}
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&riderrepo.RiderDTO{},
		&parcelrepo.ParcelDTO{},
		&paymentrepo.PaymentDTO{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// parcelStatusRoles reads the role set allowed to advance delivery statuses.
// Defaults to admin and rider.
func parcelStatusRoles(configs cmd.Config) []string {
	raw := configs.ParcelStatusRoles
	if raw == "" {
		raw = "admin,rider"
	}

	parts := strings.Split(raw, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			roles = append(roles, trimmed)
		}
	}
	return roles
}

func startWebServer(
	root *cmd.CompositionRoot,
	verifier *identity.JWTVerifier,
	gateway *stripegw.Gateway,
	configs cmd.Config,
) {
	server := httpadapter.NewServer(
		root.CreateRegisterUserCommandHandler(),
		root.CreateCreateParcelCommandHandler(),
		root.CreateApplyAsRiderCommandHandler(),
		root.CreateChangeRiderStatusCommandHandler(),
		root.CreateAssignRiderCommandHandler(),
		root.CreateAdvanceParcelStatusCommandHandler(),
		root.CreateRecordPaymentCommandHandler(),
		root.CreateChangeUserRoleCommandHandler(),
		root.CreateGetParcelsQueryHandler(),
		root.CreateGetParcelByIDQueryHandler(),
		root.CreateGetRidersQueryHandler(),
		root.CreateGetAvailableRidersQueryHandler(),
		root.CreateGetRiderParcelsQueryHandler(),
		root.CreateSearchUsersQueryHandler(),
		root.CreateGetUserRoleQueryHandler(),
		root.CreateGetPaymentsQueryHandler(),
		gateway,
	)
	auth := httpadapter.NewAuthMiddleware(verifier, root.CreateGetUserRoleQueryHandler())

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e, auth, parcelStatusRoles(configs))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
