package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kichu12348/kichu-space-backend/api"
	"github.com/kichu12348/kichu-space-backend/config"
	"github.com/kichu12348/kichu-space-backend/database"
	"github.com/kichu12348/kichu-space-backend/errs"
)

func main() {
	if err := godotenv.Load(); err != nil {
		zlog.Warn().Msg("No .env file found")
	}

	c := config.New()
	db, err := openDatabase(c)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error opening database")
	}

	if _, err := db.Init(); err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing schema")
	}

	if config.GetBool(c, "SEED_ON_START", false) {
		seeded, err := db.Seed()
		if err != nil {
			zlog.Fatal().Err(err).Msg("Error seeding database")
		}
		if seeded {
			zlog.Info().Msg("Seeded initial projects")
		}
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase selects the store from DB_TYPE: a live gorm handle over
// postgres or sqlite, or the null store when explicitly running offline.
// Anything else is a fatal configuration error before any query runs.
func openDatabase(c map[string]string) (database.Database, error) {
	dbType := config.GetString(c, "DB_TYPE", "")

	var dialector gorm.Dialector
	switch dbType {
	case "postgres":
		dsn := config.GetString(c, "DATABASE_URL", "")
		if dsn == "" {
			return nil, errs.NewConfigurationError("DB_TYPE=postgres requires DATABASE_URL")
		}
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	case "sqlite":
		path := config.GetString(c, "SQLITE_PATH", "data/portfolio.db")
		dialector = sqlite.Open(path)
	case "none":
		zlog.Warn().Msg("Running without a database binding; all storage operations are no-ops")
		return database.NewNull(), nil
	default:
		return nil, errs.NewConfigurationError(fmt.Sprintf("unsupported DB_TYPE %q", dbType))
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	return database.New(db), nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
