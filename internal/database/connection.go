package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "github.com/mattn/go-sqlite3"    // registers the "sqlite3" database/sql driver
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the package logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// retryDelays doubles after every failed attempt; its length is the attempt budget
var retryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

// InitDatabase initializes the database connection based on the provided configuration
// It supports both PostgreSQL and SQLite drivers with automatic retry logic and connection pooling.
// Connections are opened through otelsql so every query is traced.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	// Normalize driver name
	driver := strings.ToLower(cfg.Driver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	maxRetries := len(retryDelays)
	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		db, err = open(driver, cfg)
		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				log.WithError(sqlErr).Error("Failed to get database instance")
				err = sqlErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				log.WithError(pingErr).Error("Failed to ping database")
				err = pingErr
				sqlDB.Close()
			} else {
				log.Info("Database connection successful, configuring connection pool")
				configureConnectionPool(sqlDB, driver, cfg)

				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")

				return db, nil
			}
		}

		var unsupported *unsupportedDriverError
		if errors.As(err, &unsupported) {
			return nil, err
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	// All retries exhausted
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

type unsupportedDriverError struct {
	driver string
}

func (e *unsupportedDriverError) Error() string {
	return fmt.Sprintf("unsupported database driver: %s (supported: postgres, sqlite)", e.driver)
}

// open selects the driver, wraps the database/sql pool with otelsql and hands it to gorm
func open(driver string, cfg DatabaseConfig) (*gorm.DB, error) {
	var sqlDriver, system string
	switch driver {
	case "postgres", "postgresql":
		sqlDriver, system = "pgx", "postgresql"
		log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
	case "sqlite", "":
		sqlDriver, system = "sqlite3", "sqlite"
		log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
	default:
		return nil, &unsupportedDriverError{driver: cfg.Driver}
	}

	sqlDB, err := otelsql.Open(sqlDriver, cfg.DSN(),
		otelsql.WithAttributes(attribute.String("db.system", system)))
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	if system == "postgresql" {
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	} else {
		dialector = sqlite.New(sqlite.Config{Conn: sqlDB})
	}

	db, err := gorm.Open(dialector, NewGormConfig())
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// NewGormConfig returns the gorm settings shared by the application and its tests.
// Driver errors are translated so foreign key violations surface as gorm.ErrForeignKeyViolated.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// configureConnectionPool sets up connection pool parameters for optimal performance
func configureConnectionPool(sqlDB *sql.DB, driver string, cfg DatabaseConfig) {
	maxOpen := 25
	// every connection to :memory: opens a distinct empty database
	if driver != "postgres" && driver != "postgresql" && strings.Contains(cfg.Path, ":memory:") {
		maxOpen = 1
	}

	// SetMaxOpenConns sets the maximum number of open connections to the database
	sqlDB.SetMaxOpenConns(maxOpen)

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool
	sqlDB.SetMaxIdleConns(min(5, maxOpen))

	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused
	if maxOpen > 1 {
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpen,
		"max_idle_conns":    min(5, maxOpen),
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}

// Close releases the connection pool held by db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	log.Info("Closing database connection")
	return sqlDB.Close()
}
