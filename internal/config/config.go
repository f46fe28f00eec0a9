package config

import (
	"fmt"     // DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // Cache TTL

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort      string        // Application port
	DBDriver     string        // mysql, postgres or sqlite
	DBUser       string        // Database user
	DBPassword   string        // Database password
	DBHost       string        // Database host
	DBPort       string        // Database port
	DBName       string        // Database name
	DBPath       string        // SQLite database file
	RedisAddr    string        // Redis server address, empty disables caching
	RedisPass    string        // Redis password
	RedisDB      int           // Redis database number
	CacheTTL     time.Duration // Lifetime of cached reads
	AMQPURL      string        // RabbitMQ URL, empty disables event publishing
	AMQPExchange string        // Exchange for ingest events
	LogLevel     string        // logrus level name
	IsProd       bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttl, err := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "60"))
	if err != nil || ttl < 0 {
		ttl = 60
	}
	return &Config{
		AppPort:      getEnv("APP_PORT", "8080"),
		DBDriver:     getEnv("DB_DRIVER", DriverMySQL),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       os.Getenv("DB_PORT"),
		DBName:       getEnv("DB_NAME", "bank_reporting"),
		DBPath:       getEnv("DB_PATH", "bank_reporting.db"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASS"),
		RedisDB:      redisDB,
		CacheTTL:     time.Duration(ttl) * time.Second,
		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "bank.reporting"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		IsProd:       os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() (string, error) {
	switch c.DBDriver {
	case DriverMySQL:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true&loc=UTC", nil
	case DriverPostgres:
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.DBHost, port, c.DBUser, c.DBPassword, c.DBName), nil
	case DriverSQLite:
		return "file:" + c.DBPath + "?_foreign_keys=on", nil
	}
	return "", fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
}

// getEnv returns the variable or a default when it is unset
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
