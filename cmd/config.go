package cmd

import "fmt"

// Storage backends selectable via STORAGE_BACKEND.
const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config carries everything the service reads from the environment.
type Config struct {
	HTTPPort       string
	StorageBackend string

	RedisAddr     string
	RedisPassword string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
}

// Validate checks the fields required for the selected backend.
func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	switch c.StorageBackend {
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	case StoragePostgres:
		if c.DBHost == "" || c.DBPort == "" || c.DBUser == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST, DB_PORT, DB_USER and DB_NAME are required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	return nil
}

// postgresDSN assembles the gorm connection string.
func (c Config) postgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
