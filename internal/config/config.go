package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	Server   ServerConfig
}

type DatabaseConfig struct {
	Primary  DBConnection
	Fallback DBConnection
}

type DBConnection struct {
	Driver string
	DSN    string
	Enable bool
}

// JWTConfig is fixed at startup; the secret and algorithm are never
// rotated at runtime.
type JWTConfig struct {
	Secret        string
	Algorithm     string
	ExpireMinutes int
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

type ServerConfig struct {
	Port    string
	BaseURL string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file loaded:", err)
	}

	return &Config{
		Database: DatabaseConfig{
			Primary:  loadPrimaryDB(),
			Fallback: loadFallbackDB(),
		},
		JWT: JWTConfig{
			Secret:        getEnvOrDefault("SECRET_KEY", "default_secret_key"),
			Algorithm:     getEnvOrDefault("ALGORITHM", "HS256"),
			ExpireMinutes: getEnvIntOrDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		},
		Email: EmailConfig{
			SMTPHost:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getEnvOrDefault("SMTP_PORT", "587"),
			SMTPUsername: os.Getenv("SMTP_USERNAME"),
			SMTPPassword: os.Getenv("SMTP_PASSWORD"),
			FromEmail:    os.Getenv("FROM_EMAIL"),
			FromName:     getEnvOrDefault("FROM_NAME", "Social Media App"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			BaseURL: getEnvOrDefault("BASE_URL", "http://localhost:8080"),
		},
	}
}

func loadPrimaryDB() DBConnection {
	driver := getEnvOrDefault("PRIMARY_DB_DRIVER", "postgres")
	enable := getEnvOrDefault("PRIMARY_DB_ENABLE", "true") == "true"

	var dsn string
	switch driver {
	case "postgres":
		dsn = buildPostgresDSN()
	case "mysql":
		dsn = buildMySQLDSN()
	case "sqlite":
		dsn = getEnvOrDefault("PRIMARY_SQLITE_PATH", "./data/primary.db")
	default:
		log.Printf("unsupported primary database driver: %s", driver)
		enable = false
	}

	return DBConnection{
		Driver: driver,
		DSN:    dsn,
		Enable: enable,
	}
}

func loadFallbackDB() DBConnection {
	driver := getEnvOrDefault("FALLBACK_DB_DRIVER", "sqlite")
	enable := getEnvOrDefault("FALLBACK_DB_ENABLE", "true") == "true"

	var dsn string
	switch driver {
	case "postgres":
		dsn = buildPostgresDSN()
	case "mysql":
		dsn = buildMySQLDSN()
	case "sqlite":
		dsn = getEnvOrDefault("FALLBACK_SQLITE_PATH", "./data/fallback.db")
	default:
		driver = "sqlite"
		dsn = "./data/fallback.db"
	}

	return DBConnection{
		Driver: driver,
		DSN:    dsn,
		Enable: enable,
	}
}

func buildPostgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := getEnvOrDefault("POSTGRES_HOST", "localhost")
	port := getEnvOrDefault("POSTGRES_PORT", "5432")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	database := os.Getenv("POSTGRES_DB")

	if user == "" || database == "" {
		return ""
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, database, port)
}

func buildMySQLDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return dsn
	}

	host := getEnvOrDefault("MYSQL_HOST", "localhost")
	port := getEnvOrDefault("MYSQL_PORT", "3306")
	username := os.Getenv("MYSQL_USERNAME")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")
	charset := getEnvOrDefault("MYSQL_CHARSET", "utf8mb4")

	if username == "" || password == "" || database == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		username, password, host, port, database, charset)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
