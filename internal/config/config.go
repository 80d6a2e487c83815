package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	JwtSecret      string
	Issuer         string
	TokenTTL       time.Duration
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbSSLMode      string
	ServerPort     string
	IsProduction   bool
	AllowedOrigins []string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioPublicURL string
	OtelEndpoint   string
	ServiceName    string
)

// AvatarSize is the edge length in pixels of stored avatar thumbnails.
const AvatarSize = 300

// DateLayout is the calendar date format accepted for project dates.
const DateLayout = "2006-01-02"

type settings struct {
	JwtSecret      string        `envconfig:"JWT_SECRET" default:"defaultsecret"`
	Issuer         string        `envconfig:"ISSUER" default:"project-dashboard"`
	TokenTTL       time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	DbHost         string        `envconfig:"DB_HOST" default:"localhost"`
	DbPort         string        `envconfig:"DB_PORT" default:"5432"`
	DbUser         string        `envconfig:"DB_USER" default:"postgres"`
	DbPassword     string        `envconfig:"DB_PASSWORD" default:"password"`
	DbName         string        `envconfig:"DB_NAME" default:"dashboard"`
	DbSSLMode      string        `envconfig:"DB_SSLMODE" default:"disable"`
	ServerPort     string        `envconfig:"SERVER_PORT" default:"5001"`
	Env            string        `envconfig:"APP_ENV" default:"development"`
	AllowedOrigins string        `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:,http://127.0.0.1:"`
	MinioEndpoint  string        `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	MinioAccessKey string        `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	MinioSecretKey string        `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	MinioUseSSL    bool          `envconfig:"MINIO_USE_SSL" default:"false"`
	MinioBucket    string        `envconfig:"MINIO_BUCKET" default:"avatars"`
	MinioPublicURL string        `envconfig:"MINIO_PUBLIC_URL" default:"http://localhost:9000"`
	OtelEndpoint   string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string        `envconfig:"SERVICE_NAME" default:"project-dashboard"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var s settings
	if err := envconfig.Process("", &s); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	JwtSecret = s.JwtSecret
	Issuer = s.Issuer
	TokenTTL = s.TokenTTL
	DbHost = s.DbHost
	DbPort = s.DbPort
	DbUser = s.DbUser
	DbPassword = s.DbPassword
	DbName = s.DbName
	DbSSLMode = s.DbSSLMode
	ServerPort = s.ServerPort
	IsProduction = s.Env == "production"
	AllowedOrigins = splitList(s.AllowedOrigins)

	MinioEndpoint = s.MinioEndpoint
	MinioAccessKey = s.MinioAccessKey
	MinioSecretKey = s.MinioSecretKey
	MinioUseSSL = s.MinioUseSSL
	MinioBucket = s.MinioBucket
	MinioPublicURL = strings.TrimRight(s.MinioPublicURL, "/")

	OtelEndpoint = s.OtelEndpoint
	ServiceName = s.ServiceName
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
