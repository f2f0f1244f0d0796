// Package config предоставляет структуры и функции для парсинга и загрузки конфига.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Драйверы хранилища коллекций.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env             string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      HTTPServer      `yaml:"http_server"`
	Storage         Storage         `yaml:"storage"`
	RedisConnection RedisConnection `yaml:"redis_connection"`
	JWTToken        JWTToken        `yaml:"jwttoken"`
	Admin           Admin           `yaml:"admin"`
	Catalog         Catalog         `yaml:"catalog"`
	RabbitMQ        RabbitMQ        `yaml:"rabbitmq"`
	RateLimit       RateLimit       `yaml:"rate_limit"`
	Firebase        Firebase        `yaml:"firebase"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Storage настройки локального хранилища коллекций.
type Storage struct {
	Driver              string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	Dir                 string `yaml:"dir" env:"STORAGE_DIR" env-default:"./data"`
	ConnectionString    string `yaml:"connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath      string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	RedisPrefix         string `yaml:"redis_prefix" env:"STORAGE_REDIS_PREFIX" env-default:"portfolio:"`
	FirestoreCollection string `yaml:"firestore_collection" env:"FIRESTORE_COLLECTION" env-default:"kv"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес означает, что Redis не используется.
type RedisConnection struct {
	Address     string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user" env:"REDIS_USER"`
	DB          int           `yaml:"db" env:"REDIS_DB"`
	MaxRetries  int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT"`
	Timeout     time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"JWT_TOKEN_TTL" env-default:"24h"`
}

// Admin учётные данные единственного администратора.
// Если задан PasswordHash (bcrypt), Password игнорируется.
type Admin struct {
	Email        string `yaml:"email" env:"ADMIN_EMAIL"`
	Password     string `yaml:"password" env:"ADMIN_PASSWORD"`
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
}

// Catalog настройки коллекций витрины.
type Catalog struct {
	ReadLatency time.Duration `yaml:"read_latency" env:"CATALOG_READ_LATENCY" env-default:"300ms"`
	Seed        bool          `yaml:"seed" env:"CATALOG_SEED" env-default:"true"`
}

// RabbitMQ настройки публикации событий каталога. Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string        `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"catalog"`
	Retries    int           `yaml:"retries" env:"RABBITMQ_RETRIES" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"RABBITMQ_RETRY_DELAY" env-default:"2s"`
}

// RateLimit ограничение частоты запросов на вход и регистрацию.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"1"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"5"`
}

// Firebase параметры внешнего бэкенда. Непустой APIKey включает удалённый путь хранения.
type Firebase struct {
	APIKey            string `yaml:"api_key" env:"FIREBASE_API_KEY"`
	AuthDomain        string `yaml:"auth_domain" env:"FIREBASE_AUTH_DOMAIN"`
	ProjectID         string `yaml:"project_id" env:"FIREBASE_PROJECT_ID"`
	StorageBucket     string `yaml:"storage_bucket" env:"FIREBASE_STORAGE_BUCKET"`
	MessagingSenderID string `yaml:"messaging_sender_id" env:"FIREBASE_MESSAGING_SENDER_ID"`
	AppID             string `yaml:"app_id" env:"FIREBASE_APP_ID"`
	CredentialsPath   string `yaml:"credentials_path" env:"FIREBASE_CREDENTIALS_PATH"`
}

// Configured сообщает, выбран ли удалённый бэкенд.
func (f Firebase) Configured() bool {
	return f.APIKey != ""
}

// MustLoad загружает конфиг из CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("cannot load .env: %s", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает YAML-конфиг, применяет переменные окружения и проверяет результат.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate проверяет обязательные поля.
func (c *Config) Validate() error {
	if c.JWTToken.JWTSecretKey == "" {
		return errors.New("jwt_secret_key is required")
	}
	if c.Admin.Email == "" {
		return errors.New("admin email is required")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("admin password or password_hash is required")
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverFile:
		if c.Storage.Dir == "" {
			return errors.New("storage dir is required for file driver")
		}
	case DriverRedis:
		if c.RedisConnection.Address == "" {
			return errors.New("redis_connection address is required for redis driver")
		}
	case DriverPostgres:
		if c.Storage.ConnectionString == "" {
			return errors.New("storage connection_string is required for postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"  Dir: %s\n"+
			"  ConnectionString: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  Password: %s\n"+
			"  DB: %d\n"+
			"JWTToken:\n"+
			"  JWTSecretKey: %s\n"+
			"  TokenTTL: %s\n"+
			"Admin:\n"+
			"  Email: %s\n"+
			"Catalog:\n"+
			"  ReadLatency: %s\n"+
			"  Seed: %t\n"+
			"RabbitMQ:\n"+
			"  URL: %s\n"+
			"Firebase:\n"+
			"  APIKey: %s\n"+
			"  ProjectID: %s\n",
		c.Env,
		c.HTTPServer.Address,
		c.HTTPServer.Timeout,
		c.HTTPServer.IdleTimeout,
		c.Storage.Driver,
		c.Storage.Dir,
		mask(c.Storage.ConnectionString),
		c.RedisConnection.Address,
		mask(c.RedisConnection.Password),
		c.RedisConnection.DB,
		mask(c.JWTToken.JWTSecretKey),
		c.JWTToken.TokenTTL,
		c.Admin.Email,
		c.Catalog.ReadLatency,
		c.Catalog.Seed,
		mask(c.RabbitMQ.URL),
		mask(c.Firebase.APIKey),
		c.Firebase.ProjectID,
	)
}
