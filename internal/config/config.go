package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"PG_MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"PG_MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"PG_CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"PG_CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Catalog struct {
	PageSize       int           `yaml:"CATALOG_PAGE_SIZE" env:"CATALOG_PAGE_SIZE" env-default:"12"`
	SearchSettle   time.Duration `yaml:"CATALOG_SEARCH_SETTLE" env:"CATALOG_SEARCH_SETTLE" env-default:"400ms"`
	LowStockFloor  int           `yaml:"CATALOG_LOW_STOCK_FLOOR" env:"CATALOG_LOW_STOCK_FLOOR" env-default:"5"`
	CacheTTL       time.Duration `yaml:"CATALOG_CACHE_TTL" env:"CATALOG_CACHE_TTL" env-default:"10m"`
	CartStorageKey string        `yaml:"CART_STORAGE_KEY" env:"CART_STORAGE_KEY" env-default:"tm_auto_cart"`
}

type Security struct {
	JWTKey            string        `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	TokenTTL          time.Duration `yaml:"TOKEN_TTL" env:"TOKEN_TTL" env-default:"12h"`
	AdminUsername     string        `yaml:"ADMIN_USERNAME" env:"ADMIN_USERNAME" env-required:"true"`
	AdminPasswordHash string        `yaml:"ADMIN_PASSWORD_HASH" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
}

type Vpic struct {
	BaseURL string        `yaml:"VPIC_BASE_URL" env:"VPIC_BASE_URL" env-default:"https://vpic.nhtsa.dot.gov/api"`
	Timeout time.Duration `yaml:"VPIC_TIMEOUT" env:"VPIC_TIMEOUT" env-default:"10s"`
}

type SendGrid struct {
	APIKey        string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail     string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"noreply@tmautoelite.example"`
	FromName      string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"TM Auto Elite"`
	WorkshopEmail string `yaml:"SENDGRID_WORKSHOP_EMAIL" env:"SENDGRID_WORKSHOP_EMAIL" env-default:""`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Catalog      Catalog      `yaml:"catalog"`
	Security     Security     `yaml:"security"`
	Vpic         Vpic         `yaml:"vpic"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg

}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	if r.Username == "" && r.Password == "" {
		return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
	}

	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
