package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string `env:"ENV"`
	LogLevel          string `env:"LOG_LEVEL"`
	Postgres          Postgres
	Telegram          Telegram
	GoogleBooks       GoogleBooks
	GoogleDrive       GoogleDrive
	ProxyUrl          string `env:"PROXY_URL"`
	Redis             Redis
	Mail              Mail
	Jobs              Jobs
	BooksPerPage      int           `env:"BOOKS_PER_PAGE"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION"`
	CacheExpiration   time.Duration `env:"CACHE_EXPIRATION"`
}

type Postgres struct {
	Host            string `env:"PG_HOST"`
	Port            int    `env:"PG_PORT"`
	DbName          string `env:"PG_DB_NAME"`
	Password        string `env:"PG_PASSWORD"`
	User            string `env:"PG_USER"`
	MaxOpenConns    int    `env:"PG_MAX_OPEN_CONNS"`
	ConnMaxLifetime int    `env:"PG_CONN_MAX_LIFETIME"`
	MaxIdleConns    int    `env:"PG_MAX_IDLE_CONNS"`
	ConnMaxIdleTime int    `env:"PG_CONN_MAX_IDLE_TIME"`
	MigrationsPath  string `env:"PG_MIGRATIONS_PATH"`
}

type Telegram struct {
	Token      string `env:"TELEGRAM_TOKEN"`
	UpdTimeout int    `env:"TELEGRAM_UPD_TIMEOUT"`
}

type GoogleBooks struct {
	BaseUrl      string        `env:"GBOOKS_BASE_URL"`
	ApiKey       string        `env:"GBOOKS_API_KEY"`
	Country      string        `env:"GBOOKS_COUNTRY"`
	Timeout      time.Duration `env:"GBOOKS_TIMEOUT"`
	MaxPerSearch int           `env:"GBOOKS_MAX_PER_SEARCH"`
}

type GoogleDrive struct {
	CredentialsFile string        `env:"GDRIVE_CREDENTIALS_FILE"`
	FolderId        string        `env:"GDRIVE_FOLDER_ID"`
	FileTTL         time.Duration `env:"GDRIVE_FILE_TTL"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

type Mail struct {
	Host     string `env:"MAIL_HOST"`
	Port     int    `env:"MAIL_PORT"`
	Address  string `env:"MAIL_ADDRESS"`
	Password string `env:"MAIL_PASSWORD"`
}

type Jobs struct {
	DeleteOldFilesInterval time.Duration `env:"JOB_DELETE_OLD_FILES_INTERVAL"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
