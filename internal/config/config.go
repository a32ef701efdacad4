package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Kabir14815/rr/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StoreHTTP     = "http"
	StorePostgres = "postgres"
)

type (
	Config struct {
		App      App      `env-prefix:"APP_"`
		Logger   Logger   `env-prefix:"LOGGER_"`
		HTTP     HTTP     `env-prefix:"HTTP_"`
		Metrics  Metrics  `env-prefix:"METRICS_"`
		Cache    Cache    `env-prefix:"CACHE_"`
		Backend  Backend  `env-prefix:"BACKEND_"`
		Lookup   Lookup   `env-prefix:"LOOKUP_"`
		Store    Store    `env-prefix:"STORE_"`
		Postgres Postgres `env-prefix:"DB_"`
		Env      string   `                      env:"ENV" env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Name    string `env:"NAME"    validate:"required" env-default:"consignment-desk"`
		Version string `env:"VERSION" validate:"required" env-default:"dev"`
	}

	Logger struct {
		Level      string `env:"LEVEL"       env-default:"info" validate:"oneof=debug info warn error"`
		Format     string `env:"FORMAT"      env-default:"json" validate:"oneof=json console"`
		Filename   string `env:"FILENAME"`
		MaxSize    int    `env:"MAX_SIZE"    env-default:"100"  validate:"min=1,max=1000"`
		MaxBackups int    `env:"MAX_BACKUPS" env-default:"3"    validate:"min=0,max=20"`
		MaxAge     int    `env:"MAX_AGE"     env-default:"28"   validate:"min=1,max=365"`
	}

	HTTP struct {
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,gte=1,lte=65535" env-default:"8080"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=60s"         env-default:"30s"`
		IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"        validate:"gte=10ms,lte=120s"        env-default:"60s"`
		ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    validate:"gte=10ms,lte=30s"         env-default:"10s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	Metrics struct {
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,gte=1,lte=65535" env-default:"9090"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"5s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	// Cache sizes the open-draft cache and the directory caches.
	Cache struct {
		Capacity        int           `env:"CAPACITY"         validate:"required,min=1,max=1000000" env-default:"1000"`
		TTL             time.Duration `env:"TTL"              validate:"required,gt=0s,lte=24h"     env-default:"2h"`
		DirectoryTTL    time.Duration `env:"DIRECTORY_TTL"    validate:"required,gt=0s,lte=24h"     env-default:"5m"`
		CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" validate:"gt=0s,lte=24h"              env-default:"1m"`
	}

	Backend struct {
		BaseURL        string        `env:"BASE_URL"        validate:"required,url"         env-default:"http://localhost:8000"`
		Username       string        `env:"USERNAME"`
		Password       string        `env:"PASSWORD"`
		Timeout        time.Duration `env:"TIMEOUT"         validate:"gte=100ms,lte=2m"     env-default:"10s"`
		RetryAttempts  uint          `env:"RETRY_ATTEMPTS"  validate:"min=1,max=10"         env-default:"3"`
		RetryDelay     time.Duration `env:"RETRY_DELAY"     validate:"gte=10ms,lte=10s"     env-default:"200ms"`
		RateLimit      float64       `env:"RATE_LIMIT"      validate:"gt=0,lte=1000"        env-default:"20"`
		Burst          int           `env:"BURST"           validate:"min=1,max=1000"       env-default:"10"`
		UsersPageLimit int           `env:"USERS_PAGE_LIMIT" validate:"min=1,max=10000"     env-default:"1000"`
	}

	// Lookup bounds a single rate card lookup issued by a draft.
	Lookup struct {
		Timeout time.Duration `env:"TIMEOUT" validate:"gte=100ms,lte=1m" env-default:"10s"`
	}

	Store struct {
		Driver string `env:"DRIVER" validate:"oneof=http postgres" env-default:"http"`
	}

	Postgres struct {
		Host           string        `env:"HOST"`
		Port           string        `env:"PORT"             env-default:"5432"`
		Name           string        `env:"NAME"`
		User           string        `env:"USER"`
		Password       string        `env:"PASSWORD"`
		SSLMode        string        `env:"SSL_MODE"         env-default:"disable"`
		PoolMax        int32         `env:"POOL_MAX"         validate:"min=1,max=100"                             env-default:"20"`
		ConnAttempts   int           `env:"CONN_ATTEMPTS"    validate:"min=1,max=10"                              env-default:"5"`
		BaseRetryDelay time.Duration `env:"BASE_RETRY_DELAY" validate:"gte=10ms,lte=10s"                          env-default:"100ms"`
		MaxRetryDelay  time.Duration `env:"MAX_RETRY_DELAY"  validate:"gte=100ms,lte=30s,gtefield=BaseRetryDelay" env-default:"5s"`
		TxAttempts     int           `env:"TX_ATTEMPTS"      validate:"min=1,max=10"                              env-default:"3"`
		TxBackoff      time.Duration `env:"TX_BACKOFF"       validate:"gte=1ms,lte=1s"                            env-default:"10ms"`
		TxMaxBackoff   time.Duration `env:"TX_MAX_BACKOFF"   validate:"gte=1ms,lte=5s,gtefield=TxBackoff"         env-default:"100ms"`
	}
)

// Load reads the config file at path, falling back to CONFIG_PATH. When neither
// is set the configuration comes from the environment alone.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return LoadPath(path)
}

func LoadPath(configPath string) (*Config, error) {
	const op = "config.LoadPath"

	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: read env: %w", op, err)
		}
	} else {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
		} else if err != nil {
			return nil, fmt.Errorf("%s: checking config file: %w", op, err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("%s: read config: %w", op, err)
		}
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// Validate checks field constraints and requires database settings when the
// postgres store is selected.
func Validate(cfg *Config) error {
	validate := validator.New()
	validate.RegisterStructValidation(postgresRequired, Config{})

	var validationErrors []string
	if err := validate.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, ve := range validationErrs {
				validationErrors = append(validationErrors,
					fmt.Sprintf("%s=%v must satisfy '%s'", ve.Namespace(), ve.Value(), ve.Tag()))
			}
			return fmt.Errorf("%w: %s", entity.ErrInvalidConfig, strings.Join(validationErrors, "; "))
		}
		return fmt.Errorf("%w: %w", entity.ErrInvalidConfig, err)
	}
	return nil
}

func postgresRequired(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Store.Driver != StorePostgres {
		return
	}
	pg := cfg.Postgres
	required := []struct {
		name  string
		value string
	}{
		{"Host", pg.Host},
		{"Name", pg.Name},
		{"User", pg.User},
		{"Password", pg.Password},
	}
	for _, f := range required {
		if f.value == "" {
			sl.ReportError(f.value, "Postgres."+f.name, f.name, "required_with_postgres", "")
		}
	}
}
