// Package config loads the service configuration from the environment, after
// applying an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"conectapro/shared/constant"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresEndpoint is one side of the read/write database split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type RedisEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"conectapro"`
		Timezone string `envconfig:"TIMEZONE" default:"America/Lima"`
		Currency string `envconfig:"CURRENCY" default:"PEN"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"120"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		APIKey                string `envconfig:"API_KEY"`
		PhoneVerificationCode string `envconfig:"PHONE_VERIFICATION_CODE" default:"3333"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary RedisEndpoint `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"60"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry        int              `envconfig:"MAX_RETRY"          default:"3"`
			RetryWaitTime   int              `envconfig:"RETRY_WAIT_TIME"    default:"2"`
			MaxOpenConns    int              `envconfig:"MAX_OPEN_CONNS"     default:"10"`
			MaxIdleConns    int              `envconfig:"MAX_IDLE_CONNS"     default:"10"`
			ConnMaxLifetime int              `envconfig:"CONN_MAX_LIFETIME"  default:"300"`
			MigrationTable  string           `envconfig:"MIGRATION_TABLE"`
			AutoMigrate     bool             `envconfig:"AUTO_MIGRATE"`
			Prefix          string           `envconfig:"PREFIX"`
			Read            PostgresEndpoint `envconfig:"READ"`
			Write           PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		TopicPrefix   string   `envconfig:"TOPIC_PREFIX" default:"conectapro"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	Scheduler struct {
		Enable          bool   `envconfig:"ENABLE"`
		CompletionSpec  string `envconfig:"COMPLETION_SPEC"  default:"@every 15m"`
		CompletionBatch int    `envconfig:"COMPLETION_BATCH" default:"100"`
		CompletionActor string `envconfig:"COMPLETION_ACTOR" default:"scheduler"`
	} `envconfig:"SCHEDULER"`

	Metrics struct {
		Enable    bool   `envconfig:"ENABLE"    default:"true"`
		Namespace string `envconfig:"NAMESPACE" default:"conectapro"`
	} `envconfig:"METRICS"`

	External struct {
		Otel struct {
			Endpoint    string  `envconfig:"ENDPOINT"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
		} `envconfig:"OTEL"`
		S3 struct {
			BucketName      string `envconfig:"BUCKET_NAME"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Server.Env == constant.ServerEnvProduction
}

// Load reads the given env files, when they exist, and then the process environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	for _, file := range files {
		err := godotenv.Load(file)

		switch {
		case err == nil:
			log.Info().Str("file", file).Msg("Loaded variables from env file")
		case errors.Is(err, fs.ErrNotExist):
			log.Warn().Str("file", file).Msg("Env file not found, continuing with existing environment variables")
		default:
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	return &cfg, nil
}

var (
	conf    *Config
	confErr error
	once    sync.Once
)

// Init loads the shared configuration from .env and the environment exactly once.
func Init() error {
	once.Do(func() {
		conf, confErr = Load(".env")
		if confErr == nil {
			log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized successfully")
		}
	})

	return confErr
}

func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return conf
}
