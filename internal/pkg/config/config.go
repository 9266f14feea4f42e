package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultPort = "3000"

type (
	Log struct {
		Level string
	}

	Tasks struct {
		WeightTotalsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill
		RateLimiterBurst int           // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		Events Events
	}

	Events struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Log      Log
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Kafka    Kafka
	}
)

// Load конфиг HTTP-сервиса.
func Load() (*Config, error) {
	return load(validateService)
}

// LoadWorker конфиг kafka-воркера событий.
func LoadWorker() (*Config, error) {
	return load(validateWorker)
}

// LoadProducer конфиг публикации событий (send-events -target kafka).
func LoadProducer() (*Config, error) {
	return load(validateProducer)
}

// LoadDatabase конфиг только с подключением к БД (миграции).
func LoadDatabase() (*Config, error) {
	return load(func(cfg *Config) error {
		return validateDatabase(&cfg.Database)
	})
}

func load(validate func(*Config) error) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	weightTotalsInterval, err := osGetEnvDuration("BACKGROUND_WEIGHT_TOTALS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	eventsTimeout, err := osGetEnvDuration("KAFKA_HANDLER_EVENTS_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return &Config{
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
		Tasks: Tasks{
			WeightTotalsInterval: weightTotalsInterval,
		},
		Server: HTTPServer{
			Port:             port,
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				Events: Events{
					ProcessTimeout: eventsTimeout,
				},
			},
		},
	}, nil
}

func validateService(cfg *Config) error {
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PPROF_PORT is required when PPROF_ENABLED=true")
	}
	if cfg.Tasks.WeightTotalsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_WEIGHT_TOTALS_INTERVAL is required")
	}

	return validateDatabase(&cfg.Database)
}

func validateWorker(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.Events.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_EVENTS_PROCESS_TIMEOUT is required")
	}

	return validateDatabase(&cfg.Database)
}

func validateProducer(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
