package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	defaultCashboxOpenSchedule = "5 0 * * *"
	defaultTimezone            = "Asia/Beirut"
	defaultLogLevel            = "info"

	// запись ждёт advisory lock и ретраи сериализации
	writeTimeoutFactor = 3
)

type (
	Tasks struct {
		WalletAuditInterval time.Duration
		CashboxOpenSchedule string // cron-выражение
	}

	Business struct {
		Timezone string
	}

	Log struct {
		Level string
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		WriteTimeout     time.Duration // POST/PUT/DELETE, по умолчанию 3 * RequestTimeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
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
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Business Business
		Log      Log
		Server   HTTPServer
		Database Database
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase только база и уровень логов, для cmd/migrate.
func LoadDatabase() (*Config, error) {
	cfg := &Config{
		Log: Log{
			Level: osGetEnvDefault("LOG_LEVEL", defaultLogLevel),
		},
		Database: databaseFromEnv(),
	}
	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadProducer брокеры, топик и версия протокола, для cmd/status-event-producer.
func LoadProducer() (*Config, error) {
	cfg := &Config{
		Log: Log{
			Level: osGetEnvDefault("LOG_LEVEL", defaultLogLevel),
		},
		Kafka: Kafka{
			Brokers: os.Getenv("KAFKA_BROKERS"),
			Topic:   os.Getenv("KAFKA_TOPIC"),
			Sarama: Sarama{
				Version: os.Getenv("KAFKA_SARAMA_VERSION"),
			},
		},
	}
	if err := validateKafkaTopic(&cfg.Kafka); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	walletAuditInterval, err := osGetEnvDuration("BACKGROUND_WALLET_AUDIT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	writeTimeout, err := osGetEnvDuration("MIDDLEWARE_WRITE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if writeTimeout == 0 {
		writeTimeout = writeTimeoutFactor * requestTimeout
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

	return &Config{
		Tasks: Tasks{
			WalletAuditInterval: walletAuditInterval,
			CashboxOpenSchedule: osGetEnvDefault("CASHBOX_OPEN_SCHEDULE", defaultCashboxOpenSchedule),
		},
		Business: Business{
			Timezone: osGetEnvDefault("BUSINESS_TIMEZONE", defaultTimezone),
		},
		Log: Log{
			Level: osGetEnvDefault("LOG_LEVEL", defaultLogLevel),
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			WriteTimeout:     writeTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: databaseFromEnv(),
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
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func databaseFromEnv() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

// requirement пустое значение переменной окружения name.
type requirement struct {
	name  string
	empty bool
}

// firstMissing ошибка по первой незаданной переменной в порядке перечисления.
func firstMissing(reqs ...requirement) error {
	for _, req := range reqs {
		if req.empty {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	return nil
}

func validateConfig(cfg *Config) error {
	srv := cfg.Server
	if err := firstMissing(
		requirement{"PORT", srv.Port == ""},
		requirement{"MIDDLEWARE_REQUEST_TIMEOUT", srv.RequestTimeout == 0},
		requirement{"MIDDLEWARE_RATE_LIMIT_QPS", srv.RateLimiterQPS == 0},
		requirement{"MIDDLEWARE_RATE_LIMIT_BURST", srv.RateLimiterBurst == 0},
		requirement{"PPROF_PORT", srv.PprofEnabled && srv.PprofPort == ""},
	); err != nil {
		return err
	}
	if srv.WriteTimeout < srv.RequestTimeout {
		return errors.New("MIDDLEWARE_WRITE_REQUEST_TIMEOUT must not be shorter than MIDDLEWARE_REQUEST_TIMEOUT")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.WalletAuditInterval == 0 {
		return errors.New("BACKGROUND_WALLET_AUDIT_INTERVAL is required")
	}
	if _, err := cron.ParseStandard(cfg.Tasks.CashboxOpenSchedule); err != nil {
		return fmt.Errorf("CASHBOX_OPEN_SCHEDULE: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Business.Timezone); err != nil {
		return fmt.Errorf("BUSINESS_TIMEZONE: %w", err)
	}

	if err := validateKafkaTopic(&cfg.Kafka); err != nil {
		return err
	}
	return firstMissing(
		requirement{"KAFKA_CONSUMER_GROUP", cfg.Kafka.ConsumerGroup == ""},
		requirement{"KAFKA_HTTP_HEALTHCHECK_PORT", cfg.Kafka.PortHealthcheck == ""},
		requirement{"KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT", cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == 0},
	)
}

func validateKafkaTopic(k *Kafka) error {
	return firstMissing(
		requirement{"KAFKA_BROKERS", k.Brokers == ""},
		requirement{"KAFKA_TOPIC", k.Topic == ""},
		requirement{"KAFKA_SARAMA_VERSION", k.Sarama.Version == ""},
	)
}

func validateDatabase(db *Database) error {
	return firstMissing(
		requirement{"POSTGRES_HOST", db.Host == ""},
		requirement{"POSTGRES_PORT", db.Port == ""},
		requirement{"POSTGRES_USER", db.User == ""},
		requirement{"POSTGRES_PASSWORD", db.Password == ""},
		requirement{"POSTGRES_DB", db.DBName == ""},
		requirement{"POSTGRES_SSLMODE", db.SSLMode == ""},
	)
}

func osGetEnvDefault(s, def string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return def
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
