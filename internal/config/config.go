package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        `env:"RUN_ADDRESS"`   // Адрес и порт запуска сервиса
	DatabaseURI string        `env:"DATABASE_URI"`  // URI подключения к БД, пустой - хранение в памяти
	JWTSecret   string        `env:"JWT_SECRET"`    // Секретный ключ для JWT
	JWTTokenTTL time.Duration `env:"JWT_TOKEN_TTL"` // Время жизни JWT токена
	LogLevel    string        `env:"LOG_LEVEL"`     // Уровень логирования
	CatalogPath string        `env:"CATALOG_PATH"`  // YAML файл каталога услуг

	AdminEmails       []string `env:"ADMIN_EMAILS" envSeparator:","`
	CORSOrigins       []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","` // Источники витрины
	MinPasswordLength int      `env:"MIN_PASSWORD_LENGTH"`

	Redis    RedisConfig
	Provider ProviderConfig
	PayPal   PayPalConfig
	GCash    GCashConfig
	Deposit  DepositConfig
	Worker   WorkerConfig
}

// RedisConfig - кэш прайс-листа поставщика
type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS"` // Пустой адрес отключает кэш
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

// ProviderConfig - доступ к API поставщика
type ProviderConfig struct {
	URL           string        `env:"PROVIDER_URL"`
	APIKey        string        `env:"PROVIDER_API_KEY"`
	SubmitTimeout time.Duration `env:"PROVIDER_SUBMIT_TIMEOUT"` // Отдельно от таймаута входящего запроса
	PollTimeout   time.Duration `env:"PROVIDER_POLL_TIMEOUT"`
	SubmitRetries int           `env:"PROVIDER_SUBMIT_RETRIES"` // Только для ошибок соединения
	RetryBackoff  time.Duration `env:"PROVIDER_RETRY_BACKOFF"`
	RatesCacheTTL time.Duration `env:"PROVIDER_RATES_CACHE_TTL"`
}

// PayPalConfig - доступ к PayPal REST API
type PayPalConfig struct {
	BaseURL      string `env:"PAYPAL_BASE_URL"`
	ClientID     string `env:"PAYPAL_CLIENT_ID"` // Пустой идентификатор отключает PayPal
	ClientSecret string `env:"PAYPAL_CLIENT_SECRET"`
	Currency     string `env:"PAYPAL_CURRENCY"`
}

// GCashConfig - реквизиты ручного пополнения
type GCashConfig struct {
	RecipientName   string          `env:"GCASH_RECIPIENT_NAME"`
	RecipientNumber string          `env:"GCASH_RECIPIENT_NUMBER"`
	ExchangeRate    decimal.Decimal `env:"GCASH_EXCHANGE_RATE"` // PHP за 1 USD
}

// DepositConfig - правила пополнений
type DepositConfig struct {
	BonusRate decimal.Decimal `env:"DEPOSIT_BONUS_RATE"` // Бонус на первое пополнение
	MinAmount decimal.Decimal `env:"DEPOSIT_MIN_AMOUNT"`
	MaxAmount decimal.Decimal `env:"DEPOSIT_MAX_AMOUNT"`
}

// WorkerConfig - фоновая сверка заказов
type WorkerConfig struct {
	PoolSize            int           `env:"WORKER_POOL_SIZE"`
	QueueSize           int           `env:"WORKER_QUEUE_SIZE"`
	ScanInterval        time.Duration `env:"WORKER_SCAN_INTERVAL"`
	ReconcileGrace      time.Duration `env:"WORKER_RECONCILE_GRACE"` // Возраст заказа, после которого он попадает в сверку
	BatchSize           uint64        `env:"WORKER_BATCH_SIZE"`
	RateRefreshInterval time.Duration `env:"WORKER_RATE_REFRESH_INTERVAL"`
}

const defaultJWTSecret = "default-secret-key-change-in-production"

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		RunAddress:        ":8080",
		JWTSecret:         defaultJWTSecret,
		JWTTokenTTL:       24 * time.Hour,
		LogLevel:          "info",
		MinPasswordLength: 6,
		CORSOrigins:       []string{"https://*", "http://*"},
		Provider: ProviderConfig{
			SubmitTimeout: 5 * time.Second,
			PollTimeout:   10 * time.Second,
			SubmitRetries: 3,
			RetryBackoff:  200 * time.Millisecond,
			RatesCacheTTL: 10 * time.Minute,
		},
		PayPal: PayPalConfig{
			BaseURL:  "https://api-m.sandbox.paypal.com",
			Currency: "USD",
		},
		GCash: GCashConfig{
			RecipientName:   "JE***L N.",
			RecipientNumber: "09678361036",
			ExchangeRate:    decimal.NewFromInt(60),
		},
		Deposit: DepositConfig{
			BonusRate: decimal.RequireFromString("0.25"),
			MinAmount: decimal.NewFromInt(1),
			MaxAmount: decimal.NewFromInt(10000),
		},
		Worker: WorkerConfig{
			PoolSize:            3,
			QueueSize:           100,
			ScanInterval:        10 * time.Second,
			ReconcileGrace:      30 * time.Second,
			BatchSize:           100,
			RateRefreshInterval: time.Hour,
		},
	}
}

// Load загружает конфигурацию из .env, флагов командной строки и переменных окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return LoadFrom(os.Args[1:])
}

// LoadFrom разбирает аргументы и окружение.
// Приоритет: env переменные > флаги > дефолтные значения
func LoadFrom(args []string) (*Config, error) {
	cfg := Default()

	flags := flag.NewFlagSet("storefront", flag.ContinueOnError)
	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	flags.StringVar(&cfg.Provider.URL, "p", cfg.Provider.URL, "SMM provider API URL")
	flags.StringVar(&cfg.Redis.Address, "r", cfg.Redis.Address, "redis address")
	flags.StringVar(&cfg.CatalogPath, "c", cfg.CatalogPath, "service catalog YAML file")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if err := env.ParseWithFuncs(cfg, map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(decimal.Decimal{}): parseDecimal,
	}); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	for i, email := range cfg.AdminEmails {
		cfg.AdminEmails[i] = strings.ToLower(strings.TrimSpace(email))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Provider.URL == "" {
		return fmt.Errorf("provider URL is required (use -p flag or PROVIDER_URL env)")
	}
	if c.Provider.SubmitTimeout <= 0 {
		return fmt.Errorf("provider submit timeout must be positive")
	}
	if c.Worker.PoolSize <= 0 || c.Worker.QueueSize <= 0 {
		return fmt.Errorf("worker pool size and queue size must be positive")
	}
	if c.Worker.ScanInterval <= 0 {
		return fmt.Errorf("worker scan interval must be positive")
	}
	if !c.GCash.ExchangeRate.IsPositive() {
		return fmt.Errorf("GCash exchange rate must be positive")
	}
	if c.Deposit.BonusRate.IsNegative() {
		return fmt.Errorf("deposit bonus rate must not be negative")
	}
	if c.Deposit.MaxAmount.LessThan(c.Deposit.MinAmount) {
		return fmt.Errorf("deposit max amount is less than min amount")
	}
	return nil
}

// IsAdmin сообщает, что email входит в список администраторов
func (c *Config) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

func parseDecimal(v string) (interface{}, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", v, err)
	}
	return d, nil
}
