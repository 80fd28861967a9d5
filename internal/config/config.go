package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// Фиксированная ширина слота, не настраивается per-call
const SlotDurationMinutes = 30

const SlotsPerDay = 24 * 60 / SlotDurationMinutes

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"UTC"`
		// Таймзона, разрешенная один раз при старте
		Location *time.Location
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Sheets struct {
		SpreadsheetID   string `env:"SHEETS_SPREADSHEET_ID"`
		CredentialsFile string `env:"SHEETS_CREDENTIALS_FILE"`
		RulesSheet      string `env:"SHEETS_RULES_SHEET" envDefault:"Rules"`
		SessionsSheet   string `env:"SHEETS_SESSIONS_SHEET" envDefault:"Sessions"`
		// Лимит API на количество строк в одном append
		AppendBatchSize int `env:"SHEETS_APPEND_BATCH_SIZE" envDefault:"100"`
	}

	RabbitMq struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri string `env:"RABBITMQ_URL"`

		QueueConfig struct {
			RuleQueueName        string `env:"RABBITMQ_RULE_QUEUE" envDefault:"availability-resolver.rule"`
			RuleQueueBind        string `env:"RABBITMQ_RULE_QUEUE_BIND" envDefault:"#.availabilityrule.#"`
			RuleQueueExchange    string `env:"RABBITMQ_RULE_QUEUE_EXCHANGE" envDefault:"scheduling"`
			SessionQueueName     string `env:"RABBITMQ_SESSION_QUEUE" envDefault:"availability-resolver.session"`
			SessionQueueBind     string `env:"RABBITMQ_SESSION_QUEUE_BIND" envDefault:"#.session.#"`
			SessionQueueExchange string `env:"RABBITMQ_SESSION_QUEUE_EXCHANGE" envDefault:"scheduling"`
		}
	}

	Cache struct {
		Enabled  bool `env:"CACHE_ENABLED"`
		DaysSize int  `env:"CACHE_DAYS_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config.timezone.invalid: %w", err)
	}
	cfg.App.Location = loc

	// Если RabbitMQ не включен, то кэш тоже не включаем
	if !cfg.RabbitMq.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
