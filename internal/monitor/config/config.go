package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server   ServerConfig
	Monitor  MonitorConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Elastic  ElasticConfig
	SMTP     SMTPConfig
}

type ServerConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8080"`
}

type MonitorConfig struct {
	TickInterval             time.Duration `envconfig:"TICK_INTERVAL" default:"1m"`
	NormalInterval           time.Duration `envconfig:"NORMAL_INTERVAL" default:"5m"`
	DowntimeMonitoringWindow time.Duration `envconfig:"DOWNTIME_MONITORING_WINDOW" default:"12h"`
	PauseWindow              time.Duration `envconfig:"PAUSE_WINDOW" default:"6h"`
	AlertThreshold           int           `envconfig:"ALERT_THRESHOLD" default:"3"`
	RecoveryThreshold        int           `envconfig:"RECOVERY_THRESHOLD" default:"3"`
	HistoryCap               int           `envconfig:"HISTORY_CAP" default:"100"`
	ProbeTimeout             time.Duration `envconfig:"PROBE_TIMEOUT" default:"30s"`
	ImmediateProbeTimeout    time.Duration `envconfig:"IMMEDIATE_PROBE_TIMEOUT" default:"15s"`
	ProbeConcurrency         int           `envconfig:"PROBE_CONCURRENCY" default:"3"`
	InterProbeDelay          time.Duration `envconfig:"INTER_PROBE_DELAY" default:"500ms"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type RedisConfig struct {
	Host    string `envconfig:"REDIS_HOST" default:"localhost"`
	Port    int    `envconfig:"REDIS_PORT" default:"6379"`
	Channel string `envconfig:"REDIS_SITE_UPDATED_CHANNEL" default:"sites.updated"`
}

type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS" required:"true"`
	CheckTopic      string   `envconfig:"KAFKA_CHECK_TOPIC" default:"site_checks"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"history-indexer"`
}

type ElasticConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
}

type SMTPConfig struct {
	Host             string `envconfig:"SMTP_HOST" required:"true"`
	Port             int    `envconfig:"SMTP_PORT" default:"587"`
	Email            string `envconfig:"SMTP_EMAIL" required:"true"`
	Password         string `envconfig:"SMTP_PASSWORD" required:"true"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL" required:"true"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
