package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDir   string `envconfig:"LOG_DIR" default:"./log"`
	// StaleTestCron is the schedule of the job releasing servers stuck in testing.
	StaleTestCron    string        `envconfig:"STALE_TEST_CRON" default:"*/5 * * * *"`
	StaleTestTimeout time.Duration `envconfig:"STALE_TEST_TIMEOUT" default:"10m"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST" required:"true"`
	Port         int    `envconfig:"POSTGRES_PORT" required:"true"`
	User         string `envconfig:"POSTGRES_USER" required:"true"`
	Password     string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName       string `envconfig:"POSTGRES_DB" required:"true"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"20"`
	// ApplySchema creates the tables on start up when they are missing.
	ApplySchema bool `envconfig:"POSTGRES_APPLY_SCHEMA" default:"false"`
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST" required:"true"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type KafkaConfig struct {
	Brokers             []string `envconfig:"KAFKA_BROKERS" required:"true"`
	ConnectionTestTopic string   `envconfig:"KAFKA_CONNECTION_TEST_TOPIC" default:"server.connection-test"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
