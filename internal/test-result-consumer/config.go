package test_result_consumer

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	Kafka         KafkaConfig
	Mail          MailConfig
}

type ServerConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDir   string `envconfig:"LOG_DIR" default:"./log"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST" required:"true"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
}

type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS" required:"true"`
	ConsumerTopic   string   `envconfig:"KAFKA_CONSUMER_TOPIC" default:"server.connection-test-result"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"test-result-consumer"`
	ConsumerCnt     int      `envconfig:"KAFKA_CONSUMER_CNT" default:"2"`
}

// MailConfig leaves failure notices off while Host is empty.
type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL"`
	Password         string `envconfig:"MAIL_PASSWORD"`
	Host             string `envconfig:"MAIL_HOST"`
	Port             int    `envconfig:"MAIL_PORT" default:"587"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL"`
}

func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.AdminMailAddress != ""
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
