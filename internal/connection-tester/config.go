package connection_tester

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server ServerConfig
	Kafka  KafkaConfig
	SSH    SSHConfig
}

type ServerConfig struct {
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogDir         string        `envconfig:"LOG_DIR" default:"./log"`
	MaxRetries     int           `envconfig:"MAX_RETRIES" default:"3"`
	InitialBackoff time.Duration `envconfig:"INITIAL_BACKOFF" default:"1s"`
	DialTimeout    time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
}

type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS" required:"true"`
	ConsumerTopic   string   `envconfig:"KAFKA_CONSUMER_TOPIC" default:"server.connection-test"`
	ProducerTopic   string   `envconfig:"KAFKA_PRODUCER_TOPIC" default:"server.connection-test-result"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"connection-tester"`
	ConsumerCnt     int      `envconfig:"KAFKA_CONSUMER_CNT" default:"4"`
}

type SSHConfig struct {
	PrivateKeyPath string `envconfig:"SSH_PRIVATE_KEY_PATH" required:"true"`
	// KnownHostsPath disables host key checking when empty.
	KnownHostsPath string `envconfig:"SSH_KNOWN_HOSTS_PATH"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
