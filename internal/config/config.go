package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

type Config struct {
	LogLevel     string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort     string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort   string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	JWTSecretKey string  `yaml:"jwt-secret-key" env:"JWT_SECRET_KEY" env-required:"true"`
	Storage      Storage `yaml:"storage"`
	Redis        Redis   `yaml:"redis"`
	Session      Session `yaml:"session"`
	Lobby        Lobby   `yaml:"lobby"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"redis"`
	SQLitePath string `yaml:"sqlite-path" env:"SQLITE_PATH" env-default:"./tictactoe.db"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Session - liveness and teardown timings of a game session.
type Session struct {
	PingInterval   time.Duration `yaml:"ping-interval" env-default:"10s"`
	PingTimeout    time.Duration `yaml:"ping-timeout" env-default:"20s"`
	FinishGrace    time.Duration `yaml:"finish-grace" env-default:"2s"`
	PersistTimeout time.Duration `yaml:"persist-timeout" env-default:"5s"`
}

type Lobby struct {
	FeedInterval time.Duration `yaml:"feed-interval" env-default:"2s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.Storage.Driver {
	case StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", that.Storage.Driver)
	}

	if that.Session.PingInterval > 0 && that.Session.PingTimeout < that.Session.PingInterval {
		return fmt.Errorf("ping-timeout %s is shorter than ping-interval %s", that.Session.PingTimeout, that.Session.PingInterval)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
