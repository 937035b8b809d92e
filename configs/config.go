package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int   `default:"8080"`
	MaxUploadBytes int64 `default:"33554432"`
}

type Integrations struct {
	Brands        []string `default:"whiskybase"`
	WhiskybaseURL string   `default:"https://www.whiskybase.com"`
}

type Import struct {
	CallTimeout time.Duration `default:"30s"`
}

type Backup struct {
	Schedule string        `default:"0 3 * * *"`
	Format   string        `default:"json"`
	Retain   int           `default:"7"`
	Sink     string        `default:"dir"`
	Dir      string        `default:"backups"`
	Timeout  time.Duration `default:"5m"`
}

type Storage struct {
	Endpoint  string        `default:"localhost:9000"`
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string        `default:"whisky-backups"`
	Region    string
	Timeout   time.Duration `default:"30s"`
}

type Config struct {
	DB           DB
	Server       Server
	Integrations Integrations
	Auth         Auth
	Import       Import
	Backup       Backup
	Storage      Storage
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

const (
	envPrefix = "WHISKYSHELF" // env prefix for env vars

	SinkDir     = "dir"
	SinkStorage = "storage"
)

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.Backup.Sink {
	case SinkDir, SinkStorage:
	default:
		return fmt.Errorf("%w: Backup.Sink must be %q or %q, got %q", ErrConfiguration, SinkDir, SinkStorage, c.Backup.Sink)
	}

	if c.Backup.Retain < 0 {
		return fmt.Errorf("%w: Backup.Retain must not be negative", ErrConfiguration)
	}

	return nil
}
