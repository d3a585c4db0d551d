package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Env             string `yaml:"env"`
		LogLevel        string `yaml:"log_level"`
		ShutdownTimeout int    `yaml:"shutdown_timeout"` // секунды
		CORSOrigins     string `yaml:"cors_origins"`
	} `yaml:"server"`

	Database struct {
		Driver       string `yaml:"driver"` // postgres, mysql, sqlite
		DSN          string `yaml:"url"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
		AutoMigrate  bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	Redis struct {
		Addr      string `yaml:"addr"` // пусто - отзыв токенов хранится в БД
		Password  string `yaml:"password"`
		KeyPrefix string `yaml:"key_prefix"`
	} `yaml:"redis"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	Email struct {
		Enabled      bool   `yaml:"enabled"`
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	AI struct {
		Enabled bool   `yaml:"enabled"` // false - используется детерминированный скорер
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
		Timeout int    `yaml:"timeout"` // секунды
	} `yaml:"ai"`

	Storage struct {
		Type         string `yaml:"type"` // local, s3, cloudflare_r2
		BasePath     string `yaml:"base_path"`
		BaseURL      string `yaml:"base_url"`
		Bucket       string `yaml:"bucket"`
		Region       string `yaml:"region"`
		AccessKey    string `yaml:"access_key"`
		SecretKey    string `yaml:"secret_key"`
		Endpoint     string `yaml:"endpoint"`
		PublicRead   bool   `yaml:"public_read"`
		MaxUploadMB  int    `yaml:"max_upload_mb"`
		MaxPerTask   int    `yaml:"max_per_task"`
		URLTTL       int    `yaml:"url_ttl"` // минуты, для подписанных ссылок
		ImageQuality int    `yaml:"image_quality"`
	} `yaml:"storage"`

	Workers struct {
		RatingReconcileInterval int `yaml:"rating_reconcile_interval"` // минуты, 0 - выключено
		TokenCleanupInterval    int `yaml:"token_cleanup_interval"`    // минуты, 0 - выключено
		NotificationCleanup     int `yaml:"notification_cleanup"`      // минуты, 0 - выключено
		NotificationRetention   int `yaml:"notification_retention"`    // дни хранения прочитанных
	} `yaml:"workers"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// Load читает YAML (если файл есть), затем применяет переменные окружения и значения по умолчанию.
// Отсутствующий файл не является ошибкой: конфигурацию можно целиком задать через окружение.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig загружает конфиг в глобальную переменную AppConfig
func LoadConfig(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	AppConfig = cfg
	return cfg, nil
}

func GetConfig() *Config {
	return AppConfig
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Env, "SERVER_ENV")
	setString(&cfg.Server.LogLevel, "LOG_LEVEL")
	setString(&cfg.Server.CORSOrigins, "CORS_ORIGINS")

	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Database.DSN, "DATABASE_URL")
	setBool(&cfg.Database.AutoMigrate, "DATABASE_AUTO_MIGRATE")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setInt(&cfg.JWT.TTL, "JWT_TTL")

	setBool(&cfg.Email.Enabled, "SMTP_ENABLED")
	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setString(&cfg.Email.SMTPUsername, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "SMTP_FROM")

	setBool(&cfg.AI.Enabled, "AI_ENABLED")
	setString(&cfg.AI.APIKey, "AI_API_KEY")
	setString(&cfg.AI.BaseURL, "AI_BASE_URL")
	setString(&cfg.AI.Model, "AI_MODEL")
	setInt(&cfg.AI.Timeout, "AI_TIMEOUT")

	setString(&cfg.Storage.Type, "STORAGE_TYPE")
	setString(&cfg.Storage.BasePath, "STORAGE_BASE_PATH")
	setString(&cfg.Storage.BaseURL, "STORAGE_BASE_URL")
	setString(&cfg.Storage.Bucket, "STORAGE_BUCKET")
	setString(&cfg.Storage.Region, "STORAGE_REGION")
	setString(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")
	setString(&cfg.Storage.Endpoint, "STORAGE_ENDPOINT")
	setBool(&cfg.Storage.PublicRead, "STORAGE_PUBLIC_READ")
	setInt(&cfg.Storage.MaxUploadMB, "STORAGE_MAX_UPLOAD_MB")

	setString(&cfg.FirstAdminEmail, "FIRST_ADMIN_EMAIL")
	setString(&cfg.FirstAdminPassword, "FIRST_ADMIN_PASSWORD")
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "workhub:revoked:"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "WorkHub"
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gpt-4o-mini"
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 15
	}
	if cfg.Workers.NotificationRetention == 0 {
		cfg.Workers.NotificationRetention = 30
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.MaxUploadMB == 0 {
		cfg.Storage.MaxUploadMB = 10
	}
	if cfg.Storage.MaxPerTask == 0 {
		cfg.Storage.MaxPerTask = 10
	}
	if cfg.Storage.URLTTL == 0 {
		cfg.Storage.URLTTL = 60
	}
	if cfg.Storage.ImageQuality == 0 {
		cfg.Storage.ImageQuality = 85
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var problems []string

	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q is not supported", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		problems = append(problems, "database.url (DATABASE_URL) must not be empty")
	}
	if c.JWT.Secret == "" {
		problems = append(problems, "jwt.secret (JWT_SECRET) must not be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port must be in 1..65535")
	}
	if c.AI.Enabled && c.AI.APIKey == "" {
		problems = append(problems, "ai.api_key (AI_API_KEY) is required when ai.enabled is true")
	}
	if c.Email.Enabled && c.Email.SMTPHost == "" {
		problems = append(problems, "email.smtp_host (SMTP_HOST) is required when email.enabled is true")
	}

	switch c.Storage.Type {
	case "local":
	case "s3", "cloudflare_r2":
		if c.Storage.Bucket == "" {
			problems = append(problems, "storage.bucket (STORAGE_BUCKET) is required for remote storage")
		}
	default:
		problems = append(problems, fmt.Sprintf("storage.type %q is not supported", c.Storage.Type))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Minute
}

func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.Timeout) * time.Second
}

// MaxUploadBytes - лимит размера одного вложения
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Storage.MaxUploadMB) << 20
}

func (c *Config) StorageURLTTL() time.Duration {
	return time.Duration(c.Storage.URLTTL) * time.Minute
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*dst = i
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
