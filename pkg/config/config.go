package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig         `mapstructure:"server"`
	DB      DBConfig             `mapstructure:"db"`
	Auth    AuthConfig           `mapstructure:"auth"`
	Log     LogConfig            `mapstructure:"log"`
	Metrics MetricsConfig        `mapstructure:"metrics"`
	Admin   AdminBootstrapConfig `mapstructure:"admin"`
}

type ServerConfig struct {
	Address            string `mapstructure:"address"`
	Mode               string `mapstructure:"mode"`
	LoginRatePerMinute int    `mapstructure:"login_rate_per_minute"`
}

// DBConfig 描述資料庫連線；Driver 為 postgres 或 sqlite
type DBConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	Port     int    `mapstructure:"port"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"`
}

type AuthConfig struct {
	SecretKey                string `mapstructure:"secret_key"`
	AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
}

// TokenTTL 回傳 access token 的有效時間
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.AccessTokenExpireMinutes) * time.Minute
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

// AdminBootstrapConfig 在 serve 啟動時建立第一個管理員（兩者皆有值才會生效）
type AdminBootstrapConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

var defaults = map[string]interface{}{
	"server.address":                   ":8000",
	"server.mode":                      "release",
	"server.login_rate_per_minute":     30,
	"db.driver":                        "postgres",
	"db.host":                          "localhost",
	"db.port":                          5432,
	"db.user":                          "postgres",
	"db.password":                      "",
	"db.name":                          "guest_management",
	"db.sslmode":                       "disable",
	"db.path":                          "guest_management.db",
	"auth.secret_key":                  "",
	"auth.access_token_expire_minutes": 30,
	"log.level":                        "info",
	"log.format":                       "json",
	"metrics.address":                  "",
	"admin.email":                      "",
	"admin.password":                   "",
}

// Load 讀取設定：先載入 .env，再讀 config.yaml（可選），最後以環境變數覆蓋。
// configFile 為空時在 ./pkg/config 與目前目錄尋找 config.yaml。
func Load(configFile string) (*Config, error) {
	// .env 不存在是正常情況
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("auth.secret_key", "SECRET_KEY", "AUTH_SECRET_KEY")
	_ = v.BindEnv("auth.access_token_expire_minutes", "ACCESS_TOKEN_EXPIRE_MINUTES", "AUTH_ACCESS_TOKEN_EXPIRE_MINUTES")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./pkg/config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.SecretKey) == "" {
		return errors.New("SECRET_KEY is required")
	}
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if c.Server.LoginRatePerMinute < 0 {
		return errors.New("login rate per minute must not be negative")
	}
	return nil
}
