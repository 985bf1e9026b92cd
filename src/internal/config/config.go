package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type ctxKey string

const configContextKey ctxKey = "pointsbot.config"

// 預設值
const (
	DefaultDatabasePath  = "user_points.db"
	DefaultUpdateTimeout = 60
	DefaultLogFormat     = "text"
)

// 設定錯誤
var (
	ErrMissingToken   = errors.New("telegram token is required (TELEGRAM_TOKEN)")
	ErrMissingChatID  = errors.New("chat id is required (CHAT_ID)")
	ErrInvalidTimeout = errors.New("update timeout must not be negative")
	ErrInvalidFormat  = errors.New("log format must be 'text' or 'json'")
)

func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

// Config Bot 執行設定
//
// 載入順序：預設值 → YAML 檔案 → 環境變數（POINTSBOT_ 前綴，
// TELEGRAM_TOKEN 與 CHAT_ID 沿用無前綴名稱）。
type Config struct {
	TelegramToken      string `yaml:"telegramToken"      envconfig:"TELEGRAM_TOKEN"`
	ChatID             string `yaml:"chatId"             envconfig:"CHAT_ID"`
	DatabasePath       string `yaml:"databasePath"                                    split_words:"true"`
	MetricsAddr        string `yaml:"metricsAddr"                                     split_words:"true"`
	LogFormat          string `yaml:"logFormat"                                       split_words:"true"`
	UpdateTimeout      int    `yaml:"updateTimeout"                                   split_words:"true"`
	SkipPendingUpdates bool   `yaml:"skipPendingUpdates"                              split_words:"true"`
	Debug              bool   `yaml:"debug"`
}

// Default 返回預設設定
func Default() *Config {
	return &Config{
		DatabasePath:       DefaultDatabasePath,
		LogFormat:          DefaultLogFormat,
		UpdateTimeout:      DefaultUpdateTimeout,
		SkipPendingUpdates: true,
	}
}

// LoadEnvFile 把 .env 檔案載入環境變數（已存在的變數不覆蓋）
//
// 檔案不存在時不報錯。
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading env file: %w", err)
	}
	return nil
}

// LoadConfig 載入設定；configFile 為空時只使用預設值與環境變數
func LoadConfig(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := envconfig.Process("pointsbot", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	return cfg, nil
}

// Validate 檢查 serve / sync-admins 需要的欄位
func (c *Config) Validate() error {
	var errs []error
	if c.TelegramToken == "" {
		errs = append(errs, ErrMissingToken)
	}
	if c.ChatID == "" {
		errs = append(errs, ErrMissingChatID)
	}
	if c.UpdateTimeout < 0 {
		errs = append(errs, ErrInvalidTimeout)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, ErrInvalidFormat)
	}
	return errors.Join(errs...)
}
