package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

type AppConfig struct {
	Webhook WebhookConfig `yaml:"webhook"`
	UI      UIConfig      `yaml:"ui"`
}

type WebhookConfig struct {
	URL            string `yaml:"url"`
	RequestTimeout string `yaml:"request_timeout,omitempty"`
}

type UIConfig struct {
	AckText   string `yaml:"ack_text,omitempty"`
	ErrorText string `yaml:"error_text,omitempty"`
}

var (
	customDirMu     sync.RWMutex
	customConfigDir string
)

// SetConfigDir overrides the config directory (used for testing)
func SetConfigDir(dir string) {
	customDirMu.Lock()
	defer customDirMu.Unlock()
	customConfigDir = dir
}

func GetConfigDir() (string, error) {
	customDirMu.RLock()
	custom := customConfigDir
	customDirMu.RUnlock()
	if custom != "" {
		return custom, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "askhook"), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func LoadAppConfig() (*AppConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &AppConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func SaveAppConfig(cfg *AppConfig) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Timeout parses the configured request timeout. Empty or malformed
// values mean no timeout at all, which is the default behavior.
func (c WebhookConfig) Timeout() time.Duration {
	if c.RequestTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
