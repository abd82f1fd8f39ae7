// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	SampleRate      int     `yaml:"sample_rate"`
	BufferMs        int     `yaml:"buffer_ms"`
	BaseVolume      float64 `yaml:"base_volume"`
	CatalogFile     string  `yaml:"catalog_file"`
	LogFile         string  `yaml:"log_file"` // Пустое значение отключает логирование
	LogLevel        string  `yaml:"log_level"`
	DefaultDuration string  `yaml:"default_duration"` // ID пресета
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		SampleRate:      44100,
		BufferMs:        100,
		BaseVolume:      0.2,
		LogFile:         "~/.binaural.log",
		LogLevel:        "info",
		DefaultDuration: "quick",
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращаются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Раскрываем тильду в путях
	config.LogFile = strings.Replace(config.LogFile, "~", home, 1)
	config.CatalogFile = strings.Replace(config.CatalogFile, "~", home, 1)

	return config, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate должен быть положительным: %d", c.SampleRate)
	}
	if c.BufferMs <= 0 {
		return fmt.Errorf("buffer_ms должен быть положительным: %d", c.BufferMs)
	}
	if c.BaseVolume <= 0 || c.BaseVolume > 1 {
		return fmt.Errorf("base_volume должен быть в диапазоне (0, 1]: %v", c.BaseVolume)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("неизвестный log_level: %s", c.LogLevel)
	}
	if _, err := PresetByID(c.DefaultDuration); err != nil {
		return fmt.Errorf("default_duration: %w", err)
	}
	return nil
}

// BufferSize возвращает размер буфера вывода звука
func (c *Config) BufferSize() time.Duration {
	return time.Duration(c.BufferMs) * time.Millisecond
}
