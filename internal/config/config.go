// Package config предоставляет стартовую конфигурацию и настройки времени
// выполнения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Backend выбирает источник глобальных событий клавиатуры.
type Backend string

const (
	// BackendGohook - сырые события нажатия/отпускания через libuiohook.
	BackendGohook Backend = "gohook"
	// BackendHotkey - зарегистрированная системная комбинация.
	BackendHotkey Backend = "hotkey"
)

// Config хранит стартовые параметры. После запуска не меняется и никуда
// не сохраняется.
type Config struct {
	Activation    string        `env:"ACTIVATION" toml:"activation"`       // Буква активации: C|S|L
	CloseToTray   string        `env:"CLOSE_TO_TRAY" toml:"close_to_tray"` // "true" - закрывать окно в трей
	HookBackend   Backend       `env:"HOOK_BACKEND" toml:"hook_backend"`   // gohook|hotkey
	KeyDelay      time.Duration `env:"KEY_DELAY" toml:"key_delay"`         // Пауза после каждого синтетического шага
	AllowOverlap  bool          `env:"ALLOW_OVERLAP" toml:"allow_overlap"` // Разрешить параллельные конвертации
	Notifications bool          `env:"NOTIFICATIONS" toml:"notifications"` // Системные уведомления об ошибках
	UILanguage    string        `env:"UI_LANGUAGE" toml:"ui_language"`     // ru|en
	Debug         bool          `env:"DEBUG" toml:"debug"`                 // Подробный лог
	File          string        `env:"CONFIG" toml:"-"`                    // Необязательный TOML-файл
}

// EnvPrefix - префикс переменных окружения.
const EnvPrefix = "LANGSWITCHER_"

// Defaults возвращает конфигурацию по умолчанию.
func Defaults() *Config {
	return &Config{
		Activation:    "C",
		CloseToTray:   "true",
		HookBackend:   BackendGohook,
		KeyDelay:      20 * time.Millisecond,
		AllowOverlap:  false,
		Notifications: false,
		UILanguage:    "ru",
		Debug:         false,
	}
}

// Load собирает конфигурацию по возрастанию приоритета: значения по
// умолчанию, TOML-файл, .env и окружение, флаги командной строки.
func Load(args []string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	path, err := filePath(args)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	backend := string(cfg.HookBackend)
	fs := newFlagSet(cfg, &backend)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.HookBackend = Backend(backend)
	cfg.File = path

	if cfg.KeyDelay < 0 {
		cfg.KeyDelay = 0
	}
	return cfg, nil
}

// filePath находит путь к файлу конфигурации до разбора остальных источников.
func filePath(args []string) (string, error) {
	scratch := Defaults()
	if err := env.Parse(scratch, env.Options{Prefix: EnvPrefix}); err != nil {
		return "", fmt.Errorf("parse env: %w", err)
	}
	backend := ""
	fs := newFlagSet(scratch, &backend)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil && !errors.Is(err, flag.ErrHelp) {
		return "", err
	}
	return scratch.File, nil
}

func newFlagSet(cfg *Config, backend *string) *flag.FlagSet {
	fs := flag.NewFlagSet("langswitcher", flag.ContinueOnError)
	fs.StringVar(&cfg.File, "config", cfg.File, "путь к TOML-файлу конфигурации")
	fs.StringVar(&cfg.Activation, "activation", cfg.Activation, "буква активации (C|S|L)")
	fs.StringVar(&cfg.CloseToTray, "close-to-tray", cfg.CloseToTray, "\"true\" - скрывать окно в трей вместо закрытия")
	fs.StringVar(backend, "hook-backend", *backend, "источник событий клавиатуры: gohook|hotkey")
	fs.DurationVar(&cfg.KeyDelay, "key-delay", cfg.KeyDelay, "пауза между синтетическими нажатиями, напр. 20ms")
	fs.BoolVar(&cfg.AllowOverlap, "allow-overlap", cfg.AllowOverlap, "разрешить параллельные конвертации")
	fs.BoolVar(&cfg.Notifications, "notifications", cfg.Notifications, "показывать уведомления об ошибках")
	fs.StringVar(&cfg.UILanguage, "ui-language", cfg.UILanguage, "язык интерфейса: ru|en")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "подробный лог")
	return fs
}

// InitialSettings возвращает стартовые значения настроек времени выполнения.
func (c *Config) InitialSettings() map[string]string {
	return map[string]string{
		KeyActivation:  c.Activation,
		KeyCloseToTray: c.CloseToTray,
	}
}
