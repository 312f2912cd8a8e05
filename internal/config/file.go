package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// decodeFile читает TOML-файл поверх cfg. Отсутствующие ключи не меняются,
// неизвестные ключи считаются ошибкой.
func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("read config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// fileSettings возвращает настройки времени выполнения, заданные в файле.
func fileSettings(path string) (map[string]string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	values := make(map[string]string, 2)
	if md.IsDefined("activation") {
		values[KeyActivation] = cfg.Activation
	}
	if md.IsDefined("close_to_tray") {
		values[KeyCloseToTray] = cfg.CloseToTray
	}
	return values, nil
}

// Watch следит за файлом конфигурации и переносит изменённые activation и
// close_to_tray в settings. Остальные параметры читаются только при запуске.
// Блокирует до отмены ctx.
func Watch(ctx context.Context, path string, settings *Settings, log *zap.SugaredLogger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Следим за каталогом: редакторы часто заменяют файл целиком
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	log.Infow("слежение за файлом конфигурации", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			apply(abs, settings, log)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("ошибка слежения за файлом конфигурации", "error", err)
		}
	}
}

func apply(path string, settings *Settings, log *zap.SugaredLogger) {
	values, err := fileSettings(path)
	if err != nil {
		log.Warnw("файл конфигурации не прочитан", "error", err)
		return
	}
	for key, value := range values {
		if current, ok := settings.Get(key); ok && current == value {
			continue
		}
		log.Infow("настройка изменена в файле", "key", key, "value", value)
		settings.Set(key, value)
	}
}
