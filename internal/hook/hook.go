// Package hook предоставляет глобальные события клавиатуры.
package hook

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.design/x/hotkey/mainthread"

	"langswitcher/internal/chord"
	"langswitcher/internal/config"
)

// ErrUnknownBackend возвращается для неизвестного имени источника.
var ErrUnknownBackend = errors.New("unknown hook backend")

// Source доставляет события нажатия и отпускания клавиш со всей системы.
type Source interface {
	// Start начинает захват и возвращает канал событий.
	// Канал закрывается после Stop.
	Start() (<-chan chord.Event, error)

	// Stop прекращает захват.
	Stop() error
}

// Reloader перечитывает настройки, если источник от них зависит.
type Reloader interface {
	Reload() error
}

// Settings отдаёт текущий снимок настроек.
type Settings interface {
	Snapshot() config.Snapshot
}

// New создаёт источник событий по имени.
func New(backend config.Backend, settings Settings, log *zap.SugaredLogger) (Source, error) {
	switch backend {
	case config.BackendGohook, "":
		return newGohookSource(log), nil
	case config.BackendHotkey:
		return newRegisteredSource(settings, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}
