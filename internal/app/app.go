// Package app содержит основную логику приложения.
package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"langswitcher/internal/chord"
	"langswitcher/internal/clipboard"
	"langswitcher/internal/config"
	"langswitcher/internal/convert"
	"langswitcher/internal/hook"
	"langswitcher/internal/i18n"
	"langswitcher/internal/input"
	"langswitcher/internal/notify"
	"langswitcher/internal/settings"
	"langswitcher/internal/tray"
)

// Deps - системные зависимости приложения.
type Deps struct {
	Source    hook.Source
	Keyboard  convert.Keyboard
	Clipboard convert.Clipboard
}

// App представляет главное приложение.
type App struct {
	mu       sync.Mutex
	config   *config.Config
	log      *zap.SugaredLogger
	settings *config.Settings
	source   hook.Source
	tracker  *chord.Tracker
	trigger  *convert.Trigger
	notifier *notify.Notifier

	tray        *tray.Tray
	settingsWin *settings.Window

	quit      func()
	stopWatch context.CancelFunc
	started   bool
	closed    bool
	err       error // ошибка запуска, возвращается из Run
}

// New создаёт приложение с системными клавиатурой, буфером обмена и
// перехватом клавиш.
func New(cfg *config.Config, log *zap.SugaredLogger) (*App, error) {
	clip, err := clipboard.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("error_clipboard"), err)
	}

	kb, err := input.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("error_input"), err)
	}

	store := config.NewSettings(cfg.InitialSettings())

	source, err := hook.New(cfg.HookBackend, store, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("error_hook"), err)
	}

	return newApp(cfg, store, Deps{Source: source, Keyboard: kb, Clipboard: clip}, log), nil
}

func newApp(cfg *config.Config, store *config.Settings, deps Deps, log *zap.SugaredLogger) *App {
	a := &App{
		config:   cfg,
		log:      log,
		settings: store,
		source:   deps.Source,
		notifier: notify.New(cfg.Notifications),
	}

	a.trigger = convert.New(deps.Keyboard, deps.Clipboard, store, convert.Options{
		Modifier:     input.ClipboardModifier,
		Delay:        cfg.KeyDelay,
		AllowOverlap: cfg.AllowOverlap,
		OnError:      a.notifier.ConversionFailed,
	}, log)

	a.tracker = chord.NewTracker(store, a.onChord, log)

	store.OnChange(a.onSettingChanged)

	// Создаём окно настроек
	a.settingsWin = settings.New(store, log)
	a.settingsWin.OnCloseRequested(a.onWindowClose)

	// Создаём системный трей с обработчиками
	a.tray = tray.New(tray.Callbacks{
		OnSettingsClick: func() {
			a.settingsWin.Show()
		},
		OnQuit: func() {
			a.Close()
		},
	})
	a.quit = a.tray.Quit

	return a
}

// Run запускает трей и перехват клавиш. Блокирует до выхода из трея и
// возвращает ошибку запуска, если она была.
func (a *App) Run() error {
	a.tray.Run(func() {
		// Перехват запускается после инициализации трея
		if err := a.Start(); err != nil {
			a.log.Errorw("не удалось запустить перехват клавиатуры", "error", err)
			a.mu.Lock()
			a.err = err
			a.mu.Unlock()
			a.Quit()
		}
	}, a.Close)

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Start запускает источник событий и цикл их обработки.
func (a *App) Start() error {
	events, err := a.source.Start()
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T("error_hook"), err)
	}

	a.mu.Lock()
	a.started = true
	if a.config.File != "" {
		var ctx context.Context
		ctx, a.stopWatch = context.WithCancel(context.Background())
		go a.watchFile(ctx, a.config.File)
	}
	a.mu.Unlock()

	a.log.Infow("приложение запущено",
		"backend", string(a.config.HookBackend),
		"activation", a.config.Activation,
	)

	go a.listen(events)
	return nil
}

func (a *App) listen(events <-chan chord.Event) {
	for ev := range events {
		a.tracker.Handle(ev)
	}
	a.log.Debugw("поток событий клавиатуры закрыт")
}

func (a *App) watchFile(ctx context.Context, path string) {
	if err := config.Watch(ctx, path, a.settings, a.log); err != nil {
		a.log.Warnw("изменения файла конфигурации не отслеживаются", "error", err)
	}
}

// onChord вызывается трекером под его блокировкой; Fire не блокируется.
func (a *App) onChord() {
	a.log.Debugw("комбинация нажата")
	a.trigger.Fire()
}

func (a *App) onSettingChanged(key, value string) {
	a.log.Infow("настройка изменена", "key", key, "value", value)

	if key != config.KeyActivation {
		return
	}

	a.mu.Lock()
	started := a.started && !a.closed
	a.mu.Unlock()
	if !started {
		return
	}

	r, ok := a.source.(hook.Reloader)
	if !ok {
		return
	}
	if err := r.Reload(); err != nil {
		a.log.Errorw("не удалось перерегистрировать комбинацию", "error", err)
		a.notifier.Error(i18n.T("error_hook"))
	}
}

// onWindowClose решает судьбу приложения при закрытии окна настроек.
// Возвращает true, если приложение остаётся в трее.
func (a *App) onWindowClose() bool {
	keep, err := a.settings.Snapshot().CloseToTray()
	if err != nil {
		a.log.Warnw("closetotray не задан, приложение закрывается", "error", err)
	}
	if keep {
		a.log.Infow("окно скрыто, приложение работает в трее")
		return true
	}

	a.Quit()
	return false
}

// Quit завершает приложение.
func (a *App) Quit() {
	a.Close()
	if a.quit != nil {
		a.quit()
	}
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	started := a.started
	if a.stopWatch != nil {
		a.stopWatch()
	}
	a.mu.Unlock()

	if started {
		if err := a.source.Stop(); err != nil {
			a.log.Warnw("ошибка остановки перехвата клавиатуры", "error", err)
		}
	}

	if a.settingsWin != nil {
		a.settingsWin.Hide()
	}

	a.log.Infow("приложение остановлено")
}
