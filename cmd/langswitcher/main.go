// LangSwitcher - утилита в системном трее, исправляющая текст, набранный
// не в той раскладке.
//
// Выделите текст и нажмите Alt+Win+C: выделение будет перекодировано
// между QWERTY и ЙЦУКЕН и вставлено обратно.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"langswitcher/internal/app"
	"langswitcher/internal/config"
	"langswitcher/internal/dialog"
	"langswitcher/internal/hook"
	"langswitcher/internal/i18n"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Sugar()

	if !i18n.SetLanguage(i18n.Language(cfg.UILanguage)) {
		log.Warnw("неизвестный язык интерфейса", "language", cfg.UILanguage)
	}

	log.Infow("LangSwitcher запускается", "version", Version)

	code := 0
	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hook.RunOnMainThread(func() {
		code = run(cfg, log)
	})
	logger.Sync() //nolint:errcheck
	os.Exit(code)
}

func run(cfg *config.Config, log *zap.SugaredLogger) int {
	application, err := app.New(cfg, log)
	if err != nil {
		return fail(log, err)
	}

	log.Infow("приложение запущено, выделите текст и нажмите комбинацию",
		"chord", "Alt+Win+"+cfg.Activation)
	if err := application.Run(); err != nil {
		return fail(log, err)
	}
	return 0
}

func fail(log *zap.SugaredLogger, err error) int {
	log.Errorw("ошибка запуска", "error", err)
	dialog.ShowError(i18n.T("app_name")+" - "+i18n.T("error_startup"), err.Error())
	return 1
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
