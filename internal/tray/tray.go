// Package tray предоставляет системный трей с меню.
package tray

import (
	"github.com/getlantern/systray"

	"langswitcher/embedded"
	"langswitcher/internal/i18n"
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnSettingsClick func()
	OnQuit          func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks   Callbacks
	settingsBtn *systray.MenuItem
	quitBtn     *systray.MenuItem
}

// New создаёт новый Tray.
func New(callbacks Callbacks) *Tray {
	return &Tray{
		callbacks: callbacks,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady, onExit func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, func() {
		if onExit != nil {
			onExit()
		}
	})
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.Icon)
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_name"))

	// Настройки
	t.settingsBtn = systray.AddMenuItem(i18n.T("tray_settings"), i18n.T("tray_settings_hint"))

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.settingsBtn.ClickedCh:
			t.click(t.callbacks.OnSettingsClick)

		case <-t.quitBtn.ClickedCh:
			t.click(t.callbacks.OnQuit)
			systray.Quit()
			return
		}
	}
}

func (t *Tray) click(fn func()) {
	if fn != nil {
		fn()
	}
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}
