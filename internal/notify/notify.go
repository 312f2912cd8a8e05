// Package notify предоставляет системные уведомления.
package notify

import (
	"sync/atomic"

	"github.com/gen2brain/beeep"

	"langswitcher/internal/i18n"
)

const appName = "LangSwitcher"

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled atomic.Bool
	send    func(title, message, icon string) error
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	n := &Notifier{send: beeep.Notify}
	n.enabled.Store(enabled)
	return n
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// Enabled сообщает, включены ли уведомления.
func (n *Notifier) Enabled() bool {
	return n.enabled.Load()
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

// ConversionFailed показывает уведомление о неудачной перекодировке.
func (n *Notifier) ConversionFailed(err error) {
	msg := i18n.T("error_conversion")
	if err != nil {
		msg += ": " + err.Error()
	}
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	n.Error(msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled.Load() {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	if title != "" {
		_ = n.send(appName+": "+title, message, "")
	} else {
		_ = n.send(appName, message, "")
	}
}
