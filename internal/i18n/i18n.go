// Package i18n provides the tray and window labels.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name":    "LangSwitcher",
		"app_tooltip": "LangSwitcher - исправление раскладки",

		// Tray menu
		"tray_settings":      "Настройки",
		"tray_settings_hint": "Комбинация клавиш и поведение окна",
		"tray_quit":          "Выход",
		"tray_quit_hint":     "Закрыть приложение",

		// Settings window
		"settings_title":         "Настройки",
		"settings_activation":    "Активация:",
		"settings_close_to_tray": "Закрывать в трей",

		// Notifications
		"notify_error": "Ошибка",

		// Errors
		"error_conversion": "Не удалось перекодировать выделенный текст",
		"error_hook":       "Не удалось запустить перехват клавиатуры",
		"error_clipboard":  "Буфер обмена недоступен",
		"error_input":      "Не удалось эмулировать нажатия клавиш",
		"error_startup":    "Ошибка запуска",
	},

	EN: {
		// App
		"app_name":    "LangSwitcher",
		"app_tooltip": "LangSwitcher - keyboard layout fixer",

		// Tray menu
		"tray_settings":      "Settings",
		"tray_settings_hint": "Hotkey and window behaviour",
		"tray_quit":          "Quit",
		"tray_quit_hint":     "Close application",

		// Settings window
		"settings_title":         "Settings",
		"settings_activation":    "Activation:",
		"settings_close_to_tray": "Close to tray",

		// Notifications
		"notify_error": "Error",

		// Errors
		"error_conversion": "Could not convert the selected text",
		"error_hook":       "Could not start the keyboard hook",
		"error_clipboard":  "Clipboard is not available",
		"error_input":      "Could not simulate key presses",
		"error_startup":    "Startup error",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) bool {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := translations[lang]; !ok {
		return false
	}
	current = lang
	return true
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
