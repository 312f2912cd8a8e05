// Package dialog предоставляет модальные диалоги для фатальных ошибок.
package dialog

import (
	"github.com/ncruces/zenity"
)

// ShowError показывает сообщение об ошибке и ждёт, пока пользователь его закроет.
func ShowError(title, message string) {
	_ = zenity.Error(message, zenity.Title(title), zenity.ErrorIcon)
}
