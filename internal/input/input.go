// Package input отправляет синтетические нажатия клавиш в активное окно.
package input

import "langswitcher/internal/chord"

// Keyboard нажимает и отпускает отдельные клавиши.
type Keyboard interface {
	// Press отправляет нажатие клавиши.
	Press(k chord.Key) error
	// Release отправляет отпускание клавиши.
	Release(k chord.Key) error
}

// New создаёт платформо-специфичную клавиатуру.
func New() (Keyboard, error) {
	return newKeyboard()
}
