// Package clipboard предоставляет текстовый доступ к системному буферу обмена.
package clipboard

import (
	"fmt"

	xclipboard "golang.design/x/clipboard"
)

// Clipboard читает и пишет текст буфера обмена.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// New создаёт платформо-специфичный буфер обмена.
func New() (Clipboard, error) {
	return newClipboard()
}

// system работает через golang.design/x/clipboard (X11, Windows, macOS).
type system struct{}

func newSystem() (*system, error) {
	if err := xclipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return &system{}, nil
}

func (*system) Read() (string, error) {
	return string(xclipboard.Read(xclipboard.FmtText)), nil
}

func (*system) Write(text string) error {
	xclipboard.Write(xclipboard.FmtText, []byte(text))
	return nil
}
