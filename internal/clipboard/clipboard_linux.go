//go:build linux

package clipboard

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func newClipboard() (Clipboard, error) {
	// Wayland: X11-буфер недоступен, используем wl-clipboard
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := exec.LookPath("wl-copy"); err != nil {
			return nil, fmt.Errorf("wayland session requires wl-clipboard: %w", err)
		}
		return wayland{}, nil
	}
	return newSystem()
}

type wayland struct{}

func (wayland) Read() (string, error) {
	out, err := exec.Command("wl-paste", "--no-newline").Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Пустой буфер: wl-paste завершается с ошибкой
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("wl-paste: %w", err)
	}
	return string(out), nil
}

func (wayland) Write(text string) error {
	cmd := exec.Command("wl-copy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wl-copy: %w", err)
	}
	return nil
}
