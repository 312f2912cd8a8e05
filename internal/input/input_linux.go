//go:build linux

package input

import (
	"fmt"
	"os"
	"os/exec"

	"langswitcher/internal/chord"
)

func newKeyboard() (Keyboard, error) {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := exec.LookPath("wtype"); err != nil {
			return nil, fmt.Errorf("wayland session requires wtype: %w", err)
		}
		return wtypeKeyboard{}, nil
	}
	return robotKeyboard{}, nil
}

// wtypeKeyboard работает под Wayland, где XTest недоступен.
type wtypeKeyboard struct{}

// wtype различает модификаторы (-M/-m) и обычные клавиши (-P/-p)
var wtypeNames = map[chord.Key]struct {
	name     string
	modifier bool
}{
	chord.KeyAlt:         {"alt", true},
	chord.KeyMetaLeft:    {"logo", true},
	chord.KeyControlLeft: {"ctrl", true},
	chord.KeyC:           {"c", false},
	chord.KeyS:           {"s", false},
	chord.KeyL:           {"l", false},
	chord.KeyV:           {"v", false},
}

func (wtypeKeyboard) Press(k chord.Key) error {
	return wtype(k, true)
}

func (wtypeKeyboard) Release(k chord.Key) error {
	return wtype(k, false)
}

func wtype(k chord.Key, down bool) error {
	args, err := wtypeArgs(k, down)
	if err != nil {
		return err
	}
	return exec.Command("wtype", args...).Run()
}

func wtypeArgs(k chord.Key, down bool) ([]string, error) {
	key, ok := wtypeNames[k]
	if !ok {
		return nil, fmt.Errorf("input: no key name for %s", k)
	}

	var flag string
	switch {
	case key.modifier && down:
		flag = "-M"
	case key.modifier:
		flag = "-m"
	case down:
		flag = "-P"
	default:
		flag = "-p"
	}
	return []string{flag, key.name}, nil
}
