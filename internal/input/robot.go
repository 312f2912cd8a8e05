package input

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"langswitcher/internal/chord"
)

// robotNames маппинг chord.Key -> имя клавиши robotgo
var robotNames = map[chord.Key]string{
	chord.KeyAlt:         "alt",
	chord.KeyMetaLeft:    "lcmd",
	chord.KeyControlLeft: "lctrl",
	chord.KeyC:           "c",
	chord.KeyS:           "s",
	chord.KeyL:           "l",
	chord.KeyV:           "v",
}

type robotKeyboard struct{}

func (robotKeyboard) Press(k chord.Key) error {
	return toggle(k, "down")
}

func (robotKeyboard) Release(k chord.Key) error {
	return toggle(k, "up")
}

func toggle(k chord.Key, dir string) error {
	name, ok := robotNames[k]
	if !ok {
		return fmt.Errorf("input: no key name for %s", k)
	}
	return robotgo.KeyToggle(name, dir)
}
