//go:build linux

package hook

import "golang.design/x/hotkey"

// Модификаторы комбинации на X11
const (
	modAlt  = hotkey.Mod1 // Alt = Mod1
	modMeta = hotkey.Mod4 // Super/Win = Mod4
)
