//go:build windows

package hook

import "golang.design/x/hotkey"

// Модификаторы комбинации на Windows
const (
	modAlt  = hotkey.ModAlt
	modMeta = hotkey.ModWin
)
