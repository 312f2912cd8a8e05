//go:build darwin

package hook

import "golang.design/x/hotkey"

// Модификаторы комбинации на macOS
const (
	modAlt  = hotkey.ModOption
	modMeta = hotkey.ModCmd
)
