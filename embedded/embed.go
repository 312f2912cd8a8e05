// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// Icon - иконка трея (go run scripts/generate_icons.go).
//
//go:embed icon.png
var Icon []byte
