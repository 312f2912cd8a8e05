//go:build darwin

package input

import "langswitcher/internal/chord"

// ClipboardModifier - модификатор Cmd для копирования и вставки на macOS.
const ClipboardModifier = chord.KeyMetaLeft
