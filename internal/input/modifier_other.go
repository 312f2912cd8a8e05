//go:build !darwin

package input

import "langswitcher/internal/chord"

// ClipboardModifier - модификатор Ctrl для копирования и вставки.
const ClipboardModifier = chord.KeyControlLeft
