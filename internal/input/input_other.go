//go:build !linux

package input

func newKeyboard() (Keyboard, error) {
	return robotKeyboard{}, nil
}
