package hook

import (
	"testing"

	gohook "github.com/robotn/gohook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"langswitcher/internal/chord"
	"langswitcher/internal/config"
)

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("evdev", config.NewSettings(nil), zaptest.NewLogger(t).Sugar())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewBackends(t *testing.T) {
	log := zaptest.NewLogger(t).Sugar()
	settings := config.NewSettings(nil)

	src, err := New(config.BackendGohook, settings, log)
	require.NoError(t, err)
	assert.IsType(t, &gohookSource{}, src)

	src, err = New(config.BackendHotkey, settings, log)
	require.NoError(t, err)
	assert.IsType(t, &registeredSource{}, src)
	assert.Implements(t, (*Reloader)(nil), src)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   gohook.Event
		want chord.Event
		ok   bool
	}{
		{"alt pressed", gohook.Event{Kind: gohook.KeyHold, Keycode: vcAltL}, chord.Press(chord.KeyAlt), true},
		{"meta released", gohook.Event{Kind: gohook.KeyUp, Keycode: vcMetaL}, chord.Release(chord.KeyMetaLeft), true},
		{"letter pressed", gohook.Event{Kind: gohook.KeyHold, Keycode: vcL}, chord.Press(chord.KeyL), true},
		{"other key pressed", gohook.Event{Kind: gohook.KeyHold, Keycode: 0x0002}, chord.Press(chord.KeyUnknown), true},
		{"typed character skipped", gohook.Event{Kind: gohook.KeyDown, Keycode: vcC}, chord.Event{}, false},
		{"mouse skipped", gohook.Event{Kind: gohook.MouseDown}, chord.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChordEventsDriveTracker(t *testing.T) {
	settings := config.NewSettings(map[string]string{config.KeyActivation: "S"})
	fired := 0
	tr := chord.NewTracker(settings, func() { fired++ }, zaptest.NewLogger(t).Sugar())

	for _, ev := range chordEvents(chord.KeyS, true) {
		tr.Handle(ev)
	}
	assert.Equal(t, 1, fired)

	for _, ev := range chordEvents(chord.KeyS, false) {
		tr.Handle(ev)
	}
	assert.Equal(t, chord.Idle, tr.State())
}

func TestReloadRejectsUnknownLetter(t *testing.T) {
	settings := config.NewSettings(map[string]string{config.KeyActivation: "X"})
	src := newRegisteredSource(settings, zaptest.NewLogger(t).Sugar())

	assert.Error(t, src.Reload())

	_, err := newRegisteredSource(config.NewSettings(nil), zaptest.NewLogger(t).Sugar()).Start()
	assert.ErrorIs(t, err, config.ErrUnset)
}
