package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"langswitcher/internal/config"
)

func newTestTracker(t *testing.T, initial map[string]string) (*Tracker, *config.Settings, *int) {
	t.Helper()
	settings := config.NewSettings(initial)
	fired := 0
	tr := NewTracker(settings, func() { fired++ }, zaptest.NewLogger(t).Sugar())
	return tr, settings, &fired
}

func feed(tr *Tracker, events ...Event) {
	for _, ev := range events {
		tr.Handle(ev)
	}
}

func TestChordFiresInAnyOrder(t *testing.T) {
	orders := [][]Key{
		{KeyAlt, KeyMetaLeft, KeyC},
		{KeyMetaLeft, KeyAlt, KeyC},
		{KeyC, KeyAlt, KeyMetaLeft},
		{KeyC, KeyMetaLeft, KeyAlt},
	}

	for _, order := range orders {
		tr, _, fired := newTestTracker(t, map[string]string{config.KeyActivation: "C"})

		assert.False(t, tr.Handle(Press(order[0])))
		assert.False(t, tr.Handle(Press(order[1])))
		assert.True(t, tr.Handle(Press(order[2])))
		assert.Equal(t, 1, *fired, "order %v", order)
		assert.Equal(t, Complete, tr.State())
	}
}

func TestChordDoesNotClearFlags(t *testing.T) {
	tr, _, fired := newTestTracker(t, map[string]string{config.KeyActivation: "C"})

	feed(tr, Press(KeyAlt), Press(KeyMetaLeft), Press(KeyC))
	assert.Equal(t, Complete, tr.State())

	// повторное нажатие буквы при удержанных модификаторах
	feed(tr, Release(KeyC), Press(KeyC))
	assert.Equal(t, 2, *fired)
}

func TestReleaseBreaksChord(t *testing.T) {
	for _, released := range []Key{KeyAlt, KeyMetaLeft, KeyC} {
		tr, _, fired := newTestTracker(t, map[string]string{config.KeyActivation: "C"})

		feed(tr, Press(KeyAlt), Press(KeyMetaLeft), Press(KeyC), Release(released))
		assert.False(t, tr.Handle(Press(KeyUnknown)), "released %v", released)
		assert.Equal(t, 1, *fired)
	}
}

func TestUnrelatedPressWhileHeld(t *testing.T) {
	tr, _, fired := newTestTracker(t, map[string]string{config.KeyActivation: "C"})

	feed(tr, Press(KeyAlt), Press(KeyMetaLeft), Press(KeyC))
	assert.True(t, tr.Handle(Press(KeyV)), "every press re-checks the chord")
	assert.Equal(t, 2, *fired)
}

func TestOtherLetterIgnored(t *testing.T) {
	tr, _, fired := newTestTracker(t, map[string]string{config.KeyActivation: "S"})

	feed(tr, Press(KeyAlt), Press(KeyMetaLeft), Press(KeyC))
	assert.Zero(t, *fired)
	assert.Equal(t, AltHeld|MetaHeld, tr.State())

	feed(tr, Press(KeyS))
	assert.Equal(t, 1, *fired)
}

func TestActivationChangeTakesEffect(t *testing.T) {
	tr, settings, fired := newTestTracker(t, map[string]string{config.KeyActivation: "C"})

	feed(tr, Press(KeyAlt), Press(KeyMetaLeft))
	settings.Set(config.KeyActivation, "L")

	feed(tr, Press(KeyC))
	assert.Zero(t, *fired)

	feed(tr, Press(KeyL))
	assert.Equal(t, 1, *fired)
}

func TestUnsetActivation(t *testing.T) {
	tr, _, fired := newTestTracker(t, nil)

	feed(tr, Press(KeyAlt), Press(KeyMetaLeft), Press(KeyC), Press(KeyS), Press(KeyL))
	assert.Zero(t, *fired)
	assert.Equal(t, AltHeld|MetaHeld, tr.State())
}

func TestReset(t *testing.T) {
	tr, _, _ := newTestTracker(t, map[string]string{config.KeyActivation: "C"})

	feed(tr, Press(KeyAlt), Press(KeyMetaLeft))
	tr.Reset()
	assert.Equal(t, Idle, tr.State())
}

func TestLetterKey(t *testing.T) {
	for letter, want := range map[string]Key{"C": KeyC, "S": KeyS, "L": KeyL} {
		got, ok := LetterKey(letter)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := LetterKey("c")
	assert.False(t, ok, "letters are case sensitive")
}
