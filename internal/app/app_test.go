package app

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"langswitcher/internal/chord"
	"langswitcher/internal/config"
)

type fakeSource struct {
	mu       sync.Mutex
	events   chan chord.Event
	startErr error
	stops    int
	reloads  int
}

func newFakeSource() *fakeSource {
	return &fakeSource{events: make(chan chord.Event, 16)}
}

func (s *fakeSource) Start() (<-chan chord.Event, error) {
	if s.startErr != nil {
		return nil, s.startErr
	}
	return s.events, nil
}

func (s *fakeSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops++
	if s.stops == 1 {
		close(s.events)
	}
	return nil
}

func (s *fakeSource) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloads++
	return nil
}

func (s *fakeSource) counts() (stops, reloads int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops, s.reloads
}

// desk копирует выделение по Ctrl+C и запоминает вставки по Ctrl+V.
type desk struct {
	mu        sync.Mutex
	selection string
	clip      string
	pasted    []string
	ctrl      bool
}

func (d *desk) Press(k chord.Key) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case k == chord.KeyControlLeft || k == chord.KeyMetaLeft:
		d.ctrl = true
	case k == chord.KeyC && d.ctrl:
		d.clip = d.selection
	case k == chord.KeyV && d.ctrl:
		d.pasted = append(d.pasted, d.clip)
	}
	return nil
}

func (d *desk) Release(k chord.Key) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if k == chord.KeyControlLeft || k == chord.KeyMetaLeft {
		d.ctrl = false
	}
	return nil
}

func (d *desk) Read() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clip, nil
}

func (d *desk) Write(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clip = text
	return nil
}

func (d *desk) pastes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.pasted...)
}

func newTestApp(t *testing.T, closeToTray string) (*App, *fakeSource, *desk, *int) {
	t.Helper()

	cfg := config.Defaults()
	cfg.KeyDelay = 0
	cfg.CloseToTray = closeToTray

	initial := cfg.InitialSettings()
	if closeToTray == "" {
		delete(initial, config.KeyCloseToTray)
	}

	src := newFakeSource()
	d := &desk{selection: "Ghbdtn"}
	a := newApp(cfg, config.NewSettings(initial), Deps{Source: src, Keyboard: d, Clipboard: d}, zaptest.NewLogger(t).Sugar())

	quits := 0
	a.quit = func() { quits++ }
	return a, src, d, &quits
}

func TestChordConvertsSelection(t *testing.T) {
	a, src, d, _ := newTestApp(t, "true")
	require.NoError(t, a.Start())
	defer a.Close()

	src.events <- chord.Press(chord.KeyMetaLeft)
	src.events <- chord.Press(chord.KeyAlt)
	src.events <- chord.Press(chord.KeyC)

	assert.Eventually(t, func() bool {
		return len(d.pastes()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"Привет"}, d.pastes())
}

func TestStartError(t *testing.T) {
	a, src, _, _ := newTestApp(t, "true")
	src.startErr = errors.New("no display")

	err := a.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, src.startErr)
}

func TestWindowCloseToTray(t *testing.T) {
	a, src, _, quits := newTestApp(t, "true")
	require.NoError(t, a.Start())

	assert.True(t, a.onWindowClose())
	assert.Zero(t, *quits)

	stops, _ := src.counts()
	assert.Zero(t, stops)
	a.Close()
}

func TestWindowCloseQuits(t *testing.T) {
	a, src, _, quits := newTestApp(t, "false")
	require.NoError(t, a.Start())

	assert.False(t, a.onWindowClose())
	assert.Equal(t, 1, *quits)

	stops, _ := src.counts()
	assert.Equal(t, 1, stops)
}

func TestWindowCloseUnsetQuits(t *testing.T) {
	a, _, _, quits := newTestApp(t, "")

	assert.False(t, a.onWindowClose())
	assert.Equal(t, 1, *quits)
}

func TestWindowCloseFollowsBridge(t *testing.T) {
	a, _, _, quits := newTestApp(t, "true")

	a.settings.Set(config.KeyCloseToTray, "yes")
	assert.False(t, a.onWindowClose())
	assert.Equal(t, 1, *quits)
}

func TestActivationChangeReloads(t *testing.T) {
	a, src, _, _ := newTestApp(t, "true")

	a.settings.Set(config.KeyActivation, "S")
	_, reloads := src.counts()
	assert.Zero(t, reloads, "not started yet")

	require.NoError(t, a.Start())
	a.settings.Set(config.KeyActivation, "L")
	a.settings.Set(config.KeyCloseToTray, "false")
	_, reloads = src.counts()
	assert.Equal(t, 1, reloads)

	a.Close()
	a.settings.Set(config.KeyActivation, "C")
	_, reloads = src.counts()
	assert.Equal(t, 1, reloads)
}

func TestCloseIsIdempotent(t *testing.T) {
	a, src, _, _ := newTestApp(t, "true")
	require.NoError(t, a.Start())

	a.Close()
	a.Close()

	stops, _ := src.counts()
	assert.Equal(t, 1, stops)
}

func TestConfigFileChangesReachSettings(t *testing.T) {
	a, src, _, _ := newTestApp(t, "true")
	path := filepath.Join(t.TempDir(), "langswitcher.toml")
	require.NoError(t, os.WriteFile(path, []byte("activation = \"C\"\n"), 0o644))
	a.config.File = path

	require.NoError(t, a.Start())
	defer a.Close()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("activation = \"S\"\n"), 0o644)
		_, reloads := src.counts()
		return reloads > 0
	}, 2*time.Second, 20*time.Millisecond)

	v, _ := a.settings.Get(config.KeyActivation)
	assert.Equal(t, "S", v)
}
