// Package settings provides the Gio-based settings window.
package settings

import (
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"go.uber.org/zap"

	"langswitcher/internal/config"
	"langswitcher/internal/i18n"
)

// Store is the settings bridge the window writes to.
type Store interface {
	Set(key, value string)
	Snapshot() config.Snapshot
}

// Window represents the settings window.
type Window struct {
	mu    sync.Mutex
	store Store
	log   *zap.SugaredLogger

	// Window state
	window  *app.Window
	running bool
	hiding  bool // Hide() is closing the window
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Widgets
	activation  widget.Enum
	closeToTray widget.Bool
	letter      string // last stored activation letter

	// Callbacks
	onCloseRequested func() bool
}

// New creates a new settings window. It is not shown until Show is called.
func New(store Store, log *zap.SugaredLogger) *Window {
	w := &Window{
		store: store,
		log:   log,
	}
	w.load()
	return w
}

// OnCloseRequested sets the callback invoked when the user closes the window.
// It returns true when the application keeps running in the tray.
func (w *Window) OnCloseRequested(fn func() bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCloseRequested = fn
}

// load copies the stored values into the widgets.
func (w *Window) load() {
	snap := w.store.Snapshot()

	letter, err := snap.Activation()
	if err != nil {
		w.log.Warnw("activation not set", "error", err)
		letter = ""
	}
	w.activation.Value = letter
	w.letter = letter

	keep, err := snap.CloseToTray()
	if err != nil {
		w.log.Warnw("closetotray not set", "error", err)
	}
	w.closeToTray.Value = keep
}

// selectActivation stores a new activation letter.
func (w *Window) selectActivation(letter string) {
	w.mu.Lock()
	changed := w.letter != letter
	w.activation.Value = letter
	w.letter = letter
	w.letter = letter
	w.mu.Unlock()

	if changed {
		w.log.Infow("activation changed", "letter", letter)
		w.store.Set(config.KeyActivation, letter)
	}
}

// setCloseToTray stores the close-to-tray flag.
func (w *Window) setCloseToTray(keep bool) {
	w.mu.Lock()
	w.closeToTray.Value = keep
	w.mu.Unlock()

	value := "false"
	if keep {
		value = "true"
	}
	w.log.Infow("close to tray changed", "value", value)
	w.store.Set(config.KeyCloseToTray, value)
}

// Show displays the settings window (non-blocking). An open window is raised.
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		if w.window != nil {
			w.window.Perform(system.ActionRaise)
		}
		return
	}

	w.load()

	w.running = true
	w.hiding = false
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.window = new(app.Window)

	go w.runEventLoop(w.window, w.stopCh, w.doneCh)
}

// Hide closes the settings window without asking the close callback.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.hiding = true
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// destroyed runs when the native window is gone. A close the user started
// goes through the close callback; without one the window just hides.
func (w *Window) destroyed() {
	w.mu.Lock()
	userClose := !w.hiding
	w.running = false
	w.hiding = false
	w.window = nil
	callback := w.onCloseRequested
	w.mu.Unlock()

	if !userClose {
		return
	}
	if callback == nil {
		w.log.Debugw("settings window closed")
		return
	}
	if callback() {
		w.log.Infow("settings window hidden to tray")
	}
}

func (w *Window) runEventLoop(win *app.Window, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	win.Option(
		app.Title(i18n.T("app_name")+" - "+i18n.T("settings_title")),
		app.Size(unit.Dp(360), unit.Dp(260)),
		app.MinSize(unit.Dp(320), unit.Dp(220)),
	)

	go func() {
		select {
		case <-stopCh:
			win.Perform(system.ActionClose)
		case <-doneCh:
		}
	}()

	var ops op.Ops
	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				w.log.Errorw("settings window failed", "error", e.Err)
			}
			w.destroyed()
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.handleEvents(gtx)
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) handleEvents(gtx layout.Context) {
	if w.activation.Update(gtx) {
		w.selectActivation(w.activation.Value)
	}

	if w.closeToTray.Update(gtx) {
		w.setCloseToTray(w.closeToTray.Value)
	}
}
