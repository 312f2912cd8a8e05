// Package chord отслеживает комбинацию Alt + Meta + буква активации.
package chord

import (
	"sync"

	"go.uber.org/zap"

	"langswitcher/internal/config"
)

// State - набор удерживаемых клавиш комбинации.
type State uint8

const (
	AltHeld State = 1 << iota
	MetaHeld
	LetterHeld

	Idle     State = 0
	Complete       = AltHeld | MetaHeld | LetterHeld
)

// Settings отдаёт текущий снимок настроек.
type Settings interface {
	Snapshot() config.Snapshot
}

// Tracker обрабатывает события клавиатуры и вызывает fire, когда
// все три клавиши комбинации нажаты одновременно.
type Tracker struct {
	mu       sync.Mutex
	state    State
	settings Settings
	fire     func()
	log      *zap.SugaredLogger
}

// NewTracker создаёт трекер. fire не должен блокироваться: он вызывается
// под блокировкой трекера.
func NewTracker(settings Settings, fire func(), log *zap.SugaredLogger) *Tracker {
	return &Tracker{
		settings: settings,
		fire:     fire,
		log:      log,
	}
}

// Handle применяет событие и возвращает true, если комбинация сработала.
//
// Проверка выполняется после каждого нажатия, включая посторонние клавиши.
// Срабатывание не сбрасывает флаги, их снимают только отпускания.
func (t *Tracker) Handle(ev Event) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	flag := t.flagFor(ev.Key)
	if !ev.Pressed {
		t.state &^= flag
		return false
	}
	t.state |= flag

	if t.state != Complete {
		return false
	}
	t.log.Debugw("комбинация сработала", "key", ev.Key.String())
	if t.fire != nil {
		t.fire()
	}
	return true
}

// State возвращает текущее состояние.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Reset сбрасывает все флаги.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = Idle
}

func (t *Tracker) flagFor(k Key) State {
	switch k {
	case KeyAlt:
		return AltHeld
	case KeyMetaLeft:
		return MetaHeld
	}

	// Буква читается из настроек на каждом событии
	letter, err := t.settings.Snapshot().Activation()
	if err != nil {
		t.log.Warnw("буква активации не задана", "error", err)
		return 0
	}
	if key, ok := LetterKey(letter); ok && key == k {
		return LetterHeld
	}
	return 0
}
