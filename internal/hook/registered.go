package hook

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.design/x/hotkey"

	"langswitcher/internal/chord"
)

// registeredSource регистрирует комбинацию Alt+Super+буква в системе и
// превращает её нажатие в последовательность событий для трекера.
// В отличие от gohook комбинация не доходит до активного приложения.
type registeredSource struct {
	mu       sync.Mutex
	hk       *hotkey.Hotkey
	settings Settings
	out      chan chord.Event
	stopCh   chan struct{}
	letter   chord.Key
	wg       sync.WaitGroup
	log      *zap.SugaredLogger
}

func newRegisteredSource(settings Settings, log *zap.SugaredLogger) *registeredSource {
	return &registeredSource{
		settings: settings,
		log:      log,
	}
}

func (s *registeredSource) Start() (<-chan chord.Event, error) {
	s.mu.Lock()
	if s.out == nil {
		s.out = make(chan chord.Event, 16)
	}
	out := s.out
	s.mu.Unlock()

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return out, nil
}

// Reload перерегистрирует комбинацию с текущей буквой активации.
func (s *registeredSource) Reload() error {
	letter, err := s.settings.Snapshot().Activation()
	if err != nil {
		return err
	}
	key, ok := chord.LetterKey(letter)
	if !ok {
		return fmt.Errorf("hook: unsupported activation letter %q", letter)
	}
	hkKey, ok := keyMap[key]
	if !ok {
		return fmt.Errorf("hook: no hotkey for %s", key)
	}

	s.log.Infow("регистрация горячей клавиши", "letter", letter)

	s.mu.Lock()
	// Останавливаем предыдущий listener
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
	oldHk := s.hk
	s.hk = nil
	s.mu.Unlock()

	// Отменяем предыдущую регистрацию с таймаутом
	if oldHk != nil {
		done := make(chan struct{})
		go func() {
			oldHk.Unregister()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			s.log.Warnw("таймаут отмены регистрации горячей клавиши")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.out == nil {
		return fmt.Errorf("hook: source is stopped")
	}

	hk := hotkey.New([]hotkey.Modifier{modAlt, modMeta}, hkKey)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey: %w", err)
	}

	s.hk = hk
	s.letter = key
	s.stopCh = make(chan struct{})
	s.wg.Add(1)
	go s.listen(hk, key, s.out, s.stopCh)
	return nil
}

func (s *registeredSource) listen(hk *hotkey.Hotkey, letter chord.Key, out chan chord.Event, stopCh chan struct{}) {
	defer s.wg.Done()

	var lastKeydown time.Time
	const debounceInterval = 300 * time.Millisecond // Защита от key repeat

	emit := func(events []chord.Event) {
		for _, ev := range events {
			select {
			case out <- ev:
			case <-stopCh:
				return
			}
		}
	}

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			emit(chordEvents(letter, true))
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
			emit(chordEvents(letter, false))
		}
	}
}

func (s *registeredSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}

	var err error
	if s.hk != nil {
		err = s.hk.Unregister()
		s.hk = nil
	}
	// Канал закрывается только после выхода всех listener'ов
	s.wg.Wait()
	if s.out != nil {
		close(s.out)
		s.out = nil
	}
	return err
}

// chordEvents разворачивает нажатие или отпускание зарегистрированной
// комбинации в события отдельных клавиш.
func chordEvents(letter chord.Key, down bool) []chord.Event {
	if down {
		return []chord.Event{
			chord.Press(chord.KeyAlt),
			chord.Press(chord.KeyMetaLeft),
			chord.Press(letter),
		}
	}
	return []chord.Event{
		chord.Release(letter),
		chord.Release(chord.KeyMetaLeft),
		chord.Release(chord.KeyAlt),
	}
}

// keyMap маппинг букв активации -> hotkey.Key
var keyMap = map[chord.Key]hotkey.Key{
	chord.KeyC: hotkey.KeyC,
	chord.KeyS: hotkey.KeyS,
	chord.KeyL: hotkey.KeyL,
}
