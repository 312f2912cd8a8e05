package hook

import (
	"sync"

	gohook "github.com/robotn/gohook"
	"go.uber.org/zap"

	"langswitcher/internal/chord"
)

// Виртуальные коды libuiohook
const (
	vcAltL     = 0x0038
	vcMetaL    = 0x0E5B
	vcControlL = 0x001D
	vcC        = 0x002E
	vcS        = 0x001F
	vcL        = 0x0026
	vcV        = 0x002F
)

// gohookSource читает сырые события libuiohook. Клавиши не перехватываются,
// активное приложение тоже их получает.
type gohookSource struct {
	mu     sync.Mutex
	out    chan chord.Event
	stopCh chan struct{}
	log    *zap.SugaredLogger
}

func newGohookSource(log *zap.SugaredLogger) *gohookSource {
	return &gohookSource{log: log}
}

func (s *gohookSource) Start() (<-chan chord.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.out != nil {
		return s.out, nil
	}

	s.out = make(chan chord.Event, 64)
	s.stopCh = make(chan struct{})
	raw := gohook.Start()
	go s.listen(raw, s.out, s.stopCh)

	s.log.Infow("глобальный перехват клавиатуры запущен", "backend", "gohook")
	return s.out, nil
}

func (s *gohookSource) listen(raw chan gohook.Event, out chan chord.Event, stopCh chan struct{}) {
	defer close(out)
	for {
		select {
		case <-stopCh:
			return
		case e, ok := <-raw:
			if !ok {
				return
			}
			ev, ok := translate(e)
			if !ok {
				continue
			}
			select {
			case out <- ev:
			case <-stopCh:
				return
			}
		}
	}
}

func (s *gohookSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCh == nil {
		return nil
	}
	close(s.stopCh)
	s.stopCh = nil
	s.out = nil
	gohook.End()
	return nil
}

// translate переводит событие libuiohook в chord.Event.
// KeyHold - физическое нажатие, KeyDown - набранный символ (пропускается).
func translate(e gohook.Event) (chord.Event, bool) {
	switch e.Kind {
	case gohook.KeyHold:
		return chord.Press(rawKey(e.Keycode)), true
	case gohook.KeyUp:
		return chord.Release(rawKey(e.Keycode)), true
	default:
		return chord.Event{}, false
	}
}

func rawKey(code uint16) chord.Key {
	switch code {
	case vcAltL:
		return chord.KeyAlt
	case vcMetaL:
		return chord.KeyMetaLeft
	case vcControlL:
		return chord.KeyControlLeft
	case vcC:
		return chord.KeyC
	case vcS:
		return chord.KeyS
	case vcL:
		return chord.KeyL
	case vcV:
		return chord.KeyV
	default:
		return chord.KeyUnknown
	}
}
