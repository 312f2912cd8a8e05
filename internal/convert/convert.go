// Package convert заменяет выделенный текст его перекодированной версией
// через буфер обмена и синтетические нажатия клавиш.
package convert

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"langswitcher/internal/chord"
	"langswitcher/internal/config"
	"langswitcher/internal/translit"
)

// ErrBusy возвращается задачей, отброшенной из-за уже идущей конвертации.
var ErrBusy = errors.New("conversion already in progress")

// Keyboard отправляет синтетические события клавиатуры.
type Keyboard interface {
	Press(k chord.Key) error
	Release(k chord.Key) error
}

// Clipboard читает и пишет текст буфера обмена.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Settings отдаёт текущий снимок настроек.
type Settings interface {
	Snapshot() config.Snapshot
}

// Options настраивает Trigger.
type Options struct {
	// Modifier - модификатор копирования/вставки (Ctrl, на macOS - Cmd).
	Modifier chord.Key
	// Delay - пауза после каждого шага.
	Delay time.Duration
	// AllowOverlap разрешает запуск, пока предыдущая конвертация не закончилась.
	AllowOverlap bool
	// OnError вызывается при аварийном завершении задачи.
	OnError func(error)
}

// Trigger запускает конвертацию выделенного текста.
type Trigger struct {
	kb       Keyboard
	clip     Clipboard
	settings Settings
	opts     Options
	log      *zap.SugaredLogger
	sleep    func(time.Duration)

	running atomic.Bool
}

// New создаёт Trigger.
func New(kb Keyboard, clip Clipboard, settings Settings, opts Options, log *zap.SugaredLogger) *Trigger {
	if opts.Modifier == chord.KeyUnknown {
		opts.Modifier = chord.KeyControlLeft
	}
	return &Trigger{
		kb:       kb,
		clip:     clip,
		settings: settings,
		opts:     opts,
		log:      log,
		sleep:    time.Sleep,
	}
}

// Fire запускает конвертацию в отдельной горутине и сразу возвращает задачу.
func (t *Trigger) Fire() *Task {
	task := newTask()

	if !t.opts.AllowOverlap && !t.running.CompareAndSwap(false, true) {
		t.log.Infow("конвертация уже идёт, повторное срабатывание пропущено")
		task.finish(ErrBusy)
		return task
	}

	go func() {
		err := t.run()
		if !t.opts.AllowOverlap {
			t.running.Store(false)
		}
		if err != nil {
			t.log.Errorw("конвертация прервана", "error", err)
			if t.opts.OnError != nil {
				t.opts.OnError(err)
			}
		}
		task.finish(err)
	}()
	return task
}

func (t *Trigger) run() error {
	// Отпускаем клавиши комбинации, иначе они попадут в Ctrl+C/Ctrl+V
	t.release(chord.KeyAlt)
	t.release(chord.KeyMetaLeft)
	letter, err := t.settings.Snapshot().Activation()
	if err != nil {
		t.log.Warnw("буква активации не задана", "error", err)
	} else if key, ok := chord.LetterKey(letter); ok {
		t.release(key)
	} else {
		t.log.Warnw("неизвестная буква активации", "letter", letter)
	}

	oldVal, err := t.clip.Read()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}

	t.tap(chord.KeyC)

	selection, err := t.clip.Read()
	if err != nil {
		return fmt.Errorf("read selection: %w", err)
	}
	converted := translit.Convert(selection)
	if err := t.clip.Write(converted); err != nil {
		return fmt.Errorf("write converted selection: %w", err)
	}
	t.log.Debugw("выделение перекодировано",
		"direction", translit.Detect(selection).String(),
		"runes", len([]rune(selection)),
	)

	t.tap(chord.KeyV)

	// Прежнее содержимое буфера тоже перекодируется, а не восстанавливается
	if err := t.clip.Write(translit.Convert(oldVal)); err != nil {
		return fmt.Errorf("write previous clipboard: %w", err)
	}
	return nil
}

// tap нажимает modifier+key в порядке: mod-down, key-down, key-up, mod-up.
func (t *Trigger) tap(k chord.Key) {
	t.press(t.opts.Modifier)
	t.press(k)
	t.release(k)
	t.release(t.opts.Modifier)
}

func (t *Trigger) press(k chord.Key) {
	if err := t.kb.Press(k); err != nil {
		t.log.Warnw("не удалось отправить нажатие", "key", k.String(), "error", err)
	}
	t.sleep(t.opts.Delay)
}

func (t *Trigger) release(k chord.Key) {
	if err := t.kb.Release(k); err != nil {
		t.log.Warnw("не удалось отправить отпускание", "key", k.String(), "error", err)
	}
	t.sleep(t.opts.Delay)
}
