package config

import (
	"errors"
	"fmt"
	"sync"
)

// Ключи настроек, которые пишет окно настроек.
const (
	KeyActivation  = "activation"
	KeyCloseToTray = "closetotray"
)

// ErrUnset возвращается, если настройка не задана.
var ErrUnset = errors.New("setting is not set")

// Settings хранит настройки времени выполнения вместо переменных окружения
// процесса. Значения не проверяются.
type Settings struct {
	mu       sync.RWMutex
	values   map[string]string
	onChange []func(key, value string)
}

// NewSettings создаёт хранилище с начальными значениями.
func NewSettings(initial map[string]string) *Settings {
	s := &Settings{values: make(map[string]string, len(initial))}
	for k, v := range initial {
		s.values[k] = v
	}
	return s
}

// Set записывает значение. Подписчики вызываются после снятия блокировки.
func (s *Settings) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	callbacks := make([]func(string, string), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(key, value)
	}
}

// Get возвращает значение и признак его наличия.
func (s *Settings) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Snapshot возвращает согласованную копию всех настроек.
func (s *Settings) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make(map[string]string, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}
	return Snapshot{values: values}
}

// OnChange добавляет callback на изменение любой настройки.
func (s *Settings) OnChange(fn func(key, value string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Snapshot - неизменяемая копия настроек.
type Snapshot struct {
	values map[string]string
}

func (s Snapshot) get(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnset, key)
	}
	return v, nil
}

// Activation возвращает букву активации как она записана.
func (s Snapshot) Activation() (string, error) {
	return s.get(KeyActivation)
}

// CloseToTray возвращает true только для строки "true".
func (s Snapshot) CloseToTray() (bool, error) {
	v, err := s.get(KeyCloseToTray)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// ActivationLetters возвращает буквы, которые предлагает окно настроек.
func ActivationLetters() []string {
	return []string{"C", "S", "L"}
}
