// Package notify доставляет пользовательские уведомления сессии (аналог всплывающих сообщений)
package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Kind тип уведомления
type Kind int

// Типы уведомлений
const (
	// PlaybackStarted тон начал звучать
	PlaybackStarted Kind = iota
	// AudioFailed аудио недоступно, сессия продолжается без звука
	AudioFailed
	// OneMinuteRemaining до конца сессии осталась минута
	OneMinuteRemaining
	// SessionCompleted таймер дошел до нуля
	SessionCompleted
	// SessionEnded сессия завершена пользователем
	SessionEnded
	// SessionPaused сессия поставлена на паузу
	SessionPaused
	// SessionResumed сессия возобновлена
	SessionResumed
)

func (k Kind) String() string {
	switch k {
	case PlaybackStarted:
		return "playback_started"
	case AudioFailed:
		return "audio_failed"
	case OneMinuteRemaining:
		return "one_minute_remaining"
	case SessionCompleted:
		return "session_completed"
	case SessionEnded:
		return "session_ended"
	case SessionPaused:
		return "session_paused"
	case SessionResumed:
		return "session_resumed"
	default:
		return "unknown"
	}
}

// Event одно уведомление для пользователя
type Event struct {
	Kind    Kind
	Message string
}

// IsError сообщает, что уведомление об ошибке
func (e Event) IsError() bool {
	return e.Kind == AudioFailed
}

// Sink принимает уведомления
type Sink interface {
	Notify(e Event)
}

// Func адаптер функции к Sink
type Func func(e Event)

// Notify вызывает функцию
func (f Func) Notify(e Event) {
	f(e)
}

// Discard отбрасывает уведомления
var Discard Sink = Func(func(Event) {})

// Multi рассылает уведомление во все приемники по порядку
func Multi(sinks ...Sink) Sink {
	return Func(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Notify(e)
			}
		}
	})
}

// Logger пишет уведомления в zap
type Logger struct {
	logger *zap.Logger
}

// NewLogger создает приемник, пишущий в лог
func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger}
}

// Notify записывает уведомление в лог
func (l *Logger) Notify(e Event) {
	fields := []zap.Field{zap.Stringer("kind", e.Kind), zap.String("message", e.Message)}
	if e.IsError() {
		l.logger.Warn("уведомление", fields...)
		return
	}
	l.logger.Info("уведомление", fields...)
}

// Chan передает уведомления в буферизованный канал; при переполнении уведомление пропускается
type Chan struct {
	ch chan Event
}

// NewChan создает канальный приемник с буфером size
func NewChan(size int) *Chan {
	return &Chan{ch: make(chan Event, size)}
}

// Notify отправляет уведомление без блокировки
func (c *Chan) Notify(e Event) {
	select {
	case c.ch <- e:
	default:
	}
}

// Events возвращает канал уведомлений
func (c *Chan) Events() <-chan Event {
	return c.ch
}

// Recorder запоминает все уведомления; используется в тестах и для истории
type Recorder struct {
	mutex  sync.Mutex
	events []Event
}

// Notify сохраняет уведомление
func (r *Recorder) Notify(e Event) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.events = append(r.events, e)
}

// Events возвращает копию сохраненных уведомлений
func (r *Recorder) Events() []Event {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count возвращает количество уведомлений указанного типа
func (r *Recorder) Count(kind Kind) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
