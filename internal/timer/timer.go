// Package timer содержит таймер сессии: обратный отсчет с учетом паузы,
// уведомлениями о последней минуте и о завершении.
package timer

import (
	"context"
	"sync"
	"time"

	"github.com/hazadus/go-binaural/internal/notify"
)

// State состояние таймера
type State int

// Состояния таймера
const (
	// Idle таймер остановлен извне и больше не тикает
	Idle State = iota
	// Running идет обратный отсчет
	Running
	// Paused отсчет заморожен
	Paused
	// Completed отсчет дошел до нуля; конечное состояние
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

const (
	// WarningThreshold оставшееся время, при котором приходит предупреждение
	WarningThreshold = 60

	oneMinuteMessage = "Осталась 1 минута сессии"
	completedMessage = "Сессия успешно завершена!"
)

// Timer обратный отсчет в целых секундах
type Timer struct {
	mutex     sync.Mutex
	initial   int
	remaining int
	state     State
	warned    bool
	fired     bool

	sink       notify.Sink
	onComplete func()
	newTicker  TickerFunc

	// Цикл тиков живет только в состоянии Running; loopID отсекает тики
	// от уже отмененных циклов.
	parent context.Context
	cancel context.CancelFunc
	loopID uint64
}

// Option настраивает таймер
type Option func(*Timer)

// WithSink задает приемник уведомлений
func WithSink(sink notify.Sink) Option {
	return func(t *Timer) {
		t.sink = sink
	}
}

// WithTicker задает фабрику тикеров
func WithTicker(fn TickerFunc) Option {
	return func(t *Timer) {
		t.newTicker = fn
	}
}

// OnComplete задает функцию, вызываемую ровно один раз при достижении нуля
func OnComplete(fn func()) Option {
	return func(t *Timer) {
		t.onComplete = fn
	}
}

// New создает таймер на duration секунд. Таймер сразу в состоянии Running
// (или Completed при нулевой длительности), но тикает только после Start
// либо при ручных вызовах Tick.
func New(duration int, opts ...Option) *Timer {
	t := &Timer{
		sink:      notify.Discard,
		newTicker: NewTicker,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.resetLocked(duration)
	return t
}

func (t *Timer) resetLocked(duration int) {
	if duration < 0 {
		duration = 0
	}
	t.initial = duration
	t.remaining = duration
	t.warned = false
	t.fired = false
	if duration == 0 {
		t.state = Completed
	} else {
		t.state = Running
	}
}

// Start запускает ежесекундные тики. Отмена ctx останавливает их.
func (t *Timer) Start(ctx context.Context) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.parent = ctx
	t.startLoopLocked()
}

// Reset сбрасывает таймер на новую длительность; единственный внешний сброс состояния
func (t *Timer) Reset(duration int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.resetLocked(duration)
	t.startLoopLocked()
}

// Stop останавливает отсчет. Завершенный таймер остается Completed.
func (t *Timer) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.stopLoopLocked()
	t.parent = nil
	if t.state != Completed {
		t.state = Idle
	}
}

// SetPaused замораживает или возобновляет отсчет. Для Idle и Completed ничего не делает.
func (t *Timer) SetPaused(paused bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	switch {
	case paused && t.state == Running:
		t.state = Paused
		t.stopLoopLocked()
	case !paused && t.state == Paused:
		t.state = Running
		t.startLoopLocked()
	}
}

// Tick отсчитывает одну секунду
func (t *Timer) Tick() {
	t.advance(0, true)
}

// Remaining возвращает оставшиеся секунды
func (t *Timer) Remaining() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.remaining
}

// Initial возвращает исходную длительность в секундах
func (t *Timer) Initial() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.initial
}

// Elapsed возвращает отсчитанные секунды
func (t *Timer) Elapsed() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.initial - t.remaining
}

// State возвращает текущее состояние
func (t *Timer) State() State {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.state
}

// Progress возвращает долю пройденного времени в [0, 1]
func (t *Timer) Progress() float64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return progress(t.initial, t.remaining)
}

// Status согласованный срез состояния таймера
type Status struct {
	Remaining int
	Progress  float64
	State     State
}

// Status возвращает остаток, прогресс и состояние, прочитанные под одной блокировкой
func (t *Timer) Status() Status {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return Status{
		Remaining: t.remaining,
		Progress:  progress(t.initial, t.remaining),
		State:     t.state,
	}
}

func progress(initial, remaining int) float64 {
	if initial <= 0 {
		return 1
	}
	p := 1 - float64(remaining)/float64(initial)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func (t *Timer) startLoopLocked() {
	t.stopLoopLocked()
	if t.parent == nil {
		return
	}
	if t.state != Running && !(t.state == Completed && !t.fired) {
		return
	}

	ctx, cancel := context.WithCancel(t.parent)
	t.cancel = cancel
	go t.run(ctx, t.loopID)
}

func (t *Timer) stopLoopLocked() {
	t.loopID++
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *Timer) run(ctx context.Context, id uint64) {
	// Нулевая длительность завершается без ожидания тика
	if !t.advance(id, false) {
		return
	}

	ticker := t.newTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if !t.advance(id, true) {
				return
			}
		}
	}
}

// advance применяет один тик (если decrement) и доставляет уведомления вне
// блокировки. Возвращает true, пока таймер продолжает отсчет.
func (t *Timer) advance(id uint64, decrement bool) bool {
	t.mutex.Lock()
	if id != 0 && id != t.loopID {
		t.mutex.Unlock()
		return false
	}

	var events []notify.Event
	var complete func()

	if decrement && t.state == Running {
		t.remaining--
		if t.remaining == WarningThreshold && !t.warned {
			t.warned = true
			events = append(events, notify.Event{Kind: notify.OneMinuteRemaining, Message: oneMinuteMessage})
		}
		if t.remaining <= 0 {
			t.remaining = 0
			t.state = Completed
		}
	}

	if t.state == Completed && !t.fired {
		t.fired = true
		events = append(events, notify.Event{Kind: notify.SessionCompleted, Message: completedMessage})
		complete = t.onComplete
	}

	running := t.state == Running
	sink := t.sink
	t.mutex.Unlock()

	for _, e := range events {
		sink.Notify(e)
	}
	if complete != nil {
		complete()
	}
	return running
}
