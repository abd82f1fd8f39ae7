// Package session связывает таймер, синтезатор и статистику в одну сессию прослушивания.
//
// Orchestrator владеет не более чем одной активной сессией. Запуск новой
// сессии освобождает ресурсы предыдущей; завершение идемпотентно.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/notify"
	"github.com/hazadus/go-binaural/internal/timer"
	"github.com/hazadus/go-binaural/internal/tone"
)

const (
	audioFailedMessage = "Не удалось воспроизвести аудио. Попробуйте еще раз."
	endedMessage       = "Сессия завершена"
	pausedMessage      = "Сессия на паузе"
	resumedMessage     = "Сессия продолжается"
)

// Reason причина завершения сессии
type Reason int

const (
	// UserCancelled пользователь завершил сессию сам
	UserCancelled Reason = iota
	// Completed таймер дошел до нуля
	Completed
)

func (r Reason) String() string {
	if r == Completed {
		return "completed"
	}
	return "cancelled"
}

// Synth источник тона
type Synth interface {
	Start(frequency int) (*tone.Handle, error)
	Stop(h *tone.Handle)
	SetPaused(h *tone.Handle, paused bool)
}

// StatsRecorder учитывает завершенные сессии
type StatsRecorder interface {
	RecordSession(track data.Track, minutes int)
}

// Session описание запущенной сессии
type Session struct {
	ID        string
	Track     data.Track
	Frequency int
	Duration  int // Секунды
	StartTime time.Time
	Silent    bool // Звук не запустился, идет только таймер
}

// Outcome итог завершенной сессии
type Outcome struct {
	Session  Session
	Reason   Reason
	Elapsed  int // Отсчитанные секунды без учета пауз
	Minutes  int
	Recorded bool
}

// Snapshot состояние сессии для отображения
type Snapshot struct {
	Active    bool
	Session   Session
	Remaining int
	Progress  float64
	Paused    bool
	State     timer.State
}

// Orchestrator управляет жизненным циклом сессий
type Orchestrator struct {
	mutex sync.Mutex

	synth      Synth
	stats      StatsRecorder
	sink       notify.Sink
	logger     *zap.Logger
	newTicker  timer.TickerFunc
	now        func() time.Time
	onComplete func()
	onEnd      func(Outcome)

	session    *Session
	handle     *tone.Handle
	timer      *timer.Timer
	cancel     context.CancelFunc
	generation uint64
	paused     bool
}

// Option настраивает Orchestrator
type Option func(*Orchestrator)

// WithSink задает приемник уведомлений
func WithSink(sink notify.Sink) Option {
	return func(o *Orchestrator) {
		if sink != nil {
			o.sink = sink
		}
	}
}

// WithLogger задает логгер
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTicker задает фабрику тикеров для таймеров сессий
func WithTicker(fn timer.TickerFunc) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.newTicker = fn
		}
	}
}

// WithClock задает источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// OnComplete задает функцию, вызываемую один раз, когда таймер сессии дошел до нуля
func OnComplete(fn func()) Option {
	return func(o *Orchestrator) {
		o.onComplete = fn
	}
}

// OnEnd задает функцию, получающую итог каждой завершенной сессии
func OnEnd(fn func(Outcome)) Option {
	return func(o *Orchestrator) {
		o.onEnd = fn
	}
}

// New создает Orchestrator. stats может быть nil.
func New(synth Synth, stats StatsRecorder, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		synth:     synth,
		stats:     stats,
		sink:      notify.Discard,
		logger:    zap.NewNop(),
		newTicker: timer.NewTicker,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start запускает сессию с треком на duration секунд. Предыдущая сессия
// освобождается без записи статистики. Ошибка звука не прерывает сессию:
// таймер идет без звука.
func (o *Orchestrator) Start(ctx context.Context, track data.Track, duration int) Session {
	if duration < 0 {
		duration = 0
	}

	o.mutex.Lock()
	if o.session != nil {
		o.logger.Info("Предыдущая сессия заменена", zap.String("session_id", o.session.ID))
	}
	o.teardownLocked()

	gen := o.generation
	frequency, found := tone.ExtractFrequency(track.Frequency)
	if !found {
		o.logger.Warn("В метке нет частоты, используется значение по умолчанию",
			zap.String("label", track.Frequency),
			zap.Int("frequency", frequency))
	}

	var events []notify.Event
	session := &Session{
		ID:        uuid.NewString(),
		Track:     track,
		Frequency: frequency,
		Duration:  duration,
		StartTime: o.now(),
	}

	handle, err := o.synth.Start(frequency)
	if err != nil {
		session.Silent = true
		o.logger.Error("Ошибка запуска звука", zap.Error(err), zap.Int("frequency", frequency))
		events = append(events, notify.Event{Kind: notify.AudioFailed, Message: audioFailedMessage})
	} else {
		o.handle = handle
		events = append(events, notify.Event{
			Kind:    notify.PlaybackStarted,
			Message: fmt.Sprintf("Воспроизводится бинауральный ритм %s", track.Frequency),
		})
	}

	o.session = session
	o.paused = false
	o.timer = timer.New(duration,
		timer.WithSink(o.sink),
		timer.WithTicker(o.newTicker),
		timer.OnComplete(func() { o.complete(gen) }),
	)

	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	o.logger.Info("Сессия запущена",
		zap.String("session_id", session.ID),
		zap.String("track", track.Name),
		zap.Int("frequency", frequency),
		zap.Int("duration", duration))

	result := *session
	o.mutex.Unlock()

	// Уведомление о старте уходит раньше любых событий таймера
	o.dispatch(events)

	o.mutex.Lock()
	if gen == o.generation {
		o.timer.Start(runCtx)
	}
	o.mutex.Unlock()
	return result
}

// TogglePause переключает паузу и возвращает новое значение.
// Без активной сессии возвращает false.
func (o *Orchestrator) TogglePause() bool {
	o.mutex.Lock()
	if o.session == nil {
		o.mutex.Unlock()
		return false
	}
	paused := !o.paused
	event := o.setPausedLocked(paused)
	o.mutex.Unlock()

	o.dispatch([]notify.Event{event})
	return paused
}

// SetPaused ставит или снимает паузу
func (o *Orchestrator) SetPaused(paused bool) {
	o.mutex.Lock()
	if o.session == nil || o.paused == paused {
		o.mutex.Unlock()
		return
	}
	event := o.setPausedLocked(paused)
	o.mutex.Unlock()

	o.dispatch([]notify.Event{event})
}

func (o *Orchestrator) setPausedLocked(paused bool) notify.Event {
	o.paused = paused
	o.synth.SetPaused(o.handle, paused)
	o.timer.SetPaused(paused)

	if paused {
		o.logger.Debug("Пауза", zap.String("session_id", o.session.ID))
		return notify.Event{Kind: notify.SessionPaused, Message: pausedMessage}
	}
	o.logger.Debug("Продолжение", zap.String("session_id", o.session.ID))
	return notify.Event{Kind: notify.SessionResumed, Message: resumedMessage}
}

// End завершает активную сессию. Возвращает false, если сессии нет.
func (o *Orchestrator) End(reason Reason) (Outcome, bool) {
	o.mutex.Lock()
	if o.session == nil {
		o.mutex.Unlock()
		return Outcome{}, false
	}
	outcome := o.endLocked(reason)
	onEnd := o.onEnd
	o.mutex.Unlock()

	if reason == UserCancelled {
		o.dispatch([]notify.Event{{Kind: notify.SessionEnded, Message: endedMessage}})
	}
	if onEnd != nil {
		onEnd(outcome)
	}
	return outcome, true
}

// Close освобождает звук и таймер без записи статистики
func (o *Orchestrator) Close() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.teardownLocked()
}

// CloseSession освобождает сессию id без записи статистики, если она еще
// активна. Возвращает false для уже замененной или завершенной сессии.
func (o *Orchestrator) CloseSession(id string) bool {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	if o.session == nil || o.session.ID != id {
		return false
	}
	o.logger.Info("Сессия закрыта без экрана", zap.String("session_id", id))
	o.teardownLocked()
	return true
}

// Snapshot возвращает текущее состояние
func (o *Orchestrator) Snapshot() Snapshot {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.session == nil {
		return Snapshot{State: timer.Idle}
	}
	status := o.timer.Status()
	return Snapshot{
		Active:    true,
		Session:   *o.session,
		Remaining: status.Remaining,
		Progress:  status.Progress,
		Paused:    o.paused,
		State:     status.State,
	}
}

// complete вызывается таймером сессии поколения gen
func (o *Orchestrator) complete(gen uint64) {
	o.mutex.Lock()
	if o.session == nil || gen != o.generation {
		o.mutex.Unlock()
		o.logger.Debug("Устаревшее завершение проигнорировано", zap.Uint64("generation", gen))
		return
	}
	outcome := o.endLocked(Completed)
	onComplete := o.onComplete
	onEnd := o.onEnd
	o.mutex.Unlock()

	if onComplete != nil {
		onComplete()
	}
	if onEnd != nil {
		onEnd(outcome)
	}
}

func (o *Orchestrator) endLocked(reason Reason) Outcome {
	elapsed := o.timer.Elapsed()
	outcome := Outcome{
		Session: *o.session,
		Reason:  reason,
		Elapsed: elapsed,
		Minutes: elapsed / 60,
	}

	o.teardownLocked()

	if o.stats != nil {
		o.stats.RecordSession(outcome.Session.Track, outcome.Minutes)
		outcome.Recorded = true
	}

	o.logger.Info("Сессия завершена",
		zap.String("session_id", outcome.Session.ID),
		zap.Stringer("reason", reason),
		zap.Int("elapsed", elapsed),
		zap.Int("minutes", outcome.Minutes))
	return outcome
}

// teardownLocked отменяет тики, останавливает звук и делает устаревшими
// колбэки текущего поколения
func (o *Orchestrator) teardownLocked() {
	o.generation++
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	if o.handle != nil {
		o.synth.Stop(o.handle)
		o.handle = nil
	}
	o.session = nil
	o.paused = false
}

func (o *Orchestrator) dispatch(events []notify.Event) {
	for _, e := range events {
		o.sink.Notify(e)
	}
}
