package tone

import (
	"errors"
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"go.uber.org/zap"
)

var (
	// ErrAudioUnavailable аудиовыход не удалось создать или настроить
	ErrAudioUnavailable = errors.New("аудио недоступно")
	// ErrTeardown ошибка освобождения аудиовыхода; наружу не пробрасывается, только логируется
	ErrTeardown = errors.New("ошибка освобождения аудио")
)

// Handle живой аудиограф одного тона: генератор → усиление → выход.
// Принадлежит одной сессии и не переиспользуется.
type Handle struct {
	output    Output
	osc       *beep.Ctrl
	gain      *effects.Gain
	frequency int
	volume    float64
	paused    bool
	muted     bool // усиление обнулено вместо приостановки выхода
	stopped   bool
}

// Frequency возвращает частоту генератора в герцах
func (h *Handle) Frequency() int {
	return h.frequency
}

// Volume возвращает настроенный уровень усиления
func (h *Handle) Volume() float64 {
	return h.volume
}

// Paused сообщает, приостановлен ли тон
func (h *Handle) Paused() bool {
	return h.paused
}

// Stopped сообщает, освобожден ли аудиограф
func (h *Handle) Stopped() bool {
	return h.stopped
}

// setLevel выставляет уровень узла усиления. effects.Gain умножает сэмплы на (1 + Gain).
func (h *Handle) setLevel(level float64) {
	h.output.Update(func() {
		h.gain.Gain = level - 1
	})
}

// Synthesizer управляет жизненным циклом аудиографа тона
type Synthesizer struct {
	backend    Backend
	baseVolume float64
	logger     *zap.Logger
}

// NewSynthesizer создает синтезатор поверх бэкенда. Неположительная базовая
// громкость заменяется на DefaultVolume.
func NewSynthesizer(backend Backend, baseVolume float64, logger *zap.Logger) *Synthesizer {
	if baseVolume <= 0 {
		baseVolume = DefaultVolume
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{
		backend:    backend,
		baseVolume: baseVolume,
		logger:     logger,
	}
}

// Volume возвращает усиление, которое синтезатор выставит для частоты
func (s *Synthesizer) Volume(frequency int) float64 {
	return ScaleVolume(s.baseVolume, frequency)
}

// Start создает новый выход, собирает граф синус → усиление → выход и сразу
// начинает вывод. При любой ошибке платформы возвращает ErrAudioUnavailable.
func (s *Synthesizer) Start(frequency int) (*Handle, error) {
	output, err := s.backend.Open()
	if err != nil {
		s.logger.Error("не удалось открыть аудиовыход", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	sine, err := generators.SineTone(output.SampleRate(), float64(frequency))
	if err != nil {
		s.closeOutput(output)
		s.logger.Error("не удалось создать генератор", zap.Int("frequency", frequency), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	volume := s.Volume(frequency)
	osc := &beep.Ctrl{Streamer: sine}
	gain := &effects.Gain{Streamer: osc, Gain: volume - 1}

	if err := output.Play(gain); err != nil {
		s.closeOutput(output)
		s.logger.Error("не удалось запустить вывод", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	s.logger.Info("аудио создано",
		zap.Int("frequency", frequency),
		zap.Float64("volume", volume))

	return &Handle{
		output:    output,
		osc:       osc,
		gain:      gain,
		frequency: frequency,
		volume:    volume,
	}, nil
}

// Stop останавливает генератор и освобождает выход. Повторный вызов и вызов
// с nil ничего не делают; ошибки освобождения логируются и не возвращаются.
func (s *Synthesizer) Stop(h *Handle) {
	if h == nil || h.stopped {
		return
	}
	h.stopped = true

	if h.output == nil {
		return
	}
	if h.osc != nil {
		h.output.Update(func() {
			h.osc.Streamer = nil
		})
	}
	s.closeOutput(h.output)
	s.logger.Debug("аудио освобождено", zap.Int("frequency", h.frequency))
}

func (s *Synthesizer) closeOutput(output Output) {
	if err := output.Close(); err != nil {
		s.logger.Warn("ошибка при освобождении аудио",
			zap.Error(fmt.Errorf("%w: %v", ErrTeardown, err)))
	}
}
