package tone

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerBackend открывает выходы поверх системного динамика (beep/speaker)
type SpeakerBackend struct {
	sampleRate beep.SampleRate
	bufferSize time.Duration

	mutex         sync.Mutex
	isInitialized bool
}

// NewSpeakerBackend создает бэкенд динамика с указанной частотой дискретизации и размером буфера
func NewSpeakerBackend(sampleRate int, bufferSize time.Duration) *SpeakerBackend {
	return &SpeakerBackend{
		sampleRate: beep.SampleRate(sampleRate),
		bufferSize: bufferSize,
	}
}

// Open инициализирует динамик (только один раз) и возвращает новый выход
func (b *SpeakerBackend) Open() (Output, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if !b.isInitialized {
		if err := speaker.Init(b.sampleRate, b.sampleRate.N(b.bufferSize)); err != nil {
			return nil, fmt.Errorf("ошибка инициализации динамиков: %w", err)
		}
		b.isInitialized = true
	}

	return &speakerOutput{sampleRate: b.sampleRate}, nil
}

// speakerOutput выход, играющий через общий динамик
type speakerOutput struct {
	sampleRate beep.SampleRate
	suspended  bool
	closed     bool
}

func (o *speakerOutput) SampleRate() beep.SampleRate {
	return o.sampleRate
}

func (o *speakerOutput) Play(s beep.Streamer) error {
	if o.closed {
		return fmt.Errorf("выход уже закрыт")
	}
	speaker.Play(s)
	return nil
}

func (o *speakerOutput) Update(fn func()) {
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}

func (o *speakerOutput) Suspend() error {
	if err := speaker.Suspend(); err != nil {
		return fmt.Errorf("ошибка приостановки динамика: %w", err)
	}
	o.suspended = true
	return nil
}

func (o *speakerOutput) Resume() error {
	if err := speaker.Resume(); err != nil {
		return fmt.Errorf("ошибка возобновления динамика: %w", err)
	}
	o.suspended = false
	return nil
}

// Close убирает все стримеры из динамика. Динамик общий, поэтому приостановленный
// выход перед закрытием возобновляется, иначе следующий тон будет беззвучным.
func (o *speakerOutput) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true

	speaker.Clear()
	if o.suspended {
		o.suspended = false
		if err := speaker.Resume(); err != nil {
			return fmt.Errorf("ошибка возобновления динамика при закрытии: %w", err)
		}
	}
	return nil
}
