package tone

import (
	"errors"

	"github.com/gopxl/beep"
)

// fakeBackend бэкенд для тестов без звуковой карты
type fakeBackend struct {
	openErr    error
	suspendErr error
	resumeErr  error
	closeErr   error
	outputs    []*fakeOutput
}

func (b *fakeBackend) Open() (Output, error) {
	if b.openErr != nil {
		return nil, b.openErr
	}
	o := &fakeOutput{
		sampleRate: beep.SampleRate(8000),
		suspendErr: b.suspendErr,
		resumeErr:  b.resumeErr,
		closeErr:   b.closeErr,
	}
	b.outputs = append(b.outputs, o)
	return o, nil
}

type fakeOutput struct {
	sampleRate beep.SampleRate
	streamer   beep.Streamer
	suspendErr error
	resumeErr  error
	closeErr   error

	suspended    bool
	closeCalls   int
	suspendCalls int
	resumeCalls  int
}

func (o *fakeOutput) SampleRate() beep.SampleRate { return o.sampleRate }

func (o *fakeOutput) Play(s beep.Streamer) error {
	if o.closeCalls > 0 {
		return errors.New("closed")
	}
	o.streamer = s
	return nil
}

func (o *fakeOutput) Update(fn func()) { fn() }

func (o *fakeOutput) Suspend() error {
	o.suspendCalls++
	if o.suspendErr != nil {
		return o.suspendErr
	}
	o.suspended = true
	return nil
}

func (o *fakeOutput) Resume() error {
	o.resumeCalls++
	if o.resumeErr != nil {
		return o.resumeErr
	}
	o.suspended = false
	return nil
}

func (o *fakeOutput) Close() error {
	o.closeCalls++
	return o.closeErr
}

// peak возвращает максимальную амплитуду следующих n сэмплов выхода
func (o *fakeOutput) peak(n int) (float64, bool) {
	samples := make([][2]float64, n)
	read, ok := o.streamer.Stream(samples)
	var peak float64
	for _, s := range samples[:read] {
		for _, v := range s {
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
	}
	return peak, ok
}
