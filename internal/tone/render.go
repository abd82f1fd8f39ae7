package tone

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// Render записывает тон частоты frequency длительностью duration в WAV
// (16 бит, стерео) через тот же граф генератор → усиление, что и при воспроизведении.
func Render(w io.WriteSeeker, frequency int, duration time.Duration, sampleRate int, baseVolume float64) error {
	if baseVolume <= 0 {
		baseVolume = DefaultVolume
	}
	sr := beep.SampleRate(sampleRate)

	sine, err := generators.SineTone(sr, float64(frequency))
	if err != nil {
		return fmt.Errorf("ошибка создания генератора: %w", err)
	}
	gain := &effects.Gain{Streamer: sine, Gain: ScaleVolume(baseVolume, frequency) - 1}

	format := beep.Format{
		SampleRate:  sr,
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(w, beep.Take(sr.N(duration), gain), format); err != nil {
		return fmt.Errorf("ошибка кодирования WAV: %w", err)
	}
	return nil
}
