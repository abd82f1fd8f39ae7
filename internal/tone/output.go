package tone

import (
	"github.com/gopxl/beep"
)

// Output представляет аудиовыход одного тона: аналог аудиоконтекста платформы.
// Выход может быть приостановлен (suspended) и возобновлен (running).
type Output interface {
	// SampleRate возвращает частоту дискретизации выхода
	SampleRate() beep.SampleRate
	// Play начинает непрерывный вывод стримера
	Play(s beep.Streamer) error
	// Update выполняет изменение аудиографа под блокировкой аудиопотока
	Update(fn func())
	// Suspend останавливает часы и обработку выхода
	Suspend() error
	// Resume возобновляет обработку выхода
	Resume() error
	// Close освобождает выход
	Close() error
}

// Backend создает аудиовыходы
type Backend interface {
	Open() (Output, error)
}
