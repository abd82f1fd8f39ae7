package timer

import "time"

// Ticker периодический источник тиков
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc создает Ticker с указанным периодом
type TickerFunc func(d time.Duration) Ticker

// NewTicker возвращает Ticker поверх time.Ticker. Повторяющийся тик не копит
// дрейф так, как копят его последовательные одноразовые задержки.
func NewTicker(d time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(d)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time { return s.ticker.C }
func (s *systemTicker) Stop()               { s.ticker.Stop() }
