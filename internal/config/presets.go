package config

import (
	"fmt"
	"time"
)

// Preset готовая длительность сессии
type Preset struct {
	ID          string
	Name        string
	Description string
	Duration    time.Duration
}

// Presets доступные пресеты в порядке отображения
var Presets = []Preset{
	{ID: "quick", Name: "Быстрый фокус", Description: "10 секунд для проверки звука", Duration: 10 * time.Second},
	{ID: "pomodoro", Name: "Помодоро", Description: "25 минут сосредоточенной работы", Duration: 25 * time.Minute},
	{ID: "deep", Name: "Глубокая работа", Description: "60 минут погружения", Duration: 60 * time.Minute},
}

// PresetByID возвращает пресет по ID
func PresetByID(id string) (Preset, error) {
	for _, p := range Presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("неизвестный пресет длительности: %s", id)
}

// Seconds длительность пресета в целых секундах
func (p Preset) Seconds() int {
	return int(p.Duration / time.Second)
}
