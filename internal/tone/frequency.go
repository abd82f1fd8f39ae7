// Package tone содержит синтез непрерывного тона: извлечение частоты из метки трека,
// масштабирование громкости, управление аудиографом и паузой.
package tone

import (
	"regexp"
	"strconv"
)

// DefaultFrequency используется, если в метке трека нет пригодного числа
const DefaultFrequency = 40

var digitsRe = regexp.MustCompile(`\d+`)

// ExtractFrequency извлекает частоту тона из метки вида "40 Hz".
// Берется первая последовательность цифр; если ее нет или значение непригодно
// (ноль, переполнение), возвращается DefaultFrequency. Второе значение сообщает,
// была ли частота действительно найдена в метке.
func ExtractFrequency(label string) (int, bool) {
	match := digitsRe.FindString(label)
	if match == "" {
		return DefaultFrequency, false
	}

	value, err := strconv.Atoi(match)
	if err != nil || value <= 0 {
		return DefaultFrequency, false
	}
	return value, true
}
