package tone

// DefaultVolume базовый уровень усиления для частот от 40 Гц и выше
const DefaultVolume = 0.2

// ScaledVolume возвращает усиление для частоты при базовом уровне DefaultVolume
func ScaledVolume(frequency int) float64 {
	return ScaleVolume(DefaultVolume, frequency)
}

// ScaleVolume подбирает усиление так, чтобы низкие частоты звучали примерно так же
// громко, как высокие. Нижние границы диапазонов включаются.
func ScaleVolume(base float64, frequency int) float64 {
	switch {
	case frequency >= 40:
		return base
	case frequency >= 20:
		return base * 1.5 // бета
	case frequency >= 10:
		return base * 2.0 // альфа
	case frequency >= 5:
		return base * 2.5 // тета
	default:
		return base * 3.0 // дельта
	}
}
