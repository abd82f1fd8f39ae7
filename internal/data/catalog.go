package data

// defaultTracks встроенный каталог
var defaultTracks = []Track{
	{
		ID:          "1",
		Name:        "Gamma Focus",
		Frequency:   "40 Hz",
		Description: "Gamma waves for enhanced focus and attention",
		Category:    Focus,
		SubCategory: "Deep Work",
		IsFavorite:  true,
	},
	{
		ID:          "2",
		Name:        "Beta Concentration",
		Frequency:   "20 Hz",
		Description: "Beta waves for active concentration and problem solving",
		Category:    Focus,
		SubCategory: "Study",
	},
	{
		ID:          "3",
		Name:        "Alpha Calm",
		Frequency:   "10 Hz",
		Description: "Alpha waves for relaxed alertness and creativity",
		Category:    Relaxation,
		SubCategory: "Light Relaxation",
		IsFavorite:  true,
	},
	{
		ID:          "4",
		Name:        "Theta Meditation",
		Frequency:   "6 Hz",
		Description: "Theta waves for deep meditation and intuition",
		Category:    Relaxation,
		SubCategory: "Deep Meditation",
	},
	{
		ID:          "5",
		Name:        "Delta Sleep",
		Frequency:   "2 Hz",
		Description: "Delta waves for deep sleep and healing",
		Category:    Sleep,
		SubCategory: "Deep Sleep",
		IsFavorite:  true,
	},
	{
		ID:          "6",
		Name:        "Creative Alpha",
		Frequency:   "8 Hz",
		Description: "Alpha waves for enhanced creativity and flow states",
		Category:    Creativity,
		SubCategory: "Flow State",
	},
	{
		ID:          "7",
		Name:        "Energy Boost",
		Frequency:   "15 Hz",
		Description: "Beta waves for increased energy and alertness",
		Category:    Energy,
		SubCategory: "Morning Boost",
	},
	{
		ID:          "8",
		Name:        "Focus Flow",
		Frequency:   "12 Hz",
		Description: "Alpha-Beta boundary for focused creativity",
		Category:    Focus,
		SubCategory: "Creative Focus",
		IsFavorite:  true,
	},
}
