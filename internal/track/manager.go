// Package track содержит логику выбора треков из каталога
package track

import (
	"strings"

	"github.com/hazadus/go-binaural/internal/data"
)

// Manager управляет выборкой треков в приложении
type Manager struct {
	appState *data.AppState
}

// NewManager создает новый экземпляр Manager
func NewManager(appState *data.AppState) *Manager {
	return &Manager{
		appState: appState,
	}
}

// ListTracks возвращает список всех треков
func (m *Manager) ListTracks() []data.Track {
	return m.appState.Tracks()
}

// ByCategory возвращает треки указанной категории
func (m *Manager) ByCategory(category data.Category) []data.Track {
	return m.filter(func(t data.Track) bool {
		return strings.EqualFold(string(t.Category), string(category))
	})
}

// SubCategories возвращает подкатегории категории в порядке первого появления
func (m *Manager) SubCategories(category data.Category) []string {
	var result []string
	seen := make(map[string]bool)
	for _, t := range m.ByCategory(category) {
		if t.SubCategory == "" || seen[t.SubCategory] {
			continue
		}
		seen[t.SubCategory] = true
		result = append(result, t.SubCategory)
	}
	return result
}

// BySubCategory возвращает треки подкатегории
func (m *Manager) BySubCategory(category data.Category, subCategory string) []data.Track {
	return m.filter(func(t data.Track) bool {
		return strings.EqualFold(string(t.Category), string(category)) && t.SubCategory == subCategory
	})
}

// Favorites возвращает избранные треки
func (m *Manager) Favorites() []data.Track {
	return m.filter(func(t data.Track) bool {
		return t.IsFavorite
	})
}

// Search ищет треки по подстроке в названии, частоте, описании и категориях без учета регистра
func (m *Manager) Search(query string) []data.Track {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.ListTracks()
	}
	return m.filter(func(t data.Track) bool {
		return strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.Frequency), query) ||
			strings.Contains(strings.ToLower(t.Description), query) ||
			strings.Contains(strings.ToLower(string(t.Category)), query) ||
			strings.Contains(strings.ToLower(t.SubCategory), query)
	})
}

// RecentlyPlayed возвращает недавно прослушанные треки
func (m *Manager) RecentlyPlayed() []data.Track {
	return m.appState.RecentlyPlayed()
}

func (m *Manager) filter(keep func(data.Track) bool) []data.Track {
	var result []data.Track
	for _, t := range m.appState.Tracks() {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
