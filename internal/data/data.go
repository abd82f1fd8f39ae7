// Package data содержит состояние приложения: каталог треков, избранное и статистику.
// Состояние живет только в памяти.
package data

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Category категория пользы трека
type Category string

// Категории каталога
const (
	Focus      Category = "Focus"
	Relaxation Category = "Relaxation"
	Creativity Category = "Creativity"
	Energy     Category = "Energy"
	Sleep      Category = "Sleep"
)

// Categories все категории в порядке отображения
var Categories = []Category{Focus, Relaxation, Creativity, Energy, Sleep}

// RecentLimit сколько недавно прослушанных треков хранится
const RecentLimit = 5

// Track пресет частоты из каталога
type Track struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Frequency   string   `yaml:"frequency"` // Метка частоты, например "40 Hz"
	Description string   `yaml:"description"`
	Category    Category `yaml:"category"`
	SubCategory string   `yaml:"sub_category"`
	IsFavorite  bool     `yaml:"is_favorite"`
}

// CategoryCount количество сессий в категории
type CategoryCount struct {
	Category Category
	Count    int
}

// Stats статистика прослушивания
type Stats struct {
	Streak            int // Дней подряд
	LastVisit         time.Time
	MinutesListened   int
	SessionsCompleted int
	TopCategories     []CategoryCount // По убыванию количества
}

type catalogFile struct {
	Tracks []Track `yaml:"tracks"`
}

// AppState общее состояние приложения. Передается явно в TUI и оркестратор сессий.
type AppState struct {
	mutex  sync.RWMutex
	tracks []Track
	stats  Stats
	recent []string // ID треков, последние первыми
}

// NewAppState создает состояние со встроенным каталогом
func NewAppState() *AppState {
	tracks := make([]Track, len(defaultTracks))
	copy(tracks, defaultTracks)
	return &AppState{
		tracks: tracks,
	}
}

// LoadCatalog заменяет каталог треками из YAML файла. Пустой путь оставляет
// встроенный каталог.
func (s *AppState) LoadCatalog(filePath string) error {
	if filePath == "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := strings.Replace(filePath, "~", home, 1)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ошибка чтения каталога: %w", err)
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return fmt.Errorf("ошибка разбора каталога: %w", err)
	}
	if len(catalog.Tracks) == 0 {
		return fmt.Errorf("каталог %s не содержит треков", path)
	}

	seen := make(map[string]bool, len(catalog.Tracks))
	for _, t := range catalog.Tracks {
		if t.ID == "" {
			return fmt.Errorf("трек %q без ID", t.Name)
		}
		if seen[t.ID] {
			return fmt.Errorf("повторяющийся ID трека: %s", t.ID)
		}
		seen[t.ID] = true
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tracks = catalog.Tracks
	s.recent = nil
	return nil
}

// Tracks возвращает копию каталога
func (s *AppState) Tracks() []Track {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]Track, len(s.tracks))
	copy(out, s.tracks)
	return out
}

// TrackByID возвращает трек по ID
func (s *AppState) TrackByID(id string) (Track, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, t := range s.tracks {
		if t.ID == id {
			return t, nil
		}
	}
	return Track{}, fmt.Errorf("трека с ID %s не найдено", id)
}

// ToggleFavorite переключает отметку избранного и возвращает новое значение
func (s *AppState) ToggleFavorite(id string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for i := range s.tracks {
		if s.tracks[i].ID == id {
			s.tracks[i].IsFavorite = !s.tracks[i].IsFavorite
			return s.tracks[i].IsFavorite, nil
		}
	}
	return false, fmt.Errorf("трека с ID %s не найдено", id)
}

// Stats возвращает копию статистики
func (s *AppState) Stats() Stats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	stats := s.stats
	stats.TopCategories = make([]CategoryCount, len(s.stats.TopCategories))
	copy(stats.TopCategories, s.stats.TopCategories)
	return stats
}

// RecordSession учитывает завершенную сессию: минуты, счетчик сессий,
// категорию трека и список недавно прослушанных
func (s *AppState) RecordSession(track Track, minutes int) {
	if minutes < 0 {
		minutes = 0
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.stats.MinutesListened += minutes
	s.stats.SessionsCompleted++

	found := false
	for i := range s.stats.TopCategories {
		if s.stats.TopCategories[i].Category == track.Category {
			s.stats.TopCategories[i].Count++
			found = true
			break
		}
	}
	if !found && track.Category != "" {
		s.stats.TopCategories = append(s.stats.TopCategories, CategoryCount{Category: track.Category, Count: 1})
	}
	sort.SliceStable(s.stats.TopCategories, func(i, j int) bool {
		return s.stats.TopCategories[i].Count > s.stats.TopCategories[j].Count
	})

	recent := []string{track.ID}
	for _, id := range s.recent {
		if id != track.ID && len(recent) < RecentLimit {
			recent = append(recent, id)
		}
	}
	s.recent = recent
}

// TouchVisit обновляет серию дней: визит в тот же день ничего не меняет,
// на следующий день увеличивает серию, после пропуска сбрасывает ее в 1.
func (s *AppState) TouchVisit(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.stats.LastVisit.IsZero() {
		s.stats.Streak = 1
	} else {
		switch daysBetween(s.stats.LastVisit, now) {
		case 0:
			if s.stats.Streak == 0 {
				s.stats.Streak = 1
			}
		case 1:
			s.stats.Streak++
		default:
			s.stats.Streak = 1
		}
	}
	s.stats.LastVisit = now
}

// daysBetween число календарных дней между датами в часовом поясе b
func daysBetween(a, b time.Time) int {
	a = a.In(b.Location())
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// RecentlyPlayed возвращает недавно прослушанные треки, последние первыми
func (s *AppState) RecentlyPlayed() []Track {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]Track, 0, len(s.recent))
	for _, id := range s.recent {
		for _, t := range s.tracks {
			if t.ID == id {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
