package track

import (
	"testing"

	"github.com/hazadus/go-binaural/internal/data"
)

func TestListTracks(t *testing.T) {
	manager := NewManager(data.NewAppState())

	tracks := manager.ListTracks()
	if len(tracks) != 8 {
		t.Errorf("Ожидалось 8 треков, получено %d", len(tracks))
	}
}

func TestByCategory(t *testing.T) {
	manager := NewManager(data.NewAppState())

	tracks := manager.ByCategory(data.Focus)
	if len(tracks) != 3 {
		t.Fatalf("Ожидалось 3 трека Focus, получено %d", len(tracks))
	}
	for _, track := range tracks {
		if track.Category != data.Focus {
			t.Errorf("Трек %s не из категории Focus", track.Name)
		}
	}

	// Регистр не важен
	if len(manager.ByCategory("sleep")) != 1 {
		t.Error("Ожидался 1 трек Sleep при поиске в нижнем регистре")
	}
}

func TestSubCategories(t *testing.T) {
	manager := NewManager(data.NewAppState())

	subs := manager.SubCategories(data.Focus)
	expected := []string{"Deep Work", "Study", "Creative Focus"}
	if len(subs) != len(expected) {
		t.Fatalf("Ожидалось %v, получено %v", expected, subs)
	}
	for i := range expected {
		if subs[i] != expected[i] {
			t.Errorf("Подкатегория %d: ожидалось %s, получено %s", i, expected[i], subs[i])
		}
	}

	tracks := manager.BySubCategory(data.Focus, "Study")
	if len(tracks) != 1 || tracks[0].Name != "Beta Concentration" {
		t.Errorf("Неожиданные треки подкатегории: %+v", tracks)
	}
}

func TestFavorites(t *testing.T) {
	state := data.NewAppState()
	manager := NewManager(state)

	if len(manager.Favorites()) != 4 {
		t.Errorf("Ожидалось 4 избранных трека, получено %d", len(manager.Favorites()))
	}

	if _, err := state.ToggleFavorite("1"); err != nil {
		t.Fatalf("Ошибка переключения избранного: %v", err)
	}
	if len(manager.Favorites()) != 3 {
		t.Errorf("Ожидалось 3 избранных трека после снятия отметки, получено %d", len(manager.Favorites()))
	}
}

func TestSearch(t *testing.T) {
	manager := NewManager(data.NewAppState())

	tests := []struct {
		query    string
		expected int
	}{
		{"", 8},
		{"alpha", 3},
		{"40 hz", 1},
		{"SLEEP", 1},
		{"relaxation", 2},
		{"несуществующий", 0},
	}

	for _, test := range tests {
		result := manager.Search(test.query)
		if len(result) != test.expected {
			t.Errorf("Search(%q): ожидалось %d, получено %d", test.query, test.expected, len(result))
		}
	}
}

func TestRecentlyPlayed(t *testing.T) {
	state := data.NewAppState()
	manager := NewManager(state)

	if len(manager.RecentlyPlayed()) != 0 {
		t.Error("Изначально список недавних должен быть пуст")
	}

	track, _ := state.TrackByID("3")
	state.RecordSession(track, 5)

	recent := manager.RecentlyPlayed()
	if len(recent) != 1 || recent[0].ID != "3" {
		t.Errorf("Неожиданный список недавних: %+v", recent)
	}
}
