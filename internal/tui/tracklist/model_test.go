package tracklist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-binaural/internal/data"
)

func TestNewModel(t *testing.T) {
	model := NewModel(data.NewAppState())

	if model == nil {
		t.Fatal("NewModel returned nil")
	}

	if model.trackManager == nil {
		t.Fatal("trackManager is nil")
	}

	// Проверяем количество элементов в списке
	if len(model.list.Items()) != 8 {
		t.Fatalf("Expected 8 items, got %d", len(model.list.Items()))
	}
}

func TestEnterSelectsTrack(t *testing.T) {
	model := NewModel(data.NewAppState())
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter должен возвращать команду")
	}

	msg, ok := cmd().(TrackSelectedMsg)
	if !ok {
		t.Fatal("Ожидалось сообщение TrackSelectedMsg")
	}
	if msg.Track.ID != "1" {
		t.Errorf("Ожидался трек 1, получено %s", msg.Track.ID)
	}
}

func TestToggleFavoriteKey(t *testing.T) {
	state := data.NewAppState()
	model := NewModel(state)
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	// Трек 1 изначально в избранном
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})

	track, _ := state.TrackByID("1")
	if track.IsFavorite {
		t.Error("Клавиша f должна снять отметку избранного")
	}

	item := model.list.Items()[0].(trackItem)
	if item.track.IsFavorite {
		t.Error("Список должен обновиться после переключения")
	}
}

func TestProfileKey(t *testing.T) {
	model := NewModel(data.NewAppState())

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if cmd == nil {
		t.Fatal("Клавиша p должна возвращать команду")
	}
	if _, ok := cmd().(ShowProfileMsg); !ok {
		t.Error("Ожидалось сообщение ShowProfileMsg")
	}
}

func TestRenderItem(t *testing.T) {
	track := data.Track{ID: "1", Name: "Gamma Focus", Frequency: "40 Hz", Category: data.Focus, SubCategory: "Deep Work", IsFavorite: true}

	line := renderItem(track, false)
	for _, part := range []string{"Gamma Focus", "40 Hz", "Focus / Deep Work", "★"} {
		if !strings.Contains(line, part) {
			t.Errorf("Строка %q не содержит %q", line, part)
		}
	}

	if !strings.Contains(renderItem(track, true), "> ") {
		t.Error("Выбранный элемент должен отмечаться")
	}
}
