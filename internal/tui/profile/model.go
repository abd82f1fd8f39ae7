// Package profile содержит модель экрана профиля со статистикой
package profile

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/track"
	"github.com/hazadus/go-binaural/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(22)
	valueStyle = lipgloss.NewStyle().Bold(true)
	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).MarginTop(1)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// GoBackMsg отправляется для возврата к списку треков
type GoBackMsg struct{}

// Model экран профиля
type Model struct {
	appState     *data.AppState
	trackManager *track.Manager
}

// NewModel создает модель профиля
func NewModel(appState *data.AppState) *Model {
	return &Model{
		appState:     appState,
		trackManager: track.NewManager(appState),
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "enter", "p":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}
		}
	}
	return m, nil
}

// View отображает статистику
func (m *Model) View() string {
	stats := m.appState.Stats()

	var b strings.Builder
	b.WriteString(titleStyle.Render("👤 Профиль"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("🔥 Дней подряд:", fmt.Sprintf("%d", stats.Streak))
	row("⏱️ Время прослушивания:", utils.FormatDurationFromSeconds(stats.MinutesListened*60))
	row("✅ Сессий:", fmt.Sprintf("%d", stats.SessionsCompleted))
	row("★ Избранных треков:", fmt.Sprintf("%d", len(m.trackManager.Favorites())))

	b.WriteString(headStyle.Render("Популярные категории"))
	b.WriteString("\n")
	if len(stats.TopCategories) == 0 {
		b.WriteString("  пока нет сессий\n")
	}
	for _, c := range stats.TopCategories {
		b.WriteString(fmt.Sprintf("  %-12s %d\n", c.Category, c.Count))
	}

	b.WriteString(headStyle.Render("Недавно прослушанные"))
	b.WriteString("\n")
	recent := m.trackManager.RecentlyPlayed()
	if len(recent) == 0 {
		b.WriteString("  пока пусто\n")
	}
	for _, t := range recent {
		b.WriteString(fmt.Sprintf("  %s (%s)\n", t.Name, t.Frequency))
	}

	b.WriteString(helpStyle.Render("Esc: назад"))
	return b.String()
}
