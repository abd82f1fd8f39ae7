// Package selector содержит модель экрана выбора длительности сессии для TUI
package selector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-binaural/internal/config"
	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/utils"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
)

// MaxCustomMinutes верхняя граница для своей длительности
const MaxCustomMinutes = 600

// DurationSelectedMsg отправляется при выборе длительности
type DurationSelectedMsg struct {
	Track   data.Track
	Seconds int
}

// GoBackMsg отправляется при отмене выбора
type GoBackMsg struct{}

// Model представляет модель экрана выбора длительности
type Model struct {
	track      data.Track
	presets    []config.Preset
	custom     textinput.Model
	focusIndex int // len(presets) означает поле своей длительности
	err        string
}

// NewModel создает модель выбора длительности. Фокус стоит на пресете defaultPreset.
func NewModel(track data.Track, defaultPreset string) *Model {
	custom := textinput.New()
	custom.Placeholder = "Минуты"
	custom.CharLimit = 3
	custom.Width = 10
	custom.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("только цифры")
			}
		}
		return nil
	}

	m := &Model{
		track:   track,
		presets: config.Presets,
		custom:  custom,
	}
	for i, p := range m.presets {
		if p.ID == defaultPreset {
			m.focusIndex = i
		}
	}
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "enter":
			return m, m.choose()

		case "tab", "shift+tab", "up", "down":
			s := msg.String()
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.presets) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.presets)
			}

			if m.customFocused() {
				m.custom.PromptStyle = focusedStyle
				m.custom.TextStyle = focusedStyle
				return m, m.custom.Focus()
			}
			m.custom.Blur()
			m.custom.PromptStyle = blurredStyle
			m.custom.TextStyle = blurredStyle
			return m, nil
		}
	}

	// Ввод попадает только в поле своей длительности
	if m.customFocused() {
		var cmd tea.Cmd
		m.custom, cmd = m.custom.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) customFocused() bool {
	return m.focusIndex == len(m.presets)
}

// choose возвращает команду с выбранной длительностью или показывает ошибку
func (m *Model) choose() tea.Cmd {
	var seconds int
	if m.customFocused() {
		minutes, err := parseMinutes(m.custom.Value())
		if err != nil {
			m.err = err.Error()
			return nil
		}
		seconds = minutes * 60
	} else {
		seconds = m.presets[m.focusIndex].Seconds()
	}

	m.err = ""
	track := m.track
	return func() tea.Msg {
		return DurationSelectedMsg{Track: track, Seconds: seconds}
	}
}

func parseMinutes(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("введите количество минут")
	}
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 || minutes > MaxCustomMinutes {
		return 0, fmt.Errorf("длительность должна быть от 1 до %d минут", MaxCustomMinutes)
	}
	return minutes, nil
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s • %s", m.track.Name, m.track.Frequency)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(m.track.Description))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("%-16s %s  %s", p.Name, utils.FormatDuration(p.Duration), p.Description)
		if i == m.focusIndex {
			b.WriteString(focusedStyle.Render("> " + line))
		} else {
			b.WriteString(blurredStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	label := "  Своя длительность:"
	if m.customFocused() {
		label = focusedStyle.Render("> Своя длительность:")
	} else {
		label = blurredStyle.Render(label)
	}
	b.WriteString(label + " " + m.custom.View())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: выбор • Enter: начать • Esc: назад"))
	return b.String()
}
