// Package player содержит модель экрана идущей сессии для TUI
package player

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/notify"
	"github.com/hazadus/go-binaural/internal/session"
	"github.com/hazadus/go-binaural/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00aa00"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

// GoBackMsg отправляется для возврата к списку треков
type GoBackMsg struct{}

// StartedMsg сообщает о запуске сессии
type StartedMsg struct {
	Session session.Session
	owner   *Model
}

// TickMsg ежесекундное обновление экрана сессии
type TickMsg struct {
	SessionID string
}

// NotificationMsg уведомление от сессии
type NotificationMsg struct {
	Event notify.Event
}

// Model представляет модель экрана сессии
type Model struct {
	orchestrator *session.Orchestrator
	track        data.Track
	seconds      int
	sessionID    string
	snapshot     session.Snapshot
	progressBar  progress.Model
	message      notify.Event
	completed    bool
	width        int
	height       int
}

// NewModel создает модель сессии для трека на seconds секунд.
// Сессия запускается командой из Init.
func NewModel(orchestrator *session.Orchestrator, track data.Track, seconds int) *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &Model{
		orchestrator: orchestrator,
		track:        track,
		seconds:      seconds,
		progressBar:  prog,
	}
}

// Init запускает сессию
func (m *Model) Init() tea.Cmd {
	return m.start()
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = min(60, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		if m.completed {
			switch msg.String() {
			case "enter", "q", "esc":
				return m, goBack
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "esc":
			m.orchestrator.End(session.UserCancelled)
			return m, goBack

		case " ":
			m.orchestrator.TogglePause()
			m.refresh()
			return m, nil
		}

	case StartedMsg:
		if !m.Owns(msg) {
			return m, nil
		}
		m.sessionID = msg.Session.ID
		m.refresh()
		return m, tea.Batch(m.progressBar.SetPercent(m.snapshot.Progress), m.tick())

	case TickMsg:
		if msg.SessionID != m.sessionID || m.completed {
			return m, nil
		}
		if !m.refresh() {
			// Таймер дошел до нуля, сессия закрыта оркестратором
			m.completed = true
			return m, m.progressBar.SetPercent(1)
		}
		return m, tea.Batch(m.progressBar.SetPercent(m.snapshot.Progress), m.tick())

	case NotificationMsg:
		m.message = msg.Event
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// refresh читает состояние оркестратора. Возвращает false, если сессия этой
// модели уже завершена.
func (m *Model) refresh() bool {
	snap := m.orchestrator.Snapshot()
	if !snap.Active || snap.Session.ID != m.sessionID {
		m.snapshot.Remaining = 0
		m.snapshot.Progress = 1
		m.snapshot.Paused = false
		return false
	}
	m.snapshot = snap
	return true
}

// View отображает модель
func (m *Model) View() string {
	title := titleStyle.Render("🎧 Сессия")

	trackInfo := trackInfoStyle.Render(fmt.Sprintf(
		"🎵 %s\n〰️ %s\n📂 %s / %s",
		m.track.Name,
		m.track.Frequency,
		m.track.Category,
		m.track.SubCategory,
	))

	var statusText string
	switch {
	case m.completed:
		statusText = statusStyle.Render("✅ Сессия успешно завершена!")
	case m.sessionID == "":
		statusText = statusStyle.Render("⏳ Запуск...")
	default:
		statusText = statusStyle.Render(formatStatus(m.snapshot.Paused, m.snapshot.Session.Silent))
	}

	timeText := fmt.Sprintf(
		"%s осталось из %s",
		utils.FormatTime(m.snapshot.Remaining),
		utils.FormatTime(m.seconds),
	)

	var message string
	if m.message.Message != "" {
		if m.message.IsError() {
			message = errorStyle.Render(m.message.Message)
		} else {
			message = messageStyle.Render(m.message.Message)
		}
	}

	controls := "Пробел: пауза/продолжить • q/esc: завершить"
	if m.completed {
		controls = "Enter: к списку треков"
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\n%s\n%s\n\n%s\n%s",
		title,
		trackInfo,
		statusText,
		m.progressBar.View(),
		timeText,
		message,
		controlsStyle.Render(controls),
	)
}

// start запускает сессию в оркестраторе
func (m *Model) start() tea.Cmd {
	orchestrator, track, seconds := m.orchestrator, m.track, m.seconds
	return func() tea.Msg {
		s := orchestrator.Start(context.Background(), track, seconds)
		return StartedMsg{Session: s, owner: m}
	}
}

// Owns сообщает, запущена ли сессия из msg этой моделью
func (m *Model) Owns(msg StartedMsg) bool {
	return msg.owner == m
}

// tick планирует следующее обновление через секунду
func (m *Model) tick() tea.Cmd {
	id := m.sessionID
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{SessionID: id}
	})
}

func goBack() tea.Msg {
	return GoBackMsg{}
}

// Вспомогательные функции

func formatStatus(paused, silent bool) string {
	status := "▶️ Воспроизведение"
	if paused {
		status = "⏸️ Пауза"
	}
	if silent {
		status += " (без звука)"
	}
	return status
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
