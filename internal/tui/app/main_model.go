// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/notify"
	"github.com/hazadus/go-binaural/internal/session"
	tuiPlayer "github.com/hazadus/go-binaural/internal/tui/player"
	"github.com/hazadus/go-binaural/internal/tui/profile"
	"github.com/hazadus/go-binaural/internal/tui/selector"
	"github.com/hazadus/go-binaural/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// SelectorScreen - экран выбора длительности
	SelectorScreen
	// PlayerScreen - экран идущей сессии
	PlayerScreen
	// ProfileScreen - экран профиля
	ProfileScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	appState      *data.AppState
	orchestrator  *session.Orchestrator
	events        <-chan notify.Event
	defaultPreset string

	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	selectorModel  *selector.Model
	playerModel    *tuiPlayer.Model
	profileModel   *profile.Model
	width          int
	height         int
}

// NewMainModel создает новую главную модель. events - канал уведомлений
// оркестратора, может быть nil.
func NewMainModel(appState *data.AppState, orchestrator *session.Orchestrator, events <-chan notify.Event, defaultPreset string) *MainModel {
	return &MainModel{
		appState:       appState,
		orchestrator:   orchestrator,
		events:         events,
		defaultPreset:  defaultPreset,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(appState),
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(m.tracklistModel.Init(), m.listen())
}

// listen ждет следующее уведомление оркестратора
func (m *MainModel) listen() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return tuiPlayer.NotificationMsg{Event: e}
	}
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		if msg.String() == "ctrl+c" {
			m.orchestrator.End(session.UserCancelled)
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tracklist.TrackSelectedMsg:
		m.currentScreen = SelectorScreen
		m.selectorModel = selector.NewModel(msg.Track, m.defaultPreset)
		return m, m.selectorModel.Init()

	case tracklist.ShowProfileMsg:
		m.currentScreen = ProfileScreen
		m.profileModel = profile.NewModel(m.appState)
		return m, m.profileModel.Init()

	case selector.DurationSelectedMsg:
		m.currentScreen = PlayerScreen
		m.selectorModel = nil
		m.playerModel = tuiPlayer.NewModel(m.orchestrator, msg.Track, msg.Seconds)
		if m.width > 0 {
			m.playerModel.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		return m, m.playerModel.Init()

	case selector.GoBackMsg, profile.GoBackMsg, tuiPlayer.GoBackMsg:
		return m, m.backToList()

	case tuiPlayer.NotificationMsg:
		if m.playerModel != nil {
			m.playerModel.Update(msg)
		}
		return m, m.listen()

	case tuiPlayer.StartedMsg:
		// Экран ушел раньше, чем сессия успела запуститься: звук не должен остаться
		if m.currentScreen != PlayerScreen || m.playerModel == nil || !m.playerModel.Owns(msg) {
			m.orchestrator.CloseSession(msg.Session.ID)
			return m, nil
		}

	case tuiPlayer.TickMsg:
		// Тики доходят только до экрана сессии
		if m.currentScreen != PlayerScreen || m.playerModel == nil {
			return m, nil
		}
	}

	return m, m.updateActive(msg)
}

// backToList возвращает на список треков
func (m *MainModel) backToList() tea.Cmd {
	m.currentScreen = TracklistScreen
	m.selectorModel = nil
	m.playerModel = nil
	m.profileModel = nil
	// Обновляем данные в существующей модели списка треков
	m.tracklistModel.RefreshData()
	if m.width > 0 {
		m.tracklistModel.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	return nil
}

// updateActive передает сообщение активной модели
func (m *MainModel) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)

	case SelectorScreen:
		if m.selectorModel != nil {
			m.selectorModel, cmd = m.selectorModel.Update(msg)
		}

	case PlayerScreen:
		if m.playerModel != nil {
			var updatedModel tea.Model
			updatedModel, cmd = m.playerModel.Update(msg)
			if playerModel, ok := updatedModel.(*tuiPlayer.Model); ok {
				m.playerModel = playerModel
			}
		}

	case ProfileScreen:
		if m.profileModel != nil {
			m.profileModel, cmd = m.profileModel.Update(msg)
		}
	}

	return cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case SelectorScreen:
		if m.selectorModel != nil {
			return m.selectorModel.View()
		}
		return "Ошибка: модель выбора длительности не инициализирована"

	case PlayerScreen:
		if m.playerModel != nil {
			return m.playerModel.View()
		}
		return "Ошибка: модель сессии не инициализирована"

	case ProfileScreen:
		if m.profileModel != nil {
			return m.profileModel.View()
		}
		return "Ошибка: модель профиля не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

// Close освобождает звук и таймер активной сессии
func (m *MainModel) Close() {
	m.orchestrator.Close()
}
