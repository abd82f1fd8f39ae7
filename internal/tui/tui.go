// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/notify"
	"github.com/hazadus/go-binaural/internal/session"
	"github.com/hazadus/go-binaural/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	appState      *data.AppState
	orchestrator  *session.Orchestrator
	events        <-chan notify.Event
	defaultPreset string
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(appState *data.AppState, orchestrator *session.Orchestrator, events <-chan notify.Event, defaultPreset string) *App {
	return &App{
		appState:      appState,
		orchestrator:  orchestrator,
		events:        events,
		defaultPreset: defaultPreset,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	// Создаем модель для Bubble Tea
	model := app.NewMainModel(tuiApp.appState, tuiApp.orchestrator, tuiApp.events, tuiApp.defaultPreset)

	// Создаем программу Bubble Tea
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Запускаем программу
	_, err := p.Run()

	// Освобождаем звук после завершения программы
	model.Close()

	return err
}
