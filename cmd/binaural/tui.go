package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-binaural/internal/notify"
	"github.com/hazadus/go-binaural/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing tracks and running sessions.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
	}
}

func (app *Application) launchTUI() error {
	events := notify.NewChan(32)
	orchestrator := app.newOrchestrator(events)

	// Создаем экземпляр TUI приложения
	tuiApp := tui.NewApp(app.State, orchestrator, events.Events(), app.Config.DefaultDuration)

	// Запускаем TUI
	if err := tuiApp.Run(); err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}
