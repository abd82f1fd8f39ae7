package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "binaural",
		Short:        "Binaural beat sessions in your terminal",
		Long:         `A command line tool to browse binaural beat presets and run timed listening sessions.`,
		SilenceUsage: true,
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createPlayCommand(ctx))
	rootCmd.AddCommand(app.createRenderCommand())
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
