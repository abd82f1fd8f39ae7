package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-binaural/internal/tone"
)

// createRenderCommand создает команду render с привязкой к экземпляру приложения
func (app *Application) createRenderCommand() *cobra.Command {
	var seconds int
	var output string

	cmd := &cobra.Command{
		Use:   "render [trackid]",
		Short: "Render a track's tone to a WAV file",
		Long:  `Write the track's tone at its scaled volume to a 16-bit stereo WAV file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.renderTrack(args[0], seconds, output)
		},
	}

	cmd.Flags().IntVarP(&seconds, "seconds", "n", 10, "duration in seconds")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default binaural-<id>.wav)")

	return cmd
}

func (app *Application) renderTrack(trackID string, seconds int, output string) error {
	track, err := app.State.TrackByID(trackID)
	if err != nil {
		return fmt.Errorf("ошибка поиска трека: %w", err)
	}
	if seconds <= 0 {
		return fmt.Errorf("длительность должна быть положительной: %d", seconds)
	}
	if output == "" {
		output = fmt.Sprintf("binaural-%s.wav", track.ID)
	}

	frequency, _ := tone.ExtractFrequency(track.Frequency)

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("ошибка создания файла: %w", err)
	}
	defer file.Close()

	fmt.Printf("💾 Записываем %s (%d Гц) в %s...\n", track.Name, frequency, output)

	err = tone.Render(file, frequency, time.Duration(seconds)*time.Second, app.Config.SampleRate, app.Config.BaseVolume)
	if err != nil {
		return fmt.Errorf("ошибка записи WAV: %w", err)
	}

	fmt.Printf("✅ Готово: %s\n", output)
	return nil
}
