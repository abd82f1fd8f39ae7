package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-binaural/internal/config"
	"github.com/hazadus/go-binaural/internal/notify"
	"github.com/hazadus/go-binaural/internal/session"
	"github.com/hazadus/go-binaural/internal/utils"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	var preset string
	var minutes int

	cmd := &cobra.Command{
		Use:   "play [trackid]",
		Short: "Run a listening session for a track",
		Long:  `Play the track's tone for a preset or custom duration with pause and stop controls.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			seconds, err := sessionSeconds(preset, minutes)
			if err != nil {
				return err
			}
			return app.playByID(ctx, args[0], seconds)
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", app.Config.DefaultDuration, "duration preset: quick, pomodoro, deep")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "custom duration in minutes (overrides preset)")

	return cmd
}

// sessionSeconds выбирает длительность: свои минуты важнее пресета
func sessionSeconds(presetID string, minutes int) (int, error) {
	if minutes < 0 {
		return 0, fmt.Errorf("длительность не может быть отрицательной: %d", minutes)
	}
	if minutes > 0 {
		return minutes * 60, nil
	}
	p, err := config.PresetByID(presetID)
	if err != nil {
		return 0, err
	}
	return p.Seconds(), nil
}

// enableRawMode включает режим raw для терминала (без буферизации и echo)
func enableRawMode() {
	cmd := exec.Command("stty", "-echo", "-icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run() // Игнорируем ошибку, так как это не критично для сессии
}

// disableRawMode восстанавливает нормальный режим терминала
func disableRawMode() {
	cmd := exec.Command("stty", "echo", "icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run()
}

// readKeys пересылает нажатия клавиш в канал до ошибки чтения
func readKeys(r io.Reader, keys chan<- byte) {
	buffer := make([]byte, 1)
	for {
		n, err := r.Read(buffer)
		if n > 0 {
			keys <- buffer[0]
		}
		if err != nil {
			return
		}
	}
}

func (app *Application) playByID(ctx context.Context, trackID string, seconds int) error {
	// Находим трек по ID
	track, err := app.State.TrackByID(trackID)
	if err != nil {
		return fmt.Errorf("ошибка поиска трека: %w", err)
	}

	fmt.Printf("🎧 Сессия:\n")
	fmt.Printf("   ID: %s\n", track.ID)
	fmt.Printf("   Название: %s\n", track.Name)
	fmt.Printf("   Частота: %s\n", track.Frequency)
	fmt.Printf("   Категория: %s / %s\n", track.Category, track.SubCategory)
	fmt.Printf("   Длительность: %s\n", utils.FormatTime(seconds))
	fmt.Println()

	events := notify.NewChan(16)
	done := make(chan struct{})
	orchestrator := app.newOrchestrator(events, session.OnComplete(func() { close(done) }))
	defer orchestrator.Close()

	orchestrator.Start(ctx, track, seconds)

	fmt.Printf("🎮 Управление:\n")
	fmt.Printf("   [Пробел/Enter] - пауза/продолжить\n")
	fmt.Printf("   [q/Ctrl+C] - завершить сессию\n")
	fmt.Println()

	// Включаем raw режим для чтения одиночных клавиш
	if app.input == os.Stdin {
		enableRawMode()
		defer disableRawMode()
	}

	// Создаем канал для обработки сигналов прерывания
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	keys := make(chan byte, 1)
	go readKeys(app.input, keys)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	displayProgress(orchestrator.Snapshot())

	// Главный цикл обработки событий
	for {
		select {
		case key := <-keys:
			switch key {
			case ' ', '\n', '\r':
				orchestrator.TogglePause()
				displayProgress(orchestrator.Snapshot())
			case 'q', 'Q':
				return endByUser(orchestrator)
			}
		case <-ticker.C:
			displayProgress(orchestrator.Snapshot())
		case e := <-events.Events():
			fmt.Printf("\r\033[K%s %s\n", eventIcon(e), e.Message)
		case <-done:
			drainEvents(events)
			return nil
		case <-interrupt:
			return endByUser(orchestrator)
		case <-ctx.Done():
			fmt.Println("\n🚫 Операция отменена")
			orchestrator.End(session.UserCancelled)
			return ctx.Err()
		}
	}
}

// endByUser завершает сессию и печатает итог
func endByUser(orchestrator *session.Orchestrator) error {
	outcome, ok := orchestrator.End(session.UserCancelled)
	fmt.Println()
	fmt.Println("⏹️  Сессия завершена пользователем")
	if ok {
		fmt.Printf("   Прослушано: %s\n", utils.FormatTime(outcome.Elapsed))
	}
	return nil
}

// drainEvents печатает накопившиеся уведомления
func drainEvents(events *notify.Chan) {
	for {
		select {
		case e := <-events.Events():
			fmt.Printf("\r\033[K%s %s\n", eventIcon(e), e.Message)
		default:
			return
		}
	}
}

func eventIcon(e notify.Event) string {
	switch {
	case e.IsError():
		return "❌"
	case e.Kind == notify.SessionCompleted:
		return "✅"
	case e.Kind == notify.OneMinuteRemaining:
		return "⏰"
	}
	return "🔔"
}

// displayProgress отображает оставшееся время сессии
func displayProgress(snap session.Snapshot) {
	if !snap.Active {
		return
	}

	statusIcon := "⏱️"
	statusText := "Воспроизведение"
	if snap.Paused {
		statusIcon = "⏸️"
		statusText = "На паузе"
	}
	if snap.Session.Silent {
		statusText += " (без звука)"
	}

	fmt.Printf("\r\033[K%s  %.1f%% | Осталось: %s / %s | Статус: %s",
		statusIcon,
		snap.Progress*100,
		utils.FormatTime(snap.Remaining),
		utils.FormatTime(snap.Session.Duration),
		statusText)
}
