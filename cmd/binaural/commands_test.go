package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hazadus/go-binaural/internal/config"
	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/timer"
	"github.com/hazadus/go-binaural/internal/tone"
)

// captureOutput перехватывает stdout и stderr во время выполнения функции
func captureOutput(t *testing.T, fn func()) string {
	// Сохраняем оригинальные stdout и stderr
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	// Создаем временные файлы для перехвата
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Ошибка создания pipe: %v", err)
	}

	// Перенаправляем stdout и stderr
	os.Stdout = w
	os.Stderr = w

	// Читаем параллельно, чтобы длинный вывод не заблокировал pipe
	var buf bytes.Buffer
	copied := make(chan struct{})
	go func() {
		_, _ = io.Copy(&buf, r)
		close(copied)
	}()

	// Выполняем функцию
	fn()

	// Восстанавливаем оригинальные stdout и stderr
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	// Закрываем writer
	w.Close()
	<-copied

	return buf.String()
}

// noDevice бэкенд без звуковой карты
type noDevice struct{}

func (noDevice) Open() (tone.Output, error) { return nil, errors.New("нет устройства") }

type idleTicker struct{ c chan time.Time }

func (t *idleTicker) C() <-chan time.Time { return t.c }
func (t *idleTicker) Stop()               {}

// createTestApplication создает приложение без звука и логов
func createTestApplication(t *testing.T, input string) *Application {
	t.Helper()
	return &Application{
		Config:  config.Default(),
		State:   data.NewAppState(),
		Logger:  zap.NewNop(),
		Backend: noDevice{},
		input:   strings.NewReader(input),
		// Быстрый тикер: сессия идет миллисекунды
		newTicker: func(time.Duration) timer.Ticker {
			return timer.NewTicker(time.Millisecond)
		},
	}
}

// TestCmdList проверяет, что команда `list` корректно выводит список треков
func TestCmdList(t *testing.T) {
	app := createTestApplication(t, "")

	listCmd := app.createListCommand()

	output := captureOutput(t, func() {
		listCmd.SetArgs([]string{})
		if err := listCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды list: %v", err)
		}
	})

	expectedStrings := []string{
		"📚 Найдено треков: 8",
		"Gamma Focus",
		"40 Hz",
		"Deep Sleep",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("Вывод команды list не содержит ожидаемую строку '%s': %s", expected, output)
		}
	}
}

// TestCmdListFilters проверяет фильтры команды `list`
func TestCmdListFilters(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
		absent   string
	}{
		{[]string{"--category", "Sleep"}, "📚 Найдено треков: 1", "Gamma Focus"},
		{[]string{"--favorites"}, "📚 Найдено треков: 4", "Beta Concentration"},
		{[]string{"--search", "alpha"}, "📚 Найдено треков: 3", "Delta Sleep"},
		{[]string{"--favorites", "--category", "Focus"}, "📚 Найдено треков: 2", "Alpha Calm"},
		{[]string{"--search", "несуществующий"}, "📚 Треков не найдено.", "Gamma Focus"},
	}

	for _, test := range tests {
		app := createTestApplication(t, "")
		listCmd := app.createListCommand()

		output := captureOutput(t, func() {
			listCmd.SetArgs(test.args)
			if err := listCmd.Execute(); err != nil {
				t.Errorf("Ошибка выполнения команды list %v: %v", test.args, err)
			}
		})

		if !strings.Contains(output, test.expected) {
			t.Errorf("list %v: вывод не содержит '%s': %s", test.args, test.expected, output)
		}
		if strings.Contains(output, test.absent) {
			t.Errorf("list %v: вывод не должен содержать '%s'", test.args, test.absent)
		}
	}
}

// TestCmdPlayCompletes проверяет, что сессия доходит до конца и попадает в статистику
func TestCmdPlayCompletes(t *testing.T) {
	app := createTestApplication(t, "")
	playCmd := app.createPlayCommand(context.Background())

	output := captureOutput(t, func() {
		playCmd.SetArgs([]string{"1", "--preset", "quick"})
		if err := playCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды play: %v", err)
		}
	})

	expectedStrings := []string{
		"Gamma Focus",
		"Не удалось воспроизвести аудио",
		"Сессия успешно завершена!",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("Вывод команды play не содержит '%s': %s", expected, output)
		}
	}

	stats := app.State.Stats()
	if stats.SessionsCompleted != 1 {
		t.Errorf("Ожидалась 1 сессия в статистике, получено %d", stats.SessionsCompleted)
	}
	if recent := app.State.RecentlyPlayed(); len(recent) != 1 || recent[0].ID != "1" {
		t.Errorf("Трек должен попасть в недавние: %+v", recent)
	}
}

// TestCmdPlayQuit проверяет завершение сессии клавишей q
func TestCmdPlayQuit(t *testing.T) {
	app := createTestApplication(t, "q")
	app.newTicker = func(time.Duration) timer.Ticker {
		return &idleTicker{c: make(chan time.Time)}
	}
	playCmd := app.createPlayCommand(context.Background())

	output := captureOutput(t, func() {
		playCmd.SetArgs([]string{"3", "--minutes", "5"})
		if err := playCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды play: %v", err)
		}
	})

	if !strings.Contains(output, "Сессия завершена пользователем") {
		t.Errorf("Вывод не содержит сообщение о завершении: %s", output)
	}
	if !strings.Contains(output, "05:00") {
		t.Errorf("Вывод должен показывать длительность 05:00: %s", output)
	}
	if app.State.Stats().SessionsCompleted != 1 {
		t.Error("Завершение пользователем записывает статистику")
	}
}

// TestCmdPlayUnknownTrack проверяет ошибку для несуществующего трека
func TestCmdPlayUnknownTrack(t *testing.T) {
	app := createTestApplication(t, "")
	playCmd := app.createPlayCommand(context.Background())
	playCmd.SetOut(io.Discard)
	playCmd.SetErr(io.Discard)
	playCmd.SetArgs([]string{"999"})

	if err := playCmd.Execute(); err == nil {
		t.Error("Ожидалась ошибка для несуществующего трека")
	}
}

func TestSessionSeconds(t *testing.T) {
	tests := []struct {
		preset   string
		minutes  int
		expected int
		wantErr  bool
	}{
		{"quick", 0, 10, false},
		{"pomodoro", 0, 1500, false},
		{"deep", 0, 3600, false},
		{"quick", 15, 900, false},
		{"forever", 0, 0, true},
		{"quick", -1, 0, true},
	}

	for _, test := range tests {
		seconds, err := sessionSeconds(test.preset, test.minutes)
		if (err != nil) != test.wantErr {
			t.Errorf("sessionSeconds(%s, %d): неожиданная ошибка %v", test.preset, test.minutes, err)
		}
		if seconds != test.expected {
			t.Errorf("sessionSeconds(%s, %d) = %d, ожидалось %d", test.preset, test.minutes, seconds, test.expected)
		}
	}
}

// TestCmdRender проверяет запись WAV файла
func TestCmdRender(t *testing.T) {
	app := createTestApplication(t, "")
	app.Config.SampleRate = 8000
	output := filepath.Join(t.TempDir(), "gamma.wav")

	renderCmd := app.createRenderCommand()
	captureOutput(t, func() {
		renderCmd.SetArgs([]string{"1", "--seconds", "1", "-o", output})
		if err := renderCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды render: %v", err)
		}
	})

	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("Файл не создан: %v", err)
	}
	// 8000 сэмплов * 2 канала * 2 байта плюс заголовок
	if info.Size() <= 8000*4 {
		t.Errorf("Неожиданный размер файла: %d", info.Size())
	}
}

func TestRootCommand(t *testing.T) {
	app := createTestApplication(t, "")
	rootCmd := app.createRootCommand(context.Background())

	for _, name := range []string{"list", "play", "render", "tui"} {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("Команда %s не зарегистрирована", name)
		}
	}
}
