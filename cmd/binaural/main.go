package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hazadus/go-binaural/internal/config"
	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/logging"
	"github.com/hazadus/go-binaural/internal/notify"
	"github.com/hazadus/go-binaural/internal/session"
	"github.com/hazadus/go-binaural/internal/timer"
	"github.com/hazadus/go-binaural/internal/tone"
)

const (
	defaultConfigPath = "~/.binaural"
)

// Application содержит зависимости, общие для всех команд
type Application struct {
	Config  *config.Config
	State   *data.AppState
	Logger  *zap.Logger
	Backend tone.Backend

	input     io.Reader        // Источник нажатий клавиш для play
	newTicker timer.TickerFunc // Тикер таймера сессий
}

// NewApplication собирает приложение из конфигурации
func NewApplication(cfg *config.Config) (*Application, error) {
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	state := data.NewAppState()
	if err := state.LoadCatalog(cfg.CatalogFile); err != nil {
		return nil, err
	}
	state.TouchVisit(time.Now())

	return &Application{
		Config:    cfg,
		State:     state,
		Logger:    logger,
		Backend:   tone.NewSpeakerBackend(cfg.SampleRate, cfg.BufferSize()),
		input:     os.Stdin,
		newTicker: timer.NewTicker,
	}, nil
}

// newOrchestrator создает оркестратор сессий. Уведомления уходят в лог и в sink.
func (app *Application) newOrchestrator(sink notify.Sink, opts ...session.Option) *session.Orchestrator {
	synth := tone.NewSynthesizer(app.Backend, app.Config.BaseVolume, app.Logger)
	opts = append([]session.Option{
		session.WithLogger(app.Logger),
		session.WithSink(notify.Multi(notify.NewLogger(app.Logger), sink)),
		session.WithTicker(app.newTicker),
	}, opts...)
	return session.New(synth, app.State, opts...)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	app, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации приложения: %v", err)
	}

	rootCmd := app.createRootCommand(context.Background())
	err = rootCmd.Execute()
	_ = app.Logger.Sync()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
