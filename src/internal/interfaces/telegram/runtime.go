package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lmittmann/tint"
)

// RuntimeConfig controls long polling.
type RuntimeConfig struct {
	UpdateTimeout      int  // seconds
	SkipPendingUpdates bool // drop updates queued while the bot was offline
}

// Runtime receives updates and hands messages to the Handler one at a time.
type Runtime struct {
	client  Client
	handler *Handler
	config  RuntimeConfig
	logger  *slog.Logger
}

// NewRuntime creates a Runtime.
func NewRuntime(client Client, handler *Handler, config RuntimeConfig, logger *slog.Logger) *Runtime {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runtime{
		client:  client,
		handler: handler,
		config:  config,
		logger:  logger.With("component", "runtime"),
	}
}

// Run polls for updates until ctx is canceled or the update channel closes.
// Each message is fully handled before the next one is read.
func (r *Runtime) Run(ctx context.Context) error {
	if r.config.SkipPendingUpdates {
		if _, err := r.client.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
			return fmt.Errorf("drop pending updates: %w", err)
		}
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = r.config.UpdateTimeout
	updates := r.client.GetUpdatesChan(u)
	defer r.client.StopReceivingUpdates()

	r.logger.Info("polling for updates", "timeout", r.config.UpdateTimeout)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping update loop")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			r.handle(update)
		}
	}
}

func (r *Runtime) handle(update tgbotapi.Update) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("panic while handling update", "update_id", update.UpdateID, tint.Err(fmt.Errorf("%v", p)))
		}
	}()
	r.handler.HandleMessage(r.client, update.Message)
}

// slogBotLogger routes tgbotapi's internal logging through slog.
type slogBotLogger struct {
	logger *slog.Logger
}

// NewBotLogger adapts logger for tgbotapi.SetLogger.
func NewBotLogger(logger *slog.Logger) tgbotapi.BotLogger {
	return slogBotLogger{logger: logger.With("component", "tgbotapi")}
}

func (l slogBotLogger) Println(v ...interface{}) {
	l.logger.Warn(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (l slogBotLogger) Printf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}
