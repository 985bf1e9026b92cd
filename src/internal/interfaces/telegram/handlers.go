package telegram

import (
	"errors"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lmittmann/tint"

	apppoints "github.com/jackyeh168/points_bot/src/internal/application/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/admin"
	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/infrastructure/metrics"
)

// Use case ports, satisfied by the application/points use cases.
type (
	BalanceQuerier interface {
		Execute(query apppoints.GetPointsBalanceQuery) (*apppoints.GetPointsBalanceResult, error)
	}
	PointsAdder interface {
		Execute(cmd apppoints.AddPointsCommand) (*apppoints.AddPointsResult, error)
	}
	BoxOpener interface {
		Execute(cmd apppoints.OpenBoxCommand) (*apppoints.OpenBoxResult, error)
	}
	PointsResetter interface {
		Execute(cmd apppoints.ResetPointsCommand) (*apppoints.ResetPointsResult, error)
	}
)

// CommandObserver records the outcome of each handled command.
type CommandObserver interface {
	ObserveCommand(command, outcome string)
}

// UseCases groups the use cases the handler dispatches to.
type UseCases struct {
	Balance     BalanceQuerier
	AddPoints   PointsAdder
	OpenBox     BoxOpener
	ResetPoints PointsResetter
}

// outcome is what a command produced: the replies to send, in order,
// and the label recorded for it.
type outcome struct {
	replies []string
	label   string
}

func ok(replies ...string) outcome {
	return outcome{replies: replies, label: metrics.OutcomeOK}
}

type commandFunc func(userID int64, args string) outcome

// Handler routes bot commands to use cases and replies to the sender.
type Handler struct {
	useCases UseCases
	observer CommandObserver
	logger   *slog.Logger
	commands map[string]commandFunc
}

// NewHandler creates a Handler. observer may be nil.
func NewHandler(useCases UseCases, observer CommandObserver, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		useCases: useCases,
		observer: observer,
		logger:   logger.With("component", "telegram"),
	}
	h.commands = map[string]commandFunc{
		"start":        h.start,
		"points":       h.points,
		"add_points":   h.addPoints,
		"open_box":     h.openBox,
		"reset_points": h.resetPoints,
	}
	return h
}

// HandleMessage runs the command in msg, if any, and sends its replies.
// It returns false when the message was ignored.
func (h *Handler) HandleMessage(bot BotAPI, msg *tgbotapi.Message) bool {
	if msg == nil || msg.Chat == nil || !msg.IsCommand() {
		return false
	}
	if msg.From == nil {
		h.logger.Debug("ignoring command without sender", "chat_id", msg.Chat.ID)
		return false
	}

	name := msg.Command()
	run, found := h.commands[name]
	if !found {
		h.logger.Debug("ignoring unknown command", "command", name, "user_id", msg.From.ID)
		return false
	}

	h.logger.Info("command received", "command", name, "user_id", msg.From.ID)
	result := run(msg.From.ID, firstArgument(msg.CommandArguments()))

	if h.observer != nil {
		h.observer.ObserveCommand(name, result.label)
	}
	for _, text := range result.replies {
		h.reply(bot, msg, text)
	}
	return true
}

func (h *Handler) reply(bot BotAPI, msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	if _, err := bot.Send(out); err != nil {
		h.logger.Warn("failed to send reply", "chat_id", msg.Chat.ID, tint.Err(err))
	}
}

// firstArgument returns the first whitespace separated token of args.
func firstArgument(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (h *Handler) start(int64, string) outcome {
	return ok(ReplyHelp)
}

func (h *Handler) points(userID int64, _ string) outcome {
	result, err := h.useCases.Balance.Execute(apppoints.GetPointsBalanceQuery{UserID: userID})
	if err != nil {
		return h.failure("points", userID, err)
	}
	return ok(replyBalance(result.Balance))
}

func (h *Handler) addPoints(userID int64, args string) outcome {
	result, err := h.useCases.AddPoints.Execute(apppoints.AddPointsCommand{
		InvokerID: userID,
		Amount:    args,
	})
	switch {
	case err == nil:
		return ok(replyPointsAdded(result.Amount))
	case errors.Is(err, admin.ErrPermissionDenied):
		return denied()
	case errors.Is(err, points.ErrInvalidPointsAmount),
		errors.Is(err, points.ErrNegativePointsAmount),
		errors.Is(err, points.ErrPointsOverflow):
		h.logger.Error("error adding points", "user_id", userID, tint.Err(err))
		return outcome{replies: []string{ReplyAddPointsUsage}, label: metrics.OutcomeInvalid}
	default:
		return h.failure("add_points", userID, err)
	}
}

func (h *Handler) openBox(userID int64, _ string) outcome {
	result, err := h.useCases.OpenBox.Execute(apppoints.OpenBoxCommand{UserID: userID})
	switch {
	case err == nil:
		return ok(replyBoxFound(result.Reward), replyBoxEarned(result.Reward, result.FinalBalance))
	case errors.Is(err, points.ErrInsufficientPoints):
		return outcome{replies: []string{ReplyNotEnoughPoints}, label: metrics.OutcomeRejected}
	default:
		return h.failure("open_box", userID, err)
	}
}

func (h *Handler) resetPoints(userID int64, args string) outcome {
	result, err := h.useCases.ResetPoints.Execute(apppoints.ResetPointsCommand{
		InvokerID:    userID,
		TargetUserID: args,
	})
	switch {
	case err == nil:
		h.logger.Info("points reset", "user_id", userID, "target_user_id", result.TargetUserID)
		return ok(ReplyResetDone)
	case errors.Is(err, admin.ErrPermissionDenied):
		return denied()
	case errors.Is(err, points.ErrInvalidUserID):
		h.logger.Error("error resetting points", "user_id", userID, tint.Err(err))
		return outcome{replies: []string{ReplyResetUsage}, label: metrics.OutcomeInvalid}
	default:
		return h.failure("reset_points", userID, err)
	}
}

func denied() outcome {
	return outcome{replies: []string{ReplyNoPermission}, label: metrics.OutcomeDenied}
}

func (h *Handler) failure(command string, userID int64, err error) outcome {
	h.logger.Error("command failed", "command", command, "user_id", userID, tint.Err(err))
	return outcome{replies: []string{ReplyFailure}, label: metrics.OutcomeError}
}
