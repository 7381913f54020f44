package handlers

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"remindbot/internal/ai"
	"remindbot/internal/models"
)

// ReminderStore is the slice of the reminder repository the command path
// needs. Every operation is scoped to the owning chat.
type ReminderStore interface {
	CreateGroup(ctx context.Context, chatID, message, timeOfDay string, days []time.Weekday) ([]*models.Reminder, error)
	ListByChat(ctx context.Context, chatID string) ([]*models.Reminder, error)
	Delete(ctx context.Context, id int64, chatID string) (int64, error)
	UpdateMessage(ctx context.Context, id int64, chatID, message string) (int64, error)
}

// Sender is satisfied by *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Handlers struct {
	api    Sender
	store  ReminderStore
	ai     *ai.Client
	loc    *time.Location
	logger *zap.SugaredLogger
}

func New(api Sender, store ReminderStore, aiClient *ai.Client, loc *time.Location, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{
		api:    api,
		store:  store,
		ai:     aiClient,
		loc:    loc,
		logger: logger,
	}
}

func (h *Handlers) HandleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.handleStart(ctx, msg)
	case "help":
		h.handleHelp(ctx, msg)
	case "addReminder":
		h.handleAddReminder(ctx, msg)
	case "listReminders":
		h.handleListReminders(ctx, msg)
	case "deleteReminder":
		h.handleDeleteReminder(ctx, msg)
	case "deleteReminders":
		h.handleDeleteReminders(ctx, msg)
	case "updateReminder":
		h.handleUpdateReminder(ctx, msg)
	default:
		h.sendMessage(msg.Chat.ID, "Unknown command, use /help to see what I understand.")
	}
}

// HandleMessage deals with plain text. With an AI client configured the
// text is rewritten into a suggested /addReminder command, otherwise the
// user is pointed at /help.
func (h *Handlers) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if h.ai == nil {
		h.sendMessage(msg.Chat.ID, "I only understand commands. Use /help to see them.")
		return
	}

	suggestion, err := h.ai.SuggestCommand(ctx, msg.Text, time.Now().In(h.loc))
	if err != nil {
		h.logger.Errorf("Failed to get command suggestion: %v", err)
		h.sendMessage(msg.Chat.ID, "I only understand commands. Use /help to see them.")
		return
	}
	h.sendMessage(msg.Chat.ID, "Did you mean:\n"+suggestion)
}

func (h *Handlers) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := h.api.Send(msg); err != nil {
		h.logger.Errorf("Failed to send message to chat %d: %v", chatID, err)
	}
}

func (h *Handlers) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	text := `👋 Hi! I can nag you about recurring things.

Tell me what and when, for example:
/addReminder remind to take out waste every sunday and wednesday 8pm

Use /help to see every command.`
	h.sendMessage(msg.Chat.ID, text)
}

func (h *Handlers) handleHelp(ctx context.Context, msg *tgbotapi.Message) {
	text := `📖 *Commands*

/addReminder <message> every <days> <time> - add a recurring reminder
/listReminders - show your reminders
/deleteReminder <id> - delete one reminder
/deleteReminders <id,id,...> - delete several reminders
/updateReminder <id> <new message> - change a reminder's message

Days are spelled out (monday, tuesday, ...), times look like 8pm or 11am.`
	h.sendMessage(msg.Chat.ID, text)
}
