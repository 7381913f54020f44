package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"remindbot/internal/command"
)

func (h *Handlers) handleAddReminder(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		h.sendMessage(msg.Chat.ID, "Usage: /addReminder remind <message> every <days> <time>\nExample: /addReminder remind to water plants every monday 9am")
		return
	}

	add, err := command.ParseAdd(args, time.Now().In(h.loc), h.loc)
	if err != nil {
		switch {
		case errors.Is(err, command.ErrMissingEvery):
			h.sendMessage(msg.Chat.ID, `I couldn't find the word "every". Try: /addReminder remind to water plants every monday 9am`)
		case errors.Is(err, command.ErrNoDay):
			h.sendMessage(msg.Chat.ID, "I couldn't find a day of week after \"every\". Spell days out, e.g. sunday or wednesday.")
		case errors.Is(err, command.ErrNoTime):
			h.sendMessage(msg.Chat.ID, "I couldn't find a time. Use something like 8pm or 11am.")
		default:
			h.sendMessage(msg.Chat.ID, "I couldn't understand that reminder, use /help for the format.")
		}
		return
	}

	reminders, err := h.store.CreateGroup(ctx, chatKey(msg), add.Message, add.TimeOfDay, add.Days)
	if err != nil {
		h.logger.Errorf("Failed to create reminders for chat %d: %v", msg.Chat.ID, err)
		h.sendMessage(msg.Chat.ID, "Failed to save the reminder, please try again later.")
		return
	}

	dayNames := make([]string, len(reminders))
	for i, r := range reminders {
		dayNames[i] = r.DayOfWeek
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("⏰ Reminder set for %s at %s:\n%s",
		strings.Join(dayNames, ", "), add.TimeOfDay, add.Message))
}

func (h *Handlers) handleListReminders(ctx context.Context, msg *tgbotapi.Message) {
	reminders, err := h.store.ListByChat(ctx, chatKey(msg))
	if err != nil {
		h.logger.Errorf("Failed to list reminders for chat %d: %v", msg.Chat.ID, err)
		h.sendMessage(msg.Chat.ID, "Failed to fetch your reminders, please try again later.")
		return
	}

	if len(reminders) == 0 {
		h.sendMessage(msg.Chat.ID, "⏰ You have no reminders yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString("⏰ *Your reminders*\n\n")
	for _, r := range reminders {
		sb.WriteString(fmt.Sprintf("*%d.* %s\n   🔁 every %s at %s\n\n", r.ID, r.Message, r.DayOfWeek, r.TimeOfDay))
	}
	h.sendMessage(msg.Chat.ID, sb.String())
}

func (h *Handlers) handleDeleteReminder(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.TrimSpace(msg.CommandArguments())
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Usage: /deleteReminder <id> — get ids from /listReminders")
		return
	}

	count, err := h.store.Delete(ctx, id, chatKey(msg))
	if err != nil {
		h.logger.Errorf("Failed to delete reminder %d for chat %d: %v", id, msg.Chat.ID, err)
		h.sendMessage(msg.Chat.ID, "Failed to delete the reminder, please try again later.")
		return
	}
	if count == 0 {
		h.sendMessage(msg.Chat.ID, fmt.Sprintf("Reminder %d not found.", id))
		return
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("🗑 Reminder %d deleted.", id))
}

// handleDeleteReminders deletes a comma-separated id list. The reply names
// every attempted id, without per-id success reporting.
func (h *Handlers) handleDeleteReminders(ctx context.Context, msg *tgbotapi.Message) {
	ids := command.ParseIDs(msg.CommandArguments())
	if len(ids) == 0 {
		h.sendMessage(msg.Chat.ID, "Usage: /deleteReminders <id,id,...> — get ids from /listReminders")
		return
	}

	for _, id := range ids {
		if _, err := h.store.Delete(ctx, id, chatKey(msg)); err != nil {
			h.logger.Errorf("Failed to delete reminder %d for chat %d: %v", id, msg.Chat.ID, err)
		}
	}

	attempted := make([]string, len(ids))
	for i, id := range ids {
		attempted[i] = strconv.FormatInt(id, 10)
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("🗑 Deleted reminders: %s", strings.Join(attempted, ", ")))
}

func (h *Handlers) handleUpdateReminder(ctx context.Context, msg *tgbotapi.Message) {
	id, message, err := command.ParseUpdate(msg.CommandArguments())
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Usage: /updateReminder <id> <new message>")
		return
	}

	count, err := h.store.UpdateMessage(ctx, id, chatKey(msg), message)
	if err != nil {
		h.logger.Errorf("Failed to update reminder %d for chat %d: %v", id, msg.Chat.ID, err)
		h.sendMessage(msg.Chat.ID, "Failed to update the reminder, please try again later.")
		return
	}
	if count == 0 {
		h.sendMessage(msg.Chat.ID, fmt.Sprintf("Reminder %d not found.", id))
		return
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("✏️ Reminder %d updated:\n%s", id, message))
}

// chatKey is the opaque owner id stored with each reminder.
func chatKey(msg *tgbotapi.Message) string {
	return strconv.FormatInt(msg.Chat.ID, 10)
}
