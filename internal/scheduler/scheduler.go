package scheduler

import (
	"context"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"remindbot/internal/models"
)

// ReminderSource is the due-now query, unscoped by owner: one scheduler
// pass serves every chat.
type ReminderSource interface {
	FindMatching(ctx context.Context, day time.Weekday, timeOfDay string) ([]*models.Reminder, error)
}

// Sender is satisfied by *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Scheduler struct {
	api           Sender
	reminders     ReminderSource
	loc           *time.Location
	checkInterval time.Duration
	logger        *zap.SugaredLogger
}

func New(api Sender, reminders ReminderSource, loc *time.Location, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		api:           api,
		reminders:     reminders,
		loc:           loc,
		checkInterval: 1 * time.Minute,
		logger:        logger,
	}
}

// Start ticks once per minute until ctx is cancelled. Ticks carry no state
// between each other; a missed minute is a lost firing by design.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Scheduler started")
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *Scheduler) check(ctx context.Context) {
	s.checkAt(ctx, time.Now().In(s.loc))
}

// checkAt delivers every reminder whose day and "HH:MM" equal now.
// Delivery is fire-and-forget: failures are logged and never retried, and
// one bad reminder never blocks the rest of the tick.
func (s *Scheduler) checkAt(ctx context.Context, now time.Time) {
	day := now.Weekday()
	clock := now.Format("15:04")

	reminders, err := s.reminders.FindMatching(ctx, day, clock)
	if err != nil {
		s.logger.Errorf("Failed to query due reminders: %v", err)
		return
	}

	for _, reminder := range reminders {
		chatID, err := strconv.ParseInt(reminder.ChatID, 10, 64)
		if err != nil {
			s.logger.Errorf("Reminder %d has malformed chat id %q: %v", reminder.ID, reminder.ChatID, err)
			continue
		}

		msg := tgbotapi.NewMessage(chatID, "⏰ Reminder: "+reminder.Message)
		if _, err := s.api.Send(msg); err != nil {
			s.logger.Errorf("Failed to deliver reminder %d to chat %s: %v", reminder.ID, reminder.ChatID, err)
			continue
		}
		s.logger.Debugf("Delivered reminder %d to chat %s", reminder.ID, reminder.ChatID)
	}
}
