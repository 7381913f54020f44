package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"remindbot/internal/models"
)

type fakeSource struct {
	rows map[string][]*models.Reminder
}

func (s *fakeSource) FindMatching(ctx context.Context, day time.Weekday, timeOfDay string) ([]*models.Reminder, error) {
	return s.rows[day.String()+" "+timeOfDay], nil
}

type recordingSender struct {
	sent    []tgbotapi.MessageConfig
	failTil int // Send fails while len(sent) < failTil
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	mc, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("unexpected chattable")
	}
	if len(s.sent) < s.failTil {
		s.sent = append(s.sent, tgbotapi.MessageConfig{})
		return tgbotapi.Message{}, errors.New("telegram unavailable")
	}
	s.sent = append(s.sent, mc)
	return tgbotapi.Message{}, nil
}

func reminder(id int64, chatID, day, timeOfDay, message string) *models.Reminder {
	return &models.Reminder{
		ID:        id,
		ChatID:    chatID,
		Message:   message,
		DayOfWeek: day,
		TimeOfDay: timeOfDay,
		Recurring: true,
	}
}

// Jan 10 2024 is a Wednesday, Jan 11 a Thursday.
var (
	wednesday2000 = time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)
	wednesday2001 = time.Date(2024, 1, 10, 20, 1, 0, 0, time.UTC)
	thursday2000  = time.Date(2024, 1, 11, 20, 0, 0, 0, time.UTC)
)

func newTestScheduler(source ReminderSource, sender Sender) *Scheduler {
	return New(sender, source, time.UTC, zap.NewNop().Sugar())
}

func TestCheckAtDeliversExactMatchesAcrossOwners(t *testing.T) {
	source := &fakeSource{rows: map[string][]*models.Reminder{
		"Wednesday 20:00": {
			reminder(1, "100", "Wednesday", "20:00", "take out waste"),
			reminder(2, "200", "Wednesday", "20:00", "water plants"),
		},
	}}
	sender := &recordingSender{}
	s := newTestScheduler(source, sender)

	s.checkAt(context.Background(), wednesday2000)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, int64(100), sender.sent[0].ChatID)
	assert.Equal(t, "⏰ Reminder: take out waste", sender.sent[0].Text)
	assert.Equal(t, int64(200), sender.sent[1].ChatID)
	assert.Equal(t, "⏰ Reminder: water plants", sender.sent[1].Text)
}

func TestCheckAtBoundaries(t *testing.T) {
	source := &fakeSource{rows: map[string][]*models.Reminder{
		"Wednesday 20:00": {
			reminder(1, "100", "Wednesday", "20:00", "take out waste"),
		},
	}}
	sender := &recordingSender{}
	s := newTestScheduler(source, sender)

	s.checkAt(context.Background(), wednesday2001)
	assert.Empty(t, sender.sent, "20:01 must not match a 20:00 reminder")

	s.checkAt(context.Background(), thursday2000)
	assert.Empty(t, sender.sent, "Thursday must not match a Wednesday reminder")
}

func TestCheckAtContinuesAfterSendFailure(t *testing.T) {
	source := &fakeSource{rows: map[string][]*models.Reminder{
		"Wednesday 20:00": {
			reminder(1, "100", "Wednesday", "20:00", "first"),
			reminder(2, "200", "Wednesday", "20:00", "second"),
		},
	}}
	sender := &recordingSender{failTil: 1}
	s := newTestScheduler(source, sender)

	s.checkAt(context.Background(), wednesday2000)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "⏰ Reminder: second", sender.sent[1].Text)
}

func TestCheckAtSkipsMalformedChatID(t *testing.T) {
	source := &fakeSource{rows: map[string][]*models.Reminder{
		"Wednesday 20:00": {
			reminder(1, "not-a-number", "Wednesday", "20:00", "broken"),
			reminder(2, "200", "Wednesday", "20:00", "fine"),
		},
	}}
	sender := &recordingSender{}
	s := newTestScheduler(source, sender)

	s.checkAt(context.Background(), wednesday2000)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(200), sender.sent[0].ChatID)
}

// Firing across the full week: every reminder fires on exactly its own
// day+minute.
func TestCheckAtWeekSweep(t *testing.T) {
	rows := map[string][]*models.Reminder{}
	for i, day := range models.Weekdays {
		key := fmt.Sprintf("%s 08:00", day)
		rows[key] = []*models.Reminder{
			reminder(int64(i+1), "100", day.String(), "08:00", day.String()),
		}
	}
	source := &fakeSource{rows: rows}
	sender := &recordingSender{}
	s := newTestScheduler(source, sender)

	// Jan 7 2024 is a Sunday
	for i := 0; i < 7; i++ {
		s.checkAt(context.Background(), time.Date(2024, 1, 7+i, 8, 0, 0, 0, time.UTC))
	}

	require.Len(t, sender.sent, 7)
	for i, day := range models.Weekdays {
		assert.Equal(t, "⏰ Reminder: "+day.String(), sender.sent[i].Text)
	}
}
