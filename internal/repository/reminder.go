package repository

import (
	"context"
	"errors"
	"time"

	"remindbot/internal/database"
	"remindbot/internal/models"
)

// ErrInvalidTimeOfDay guards the HH:MM invariant before anything reaches
// the table; the matcher compares these strings byte for byte.
var ErrInvalidTimeOfDay = errors.New("time of day must be zero-padded HH:MM")

type ReminderRepository struct {
	db *database.DB
}

func NewReminderRepository(db *database.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	if !models.ValidTimeOfDay(reminder.TimeOfDay) {
		return ErrInvalidTimeOfDay
	}
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO reminders (chat_id, message, day_of_week, time, recurring)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		reminder.ChatID, reminder.Message, reminder.DayOfWeek, reminder.TimeOfDay, reminder.Recurring,
	).Scan(&reminder.ID, &reminder.CreatedAt)
}

// CreateGroup inserts one reminder per day in a single transaction, so a
// multi-day add either fully succeeds or leaves no rows behind. Each row
// gets its own id.
func (r *ReminderRepository) CreateGroup(ctx context.Context, chatID, message, timeOfDay string, days []time.Weekday) ([]*models.Reminder, error) {
	if !models.ValidTimeOfDay(timeOfDay) {
		return nil, ErrInvalidTimeOfDay
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(context.Background())

	reminders := make([]*models.Reminder, 0, len(days))
	for _, day := range days {
		reminder := &models.Reminder{
			ChatID:    chatID,
			Message:   message,
			DayOfWeek: day.String(),
			TimeOfDay: timeOfDay,
			Recurring: true,
		}
		err := tx.QueryRow(ctx,
			`INSERT INTO reminders (chat_id, message, day_of_week, time, recurring)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id, created_at`,
			reminder.ChatID, reminder.Message, reminder.DayOfWeek, reminder.TimeOfDay, reminder.Recurring,
		).Scan(&reminder.ID, &reminder.CreatedAt)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListByChat returns every reminder owned by the chat, ordered by id so
// repeated listings are stable.
func (r *ReminderRepository) ListByChat(ctx context.Context, chatID string) ([]*models.Reminder, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, chat_id, message, day_of_week, time, recurring, created_at
		 FROM reminders WHERE chat_id = $1 ORDER BY id ASC`,
		chatID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		reminder := &models.Reminder{}
		if err := rows.Scan(&reminder.ID, &reminder.ChatID, &reminder.Message, &reminder.DayOfWeek,
			&reminder.TimeOfDay, &reminder.Recurring, &reminder.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

// Delete removes the reminder if it exists and belongs to the chat.
// Returns the number of rows removed: 0 means not found or foreign-owned,
// which is a normal outcome rather than an error.
func (r *ReminderRepository) Delete(ctx context.Context, id int64, chatID string) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM reminders WHERE id = $1 AND chat_id = $2`,
		id, chatID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdateMessage replaces the message text only. Day and time are immutable
// once created. Zero-count semantics match Delete.
func (r *ReminderRepository) UpdateMessage(ctx context.Context, id int64, chatID, message string) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE reminders SET message = $1 WHERE id = $2 AND chat_id = $3`,
		message, id, chatID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// FindMatching is the scheduler's due-now query. It deliberately crosses
// chat boundaries: one pass serves every user.
func (r *ReminderRepository) FindMatching(ctx context.Context, day time.Weekday, timeOfDay string) ([]*models.Reminder, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, chat_id, message, day_of_week, time, recurring, created_at
		 FROM reminders WHERE day_of_week = $1 AND time = $2 ORDER BY id ASC`,
		day.String(), timeOfDay,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		reminder := &models.Reminder{}
		if err := rows.Scan(&reminder.ID, &reminder.ChatID, &reminder.Message, &reminder.DayOfWeek,
			&reminder.TimeOfDay, &reminder.Recurring, &reminder.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}
