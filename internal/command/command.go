// Package command turns the free-text arguments of bot commands into typed
// requests.
package command

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"remindbot/internal/models"
)

var (
	ErrMissingEvery = errors.New(`reminder text must contain "every"`)
	ErrNoDay        = errors.New("no day of week found")
	ErrNoTime       = errors.New("no recognizable time found")
	ErrNoIDs        = errors.New("no reminder ids found")
	ErrBadUpdate    = errors.New("update needs an id and a new message")
)

// Add is a parsed /addReminder request. Days are in canonical
// Sunday..Saturday order; TimeOfDay is "HH:MM" in the target timezone.
type Add struct {
	Message   string
	Days      []time.Weekday
	TimeOfDay string
}

var clockToken = regexp.MustCompile(`(?i)^\d{1,2}(am|pm)$`)

var clockParser = func() *when.Parser {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return p
}()

// ParseAdd parses text like "remind to take out waste every sunday and
// wednesday 8pm". The text left of the first "every" is the message (minus
// an optional leading "remind"), the right side names the days and the
// time. now must already be in loc; the returned time-of-day is normalized
// into loc.
func ParseAdd(text string, now time.Time, loc *time.Location) (*Add, error) {
	lowered := strings.ToLower(text)

	messagePart, dayTimePart, found := strings.Cut(lowered, "every")
	if !found {
		return nil, ErrMissingEvery
	}

	messagePart = strings.TrimSpace(messagePart)
	if messagePart == "remind" {
		messagePart = ""
	} else {
		messagePart = strings.TrimSpace(strings.TrimPrefix(messagePart, "remind "))
	}
	dayTimePart = strings.TrimSpace(dayTimePart)

	days := models.ScanDays(dayTimePart)
	if len(days) == 0 {
		return nil, ErrNoDay
	}

	var clockTokens []string
	for _, token := range strings.Fields(dayTimePart) {
		if clockToken.MatchString(token) {
			clockTokens = append(clockTokens, token)
		}
	}

	result, err := clockParser.Parse(strings.Join(clockTokens, " "), now)
	if err != nil || result == nil {
		return nil, ErrNoTime
	}

	return &Add{
		Message:   messagePart,
		Days:      days,
		TimeOfDay: result.Time.In(loc).Format("15:04"),
	}, nil
}

// ParseIDs extracts reminder ids from a comma-separated list. Tokens that
// are not integers are silently dropped.
func ParseIDs(text string) []int64 {
	var ids []int64
	for _, part := range strings.Split(text, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ParseUpdate splits "<id> <new message>" for /updateReminder.
func ParseUpdate(text string) (int64, string, error) {
	parts := strings.SplitN(strings.TrimSpace(text), " ", 2)
	if len(parts) < 2 {
		return 0, "", ErrBadUpdate
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", ErrBadUpdate
	}
	message := strings.TrimSpace(parts[1])
	if message == "" {
		return 0, "", ErrBadUpdate
	}
	return id, message, nil
}
