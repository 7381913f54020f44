package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Jan 10 2024 is a Wednesday.
var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func TestParseAdd(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		message   string
		days      []time.Weekday
		timeOfDay string
	}{
		{
			name:      "two days with leading remind",
			text:      "remind to take out waste every sunday and wednesday 8pm",
			message:   "to take out waste",
			days:      []time.Weekday{time.Sunday, time.Wednesday},
			timeOfDay: "20:00",
		},
		{
			name:      "mixed case input",
			text:      "Remind To Call Mom EVERY Friday 11AM",
			message:   "to call mom",
			days:      []time.Weekday{time.Friday},
			timeOfDay: "11:00",
		},
		{
			name:      "no remind prefix",
			text:      "stretch every monday 7am",
			message:   "stretch",
			days:      []time.Weekday{time.Monday},
			timeOfDay: "07:00",
		},
		{
			name:      "bare remind keeps empty message",
			text:      "remind every monday 8pm",
			message:   "",
			days:      []time.Weekday{time.Monday},
			timeOfDay: "20:00",
		},
		{
			name:      "days come back in canonical order",
			text:      "remind gym every wednesday, monday and sunday 6am",
			message:   "gym",
			days:      []time.Weekday{time.Sunday, time.Monday, time.Wednesday},
			timeOfDay: "06:00",
		},
		{
			name:      "plural day name still matches",
			text:      "remind trash every wednesdays 8pm",
			message:   "trash",
			days:      []time.Weekday{time.Wednesday},
			timeOfDay: "20:00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			add, err := ParseAdd(tc.text, testNow, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tc.message, add.Message)
			assert.Equal(t, tc.days, add.Days)
			assert.Equal(t, tc.timeOfDay, add.TimeOfDay)
		})
	}
}

func TestParseAddErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"missing every", "remind to water plants on monday 9am", ErrMissingEvery},
		{"no day", "remind to water plants every 9am", ErrNoDay},
		{"no time", "remind to water plants every monday", ErrNoTime},
		{"minutes in time token are not supported", "remind call every monday 8:30pm", ErrNoTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAdd(tc.text, testNow, time.UTC)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseIDs(t *testing.T) {
	cases := []struct {
		text string
		want []int64
	}{
		{"1,abc,3", []int64{1, 3}},
		{" 4 , 5 ", []int64{4, 5}},
		{"7", []int64{7}},
		{"abc", nil},
		{"", nil},
		{",,,", nil},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseIDs(tc.text), "ParseIDs(%q)", tc.text)
	}
}

func TestParseUpdate(t *testing.T) {
	id, message, err := ParseUpdate("12 buy oat milk instead")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.Equal(t, "buy oat milk instead", message)

	for _, text := range []string{"", "12", "abc new text", "12   "} {
		_, _, err := ParseUpdate(text)
		assert.ErrorIs(t, err, ErrBadUpdate, "ParseUpdate(%q)", text)
	}
}
