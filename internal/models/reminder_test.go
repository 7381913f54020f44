package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScanDays(t *testing.T) {
	cases := []struct {
		text string
		want []time.Weekday
	}{
		{"sunday and wednesday 8pm", []time.Weekday{time.Sunday, time.Wednesday}},
		{"WEDNESDAY then monday", []time.Weekday{time.Monday, time.Wednesday}},
		{"wednesdays", []time.Weekday{time.Wednesday}},
		{"8pm sharp", nil},
		{"", nil},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ScanDays(tc.text), "ScanDays(%q)", tc.text)
	}
}

func TestValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "20:00", "23:59"}
	for _, s := range valid {
		assert.True(t, ValidTimeOfDay(s), "expected %q to be valid", s)
	}

	invalid := []string{"24:00", "20:60", "8:00", "20:0", "20-00", "2000", ""}
	for _, s := range invalid {
		assert.False(t, ValidTimeOfDay(s), "expected %q to be invalid", s)
	}
}
