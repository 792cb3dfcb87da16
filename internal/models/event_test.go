// internal/models/event_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestEventIsMultiDay(t *testing.T) {
	start := date(2026, 9, 1)
	end := date(2026, 9, 3)

	assert.True(t, (&Event{StartDate: &start, EndDate: &end}).IsMultiDay())
	assert.False(t, (&Event{StartDate: &start, EndDate: &start}).IsMultiDay())
	assert.False(t, (&Event{StartDate: &start}).IsMultiDay())
	assert.False(t, (&Event{EndDate: &end}).IsMultiDay())
}

func TestEventIsUpcoming(t *testing.T) {
	today := date(2026, 8, 29)
	past := date(2026, 8, 10)
	future := date(2026, 9, 5)

	assert.True(t, (&Event{IsRegular: true}).IsUpcoming(today))
	assert.False(t, (&Event{}).IsUpcoming(today))
	assert.True(t, (&Event{StartDate: &future}).IsUpcoming(today))
	assert.False(t, (&Event{StartDate: &past}).IsUpcoming(today))
	// An ongoing range counts even when it started in the past.
	assert.True(t, (&Event{StartDate: &past, EndDate: &future}).IsUpcoming(today))
	// The last day still counts.
	assert.True(t, (&Event{StartDate: &past, EndDate: &today}).IsUpcoming(today))
}

func TestEventDisplayDateText(t *testing.T) {
	start := date(2026, 9, 1)
	end := date(2026, 9, 3)

	assert.Equal(t, "毎週金曜 17:00〜", (&Event{IsRegular: true, ScheduleText: "毎週金曜 17:00〜"}).DisplayDateText())
	assert.Equal(t, "定番イベント", (&Event{IsRegular: true}).DisplayDateText())
	assert.Equal(t, "", (&Event{}).DisplayDateText())
	assert.Equal(t, "2026-09-01", (&Event{StartDate: &start}).DisplayDateText())
	assert.Equal(t, "2026-09-01", (&Event{StartDate: &start, EndDate: &start}).DisplayDateText())
	assert.Equal(t, "2026-09-01 〜 2026-09-03", (&Event{StartDate: &start, EndDate: &end}).DisplayDateText())
}

func TestEventSlugDerivedFromTitle(t *testing.T) {
	e := &Event{Title: "Autumn Harvest Festival"}
	assert.NoError(t, e.BeforeSave(nil))
	assert.Equal(t, "autumn-harvest-festival", e.Slug)

	e = &Event{Title: "Autumn Harvest Festival", Slug: "aki-matsuri"}
	assert.NoError(t, e.BeforeSave(nil))
	assert.Equal(t, "aki-matsuri", e.Slug)
}

func TestDateOnlyTruncates(t *testing.T) {
	ts := time.Date(2026, 8, 29, 23, 59, 58, 123, time.UTC)
	assert.Equal(t, date(2026, 8, 29), DateOnly(ts))
}
