// internal/models/event.go
package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Event is either a "regular" recurring event shown inside an announcement
// window, or a dated "spot" event shown while it is ongoing or upcoming.
type Event struct {
	BaseModel
	Title    string        `json:"title" gorm:"size:120;not null"`
	Slug     string        `json:"slug" gorm:"size:140;not null;uniqueIndex"`
	Summary  string        `json:"summary" gorm:"size:160"`
	Body     string        `json:"body" gorm:"type:text"`
	Category EventCategory `json:"category" gorm:"type:varchar(20);default:'season';index"`
	Location string        `json:"location" gorm:"size:120"`

	IsRegular bool `json:"is_regular" gorm:"default:false;index"`
	// ScheduleText is the free-form recurrence description shown for
	// regular events, e.g. "毎週金曜 17:00〜".
	ScheduleText string     `json:"schedule_text" gorm:"size:120"`
	StartDate    *time.Time `json:"start_date,omitempty" gorm:"type:date;index"`
	EndDate      *time.Time `json:"end_date,omitempty" gorm:"type:date"`

	// Announcement window; nil AnnounceFrom means "visible immediately",
	// nil AnnounceUntil means "visible forever".
	AnnounceFrom  *time.Time `json:"announce_from,omitempty" gorm:"type:date"`
	AnnounceUntil *time.Time `json:"announce_until,omitempty" gorm:"type:date"`

	IsFeatured bool `json:"is_featured" gorm:"default:false"`
	IsActive   bool `json:"is_active" gorm:"default:true;index"`
}

func (e *Event) BeforeSave(tx *gorm.DB) error {
	if e.Slug == "" {
		e.Slug = slug.Make(e.Title)
	}
	return nil
}

// IsMultiDay reports whether the event spans more than one day.
func (e *Event) IsMultiDay() bool {
	if e.StartDate == nil {
		return false
	}
	return e.EndDate != nil && e.EndDate.After(*e.StartDate)
}

// IsUpcoming reports whether the event is still worth showing on the given
// day. Regular events are always upcoming.
func (e *Event) IsUpcoming(today time.Time) bool {
	if e.IsRegular {
		return true
	}
	if e.StartDate == nil {
		return false
	}
	end := e.StartDate
	if e.EndDate != nil {
		end = e.EndDate
	}
	return !end.Before(DateOnly(today))
}

// DisplayDateText renders the date line for listings: the schedule text for
// regular events, a range for multi-day spot events, a single date otherwise.
func (e *Event) DisplayDateText() string {
	if e.IsRegular {
		if e.ScheduleText != "" {
			return e.ScheduleText
		}
		return "定番イベント"
	}
	if e.StartDate == nil {
		return ""
	}
	if e.EndDate != nil && e.EndDate.After(*e.StartDate) {
		return e.StartDate.Format("2006-01-02") + " 〜 " + e.EndDate.Format("2006-01-02")
	}
	return e.StartDate.Format("2006-01-02")
}

// DateOnly truncates t to midnight UTC so date columns compare by calendar
// day regardless of the clock time they were built with.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
