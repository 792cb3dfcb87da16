// internal/services/event_service.go
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/okaimono/shotengai-backend/internal/i18n"
	"github.com/okaimono/shotengai-backend/internal/models"
	"github.com/okaimono/shotengai-backend/internal/utils"
)

// EventService fetches active events and runs them through the visibility
// rules: regular events are gated by their announcement window, spot events
// by their date range.
type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// EventView is an event plus the derived display fields listings need.
type EventView struct {
	models.Event
	IsMultiDay      bool   `json:"is_multi_day"`
	IsUpcoming      bool   `json:"is_upcoming"`
	DisplayDateText string `json:"display_date_text"`
}

type EventListParams struct {
	Today    time.Time
	Category string
	Query    string
}

type EventListing struct {
	Regular []EventView `json:"regular"`
	Spot    []EventView `json:"spot"`
}

func (s *EventService) List(params EventListParams) (*EventListing, error) {
	var events []models.Event
	if err := s.db.Where("is_active = ?", true).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	return BuildListing(events, params), nil
}

// BuildListing applies the visibility rules to a set of events. Pure so the
// rules can be exercised without a database.
func BuildListing(events []models.Event, params EventListParams) *EventListing {
	today := models.DateOnly(params.Today)

	var regular, spot []models.Event
	for _, e := range events {
		if params.Category != "" && string(e.Category) != params.Category {
			continue
		}
		if params.Query != "" && !matchesQuery(&e, params.Query) {
			continue
		}

		if e.IsRegular {
			if includeRegular(&e, today) {
				regular = append(regular, e)
			}
		} else if includeSpot(&e, today) {
			spot = append(spot, e)
		}
	}

	sortRegular(regular)
	sortSpot(spot)

	listing := &EventListing{
		Regular: make([]EventView, 0, len(regular)),
		Spot:    make([]EventView, 0, len(spot)),
	}
	for _, e := range regular {
		listing.Regular = append(listing.Regular, newEventView(e, today))
	}
	for _, e := range spot {
		listing.Spot = append(listing.Spot, newEventView(e, today))
	}
	return listing
}

func newEventView(e models.Event, today time.Time) EventView {
	return EventView{
		Event:           e,
		IsMultiDay:      e.IsMultiDay(),
		IsUpcoming:      e.IsUpcoming(today),
		DisplayDateText: e.DisplayDateText(),
	}
}

// includeRegular gates a recurring event by its announcement window; a nil
// bound is open on that side.
func includeRegular(e *models.Event, today time.Time) bool {
	if e.AnnounceFrom != nil && e.AnnounceFrom.After(today) {
		return false
	}
	if e.AnnounceUntil != nil && e.AnnounceUntil.Before(today) {
		return false
	}
	return true
}

// includeSpot keeps a dated event while it is still ongoing, or not yet
// started when it has no end date.
func includeSpot(e *models.Event, today time.Time) bool {
	if e.EndDate != nil {
		return !e.EndDate.Before(today)
	}
	return e.StartDate != nil && !e.StartDate.Before(today)
}

// matchesQuery is a case-insensitive substring match across the text fields;
// a hit in any one of them includes the event.
func matchesQuery(e *models.Event, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{e.Title, e.Summary, e.Body, e.Location, e.ScheduleText} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Regular events have no date to sort by: featured first, then category,
// then title for a deterministic order.
func sortRegular(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Title < b.Title
	})
}

// Spot events sort by start date ascending with featured first as the
// tie-break.
func sortSpot(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		switch {
		case a.StartDate == nil && b.StartDate != nil:
			return false
		case a.StartDate != nil && b.StartDate == nil:
			return true
		case a.StartDate != nil && b.StartDate != nil && !a.StartDate.Equal(*b.StartDate):
			return a.StartDate.Before(*b.StartDate)
		}
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		return a.Title < b.Title
	})
}

func (s *EventService) BySlug(slug string, today time.Time) (*EventView, error) {
	var event models.Event
	if err := s.db.Where("slug = ? AND is_active = ?", slug, true).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	view := newEventView(event, models.DateOnly(today))
	return &view, nil
}

type CreateEventRequest struct {
	Title         string     `json:"title" validate:"required,min=1,max=120"`
	Slug          string     `json:"slug,omitempty" validate:"omitempty,max=140"`
	Summary       string     `json:"summary,omitempty" validate:"omitempty,max=160"`
	Body          string     `json:"body,omitempty"`
	Category      string     `json:"category,omitempty" validate:"omitempty,oneof=food experience kids sale season night tasting retro rainy other"`
	Location      string     `json:"location,omitempty" validate:"omitempty,max=120"`
	IsRegular     bool       `json:"is_regular"`
	ScheduleText  string     `json:"schedule_text,omitempty" validate:"omitempty,max=120"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	AnnounceFrom  *time.Time `json:"announce_from,omitempty"`
	AnnounceUntil *time.Time `json:"announce_until,omitempty"`
	IsFeatured    bool       `json:"is_featured"`
}

// ValidateEventRequest enforces the write-time invariant: a spot event must
// carry a start date. Returned errors are field-attributed and localized.
func ValidateEventRequest(lang string, req *CreateEventRequest) []utils.ValidationError {
	validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req))

	if !req.IsRegular && req.StartDate == nil {
		validationErrors = append(validationErrors, utils.ValidationError{
			Field:   "start_date",
			Tag:     "required",
			Message: i18n.T(lang, i18n.KeyEventStartDate),
		})
	}

	return validationErrors
}

func (s *EventService) Create(lang string, req *CreateEventRequest) (*models.Event, error) {
	if validationErrors := ValidateEventRequest(lang, req); len(validationErrors) > 0 {
		return nil, &EventValidationError{Errors: validationErrors}
	}

	category := models.EventCategory(req.Category)
	if category == "" {
		category = models.EventCategorySeason
	}

	event := &models.Event{
		Title:         req.Title,
		Slug:          req.Slug,
		Summary:       req.Summary,
		Body:          req.Body,
		Category:      category,
		Location:      req.Location,
		IsRegular:     req.IsRegular,
		ScheduleText:  req.ScheduleText,
		StartDate:     dateOnlyPtr(req.StartDate),
		EndDate:       dateOnlyPtr(req.EndDate),
		AnnounceFrom:  dateOnlyPtr(req.AnnounceFrom),
		AnnounceUntil: dateOnlyPtr(req.AnnounceUntil),
		IsFeatured:    req.IsFeatured,
		IsActive:      true,
	}

	if err := s.db.Create(event).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// EventValidationError carries field-level failures out of Create.
type EventValidationError struct {
	Errors []utils.ValidationError
}

func (e *EventValidationError) Error() string {
	return "event validation failed"
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := models.DateOnly(*t)
	return &d
}
