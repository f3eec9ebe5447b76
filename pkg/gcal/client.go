package gcal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/planbord/planbord/internal/fault"
	"github.com/planbord/planbord/internal/utils"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// TimeZone is the fixed time zone in which all event date-times are
// interpreted, regardless of the caller's locale.
const TimeZone = "Europe/Brussels"

// maxUpcoming caps how many events a calendar listing returns.
const maxUpcoming = 3

const (
	dateTimeLayout = "2006-01-02T15:04:05"
	dateOnlyLayout = "2006-01-02"
)

// Event is a calendar event as seen by this system. Sequence is the
// provider's revision counter for competing updates.
type Event struct {
	ID          string
	Summary     string
	Location    string
	Description string
	Start       time.Time
	End         time.Time
	Sequence    int64
}

// EventInput carries the caller-supplied fields for a new event.
type EventInput struct {
	Summary     string
	Location    string
	Description string
	Start       time.Time
	End         time.Time
}

type Client interface {
	ListUpcoming(ctx context.Context, calendarId string) ([]Event, error)
	CreateEvent(ctx context.Context, calendarId string, input EventInput) (string, error)
	RescheduleEvent(ctx context.Context, calendarId string, eventId string, start time.Time, end time.Time) (Event, error)
	DeleteEvent(ctx context.Context, calendarId string, eventId string) error
}

type ClientImpl struct {
	service *calendar.Service
	clock   utils.Clock
}

// NewClient builds a calendar client authenticated with a service account
// key that has access to the inspectors' calendars.
func NewClient(ctx context.Context, credentialsFile string) (*ClientImpl, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read Google credentials file: %w", err)
	}
	jwtConfig, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Google credentials: %w", err)
	}
	service, err := calendar.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar client: %w", err)
	}
	return &ClientImpl{service: service, clock: utils.SystemClock{}}, nil
}

// NewClientWithOptions builds a client from raw client options, so tests can
// point it at a fake Calendar backend.
func NewClientWithOptions(ctx context.Context, clock utils.Clock, opts ...option.ClientOption) (*ClientImpl, error) {
	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar client: %w", err)
	}
	return &ClientImpl{service: service, clock: clock}, nil
}

// ParseDateTime interprets a caller-supplied date-time as wall-clock time in
// the fixed calendar time zone. RFC3339 values keep their own offset.
func ParseDateTime(value string) (time.Time, error) {
	location, err := time.LoadLocation(TimeZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not load location for timezone %s", TimeZone)
	}
	if t, err := time.ParseInLocation(dateTimeLayout, value, location); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ListUpcoming returns at most 3 upcoming events ordered by start time,
// with recurring events expanded into single instances.
func (c *ClientImpl) ListUpcoming(ctx context.Context, calendarId string) ([]Event, error) {
	result, err := c.service.Events.List(calendarId).
		TimeMin(c.clock.Now().Format(time.RFC3339)).
		MaxResults(maxUpcoming).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		log.Errorf("unable to retrieve events from calendar %s: %v", calendarId, err)
		return nil, fault.New(fault.CalendarOperationFailed, "calendar list failed", err)
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		event, err := eventFromGoogle(item)
		if err != nil {
			log.Errorf("malformed event in calendar %s: %v", calendarId, err)
			return nil, fault.New(fault.CalendarOperationFailed, "calendar list failed", err)
		}
		events = append(events, event)
	}
	return events, nil
}

func (c *ClientImpl) CreateEvent(ctx context.Context, calendarId string, input EventInput) (string, error) {
	log.Debugf("Adding event %q to calendar %s", input.Summary, calendarId)

	result, err := c.service.Events.Insert(calendarId, &calendar.Event{
		Summary:     input.Summary,
		Location:    input.Location,
		Description: input.Description,
		Start:       eventDateTime(input.Start),
		End:         eventDateTime(input.End),
	}).Context(ctx).Do()
	if err != nil {
		log.Errorf("unable to insert event in calendar %s: %v", calendarId, err)
		return "", fault.New(fault.CalendarOperationFailed, "calendar insert failed", err)
	}
	return result.Id, nil
}

// RescheduleEvent fetches the current event, moves its start/end and bumps
// the sequence counter by one relative to the fetched value, then submits
// the full body back so fields owned by the provider survive. The
// get-then-update pair is not transactional; a concurrent change to the
// same event between the two calls is not detected here.
func (c *ClientImpl) RescheduleEvent(ctx context.Context, calendarId string, eventId string, start time.Time, end time.Time) (Event, error) {
	current, err := c.service.Events.Get(calendarId, eventId).Context(ctx).Do()
	if err != nil {
		log.Errorf("unable to retrieve event %s from calendar %s: %v", eventId, calendarId, err)
		return Event{}, fault.New(fault.CalendarOperationFailed, "calendar get failed", err)
	}

	current.Start = eventDateTime(start)
	current.End = eventDateTime(end)
	// A missing counter unmarshals as zero, so the first reschedule submits 1.
	current.Sequence = current.Sequence + 1

	updated, err := c.service.Events.Update(calendarId, eventId, current).Context(ctx).Do()
	if err != nil {
		log.Errorf("unable to update event %s in calendar %s: %v", eventId, calendarId, err)
		return Event{}, fault.New(fault.CalendarOperationFailed, "calendar update failed", err)
	}
	event, err := eventFromGoogle(updated)
	if err != nil {
		return Event{}, fault.New(fault.CalendarOperationFailed, "calendar update failed", err)
	}
	return event, nil
}

func (c *ClientImpl) DeleteEvent(ctx context.Context, calendarId string, eventId string) error {
	err := c.service.Events.Delete(calendarId, eventId).Context(ctx).Do()
	if err != nil {
		log.Errorf("unable to delete event %s from calendar %s: %v", eventId, calendarId, err)
		return fault.New(fault.CalendarOperationFailed, "calendar delete failed", err)
	}
	return nil
}

func eventDateTime(t time.Time) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: TimeZone,
	}
}

// parseEventTime reads a timed event's RFC3339 date-time, or the bare date
// of an all-day event as midnight in the calendar time zone.
func parseEventTime(edt *calendar.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, nil
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	if edt.Date != "" {
		location, err := time.LoadLocation(TimeZone)
		if err != nil {
			return time.Time{}, fmt.Errorf("could not load location for timezone %s", TimeZone)
		}
		return time.ParseInLocation(dateOnlyLayout, edt.Date, location)
	}
	return time.Time{}, nil
}

func eventFromGoogle(item *calendar.Event) (Event, error) {
	start, err := parseEventTime(item.Start)
	if err != nil {
		return Event{}, fmt.Errorf("invalid start time on event %s: %w", item.Id, err)
	}
	end, err := parseEventTime(item.End)
	if err != nil {
		return Event{}, fmt.Errorf("invalid end time on event %s: %w", item.Id, err)
	}
	return Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Location:    item.Location,
		Description: item.Description,
		Start:       start,
		End:         end,
		Sequence:    item.Sequence,
	}, nil
}
