package gcal

import (
	"context"
	"fmt"
	"time"
)

// ClientStub is an in-memory Client for orchestrator tests. Each call is
// counted so tests can assert that no provider call was attempted.
type ClientStub struct {
	events map[string][]Event // calendarId -> events
	nextId int
	Calls  int

	listErr       error
	createErr     error
	rescheduleErr error
	deleteErr     error
}

func NewClientStub() *ClientStub {
	return &ClientStub{
		events: make(map[string][]Event),
		nextId: 1,
	}
}

func (c *ClientStub) ListUpcoming(ctx context.Context, calendarId string) ([]Event, error) {
	c.Calls++
	if c.listErr != nil {
		return nil, c.listErr
	}
	events := c.events[calendarId]
	result := make([]Event, len(events))
	copy(result, events)
	if len(result) > maxUpcoming {
		result = result[:maxUpcoming]
	}
	return result, nil
}

func (c *ClientStub) CreateEvent(ctx context.Context, calendarId string, input EventInput) (string, error) {
	c.Calls++
	if c.createErr != nil {
		return "", c.createErr
	}
	id := fmt.Sprintf("event-%d", c.nextId)
	c.nextId++
	c.events[calendarId] = append(c.events[calendarId], Event{
		ID:          id,
		Summary:     input.Summary,
		Location:    input.Location,
		Description: input.Description,
		Start:       input.Start,
		End:         input.End,
	})
	return id, nil
}

func (c *ClientStub) RescheduleEvent(ctx context.Context, calendarId string, eventId string, start time.Time, end time.Time) (Event, error) {
	c.Calls++
	if c.rescheduleErr != nil {
		return Event{}, c.rescheduleErr
	}
	for i, event := range c.events[calendarId] {
		if event.ID == eventId {
			event.Start = start
			event.End = end
			event.Sequence = event.Sequence + 1
			c.events[calendarId][i] = event
			return event, nil
		}
	}
	return Event{}, fmt.Errorf("event %s not found", eventId)
}

func (c *ClientStub) DeleteEvent(ctx context.Context, calendarId string, eventId string) error {
	c.Calls++
	if c.deleteErr != nil {
		return c.deleteErr
	}
	events := c.events[calendarId]
	for i, event := range events {
		if event.ID == eventId {
			c.events[calendarId] = append(events[:i], events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("event %s not found", eventId)
}

// Helper methods for test setup

func (c *ClientStub) SetEvents(calendarId string, events []Event) {
	c.events[calendarId] = make([]Event, len(events))
	copy(c.events[calendarId], events)
}

func (c *ClientStub) SetListError(err error)       { c.listErr = err }
func (c *ClientStub) SetCreateError(err error)     { c.createErr = err }
func (c *ClientStub) SetRescheduleError(err error) { c.rescheduleErr = err }
func (c *ClientStub) SetDeleteError(err error)     { c.deleteErr = err }
