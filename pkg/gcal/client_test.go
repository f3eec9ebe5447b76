package gcal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/planbord/planbord/internal/fault"
	"github.com/planbord/planbord/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const testCalendarId = "primary"

func newTestClient(t *testing.T, now time.Time, handler http.Handler) *ClientImpl {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClientWithOptions(context.Background(),
		utils.FixedClock{FixedNow: now},
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return client
}

func writeEvent(t *testing.T, w http.ResponseWriter, event *calendar.Event) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(event))
}

func TestListUpcoming(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	client := newTestClient(t, now, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "3", query.Get("maxResults"))
		assert.Equal(t, "true", query.Get("singleEvents"))
		assert.Equal(t, "startTime", query.Get("orderBy"))
		assert.Equal(t, now.Format(time.RFC3339), query.Get("timeMin"))

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(&calendar.Events{
			Items: []*calendar.Event{
				{
					Id:      "first",
					Summary: "Keuring elektriciteit",
					Start:   &calendar.EventDateTime{DateTime: "2026-09-01T10:00:00+02:00", TimeZone: TimeZone},
					End:     &calendar.EventDateTime{DateTime: "2026-09-01T11:00:00+02:00", TimeZone: TimeZone},
				},
				{
					Id:      "second",
					Summary: "Keuring gas",
					Start:   &calendar.EventDateTime{DateTime: "2026-09-02T09:00:00+02:00", TimeZone: TimeZone},
					End:     &calendar.EventDateTime{DateTime: "2026-09-02T10:30:00+02:00", TimeZone: TimeZone},
				},
			},
		})
		require.NoError(t, err)
	}))

	events, err := client.ListUpcoming(context.Background(), testCalendarId)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "first", events[0].ID)
	assert.Equal(t, "Keuring elektriciteit", events[0].Summary)
	assert.Equal(t, "second", events[1].ID)
	// Provider ordering is preserved: ascending start time
	assert.True(t, events[0].Start.Before(events[1].Start))
}

func TestListUpcoming_AllDayEvent(t *testing.T) {
	client := newTestClient(t, time.Now(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(&calendar.Events{
			Items: []*calendar.Event{
				{
					Id:      "all-day",
					Summary: "Verlofdag",
					Start:   &calendar.EventDateTime{Date: "2026-09-03"},
					End:     &calendar.EventDateTime{Date: "2026-09-04"},
				},
			},
		})
		require.NoError(t, err)
	}))

	events, err := client.ListUpcoming(context.Background(), testCalendarId)
	require.NoError(t, err)
	require.Len(t, events, 1)

	// Date-only events start at midnight in the calendar time zone
	assert.Equal(t, TimeZone, events[0].Start.Location().String())
	assert.Equal(t, time.Date(2026, 9, 3, 0, 0, 0, 0, events[0].Start.Location()), events[0].Start)
	assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, events[0].End.Location()), events[0].End)
}

func TestListUpcoming_MalformedEventTime(t *testing.T) {
	client := newTestClient(t, time.Now(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(&calendar.Events{
			Items: []*calendar.Event{
				{
					Id:    "broken",
					Start: &calendar.EventDateTime{DateTime: "not-a-timestamp"},
				},
			},
		})
		require.NoError(t, err)
	}))

	_, err := client.ListUpcoming(context.Background(), testCalendarId)
	require.Error(t, err)
	assert.Equal(t, fault.CalendarOperationFailed, fault.KindOf(err))
	assert.Contains(t, err.Error(), "invalid start time on event broken")
}

func TestListUpcoming_ProviderFailure(t *testing.T) {
	client := newTestClient(t, time.Now(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 404, "message": "Not Found"}}`, http.StatusNotFound)
	}))

	_, err := client.ListUpcoming(context.Background(), testCalendarId)
	require.Error(t, err)
	assert.Equal(t, fault.CalendarOperationFailed, fault.KindOf(err))
	assert.Contains(t, err.Error(), "calendar list failed")
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	end := start.Add(90 * time.Minute)

	client := newTestClient(t, time.Now(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)

		var body calendar.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Keuring elektriciteit + gas", body.Summary)
		assert.Equal(t, "Kerkstraat 1, Gent", body.Location)
		assert.Equal(t, "Dossier 2026-123", body.Description)
		assert.Equal(t, start.Format(time.RFC3339), body.Start.DateTime)
		assert.Equal(t, TimeZone, body.Start.TimeZone)
		assert.Equal(t, end.Format(time.RFC3339), body.End.DateTime)
		assert.Equal(t, TimeZone, body.End.TimeZone)

		body.Id = "created-event-id"
		writeEvent(t, w, &body)
	}))

	eventId, err := client.CreateEvent(context.Background(), testCalendarId, EventInput{
		Summary:     "Keuring elektriciteit + gas",
		Location:    "Kerkstraat 1, Gent",
		Description: "Dossier 2026-123",
		Start:       start,
		End:         end,
	})
	require.NoError(t, err)
	assert.Equal(t, "created-event-id", eventId)
}

func TestRescheduleEvent(t *testing.T) {
	newStart := time.Date(2026, 9, 12, 9, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	newEnd := newStart.Add(time.Hour)

	var updateBody calendar.Event

	client := newTestClient(t, time.Now(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/calendars/primary/events/evt-42", r.URL.Path)
			writeEvent(t, w, &calendar.Event{
				Id:          "evt-42",
				Summary:     "Keuring gas",
				Location:    "Veldstraat 8, Gent",
				Description: "Dossier 2026-456",
				ColorId:     "5",
				Start:       &calendar.EventDateTime{DateTime: "2026-09-11T10:00:00+02:00", TimeZone: TimeZone},
				End:         &calendar.EventDateTime{DateTime: "2026-09-11T11:00:00+02:00", TimeZone: TimeZone},
				Sequence:    2,
			})
		case http.MethodPut:
			assert.Equal(t, "/calendars/primary/events/evt-42", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&updateBody))
			writeEvent(t, w, &updateBody)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))

	updated, err := client.RescheduleEvent(context.Background(), testCalendarId, "evt-42", newStart, newEnd)
	require.NoError(t, err)

	// Sequence is bumped by exactly one relative to the fetched value
	assert.Equal(t, int64(3), updateBody.Sequence)
	assert.Equal(t, newStart.Format(time.RFC3339), updateBody.Start.DateTime)
	assert.Equal(t, newEnd.Format(time.RFC3339), updateBody.End.DateTime)
	assert.Equal(t, TimeZone, updateBody.Start.TimeZone)

	// Fields unrelated to start/end/sequence survive the read-modify-write
	assert.Equal(t, "Keuring gas", updateBody.Summary)
	assert.Equal(t, "Veldstraat 8, Gent", updateBody.Location)
	assert.Equal(t, "Dossier 2026-456", updateBody.Description)
	assert.Equal(t, "5", updateBody.ColorId)

	assert.Equal(t, "evt-42", updated.ID)
	assert.Equal(t, int64(3), updated.Sequence)
	assert.Equal(t, newStart.Unix(), updated.Start.Unix())
	assert.Equal(t, newEnd.Unix(), updated.End.Unix())
}

func TestRescheduleEvent_MissingSequence(t *testing.T) {
	newStart := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)

	var updateBody calendar.Event

	client := newTestClient(t, time.Now(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			// No sequence field at all: treated as zero
			writeEvent(t, w, &calendar.Event{
				Id:    "evt-1",
				Start: &calendar.EventDateTime{DateTime: "2026-09-11T10:00:00+02:00"},
				End:   &calendar.EventDateTime{DateTime: "2026-09-11T11:00:00+02:00"},
			})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&updateBody))
			writeEvent(t, w, &updateBody)
		}
	}))

	_, err := client.RescheduleEvent(context.Background(), testCalendarId, "evt-1", newStart, newStart.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), updateBody.Sequence)
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, time.Now(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/calendars/primary/events/evt-42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.DeleteEvent(context.Background(), testCalendarId, "evt-42")
	assert.NoError(t, err)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	client := newTestClient(t, time.Now(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 404, "message": "Event not found"}}`, http.StatusNotFound)
	}))

	err := client.DeleteEvent(context.Background(), testCalendarId, "missing")
	require.Error(t, err)
	assert.Equal(t, fault.CalendarOperationFailed, fault.KindOf(err))
	assert.Contains(t, err.Error(), "calendar delete failed")
}

func TestParseDateTime(t *testing.T) {
	t.Run("wall-clock value is interpreted in the calendar time zone", func(t *testing.T) {
		parsed, err := ParseDateTime("2026-07-01T10:00:00")
		require.NoError(t, err)
		assert.Equal(t, TimeZone, parsed.Location().String())
		assert.Equal(t, 10, parsed.Hour())
	})

	t.Run("RFC3339 value keeps its own offset", func(t *testing.T) {
		parsed, err := ParseDateTime("2026-07-01T10:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC).Unix(), parsed.Unix())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseDateTime("next tuesday")
		assert.Error(t, err)
	})
}
