package booking

import (
	"context"
	"time"

	"github.com/planbord/planbord/pkg/directory"
	"github.com/planbord/planbord/pkg/gcal"
	log "github.com/sirupsen/logrus"
)

// Service sequences directory lookup and calendar provider calls. The
// calendar identity is always derived from the directory record's email;
// no operation accepts a calendar id directly.
type Service struct {
	users    directory.Service
	calendar gcal.Client
}

func NewService(users directory.Service, calendar gcal.Client) *Service {
	return &Service{users: users, calendar: calendar}
}

func (s *Service) ListUpcoming(ctx context.Context, username string) ([]gcal.Event, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.calendar.ListUpcoming(ctx, user.Email)
}

func (s *Service) CreateEvent(ctx context.Context, username string, input gcal.EventInput) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	log.Debugf("Creating event %q on calendar of %s", input.Summary, username)
	return s.calendar.CreateEvent(ctx, user.Email, input)
}

func (s *Service) RescheduleEvent(ctx context.Context, username string, eventId string, start time.Time, end time.Time) (gcal.Event, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return gcal.Event{}, err
	}
	log.Debugf("Rescheduling event %s on calendar of %s", eventId, username)
	return s.calendar.RescheduleEvent(ctx, user.Email, eventId, start, end)
}

func (s *Service) DeleteEvent(ctx context.Context, username string, eventId string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	log.Debugf("Deleting event %s from calendar of %s", eventId, username)
	return s.calendar.DeleteEvent(ctx, user.Email, eventId)
}
