package google

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/envelope"
	"github.com/stashly/stashly/pkg/user"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrUnauthenticated = fmt.Errorf("user is unauthenticated, authentication is required")
var ErrSyncNotConfigured = fmt.Errorf("google calendar sync is not enabled for this user")

// syncWindow is how far ahead due dates are pushed to the calendar.
const syncWindow = 90 * 24 * time.Hour

const dueDateFormat = "2006-01-02"

type CalendarItem struct {
	ID      string
	Summary string
}

type Service interface {
	ListCalendars(ctx context.Context) ([]CalendarItem, error)
	// SyncDueDates pushes upcoming envelope due dates to the user's chosen
	// calendar as all-day events and reports how many were created.
	SyncDueDates(ctx context.Context) (int, error)
}

type ServiceImpl struct {
	auth            *GoogleAuth
	envelopeService envelope.Service
	clock           utils.Clock
}

func NewService(auth *GoogleAuth, envelopeService envelope.Service, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		auth:            auth,
		envelopeService: envelopeService,
		clock:           clock,
	}
}

func (s *ServiceImpl) ListCalendars(ctx context.Context) ([]CalendarItem, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	googleService, err := s.prepareGoogleService(ctx, userId)
	if err != nil {
		return nil, err
	}
	calendars, err := googleService.CalendarList.List().Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve calendars from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}
	var googleCalendars []CalendarItem
	for _, cal := range calendars.Items {
		googleCalendars = append(googleCalendars, CalendarItem{
			ID:      cal.Id,
			Summary: cal.Summary,
		})
	}
	return googleCalendars, nil
}

func (s *ServiceImpl) SyncDueDates(ctx context.Context) (int, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get current user: %w", err)
	}
	if currentUser.Settings.CalendarSync != user.GoogleCalendarSync || currentUser.Settings.GoogleCalendarId == "" {
		return 0, ErrSyncNotConfigured
	}
	calendarId := currentUser.Settings.GoogleCalendarId

	googleService, err := s.prepareGoogleService(ctx, currentUser.Id)
	if err != nil {
		return 0, err
	}

	views, err := s.envelopeService.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	from := s.clock.Now()
	to := from.Add(syncWindow)
	existing, err := s.existingMarkers(googleService, calendarId, from, to)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, view := range views {
		due := view.NextDueDate
		if due == nil || due.Before(from) || due.After(to) {
			continue
		}
		marker := envelopeMarker(view.Id, *due)
		if existing[marker] {
			log.Tracef("Due date event already present, skipping: %s", marker)
			continue
		}

		_, err := googleService.Events.Insert(calendarId, &calendar.Event{
			Summary:     fmt.Sprintf("%s due (%s)", view.Name, view.TargetAmount.StringFixed(2)),
			Description: marker,
			Start:       &calendar.EventDateTime{Date: due.Format(dueDateFormat)},
			End:         &calendar.EventDateTime{Date: due.AddDate(0, 0, 1).Format(dueDateFormat)},
		}).Do()
		if err != nil {
			err := fmt.Errorf("unable to insert event in Google Calendar: %v", err)
			log.Error(err)
			return created, err
		}
		created++
	}
	log.Debugf("Synced %d due date events to calendar %s", created, calendarId)
	return created, nil
}

// existingMarkers collects the descriptions of events already in the window,
// so re-running the sync does not duplicate them.
func (s *ServiceImpl) existingMarkers(googleService *calendar.Service, calendarId string, from, to time.Time) (map[string]bool, error) {
	events, err := googleService.Events.List(calendarId).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	markers := make(map[string]bool, len(events.Items))
	for _, item := range events.Items {
		if item.Description != "" {
			markers[item.Description] = true
		}
	}
	return markers, nil
}

func envelopeMarker(envelopeId int, due time.Time) string {
	return fmt.Sprintf("stashly-envelope-%d-%s", envelopeId, due.Format(dueDateFormat))
}

func (s *ServiceImpl) prepareGoogleService(ctx context.Context, userId int) (*calendar.Service, error) {
	client, err := s.auth.getClient(ctx, userId)
	if err != nil {
		err := fmt.Errorf("unable to retrieve Google auth client: %v", err)
		log.Error(err)
		return nil, err
	}
	if client == nil {
		log.Debug("user is unauthenticated, authentication is required")
		return nil, ErrUnauthenticated
	}
	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to retrieve Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}

	return service, nil
}
