package calendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	extendedPropertySource = "cek-notifier"
	reminderMinutes        = 15
)

// EventParams are the optional attributes of an inserted event.
type EventParams struct {
	ColorID     string
	Description string
}

// Google manages the events this service created in Google Calendar. Our events are
// tagged with the private extended property source=cek-notifier.
type Google struct {
	svc *calendar.Service
}

// NewGoogle authenticates with a service account key file, scope calendar.events.
func NewGoogle(ctx context.Context, credentialsPath string, opts ...option.ClientOption) (*Google, error) {
	opts = append([]option.ClientOption{
		option.WithAuthCredentialsFile(option.ServiceAccount, credentialsPath),
		option.WithScopes(calendar.CalendarEventsScope),
	}, opts...)
	return newGoogle(ctx, opts...)
}

func newGoogle(ctx context.Context, opts ...option.ClientOption) (*Google, error) {
	srv, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Google{svc: srv}, nil
}

// ListOurEvents returns IDs of our events in [timeMin, timeMax]. Filtering by the extended
// property happens client side.
func (c *Google) ListOurEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]string, error) {
	call := c.svc.Events.List(calendarID).
		Context(ctx).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true)

	var ids []string
	err := call.Pages(ctx, func(events *calendar.Events) error {
		for _, e := range events.Items {
			if e.Id != "" && isOurs(e) {
				ids = append(ids, e.Id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return ids, nil
}

func (c *Google) InsertEvent(ctx context.Context, calendarID, summary string, start, end time.Time, params EventParams) (string, error) {
	ev := &calendar.Event{
		Summary:     summary,
		Description: params.Description,
		ColorId:     params.ColorID,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: start.Location().String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: end.Location().String(),
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{"source": extendedPropertySource},
		},
		Reminders: &calendar.EventReminders{
			Overrides:       []*calendar.EventReminder{{Method: "popup", Minutes: reminderMinutes}},
			ForceSendFields: []string{"UseDefault", "Overrides"},
		},
	}

	created, err := c.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	return created.Id, nil
}

func (c *Google) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete event=%s: %w", eventID, err)
	}
	return nil
}

func isOurs(e *calendar.Event) bool {
	return e.ExtendedProperties != nil &&
		e.ExtendedProperties.Private != nil &&
		e.ExtendedProperties.Private["source"] == extendedPropertySource
}
